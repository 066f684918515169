// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Services groups what the message channel handler calls into.
type Services struct {
	Auth  AuthService
	Rules RuleManager
	Pages PageService
}
