// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the triple returned by the OpenPIMS authentication endpoint.
type Identity struct {
	// UserID identifies the user on the OpenPIMS server.
	UserID string `json:"userId"`

	// Token is the shared secret used as the HMAC key for pseudonyms.
	Token string `json:"token"`

	// Domain is the application domain pseudonyms are rooted under.
	Domain string `json:"domain"`
}

// Complete reports whether all three fields are present.
func (i Identity) Complete() bool {
	return i.UserID != "" && i.Token != "" && i.Domain != ""
}
