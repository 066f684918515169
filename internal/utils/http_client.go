// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent on every outgoing request made through [HTTPClient].
const UserAgent = "go-openpims"

// HTTPClient embeds *resty.Client so adapters can use its request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Redirects are capped at five hops, the same limit browsers apply to a
// login endpoint that bounces through a gateway.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	return &HTTPClient{Client: client}
}
