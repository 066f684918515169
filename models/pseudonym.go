// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Pseudonym is a derived per-domain identifier. It lives only in memory and
// is never written to durable storage.
type Pseudonym struct {
	// Domain is the visited site the pseudonym was derived for.
	Domain string `json:"domain"`

	// Label is the 32-character lowercase hex subdomain label.
	Label string `json:"label"`

	// FullURL is https://{Label}.{appDomain}, the value sent in the
	// x-openpims header and cookie.
	FullURL string `json:"url"`

	// DerivedAt is the wall-clock time the label was computed.
	DerivedAt time.Time `json:"derivedAt"`
}
