// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pseudonym derives the per-domain OpenPIMS identifiers and caches
// them per domain.
//
// The derivation is a wire contract shared by every enforcement point:
//
//	label = hex(HMAC-SHA256(key = secret, msg = userID + domain + dayEpoch))[:32]
//	url   = "https://" + label + "." + appDomain
//
// where dayEpoch is the decimal form of floor(unixSeconds / 86400). Any change
// to the concatenation order silently breaks validation on the server side.
package pseudonym
