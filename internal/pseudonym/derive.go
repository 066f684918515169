// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pseudonym

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	// LabelLength is the number of hex characters kept from the digest.
	// 32 characters fit a DNS label (max 63) with room to spare.
	LabelLength = 32

	secondsPerDay = 86400
)

// Deriver computes a pseudonym label. [Engine] is the production
// implementation; tests substitute counting fakes.
type Deriver interface {
	Derive(userID, secret, domain string, dayEpoch int64) (string, error)
}

// Engine is the stateless HMAC-SHA256 [Deriver].
type Engine struct{}

// Derive implements [Deriver]. It is deterministic, performs no I/O and is
// safe for concurrent use.
func (Engine) Derive(userID, secret, domain string, dayEpoch int64) (string, error) {
	return Derive(userID, secret, domain, dayEpoch)
}

// Derive returns the 32-character lowercase hex label for the given inputs.
func Derive(userID, secret, domain string, dayEpoch int64) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: empty secret", ErrCryptoKey)
	}
	if userID == "" || domain == "" {
		return "", fmt.Errorf("%w: user id and domain are required", ErrInvalidInput)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message(userID, domain, dayEpoch)))

	return hex.EncodeToString(mac.Sum(nil))[:LabelLength], nil
}

func message(userID, domain string, dayEpoch int64) string {
	return userID + domain + strconv.FormatInt(dayEpoch, 10)
}

// DayEpoch returns the number of whole UTC days since the Unix epoch.
func DayEpoch(t time.Time) int64 {
	sec := t.Unix()
	day := sec / secondsPerDay
	if sec < 0 && sec%secondsPerDay != 0 {
		day--
	}
	return day
}

// NextDayBoundary returns the first instant of the day-epoch after t.
func NextDayBoundary(t time.Time) time.Time {
	return time.Unix((DayEpoch(t)+1)*secondsPerDay, 0).UTC()
}

// FullURL builds the pseudonym URL for label under appDomain.
func FullURL(label, appDomain string) string {
	return "https://" + label + "." + strings.TrimPrefix(appDomain, ".")
}

// NormalizeHost turns a hostname or host:port into the canonical domain
// string fed into [Derive]: lowercase, without port and trailing dot.
func NormalizeHost(raw string) string {
	host := strings.TrimSpace(raw)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
