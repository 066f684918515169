// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Storage keys of the credential record in the local scope.
const (
	KeyUserID    = "userId"
	KeySecret    = "secret"
	KeyAppDomain = "appDomain"
	KeyLoggedIn  = "isLoggedIn"
)

// Storage key of the single fallback URL kept in the synced scope.
const KeyOpenPimsURL = "openPimsUrl"

// CredentialKeys lists every key that makes up a [Credentials] record.
var CredentialKeys = []string{KeyUserID, KeySecret, KeyAppDomain, KeyLoggedIn}

// Credentials is the authenticated session record shared by every
// enforcement point. It is created on successful login, read on every
// pseudonym decision and removed as a whole on logout.
type Credentials struct {
	// UserID is the opaque user identifier issued by the OpenPIMS server.
	UserID string `json:"userId"`

	// Secret is the shared HMAC key material issued by the server
	// (the "token" field of the login response).
	Secret string `json:"secret"`

	// AppDomain is the DNS suffix under which derived pseudonyms resolve.
	AppDomain string `json:"appDomain"`

	// LoggedIn reports whether the user completed a login.
	LoggedIn bool `json:"isLoggedIn"`
}

// IsAuthenticated reports whether the record is complete. A partial record
// (any field missing) must be treated as not authenticated.
func (c Credentials) IsAuthenticated() bool {
	return c.LoggedIn && c.UserID != "" && c.Secret != "" && c.AppDomain != ""
}

// CredentialsFromIdentity builds a logged-in record from a login response.
func CredentialsFromIdentity(id Identity) Credentials {
	return Credentials{
		UserID:    id.UserID,
		Secret:    id.Token,
		AppDomain: id.Domain,
		LoggedIn:  true,
	}
}
