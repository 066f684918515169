// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	assert.Equal(t, "1.0.0 (abc123, 2026-10-16)", NewAppBuildInfo("1.0.0", "2026-10-16", "abc123").String())
	assert.Equal(t, "N/A (N/A, N/A)", AppBuildInfo{}.String())
	assert.Equal(t, "dev (N/A, N/A)", NewAppBuildInfo("dev", "", "").String())
}

func TestCredentials_IsAuthenticated(t *testing.T) {
	full := CredentialsFromIdentity(Identity{UserID: "u", Token: "t", Domain: "d"})
	assert.True(t, full.IsAuthenticated())

	for _, partial := range []Credentials{
		{UserID: "u", Secret: "t", AppDomain: "d"},
		{UserID: "u", Secret: "t", LoggedIn: true},
		{UserID: "u", AppDomain: "d", LoggedIn: true},
		{Secret: "t", AppDomain: "d", LoggedIn: true},
	} {
		assert.False(t, partial.IsAuthenticated(), "%+v", partial)
	}
}
