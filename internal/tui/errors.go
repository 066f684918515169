// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-openpims/internal/adapter"
)

func humanizeAgentError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrAgentUnavailable) {
		return "OpenPIMS agent is not running"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "context deadline exceeded") || strings.Contains(s, "i/o timeout") {
		return "OpenPIMS agent did not answer in time"
	}

	return err.Error()
}
