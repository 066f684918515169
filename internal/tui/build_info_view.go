// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-openpims/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(row("Application", "OpenPIMS"))
	b.WriteString(row("Version", valueOrNA(info.BuildVersion())))
	b.WriteString(row("Date", valueOrNA(info.BuildDate())))
	b.WriteString(row("Commit", valueOrNA(info.BuildCommit())))

	return renderPage("ABOUT", overlayBox.Render(strings.TrimRight(b.String(), "\n")), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
