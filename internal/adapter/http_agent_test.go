// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

func TestHTTPAgentAdapter_Send(t *testing.T) {
	var got models.Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, messagesPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		if got.Action == "bogus" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"error":"unknown action"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"url":"https://x.openpims.example"}}`))
	}))
	defer srv.Close()

	a, err := NewHTTPAgentAdapter(strings.TrimPrefix(srv.URL, "http://"), 5*time.Second, logger.Nop())
	require.NoError(t, err)

	resp, err := a.Send(context.Background(), models.Message{Action: models.ActionDerive, Domain: "example.com"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]any{"url": "https://x.openpims.example"}, resp.Data)
	assert.Equal(t, models.Message{Action: models.ActionDerive, Domain: "example.com"}, got)

	resp, err = a.Send(context.Background(), models.Message{Action: "bogus"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "unknown action", resp.Error)
}

func TestHTTPAgentAdapter_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a, err := NewHTTPAgentAdapter(addr, time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = a.Send(context.Background(), models.Message{Action: models.ActionStatus})
	assert.ErrorIs(t, err, ErrAgentUnavailable)
}

func TestHTTPAgentAdapter_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a, err := NewHTTPAgentAdapter(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = a.Send(context.Background(), models.Message{Action: models.ActionStatus})
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "127.0.0.1:7787", want: "http://127.0.0.1:7787"},
		{in: " http://localhost:1/ ", want: "http://localhost:1"},
		{in: "https://agent.local", want: "https://agent.local"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
