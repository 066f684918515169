// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package injector

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptor_WrapFetch(t *testing.T) {
	var got *http.Request
	next := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		got = req
		return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Request: req}, nil
	})

	rt := Interceptor{HeaderValue: "https://abc.openpims.example"}.WrapFetch(next)

	req := httptest.NewRequest(http.MethodGet, "https://example.com/api", nil)
	req.Header.Set(HeaderName, "stale")
	req.Header.Set("Accept", "application/json")

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NotNil(t, got)
	assert.Equal(t, "https://abc.openpims.example", got.Header.Get(HeaderName))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "stale", req.Header.Get(HeaderName))
}

func TestInterceptor_WrapXHR(t *testing.T) {
	var got *http.Request
	next := doerFunc(func(req *http.Request) (*http.Response, error) {
		got = req
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})

	d := Interceptor{HeaderValue: "https://abc.openpims.example"}.WrapXHR(next)
	req := httptest.NewRequest(http.MethodPost, "https://example.com/xhr", nil)

	_, err := d.Do(req)
	require.NoError(t, err)
	assert.Equal(t, "https://abc.openpims.example", got.Header.Get(HeaderName))
	assert.Empty(t, req.Header.Get(HeaderName))
}

func TestInterceptor_NilNextUsesDefaults(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(HeaderName)
	}))
	defer srv.Close()

	ic := Interceptor{HeaderValue: "v"}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := ic.WrapFetch(nil).RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "v", got)

	got = ""
	resp, err = ic.WrapXHR(nil).Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "v", got)
}

func TestInterceptor_NilRequestHeader(t *testing.T) {
	var got []string
	next := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		got = append(got, req.Header.Get(HeaderName))
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
	})
	ic := Interceptor{HeaderValue: "https://abc.openpims.example"}
	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Scheme: "https", Host: "example.com", Path: "/"}}

	require.NotPanics(t, func() {
		_, err := ic.WrapFetch(next).RoundTrip(req)
		require.NoError(t, err)
		_, err = ic.WrapXHR(doerFunc(next)).Do(req)
		require.NoError(t, err)
	})
	assert.Equal(t, []string{"https://abc.openpims.example", "https://abc.openpims.example"}, got)
	assert.Nil(t, req.Header)
}
