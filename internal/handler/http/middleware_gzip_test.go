// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	_, err := gzipWriter.Write(data)
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())
	return &buf
}

// echoHandler writes the request body back.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
})

func TestWithGzipRequest(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		compress        bool
		body            string
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "gzipped body is decoded",
			contentEncoding: "gzip",
			compress:        true,
			body:            `{"name":"Vegan"}`,
			wantStatus:      http.StatusOK,
			wantBody:        `{"name":"Vegan"}`,
		},
		{
			name:            "content-encoding with several values",
			contentEncoding: "gzip, identity",
			compress:        true,
			body:            "Request data",
			wantStatus:      http.StatusOK,
			wantBody:        "Request data",
		},
		{
			name:       "plain body passes through",
			body:       "Request data",
			wantStatus: http.StatusOK,
			wantBody:   "Request data",
		},
		{
			name:            "invalid gzip body",
			contentEncoding: "gzip",
			body:            "not gzipped data",
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reader io.Reader = strings.NewReader(tt.body)
			if tt.compress {
				reader = gzipBytes(t, []byte(tt.body))
			}

			req := httptest.NewRequest(http.MethodPost, "/test", reader)
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGzipRequest(echoHandler).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestWithGzipRequest_HeadersRemoved(t *testing.T) {
	var gotEncoding string
	var gotLength int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEncoding = r.Header.Get("Content-Encoding")
		gotLength = r.ContentLength
	})

	req := httptest.NewRequest(http.MethodPost, "/test", gzipBytes(t, []byte("data")))
	req.Header.Set("Content-Encoding", "gzip")

	withGzipRequest(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Empty(t, gotEncoding)
	assert.Equal(t, int64(-1), gotLength)
}

func TestWithGzipRequest_PoolReuse(t *testing.T) {
	middleware := withGzipRequest(echoHandler)

	for i := 0; i < 5; i++ {
		testData := []byte("Test data " + string(rune('0'+i)))
		req := httptest.NewRequest(http.MethodPost, "/test", gzipBytes(t, testData))
		req.Header.Set("Content-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, string(testData), rr.Body.String(), "request %d: wrong body", i)
	}
}

func TestRouter_CompressesJSONResponses(t *testing.T) {
	h := newTestHandler(t, service.Services{})

	req := authorized(jsonRequest(http.MethodGet, "/api/user/me/", ""))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gzipReader, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gzipReader)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"cook@example.com","name":"Cook"}`, string(body))
}

func TestRouter_AcceptsGzippedRequest(t *testing.T) {
	h := newTestHandler(t, service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/create/", gzipBytes(t, []byte(`{"email":"bad"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	rec := serve(h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "password")
}

func TestWrappedReadCloser_Close(t *testing.T) {
	calls := 0
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { calls++ },
	}

	assert.NoError(t, wrapped.Close())
	assert.NoError(t, wrapped.Close())
	assert.Equal(t, 1, calls, "OnClose should run once")
}

func TestWrappedReadCloser_CloseWithoutCallback(t *testing.T) {
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: nil,
	}

	assert.NoError(t, wrapped.Close(), "Close should not fail when OnClose is nil")
}
