// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGZip(t *testing.T) {
	tests := []struct {
		name                 string
		acceptEncoding       string
		contentEncoding      string
		requestBody          []byte
		compressRequestBody  bool
		expectedStatus       int
		expectedResponseBody string
		checkResponseGzipped bool
		checkRequestDecoded  bool
	}{
		{
			name:                 "compress response when client accepts gzip",
			acceptEncoding:       "gzip",
			requestBody:          nil,
			expectedStatus:       http.StatusOK,
			expectedResponseBody: `{"result":"hello-world"}`,
			checkResponseGzipped: true,
		},
		{
			name:                 "no compression when client doesn't accept gzip",
			acceptEncoding:       "",
			requestBody:          nil,
			expectedStatus:       http.StatusOK,
			expectedResponseBody: `{"result":"hello-world"}`,
			checkResponseGzipped: false,
		},
		{
			name:                 "accept-encoding with multiple values including gzip",
			acceptEncoding:       "deflate, gzip, br",
			requestBody:          nil,
			expectedStatus:       http.StatusOK,
			expectedResponseBody: `{"result":"hello-world"}`,
			checkResponseGzipped: true,
		},
		{
			name:                 "accept-encoding with gzip and quality values",
			acceptEncoding:       "gzip;q=1.0, identity;q=0.5",
			requestBody:          nil,
			expectedStatus:       http.StatusOK,
			expectedResponseBody: `{"result":"hello-world"}`,
			checkResponseGzipped: true,
		},
		{
			name:                "decompress gzipped request body",
			acceptEncoding:      "",
			contentEncoding:     "gzip",
			requestBody:         []byte(`{"title":"Hello World"}`),
			compressRequestBody: true,
			expectedStatus:      http.StatusOK,
			checkRequestDecoded: true,
		},
		{
			name:                 "decompress request and compress response",
			acceptEncoding:       "gzip",
			contentEncoding:      "gzip",
			requestBody:          []byte(`{"title":"Hello World"}`),
			compressRequestBody:  true,
			expectedStatus:       http.StatusOK,
			expectedResponseBody: `Processed: {"title":"Hello World"}`,
			checkResponseGzipped: true,
			checkRequestDecoded:  true,
		},
		{
			name:                "invalid gzip request body",
			acceptEncoding:      "",
			contentEncoding:     "gzip",
			requestBody:         []byte("not gzipped data"),
			compressRequestBody: false,
			expectedStatus:      http.StatusBadRequest,
		},
		{
			name:                 "large envelope payload compression",
			acceptEncoding:       "gzip",
			requestBody:          nil,
			expectedStatus:       http.StatusOK,
			expectedResponseBody: `{"payload":[` + strings.Repeat("120,34,56,", 1000) + `7]}`,
			checkResponseGzipped: true,
		},
		{
			name:                "content-encoding with multiple values including gzip",
			acceptEncoding:      "",
			contentEncoding:     "gzip, deflate",
			requestBody:         []byte(`{"title":"Hello World"}`),
			compressRequestBody: true,
			expectedStatus:      http.StatusOK,
			checkRequestDecoded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.checkRequestDecoded && r.Body != nil {
					// read and verify decompressed request body
					body, err := io.ReadAll(r.Body)
					require.NoError(t, err, "failed to read request body")
					assert.Equal(t, string(tt.requestBody), string(body), "request body should be decompressed")

					// Content-Encoding header must be removed
					assert.Empty(t, r.Header.Get("Content-Encoding"), "Content-Encoding should be removed")
				}

				w.WriteHeader(tt.expectedStatus)
				if tt.expectedResponseBody != "" {
					if tt.checkRequestDecoded {
						w.Write([]byte("Processed: " + string(tt.requestBody)))
					} else {
						w.Write([]byte(tt.expectedResponseBody))
					}
				}
			})

			middleware := withGZip(nextHandler)

			var requestBody io.Reader
			if tt.requestBody != nil {
				if tt.compressRequestBody {
					var buf bytes.Buffer
					gzipWriter := gzip.NewWriter(&buf)
					_, err := gzipWriter.Write(tt.requestBody)
					require.NoError(t, err)
					err = gzipWriter.Close()
					require.NoError(t, err)
					requestBody = &buf
				} else {
					requestBody = bytes.NewReader(tt.requestBody)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/test", requestBody)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code, "unexpected status code")

			if tt.checkResponseGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"), "Content-Encoding should be gzip")

				gzipReader, err := gzip.NewReader(rr.Body)
				require.NoError(t, err, "failed to create gzip reader")
				defer gzipReader.Close()

				decompressed, err := io.ReadAll(gzipReader)
				require.NoError(t, err, "failed to decompress response")

				assert.Equal(t, tt.expectedResponseBody, string(decompressed), "decompressed response should match")
			} else if tt.expectedResponseBody != "" && tt.expectedStatus == http.StatusOK {
				assert.NotEqual(t, "gzip", rr.Header().Get("Content-Encoding"), "Content-Encoding should not be gzip")
				assert.Equal(t, tt.expectedResponseBody, rr.Body.String(), "response body should not be compressed")
			}
		})
	}
}

func TestGZip_InvalidRequestBodyWritesJSONError(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run for an invalid gzip body")
	})

	middleware := withGZip(nextHandler)

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("not gzipped"))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"invalid gzip payload"}`, rr.Body.String())
}

func TestGZip_CompressionRatio(t *testing.T) {
	// envelope payloads are repetitive integer arrays, the main reason the
	// API compresses at all
	payload := `{"payload":[` + strings.Repeat("12,340,56,", 2000) + `7]}`
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(payload))
	})

	middleware := withGZip(nextHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(payload)/10, "compressed size should be much smaller than original")
}

func TestGZip_MultipleRequests(t *testing.T) {
	// pool reuse across sequential requests
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Response"))
	})

	middleware := withGZip(nextHandler)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"), "request %d missing gzip encoding", i)

		gzipReader, err := gzip.NewReader(rr.Body)
		require.NoError(t, err, "request %d: failed to create gzip reader", i)

		decompressed, err := io.ReadAll(gzipReader)
		require.NoError(t, err, "request %d: failed to decompress", i)
		gzipReader.Close()

		assert.Equal(t, "Response", string(decompressed), "request %d: wrong response", i)
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	// thread safety of pool usage
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Concurrent response"))
	})

	middleware := withGZip(nextHandler)

	const numGoroutines = 50
	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			gzipReader, err := gzip.NewReader(rr.Body)
			if err == nil {
				io.ReadAll(gzipReader)
				gzipReader.Close()
			}

			done <- true
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		<-done
	}
}

func TestGZip_RequestBodyPoolReuse(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})

	middleware := withGZip(nextHandler)

	for i := 0; i < 5; i++ {
		var buf bytes.Buffer
		gzipWriter := gzip.NewWriter(&buf)
		testData := []byte("Test data " + string(rune('0'+i)))
		gzipWriter.Write(testData)
		gzipWriter.Close()

		req := httptest.NewRequest(http.MethodPost, "/test", &buf)
		req.Header.Set("Content-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, string(testData), rr.Body.String(), "request %d: wrong body", i)
	}
}

func TestGZipResponseWriter_WriteHeader(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("Created"))
	})

	middleware := withGZip(nextHandler)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestGZip_EmptyResponse(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	middleware := withGZip(nextHandler)

	req := httptest.NewRequest(http.MethodDelete, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closeCalled := false
	onClose := func() {
		closeCalled = true
	}

	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: onClose,
	}

	err := wrapped.Close()
	assert.NoError(t, err)
	assert.True(t, closeCalled, "OnClose should be called")
}

func TestWrappedReadCloser_CloseWithoutCallback(t *testing.T) {
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: nil,
	}

	err := wrapped.Close()
	assert.NoError(t, err, "Close should not fail when OnClose is nil")
}
