package testsupport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest captures one request received by the fake recognizer.
type RecordedRequest struct {
	Header http.Header
	Body   []byte
}

// FakeRecognizer is an httptest-backed stand-in for the recognition endpoint.
// It always answers HTTP 200; the application outcome travels in the
// X-Api-Status-Code response header, matching the real service's protocol.
type FakeRecognizer struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest

	StatusCode string
	Message    string
	Body       string
}

// NewFakeRecognizer starts a fake endpoint returning the given status header
// and body. The caller owns shutdown via Close.
func NewFakeRecognizer(statusCode, body string) *FakeRecognizer {
	f := &FakeRecognizer{StatusCode: statusCode, Body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{Header: r.Header.Clone(), Body: payload})
		f.mu.Unlock()

		w.Header().Set("X-Api-Status-Code", f.StatusCode)
		if f.Message != "" {
			w.Header().Set("X-Api-Message", f.Message)
		}
		w.Header().Set("X-Tt-Logid", "fake-log-id")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, f.Body)
	}))
	return f
}

// URL returns the fake endpoint address.
func (f *FakeRecognizer) URL() string {
	return f.Server.URL
}

// Requests returns a copy of everything received so far.
func (f *FakeRecognizer) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Close shuts the server down.
func (f *FakeRecognizer) Close() {
	f.Server.Close()
}
