// Package testkit holds the helpers the HTTP handler tests share: build a
// JSON request, run it through a handler, and assert on the decoded envelope.
package testkit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the JSON response shape every API handler writes.
type Envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// Result captures one handler round trip.
type Result struct {
	Code     int
	Body     []byte
	Envelope Envelope
}

// Do runs a JSON request against h and decodes the response envelope.
// A nil body sends an empty request.
func Do(t *testing.T, h http.Handler, method, path string, body interface{}) *Result {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := &Result{Code: rec.Code, Body: rec.Body.Bytes()}
	if len(res.Body) > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(res.Body, &res.Envelope),
			"response is not a JSON envelope: %s", res.Body)
	}
	return res
}

// DecodeData unmarshals the envelope's data field into dest.
func (r *Result) DecodeData(t *testing.T, dest interface{}) {
	t.Helper()
	require.NotEmpty(t, r.Envelope.Data, "envelope has no data field: %s", r.Body)
	require.NoError(t, json.Unmarshal(r.Envelope.Data, dest))
}

// AssertStatus checks both the HTTP code and the mirrored envelope status.
func (r *Result) AssertStatus(t *testing.T, want int) *Result {
	t.Helper()
	assert.Equal(t, want, r.Code, "HTTP status mismatch\nbody: %s", r.Body)
	if r.Envelope.Status != 0 {
		assert.Equal(t, want, r.Envelope.Status, "envelope status mismatch")
	}
	return r
}

// AssertMessage checks the envelope message.
func (r *Result) AssertMessage(t *testing.T, want string) *Result {
	t.Helper()
	assert.Equal(t, want, r.Envelope.Message)
	return r
}

// AssertFieldError checks that the validation error map flags a field.
func (r *Result) AssertFieldError(t *testing.T, field string) *Result {
	t.Helper()
	assert.Contains(t, r.Envelope.Errors, field, "expected a validation error for %q\nbody: %s", field, r.Body)
	return r
}
