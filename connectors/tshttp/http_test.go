package tshttp

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(logs *bytes.Buffer) http.Handler {
	logger := zerolog.New(logs)
	return NewHandler(Logger(&logger))
}

func post(t *testing.T, handler http.Handler, contentType string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/timestamps/decode", bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestDecodeEndpointAcceptsUTCTimestamps(t *testing.T) {
	var logs bytes.Buffer
	rec := post(t, newTestHandler(&logs), "application/json; charset=utf-8", `{"timestamp":"2016-10-02T07:31:51Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var response decodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "2016-10-02T07:31:51Z", response.Timestamp.String())
	assert.Equal(t, int64(1475393511), response.Unix)
	assert.Equal(t, int64(1475393511000000000), response.UnixNano)
	assert.Contains(t, logs.String(), `"uri":"/timestamps/decode"`)
}

func TestDecodeEndpointRejectsInvalidTimestamps(t *testing.T) {
	tests := map[string]string{
		"offset":      `{"timestamp":"2016-10-02T07:31:51-08:00"}`,
		"zero offset": `{"timestamp":"2016-10-02T07:31:51+00:00"}`,
		"garbage":     `{"timestamp":"not-a-timestamp"}`,
		"empty":       `{"timestamp":""}`,
		"number":      `{"timestamp":1475393511}`,
		"missing":     `{}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var logs bytes.Buffer
			rec := post(t, newTestHandler(&logs), "application/json", body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var response errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "invalid_timestamp", response.Error)
			assert.Contains(t, response.Message, "invalid timestamp")
			assert.Contains(t, logs.String(), "rejected timestamp")
		})
	}
}

func TestDecodeEndpointRejectsBadRequests(t *testing.T) {
	var logs bytes.Buffer
	handler := newTestHandler(&logs)

	rec := post(t, handler, "text/plain", `{"timestamp":"2016-10-02T07:31:51Z"}`)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = post(t, handler, "", `{"timestamp":"2016-10-02T07:31:51Z"}`)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = post(t, handler, "application/json", `{"timestamp":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()
	newTestHandler(&logs).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
