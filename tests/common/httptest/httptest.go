//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Identity carries the per-request actor headers.
type Identity struct {
	ActorName   string
	AdminSecret string
}

// PerformRequest executes an HTTP request against the router with optional
// actor identity headers.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, id Identity) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id.ActorName != "" {
		req.Header.Set("X-Actor-Name", id.ActorName)
	}
	if id.AdminSecret != "" {
		req.Header.Set("X-Admin-Secret", id.AdminSecret)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// AssertSuccessResponse checks the status code and decodes the body into out.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, expectCode int, out any) {
	t.Helper()

	require.Equal(t, expectCode, rec.Code, "unexpected status code, body: %s", rec.Body.String())
	if out != nil && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "Failed to decode response body")
	}
}

// AssertErrorResponse checks the status code and that the body carries an
// error message containing want (empty want checks status only).
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectCode int, want string) {
	t.Helper()

	require.Equal(t, expectCode, rec.Code, "unexpected status code, body: %s", rec.Body.String())
	if want != "" {
		require.Contains(t, rec.Body.String(), want)
	}
}
