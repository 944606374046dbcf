//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"dryclean-api/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse decodes into target only for 2xx responses; target may be nil.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, rec.Code, "body: %s", rec.Body.String()) {
		return
	}
	if target == nil || wantStatus < 200 || wantStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "body: %s", rec.Body.String())
}

// AssertErrorResponse matches wantMsg as a substring of the error message; "" skips the check.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, rec.Code, "body: %s", rec.Body.String())

	var resp httperr.Response
	if !assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String()) {
		return
	}
	if wantMsg != "" {
		assert.Contains(t, resp.Error.Message, wantMsg)
	}
}
