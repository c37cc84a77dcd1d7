package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/pkg/services"
)

func respondWith(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, err)
	return w
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		code services.Code
		want int
	}{
		{services.CodeValidation, http.StatusBadRequest},
		{services.CodeForbidden, http.StatusForbidden},
		{services.CodeNotFound, http.StatusNotFound},
		{services.CodeTenantMismatch, http.StatusNotFound},
		{services.CodeConflict, http.StatusConflict},
		{services.CodeInvalidAction, http.StatusUnprocessableEntity},
		{services.CodeTerminalStatus, http.StatusUnprocessableEntity},
		{services.CodeFeedbackRequired, http.StatusUnprocessableEntity},
		{services.CodeSignalsNotMet, http.StatusUnprocessableEntity},
		{services.CodeEvaluationIncomplete, http.StatusUnprocessableEntity},
		{services.CodeInvalidStatus, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			w := respondWith(t, services.NewError(tt.code, "nope"))
			assert.Equal(t, tt.want, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, string(tt.code), body["code"])
			assert.Equal(t, "nope", body["error"])
		})
	}
}

func TestRespondError_Details(t *testing.T) {
	err := services.NewError(services.CodeSignalsNotMet, "decision gate not met").
		WithDetails(map[string]any{"conditions": []string{"SCORE >= 3 (actual: 2)"}})
	w := respondWith(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "details")
}

func TestRespondError_Unclassified(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		w := respondWith(t, errors.New("connection refused"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})

	t.Run("unknown code", func(t *testing.T) {
		w := respondWith(t, services.NewError(services.Code("MYSTERY"), "secret detail"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// The message must not leak.
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}
