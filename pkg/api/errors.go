package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ameyzing09/rtr-api-sub000/pkg/services"
)

// respondError maps service-layer errors to HTTP responses. TENANT_MISMATCH
// deliberately answers 404: another tenant's applications must be
// indistinguishable from absent ones.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		slog.Error("Unexpected service error",
			"path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := httpStatus(svcErr.Code)
	if status == http.StatusInternalServerError {
		slog.Error("Unclassified service error",
			"path", c.FullPath(), "code", svcErr.Code, "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	body := gin.H{
		"code":  string(svcErr.Code),
		"error": svcErr.Message,
	}
	if len(svcErr.Details) > 0 {
		body["details"] = svcErr.Details
	}
	c.JSON(status, body)
}

func httpStatus(code services.Code) int {
	switch code {
	case services.CodeValidation:
		return http.StatusBadRequest
	case services.CodeForbidden:
		return http.StatusForbidden
	case services.CodeNotFound, services.CodeTenantMismatch:
		return http.StatusNotFound
	case services.CodeConflict:
		return http.StatusConflict
	case services.CodeInvalidAction,
		services.CodeTerminalStatus,
		services.CodeFeedbackRequired,
		services.CodeSignalsNotMet,
		services.CodeEvaluationIncomplete,
		services.CodeInvalidStatus:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
