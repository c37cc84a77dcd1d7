package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// AttachApplication handles POST /api/v1/applications/:id/pipeline.
func (s *Server) AttachApplication(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.AttachApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.ApplicationID = c.Param("id")

	state, err := s.pipelines.AttachApplicationToPipeline(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// GetApplicationState handles GET /api/v1/applications/:id/state.
func (s *Server) GetApplicationState(c *gin.Context) {
	tenantID, _ := identity(c)

	state, err := s.actions.GetState(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ListApplicationHistory handles GET /api/v1/applications/:id/history.
func (s *Server) ListApplicationHistory(c *gin.Context) {
	tenantID, _ := identity(c)

	history, err := s.pipelines.ListHistory(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// ExecuteAction handles POST /api/v1/applications/:id/actions.
func (s *Server) ExecuteAction(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.ExecuteActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.ApplicationID = c.Param("id")

	state, err := s.actions.ExecuteAction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// MoveStage handles POST /api/v1/applications/:id/stage-moves.
func (s *Server) MoveStage(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.ApplicationID = c.Param("id")

	state, err := s.pipelines.MoveStage(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateStatus handles POST /api/v1/applications/:id/status.
func (s *Server) UpdateStatus(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.ApplicationID = c.Param("id")

	state, err := s.pipelines.UpdateStatus(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitStageFeedback handles POST /api/v1/applications/:id/feedback.
func (s *Server) SubmitStageFeedback(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.SubmitStageFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.ApplicationID = c.Param("id")

	fb, err := s.pipelines.SubmitStageFeedback(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// SetManualSignal handles PUT /api/v1/applications/:id/signals/:key.
func (s *Server) SetManualSignal(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.SetManualSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.ApplicationID = c.Param("id")
	req.Key = c.Param("key")

	sig, err := s.signals.SetManualSignal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sig)
}

// ListSignals handles GET /api/v1/applications/:id/signals.
func (s *Server) ListSignals(c *gin.Context) {
	tenantID, _ := identity(c)

	signals, err := s.signals.Latest(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, signals)
}

// SignalHistory handles GET /api/v1/applications/:id/signals/:key/history.
func (s *Server) SignalHistory(c *gin.Context) {
	tenantID, _ := identity(c)

	history, err := s.signals.History(c.Request.Context(), tenantID, c.Param("id"), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// ListApplicationEvaluations handles GET /api/v1/applications/:id/evaluations.
func (s *Server) ListApplicationEvaluations(c *gin.Context) {
	tenantID, _ := identity(c)

	evals, err := s.evaluations.ListForApplication(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evals)
}

// ListDecisionLog handles GET /api/v1/applications/:id/decision-log.
func (s *Server) ListDecisionLog(c *gin.Context) {
	tenantID, userID := identity(c)

	var filters models.DecisionLogFilters
	if v := c.Query("outcome_type"); v != "" {
		outcome := models.OutcomeType(v)
		filters.OutcomeType = &outcome
	}
	filters.ActionCode = c.Query("action_code")
	filters.Limit = queryInt(c, "limit")
	filters.Offset = queryInt(c, "offset")

	list, err := s.decisionLog.List(c.Request.Context(), tenantID, userID, c.Param("id"), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetDecisionLogEntry handles GET /api/v1/applications/:id/decision-log/:logID.
func (s *Server) GetDecisionLogEntry(c *gin.Context) {
	tenantID, userID := identity(c)

	entry, err := s.decisionLog.Get(c.Request.Context(), tenantID, userID, c.Param("id"), c.Param("logID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetRejectionReason handles GET /api/v1/applications/:id/rejection-reason.
func (s *Server) GetRejectionReason(c *gin.Context) {
	tenantID, userID := identity(c)

	reason, err := s.decisionLog.GetRejectionReason(c.Request.Context(), tenantID, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if reason == nil {
		c.JSON(http.StatusOK, gin.H{"rejection_reason": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejection_reason": reason})
}

func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
