package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ListTemplates handles GET /api/v1/evaluation-templates.
func (s *Server) ListTemplates(c *gin.Context) {
	tenantID, _ := identity(c)

	templates, err := s.evaluations.ListTemplates(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateTemplate handles POST /api/v1/evaluation-templates.
func (s *Server) CreateTemplate(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID

	tpl, err := s.evaluations.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// UpdateTemplate handles PUT /api/v1/evaluation-templates/:id.
func (s *Server) UpdateTemplate(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.TemplateID = c.Param("id")

	tpl, err := s.evaluations.UpdateTemplate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DeactivateTemplate handles DELETE /api/v1/evaluation-templates/:id.
func (s *Server) DeactivateTemplate(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.evaluations.DeactivateTemplate(c.Request.Context(), tenantID, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateEvaluation handles POST /api/v1/evaluations.
func (s *Server) CreateEvaluation(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.CreateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID

	inst, err := s.evaluations.CreateInstance(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inst)
}

// GetEvaluation handles GET /api/v1/evaluations/:id.
func (s *Server) GetEvaluation(c *gin.Context) {
	tenantID, _ := identity(c)

	inst, err := s.evaluations.GetEvaluation(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inst)
}

// AddParticipant handles POST /api/v1/evaluations/:id/participants.
func (s *Server) AddParticipant(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.EvaluationID = c.Param("id")

	p, err := s.evaluations.AddParticipant(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// RemoveParticipant handles DELETE /api/v1/evaluations/:id/participants/:userID.
func (s *Server) RemoveParticipant(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.evaluations.RemoveParticipant(c.Request.Context(), tenantID, userID, c.Param("id"), c.Param("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeclineParticipation handles POST /api/v1/evaluations/:id/decline.
func (s *Server) DeclineParticipation(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.evaluations.DeclineParticipation(c.Request.Context(), tenantID, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitResponse handles POST /api/v1/evaluations/:id/responses.
func (s *Server) SubmitResponse(c *gin.Context) {
	_, userID := identity(c)

	var req models.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = userID
	req.EvaluationID = c.Param("id")

	resp, err := s.evaluations.SubmitResponse(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CompleteEvaluation handles POST /api/v1/evaluations/:id/complete.
func (s *Server) CompleteEvaluation(c *gin.Context) {
	_, userID := identity(c)

	var req models.CompleteEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = userID
	req.EvaluationID = c.Param("id")

	inst, err := s.evaluations.CompleteEvaluation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inst)
}

// CancelEvaluation handles POST /api/v1/evaluations/:id/cancel.
func (s *Server) CancelEvaluation(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.evaluations.CancelInstance(c.Request.Context(), tenantID, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
