package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// CreateTenant handles POST /api/v1/tenants.
func (s *Server) CreateTenant(c *gin.Context) {
	var req models.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, owner, err := s.tenants.CreateTenant(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"tenant": tenant,
		"owner":  owner,
	})
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID

	u, err := s.tenants.CreateUser(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// DeactivateUser handles DELETE /api/v1/users/:id.
func (s *Server) DeactivateUser(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.tenants.DeactivateUser(c.Request.Context(), tenantID, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(c *gin.Context) {
	tenantID, _ := identity(c)

	statuses, err := s.statuses.List(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// CreateStatus handles POST /api/v1/statuses.
func (s *Server) CreateStatus(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID

	st, err := s.statuses.CreateStatus(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// UpdateStatusCatalog handles PATCH /api/v1/statuses/:code.
func (s *Server) UpdateStatusCatalog(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.UpdateStatusCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.StatusCode = c.Param("code")

	st, err := s.statuses.UpdateStatusCatalog(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DeactivateStatus handles DELETE /api/v1/statuses/:code.
func (s *Server) DeactivateStatus(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.statuses.DeactivateStatus(c.Request.Context(), tenantID, userID, c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRoleCapabilities handles GET /api/v1/roles/:role/capabilities.
func (s *Server) ListRoleCapabilities(c *gin.Context) {
	tenantID, _ := identity(c)

	caps, err := s.caps.ListForRole(c.Request.Context(), tenantID, models.Role(c.Param("role")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"capabilities": caps})
}

// GrantCapability handles POST /api/v1/roles/:role/capabilities.
func (s *Server) GrantCapability(c *gin.Context) {
	tenantID, userID := identity(c)

	var req struct {
		Capability string `json:"capability"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.caps.Grant(c.Request.Context(), tenantID, userID, models.Role(c.Param("role")), req.Capability); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// RevokeCapability handles DELETE /api/v1/roles/:role/capabilities/:capability.
func (s *Server) RevokeCapability(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.caps.Revoke(c.Request.Context(), tenantID, userID, models.Role(c.Param("role")), c.Param("capability")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListStageActions handles GET /api/v1/stages/:id/actions.
func (s *Server) ListStageActions(c *gin.Context) {
	tenantID, _ := identity(c)

	actions, err := s.actions.ListStageActions(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}

// DefineStageAction handles POST /api/v1/stages/:id/actions.
func (s *Server) DefineStageAction(c *gin.Context) {
	tenantID, userID := identity(c)

	var req models.DefineStageActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.TenantID = tenantID
	req.UserID = userID
	req.StageID = c.Param("id")

	action, err := s.actions.DefineStageAction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, action)
}

// DeactivateStageAction handles DELETE /api/v1/stages/:id/actions/:code.
func (s *Server) DeactivateStageAction(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.actions.DeactivateStageAction(c.Request.Context(), tenantID, userID, c.Param("id"), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BindStageTemplate handles POST /api/v1/stages/:id/evaluation-templates.
func (s *Server) BindStageTemplate(c *gin.Context) {
	tenantID, userID := identity(c)

	var req struct {
		TemplateID string `json:"template_id"`
		AutoCreate *bool  `json:"auto_create,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	autoCreate := true
	if req.AutoCreate != nil {
		autoCreate = *req.AutoCreate
	}

	binding, err := s.evaluations.BindStageTemplate(c.Request.Context(), tenantID, userID, c.Param("id"), req.TemplateID, autoCreate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, binding)
}

// UnbindStageTemplate handles DELETE /api/v1/stages/:id/evaluation-templates/:templateID.
func (s *Server) UnbindStageTemplate(c *gin.Context) {
	tenantID, userID := identity(c)

	if err := s.evaluations.UnbindStageTemplate(c.Request.Context(), tenantID, userID, c.Param("id"), c.Param("templateID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
