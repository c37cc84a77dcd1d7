package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ameyzing09/rtr-api-sub000/pkg/database"
	"github.com/ameyzing09/rtr-api-sub000/pkg/services"
)

// Server wires the service layer to the HTTP surface. Handlers are thin:
// bind, call one service operation, map the error.
type Server struct {
	db          *database.Client
	tenants     *services.TenantService
	statuses    *services.StatusService
	caps        *services.CapabilityService
	signals     *services.SignalService
	evaluations *services.EvaluationService
	actions     *services.ActionService
	pipelines   *services.PipelineService
	decisionLog *services.DecisionLogService
}

// Services bundles the service-layer dependencies of the server.
type Services struct {
	Tenants     *services.TenantService
	Statuses    *services.StatusService
	Caps        *services.CapabilityService
	Signals     *services.SignalService
	Evaluations *services.EvaluationService
	Actions     *services.ActionService
	Pipelines   *services.PipelineService
	DecisionLog *services.DecisionLogService
}

// NewServer creates a new API server.
func NewServer(db *database.Client, svcs Services) *Server {
	return &Server{
		db:          db,
		tenants:     svcs.Tenants,
		statuses:    svcs.Statuses,
		caps:        svcs.Caps,
		signals:     svcs.Signals,
		evaluations: svcs.Evaluations,
		actions:     svcs.Actions,
		pipelines:   svcs.Pipelines,
		decisionLog: svcs.DecisionLog,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/healthz", s.Healthz)

	v1 := r.Group("/api/v1")

	// Tenant provisioning is the bootstrap call: there is no identity to
	// assert before the first tenant exists.
	v1.POST("/tenants", s.CreateTenant)

	authed := v1.Group("", requireIdentity())
	{
		authed.POST("/users", s.CreateUser)
		authed.DELETE("/users/:id", s.DeactivateUser)

		authed.GET("/statuses", s.ListStatuses)
		authed.POST("/statuses", s.CreateStatus)
		authed.PATCH("/statuses/:code", s.UpdateStatusCatalog)
		authed.DELETE("/statuses/:code", s.DeactivateStatus)

		authed.GET("/roles/:role/capabilities", s.ListRoleCapabilities)
		authed.POST("/roles/:role/capabilities", s.GrantCapability)
		authed.DELETE("/roles/:role/capabilities/:capability", s.RevokeCapability)

		authed.GET("/stages/:id/actions", s.ListStageActions)
		authed.POST("/stages/:id/actions", s.DefineStageAction)
		authed.DELETE("/stages/:id/actions/:code", s.DeactivateStageAction)
		authed.POST("/stages/:id/evaluation-templates", s.BindStageTemplate)
		authed.DELETE("/stages/:id/evaluation-templates/:templateID", s.UnbindStageTemplate)

		authed.POST("/applications/:id/pipeline", s.AttachApplication)
		authed.GET("/applications/:id/state", s.GetApplicationState)
		authed.GET("/applications/:id/history", s.ListApplicationHistory)
		authed.POST("/applications/:id/actions", s.ExecuteAction)
		authed.POST("/applications/:id/stage-moves", s.MoveStage)
		authed.POST("/applications/:id/status", s.UpdateStatus)
		authed.POST("/applications/:id/feedback", s.SubmitStageFeedback)
		authed.PUT("/applications/:id/signals/:key", s.SetManualSignal)
		authed.GET("/applications/:id/signals", s.ListSignals)
		authed.GET("/applications/:id/signals/:key/history", s.SignalHistory)
		authed.GET("/applications/:id/evaluations", s.ListApplicationEvaluations)
		authed.GET("/applications/:id/decision-log", s.ListDecisionLog)
		authed.GET("/applications/:id/decision-log/:logID", s.GetDecisionLogEntry)
		authed.GET("/applications/:id/rejection-reason", s.GetRejectionReason)

		authed.GET("/evaluation-templates", s.ListTemplates)
		authed.POST("/evaluation-templates", s.CreateTemplate)
		authed.PUT("/evaluation-templates/:id", s.UpdateTemplate)
		authed.DELETE("/evaluation-templates/:id", s.DeactivateTemplate)

		authed.POST("/evaluations", s.CreateEvaluation)
		authed.GET("/evaluations/:id", s.GetEvaluation)
		authed.POST("/evaluations/:id/participants", s.AddParticipant)
		authed.DELETE("/evaluations/:id/participants/:userID", s.RemoveParticipant)
		authed.POST("/evaluations/:id/decline", s.DeclineParticipation)
		authed.POST("/evaluations/:id/responses", s.SubmitResponse)
		authed.POST("/evaluations/:id/complete", s.CompleteEvaluation)
		authed.POST("/evaluations/:id/cancel", s.CancelEvaluation)
	}

	return r
}
