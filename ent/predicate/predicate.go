// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionExecutionLog is the predicate function for actionexecutionlog builders.
type ActionExecutionLog func(*sql.Selector)

// ApplicationPipelineState is the predicate function for applicationpipelinestate builders.
type ApplicationPipelineState func(*sql.Selector)

// ApplicationSignal is the predicate function for applicationsignal builders.
type ApplicationSignal func(*sql.Selector)

// ApplicationStageHistory is the predicate function for applicationstagehistory builders.
type ApplicationStageHistory func(*sql.Selector)

// EvaluationInstance is the predicate function for evaluationinstance builders.
type EvaluationInstance func(*sql.Selector)

// EvaluationParticipant is the predicate function for evaluationparticipant builders.
type EvaluationParticipant func(*sql.Selector)

// EvaluationResponse is the predicate function for evaluationresponse builders.
type EvaluationResponse func(*sql.Selector)

// EvaluationTemplate is the predicate function for evaluationtemplate builders.
type EvaluationTemplate func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Pipeline is the predicate function for pipeline builders.
type Pipeline func(*sql.Selector)

// PipelineStage is the predicate function for pipelinestage builders.
type PipelineStage func(*sql.Selector)

// RoleCapability is the predicate function for rolecapability builders.
type RoleCapability func(*sql.Selector)

// StageEvaluation is the predicate function for stageevaluation builders.
type StageEvaluation func(*sql.Selector)

// StageFeedback is the predicate function for stagefeedback builders.
type StageFeedback func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// TenantApplicationStatus is the predicate function for tenantapplicationstatus builders.
type TenantApplicationStatus func(*sql.Selector)

// TenantStageAction is the predicate function for tenantstageaction builders.
type TenantStageAction func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
