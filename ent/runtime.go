// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationsignal"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationparticipant"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationtemplate"
	"github.com/ameyzing09/rtr-api-sub000/ent/event"
	"github.com/ameyzing09/rtr-api-sub000/ent/job"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipeline"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipelinestage"
	"github.com/ameyzing09/rtr-api-sub000/ent/rolecapability"
	"github.com/ameyzing09/rtr-api-sub000/ent/schema"
	"github.com/ameyzing09/rtr-api-sub000/ent/stageevaluation"
	"github.com/ameyzing09/rtr-api-sub000/ent/stagefeedback"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenant"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantstageaction"
	"github.com/ameyzing09/rtr-api-sub000/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionexecutionlogFields := schema.ActionExecutionLog{}.Fields()
	_ = actionexecutionlogFields
	// actionexecutionlogDescExecutedAt is the schema descriptor for executed_at field.
	actionexecutionlogDescExecutedAt := actionexecutionlogFields[17].Descriptor()
	// actionexecutionlog.DefaultExecutedAt holds the default value on creation for the executed_at field.
	actionexecutionlog.DefaultExecutedAt = actionexecutionlogDescExecutedAt.Default.(func() time.Time)
	applicationpipelinestateFields := schema.ApplicationPipelineState{}.Fields()
	_ = applicationpipelinestateFields
	// applicationpipelinestateDescIsTerminal is the schema descriptor for is_terminal field.
	applicationpipelinestateDescIsTerminal := applicationpipelinestateFields[8].Descriptor()
	// applicationpipelinestate.DefaultIsTerminal holds the default value on creation for the is_terminal field.
	applicationpipelinestate.DefaultIsTerminal = applicationpipelinestateDescIsTerminal.Default.(bool)
	// applicationpipelinestateDescEnteredStageAt is the schema descriptor for entered_stage_at field.
	applicationpipelinestateDescEnteredStageAt := applicationpipelinestateFields[9].Descriptor()
	// applicationpipelinestate.DefaultEnteredStageAt holds the default value on creation for the entered_stage_at field.
	applicationpipelinestate.DefaultEnteredStageAt = applicationpipelinestateDescEnteredStageAt.Default.(func() time.Time)
	// applicationpipelinestateDescCreatedAt is the schema descriptor for created_at field.
	applicationpipelinestateDescCreatedAt := applicationpipelinestateFields[10].Descriptor()
	// applicationpipelinestate.DefaultCreatedAt holds the default value on creation for the created_at field.
	applicationpipelinestate.DefaultCreatedAt = applicationpipelinestateDescCreatedAt.Default.(func() time.Time)
	// applicationpipelinestateDescUpdatedAt is the schema descriptor for updated_at field.
	applicationpipelinestateDescUpdatedAt := applicationpipelinestateFields[11].Descriptor()
	// applicationpipelinestate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	applicationpipelinestate.DefaultUpdatedAt = applicationpipelinestateDescUpdatedAt.Default.(func() time.Time)
	// applicationpipelinestate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	applicationpipelinestate.UpdateDefaultUpdatedAt = applicationpipelinestateDescUpdatedAt.UpdateDefault.(func() time.Time)
	applicationsignalFields := schema.ApplicationSignal{}.Fields()
	_ = applicationsignalFields
	// applicationsignalDescSetAt is the schema descriptor for set_at field.
	applicationsignalDescSetAt := applicationsignalFields[12].Descriptor()
	// applicationsignal.DefaultSetAt holds the default value on creation for the set_at field.
	applicationsignal.DefaultSetAt = applicationsignalDescSetAt.Default.(func() time.Time)
	applicationstagehistoryFields := schema.ApplicationStageHistory{}.Fields()
	_ = applicationstagehistoryFields
	// applicationstagehistoryDescCreatedAt is the schema descriptor for created_at field.
	applicationstagehistoryDescCreatedAt := applicationstagehistoryFields[11].Descriptor()
	// applicationstagehistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	applicationstagehistory.DefaultCreatedAt = applicationstagehistoryDescCreatedAt.Default.(func() time.Time)
	evaluationinstanceFields := schema.EvaluationInstance{}.Fields()
	_ = evaluationinstanceFields
	// evaluationinstanceDescForceCompleted is the schema descriptor for force_completed field.
	evaluationinstanceDescForceCompleted := evaluationinstanceFields[7].Descriptor()
	// evaluationinstance.DefaultForceCompleted holds the default value on creation for the force_completed field.
	evaluationinstance.DefaultForceCompleted = evaluationinstanceDescForceCompleted.Default.(bool)
	// evaluationinstanceDescCreatedAt is the schema descriptor for created_at field.
	evaluationinstanceDescCreatedAt := evaluationinstanceFields[13].Descriptor()
	// evaluationinstance.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationinstance.DefaultCreatedAt = evaluationinstanceDescCreatedAt.Default.(func() time.Time)
	// evaluationinstanceDescUpdatedAt is the schema descriptor for updated_at field.
	evaluationinstanceDescUpdatedAt := evaluationinstanceFields[14].Descriptor()
	// evaluationinstance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	evaluationinstance.DefaultUpdatedAt = evaluationinstanceDescUpdatedAt.Default.(func() time.Time)
	// evaluationinstance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	evaluationinstance.UpdateDefaultUpdatedAt = evaluationinstanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	evaluationparticipantFields := schema.EvaluationParticipant{}.Fields()
	_ = evaluationparticipantFields
	// evaluationparticipantDescSequence is the schema descriptor for sequence field.
	evaluationparticipantDescSequence := evaluationparticipantFields[4].Descriptor()
	// evaluationparticipant.DefaultSequence holds the default value on creation for the sequence field.
	evaluationparticipant.DefaultSequence = evaluationparticipantDescSequence.Default.(int)
	// evaluationparticipantDescCreatedAt is the schema descriptor for created_at field.
	evaluationparticipantDescCreatedAt := evaluationparticipantFields[5].Descriptor()
	// evaluationparticipant.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationparticipant.DefaultCreatedAt = evaluationparticipantDescCreatedAt.Default.(func() time.Time)
	// evaluationparticipantDescUpdatedAt is the schema descriptor for updated_at field.
	evaluationparticipantDescUpdatedAt := evaluationparticipantFields[6].Descriptor()
	// evaluationparticipant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	evaluationparticipant.DefaultUpdatedAt = evaluationparticipantDescUpdatedAt.Default.(func() time.Time)
	// evaluationparticipant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	evaluationparticipant.UpdateDefaultUpdatedAt = evaluationparticipantDescUpdatedAt.UpdateDefault.(func() time.Time)
	evaluationresponseFields := schema.EvaluationResponse{}.Fields()
	_ = evaluationresponseFields
	// evaluationresponseDescSubmittedAt is the schema descriptor for submitted_at field.
	evaluationresponseDescSubmittedAt := evaluationresponseFields[5].Descriptor()
	// evaluationresponse.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	evaluationresponse.DefaultSubmittedAt = evaluationresponseDescSubmittedAt.Default.(func() time.Time)
	evaluationtemplateFields := schema.EvaluationTemplate{}.Fields()
	_ = evaluationtemplateFields
	// evaluationtemplateDescVersion is the schema descriptor for version field.
	evaluationtemplateDescVersion := evaluationtemplateFields[7].Descriptor()
	// evaluationtemplate.DefaultVersion holds the default value on creation for the version field.
	evaluationtemplate.DefaultVersion = evaluationtemplateDescVersion.Default.(int)
	// evaluationtemplateDescIsLatest is the schema descriptor for is_latest field.
	evaluationtemplateDescIsLatest := evaluationtemplateFields[8].Descriptor()
	// evaluationtemplate.DefaultIsLatest holds the default value on creation for the is_latest field.
	evaluationtemplate.DefaultIsLatest = evaluationtemplateDescIsLatest.Default.(bool)
	// evaluationtemplateDescIsActive is the schema descriptor for is_active field.
	evaluationtemplateDescIsActive := evaluationtemplateFields[9].Descriptor()
	// evaluationtemplate.DefaultIsActive holds the default value on creation for the is_active field.
	evaluationtemplate.DefaultIsActive = evaluationtemplateDescIsActive.Default.(bool)
	// evaluationtemplateDescCreatedAt is the schema descriptor for created_at field.
	evaluationtemplateDescCreatedAt := evaluationtemplateFields[10].Descriptor()
	// evaluationtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationtemplate.DefaultCreatedAt = evaluationtemplateDescCreatedAt.Default.(func() time.Time)
	// evaluationtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	evaluationtemplateDescUpdatedAt := evaluationtemplateFields[11].Descriptor()
	// evaluationtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	evaluationtemplate.DefaultUpdatedAt = evaluationtemplateDescUpdatedAt.Default.(func() time.Time)
	// evaluationtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	evaluationtemplate.UpdateDefaultUpdatedAt = evaluationtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[2].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[4].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	pipelineFields := schema.Pipeline{}.Fields()
	_ = pipelineFields
	// pipelineDescIsActive is the schema descriptor for is_active field.
	pipelineDescIsActive := pipelineFields[3].Descriptor()
	// pipeline.DefaultIsActive holds the default value on creation for the is_active field.
	pipeline.DefaultIsActive = pipelineDescIsActive.Default.(bool)
	// pipelineDescCreatedAt is the schema descriptor for created_at field.
	pipelineDescCreatedAt := pipelineFields[4].Descriptor()
	// pipeline.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipeline.DefaultCreatedAt = pipelineDescCreatedAt.Default.(func() time.Time)
	pipelinestageFields := schema.PipelineStage{}.Fields()
	_ = pipelinestageFields
	// pipelinestageDescCreatedAt is the schema descriptor for created_at field.
	pipelinestageDescCreatedAt := pipelinestageFields[6].Descriptor()
	// pipelinestage.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinestage.DefaultCreatedAt = pipelinestageDescCreatedAt.Default.(func() time.Time)
	rolecapabilityFields := schema.RoleCapability{}.Fields()
	_ = rolecapabilityFields
	// rolecapabilityDescCreatedAt is the schema descriptor for created_at field.
	rolecapabilityDescCreatedAt := rolecapabilityFields[4].Descriptor()
	// rolecapability.DefaultCreatedAt holds the default value on creation for the created_at field.
	rolecapability.DefaultCreatedAt = rolecapabilityDescCreatedAt.Default.(func() time.Time)
	stageevaluationFields := schema.StageEvaluation{}.Fields()
	_ = stageevaluationFields
	// stageevaluationDescAutoCreate is the schema descriptor for auto_create field.
	stageevaluationDescAutoCreate := stageevaluationFields[4].Descriptor()
	// stageevaluation.DefaultAutoCreate holds the default value on creation for the auto_create field.
	stageevaluation.DefaultAutoCreate = stageevaluationDescAutoCreate.Default.(bool)
	// stageevaluationDescIsActive is the schema descriptor for is_active field.
	stageevaluationDescIsActive := stageevaluationFields[5].Descriptor()
	// stageevaluation.DefaultIsActive holds the default value on creation for the is_active field.
	stageevaluation.DefaultIsActive = stageevaluationDescIsActive.Default.(bool)
	// stageevaluationDescCreatedAt is the schema descriptor for created_at field.
	stageevaluationDescCreatedAt := stageevaluationFields[6].Descriptor()
	// stageevaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	stageevaluation.DefaultCreatedAt = stageevaluationDescCreatedAt.Default.(func() time.Time)
	stagefeedbackFields := schema.StageFeedback{}.Fields()
	_ = stagefeedbackFields
	// stagefeedbackDescCreatedAt is the schema descriptor for created_at field.
	stagefeedbackDescCreatedAt := stagefeedbackFields[7].Descriptor()
	// stagefeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagefeedback.DefaultCreatedAt = stagefeedbackDescCreatedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[3].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	tenantapplicationstatusFields := schema.TenantApplicationStatus{}.Fields()
	_ = tenantapplicationstatusFields
	// tenantapplicationstatusDescIsActive is the schema descriptor for is_active field.
	tenantapplicationstatusDescIsActive := tenantapplicationstatusFields[6].Descriptor()
	// tenantapplicationstatus.DefaultIsActive holds the default value on creation for the is_active field.
	tenantapplicationstatus.DefaultIsActive = tenantapplicationstatusDescIsActive.Default.(bool)
	// tenantapplicationstatusDescSortOrder is the schema descriptor for sort_order field.
	tenantapplicationstatusDescSortOrder := tenantapplicationstatusFields[7].Descriptor()
	// tenantapplicationstatus.DefaultSortOrder holds the default value on creation for the sort_order field.
	tenantapplicationstatus.DefaultSortOrder = tenantapplicationstatusDescSortOrder.Default.(int)
	// tenantapplicationstatusDescCreatedAt is the schema descriptor for created_at field.
	tenantapplicationstatusDescCreatedAt := tenantapplicationstatusFields[9].Descriptor()
	// tenantapplicationstatus.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenantapplicationstatus.DefaultCreatedAt = tenantapplicationstatusDescCreatedAt.Default.(func() time.Time)
	// tenantapplicationstatusDescUpdatedAt is the schema descriptor for updated_at field.
	tenantapplicationstatusDescUpdatedAt := tenantapplicationstatusFields[10].Descriptor()
	// tenantapplicationstatus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantapplicationstatus.DefaultUpdatedAt = tenantapplicationstatusDescUpdatedAt.Default.(func() time.Time)
	// tenantapplicationstatus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantapplicationstatus.UpdateDefaultUpdatedAt = tenantapplicationstatusDescUpdatedAt.UpdateDefault.(func() time.Time)
	tenantstageactionFields := schema.TenantStageAction{}.Fields()
	_ = tenantstageactionFields
	// tenantstageactionDescMovesToNextStage is the schema descriptor for moves_to_next_stage field.
	tenantstageactionDescMovesToNextStage := tenantstageactionFields[6].Descriptor()
	// tenantstageaction.DefaultMovesToNextStage holds the default value on creation for the moves_to_next_stage field.
	tenantstageaction.DefaultMovesToNextStage = tenantstageactionDescMovesToNextStage.Default.(bool)
	// tenantstageactionDescIsTerminal is the schema descriptor for is_terminal field.
	tenantstageactionDescIsTerminal := tenantstageactionFields[7].Descriptor()
	// tenantstageaction.DefaultIsTerminal holds the default value on creation for the is_terminal field.
	tenantstageaction.DefaultIsTerminal = tenantstageactionDescIsTerminal.Default.(bool)
	// tenantstageactionDescRequiresFeedback is the schema descriptor for requires_feedback field.
	tenantstageactionDescRequiresFeedback := tenantstageactionFields[9].Descriptor()
	// tenantstageaction.DefaultRequiresFeedback holds the default value on creation for the requires_feedback field.
	tenantstageaction.DefaultRequiresFeedback = tenantstageactionDescRequiresFeedback.Default.(bool)
	// tenantstageactionDescRequiresNotes is the schema descriptor for requires_notes field.
	tenantstageactionDescRequiresNotes := tenantstageactionFields[10].Descriptor()
	// tenantstageaction.DefaultRequiresNotes holds the default value on creation for the requires_notes field.
	tenantstageaction.DefaultRequiresNotes = tenantstageactionDescRequiresNotes.Default.(bool)
	// tenantstageactionDescIsActive is the schema descriptor for is_active field.
	tenantstageactionDescIsActive := tenantstageactionFields[12].Descriptor()
	// tenantstageaction.DefaultIsActive holds the default value on creation for the is_active field.
	tenantstageaction.DefaultIsActive = tenantstageactionDescIsActive.Default.(bool)
	// tenantstageactionDescCreatedAt is the schema descriptor for created_at field.
	tenantstageactionDescCreatedAt := tenantstageactionFields[13].Descriptor()
	// tenantstageaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenantstageaction.DefaultCreatedAt = tenantstageactionDescCreatedAt.Default.(func() time.Time)
	// tenantstageactionDescUpdatedAt is the schema descriptor for updated_at field.
	tenantstageactionDescUpdatedAt := tenantstageactionFields[14].Descriptor()
	// tenantstageaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenantstageaction.DefaultUpdatedAt = tenantstageactionDescUpdatedAt.Default.(func() time.Time)
	// tenantstageaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenantstageaction.UpdateDefaultUpdatedAt = tenantstageactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[5].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
