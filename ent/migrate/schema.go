// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionExecutionLogsColumns holds the columns for the "action_execution_logs" table.
	ActionExecutionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString},
		{Name: "action_code", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString, Nullable: true},
		{Name: "from_stage_id", Type: field.TypeString, Nullable: true},
		{Name: "to_stage_id", Type: field.TypeString, Nullable: true},
		{Name: "outcome_type", Type: field.TypeEnum, Enums: []string{"ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL"}},
		{Name: "is_terminal", Type: field.TypeBool},
		{Name: "status_code", Type: field.TypeString},
		{Name: "executed_by", Type: field.TypeString},
		{Name: "decision_note", Type: field.TypeString, Nullable: true},
		{Name: "override_reason", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "signal_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "conditions_evaluated", Type: field.TypeJSON, Nullable: true},
		{Name: "executed_at", Type: field.TypeTime},
	}
	// ActionExecutionLogsTable holds the schema information for the "action_execution_logs" table.
	ActionExecutionLogsTable = &schema.Table{
		Name:       "action_execution_logs",
		Columns:    ActionExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ActionExecutionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionexecutionlog_tenant_id_application_id_executed_at",
				Unique:  false,
				Columns: []*schema.Column{ActionExecutionLogsColumns[1], ActionExecutionLogsColumns[2], ActionExecutionLogsColumns[17]},
			},
			{
				Name:    "actionexecutionlog_tenant_id_outcome_type",
				Unique:  false,
				Columns: []*schema.Column{ActionExecutionLogsColumns[1], ActionExecutionLogsColumns[7]},
			},
			{
				Name:    "actionexecutionlog_application_id_action_code",
				Unique:  false,
				Columns: []*schema.Column{ActionExecutionLogsColumns[2], ActionExecutionLogsColumns[3]},
			},
		},
	}
	// ApplicationPipelineStatesColumns holds the columns for the "application_pipeline_states" table.
	ApplicationPipelineStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
		{Name: "pipeline_id", Type: field.TypeString},
		{Name: "current_stage_id", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeString},
		{Name: "outcome_type", Type: field.TypeEnum, Enums: []string{"ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL"}, Default: "ACTIVE"},
		{Name: "is_terminal", Type: field.TypeBool, Default: false},
		{Name: "entered_stage_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicationPipelineStatesTable holds the schema information for the "application_pipeline_states" table.
	ApplicationPipelineStatesTable = &schema.Table{
		Name:       "application_pipeline_states",
		Columns:    ApplicationPipelineStatesColumns,
		PrimaryKey: []*schema.Column{ApplicationPipelineStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "applicationpipelinestate_application_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationPipelineStatesColumns[2]},
			},
			{
				Name:    "applicationpipelinestate_tenant_id_pipeline_id_current_stage_id",
				Unique:  false,
				Columns: []*schema.Column{ApplicationPipelineStatesColumns[1], ApplicationPipelineStatesColumns[4], ApplicationPipelineStatesColumns[5]},
			},
			{
				Name:    "applicationpipelinestate_tenant_id_status_code",
				Unique:  false,
				Columns: []*schema.Column{ApplicationPipelineStatesColumns[1], ApplicationPipelineStatesColumns[6]},
			},
		},
	}
	// ApplicationSignalsColumns holds the columns for the "application_signals" table.
	ApplicationSignalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString},
		{Name: "signal_key", Type: field.TypeString},
		{Name: "signal_type", Type: field.TypeEnum, Enums: []string{"boolean", "integer", "float", "text"}},
		{Name: "value_boolean", Type: field.TypeBool, Nullable: true},
		{Name: "value_numeric", Type: field.TypeFloat64, Nullable: true},
		{Name: "value_text", Type: field.TypeString, Nullable: true},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"EVALUATION", "MANUAL", "SYSTEM", "INTERVIEW"}},
		{Name: "source_id", Type: field.TypeString, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "set_by", Type: field.TypeString, Nullable: true},
		{Name: "set_at", Type: field.TypeTime},
		{Name: "superseded_at", Type: field.TypeTime, Nullable: true},
		{Name: "superseded_by", Type: field.TypeString, Nullable: true},
	}
	// ApplicationSignalsTable holds the schema information for the "application_signals" table.
	ApplicationSignalsTable = &schema.Table{
		Name:       "application_signals",
		Columns:    ApplicationSignalsColumns,
		PrimaryKey: []*schema.Column{ApplicationSignalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "applicationsignal_application_id_signal_key",
				Unique:  false,
				Columns: []*schema.Column{ApplicationSignalsColumns[2], ApplicationSignalsColumns[3]},
			},
			{
				Name:    "applicationsignal_tenant_id_application_id",
				Unique:  false,
				Columns: []*schema.Column{ApplicationSignalsColumns[1], ApplicationSignalsColumns[2]},
			},
		},
	}
	// ApplicationStageHistoryColumns holds the columns for the "application_stage_history" table.
	ApplicationStageHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString},
		{Name: "action_code", Type: field.TypeString, Nullable: true},
		{Name: "from_stage_id", Type: field.TypeString, Nullable: true},
		{Name: "to_stage_id", Type: field.TypeString},
		{Name: "outcome_type", Type: field.TypeEnum, Enums: []string{"ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL"}},
		{Name: "status_code", Type: field.TypeString},
		{Name: "is_terminal", Type: field.TypeBool},
		{Name: "moved_by", Type: field.TypeString},
		{Name: "event_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ApplicationStageHistoryTable holds the schema information for the "application_stage_history" table.
	ApplicationStageHistoryTable = &schema.Table{
		Name:       "application_stage_history",
		Columns:    ApplicationStageHistoryColumns,
		PrimaryKey: []*schema.Column{ApplicationStageHistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "applicationstagehistory_tenant_id_application_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApplicationStageHistoryColumns[1], ApplicationStageHistoryColumns[2], ApplicationStageHistoryColumns[11]},
			},
			{
				Name:    "applicationstagehistory_application_id_to_stage_id",
				Unique:  false,
				Columns: []*schema.Column{ApplicationStageHistoryColumns[2], ApplicationStageHistoryColumns[5]},
			},
		},
	}
	// EvaluationInstancesColumns holds the columns for the "evaluation_instances" table.
	EvaluationInstancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString, Nullable: true},
		{Name: "template_id", Type: field.TypeString},
		{Name: "template_version", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "IN_PROGRESS", "COMPLETED", "CANCELLED"}, Default: "PENDING"},
		{Name: "force_completed", Type: field.TypeBool, Default: false},
		{Name: "force_note", Type: field.TypeString, Nullable: true},
		{Name: "completed_by", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EvaluationInstancesTable holds the schema information for the "evaluation_instances" table.
	EvaluationInstancesTable = &schema.Table{
		Name:       "evaluation_instances",
		Columns:    EvaluationInstancesColumns,
		PrimaryKey: []*schema.Column{EvaluationInstancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationinstance_tenant_id_application_id_template_id_stage_id",
				Unique:  true,
				Columns: []*schema.Column{EvaluationInstancesColumns[1], EvaluationInstancesColumns[2], EvaluationInstancesColumns[4], EvaluationInstancesColumns[3]},
			},
			{
				Name:    "evaluationinstance_application_id_stage_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationInstancesColumns[2], EvaluationInstancesColumns[3]},
			},
			{
				Name:    "evaluationinstance_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{EvaluationInstancesColumns[1], EvaluationInstancesColumns[6]},
			},
		},
	}
	// EvaluationParticipantsColumns holds the columns for the "evaluation_participants" table.
	EvaluationParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "SUBMITTED", "DECLINED"}, Default: "PENDING"},
		{Name: "sequence", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "evaluation_id", Type: field.TypeString},
	}
	// EvaluationParticipantsTable holds the schema information for the "evaluation_participants" table.
	EvaluationParticipantsTable = &schema.Table{
		Name:       "evaluation_participants",
		Columns:    EvaluationParticipantsColumns,
		PrimaryKey: []*schema.Column{EvaluationParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluation_participants_evaluation_instances_participants",
				Columns:    []*schema.Column{EvaluationParticipantsColumns[6]},
				RefColumns: []*schema.Column{EvaluationInstancesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationparticipant_evaluation_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{EvaluationParticipantsColumns[6], EvaluationParticipantsColumns[1]},
			},
			{
				Name:    "evaluationparticipant_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{EvaluationParticipantsColumns[1], EvaluationParticipantsColumns[2]},
			},
		},
	}
	// EvaluationResponsesColumns holds the columns for the "evaluation_responses" table.
	EvaluationResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "participant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "response_data", Type: field.TypeJSON},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "evaluation_id", Type: field.TypeString},
	}
	// EvaluationResponsesTable holds the schema information for the "evaluation_responses" table.
	EvaluationResponsesTable = &schema.Table{
		Name:       "evaluation_responses",
		Columns:    EvaluationResponsesColumns,
		PrimaryKey: []*schema.Column{EvaluationResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluation_responses_evaluation_instances_responses",
				Columns:    []*schema.Column{EvaluationResponsesColumns[5]},
				RefColumns: []*schema.Column{EvaluationInstancesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationresponse_evaluation_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{EvaluationResponsesColumns[5], EvaluationResponsesColumns[2]},
			},
		},
	}
	// EvaluationTemplatesColumns holds the columns for the "evaluation_templates" table.
	EvaluationTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "participant_type", Type: field.TypeEnum, Enums: []string{"SINGLE", "PANEL", "SEQUENTIAL"}, Default: "SINGLE"},
		{Name: "signal_schema", Type: field.TypeJSON},
		{Name: "default_aggregation", Type: field.TypeEnum, Nullable: true, Enums: []string{"MAJORITY", "UNANIMOUS", "ANY", "AVERAGE"}},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "is_latest", Type: field.TypeBool, Default: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EvaluationTemplatesTable holds the schema information for the "evaluation_templates" table.
	EvaluationTemplatesTable = &schema.Table{
		Name:       "evaluation_templates",
		Columns:    EvaluationTemplatesColumns,
		PrimaryKey: []*schema.Column{EvaluationTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationtemplate_tenant_id_name_version",
				Unique:  true,
				Columns: []*schema.Column{EvaluationTemplatesColumns[1], EvaluationTemplatesColumns[2], EvaluationTemplatesColumns[7]},
			},
			{
				Name:    "evaluationtemplate_tenant_id_is_active_is_latest",
				Unique:  false,
				Columns: []*schema.Column{EvaluationTemplatesColumns[1], EvaluationTemplatesColumns[9], EvaluationTemplatesColumns[8]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
		},
	}
	// PipelinesColumns holds the columns for the "pipelines" table.
	PipelinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PipelinesTable holds the schema information for the "pipelines" table.
	PipelinesTable = &schema.Table{
		Name:       "pipelines",
		Columns:    PipelinesColumns,
		PrimaryKey: []*schema.Column{PipelinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipeline_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{PipelinesColumns[1]},
			},
		},
	}
	// PipelineStagesColumns holds the columns for the "pipeline_stages" table.
	PipelineStagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "stage_type", Type: field.TypeEnum, Enums: []string{"screening", "interview", "decision", "outcome", "review", "final_review"}, Default: "screening"},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "conducted_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pipeline_id", Type: field.TypeString},
	}
	// PipelineStagesTable holds the schema information for the "pipeline_stages" table.
	PipelineStagesTable = &schema.Table{
		Name:       "pipeline_stages",
		Columns:    PipelineStagesColumns,
		PrimaryKey: []*schema.Column{PipelineStagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_stages_pipelines_stages",
				Columns:    []*schema.Column{PipelineStagesColumns[6]},
				RefColumns: []*schema.Column{PipelinesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinestage_pipeline_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{PipelineStagesColumns[6], PipelineStagesColumns[3]},
			},
		},
	}
	// RoleCapabilitiesColumns holds the columns for the "role_capabilities" table.
	RoleCapabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "hiring_manager", "recruiter", "interviewer"}},
		{Name: "capability", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RoleCapabilitiesTable holds the schema information for the "role_capabilities" table.
	RoleCapabilitiesTable = &schema.Table{
		Name:       "role_capabilities",
		Columns:    RoleCapabilitiesColumns,
		PrimaryKey: []*schema.Column{RoleCapabilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rolecapability_tenant_id_role_capability",
				Unique:  true,
				Columns: []*schema.Column{RoleCapabilitiesColumns[1], RoleCapabilitiesColumns[2], RoleCapabilitiesColumns[3]},
			},
			{
				Name:    "rolecapability_tenant_id_role",
				Unique:  false,
				Columns: []*schema.Column{RoleCapabilitiesColumns[1], RoleCapabilitiesColumns[2]},
			},
		},
	}
	// StageEvaluationsColumns holds the columns for the "stage_evaluations" table.
	StageEvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeString},
		{Name: "auto_create", Type: field.TypeBool, Default: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StageEvaluationsTable holds the schema information for the "stage_evaluations" table.
	StageEvaluationsTable = &schema.Table{
		Name:       "stage_evaluations",
		Columns:    StageEvaluationsColumns,
		PrimaryKey: []*schema.Column{StageEvaluationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stageevaluation_tenant_id_stage_id_template_id",
				Unique:  true,
				Columns: []*schema.Column{StageEvaluationsColumns[1], StageEvaluationsColumns[2], StageEvaluationsColumns[3]},
			},
			{
				Name:    "stageevaluation_stage_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{StageEvaluationsColumns[2], StageEvaluationsColumns[5]},
			},
		},
	}
	// StageFeedbackColumns holds the columns for the "stage_feedback" table.
	StageFeedbackColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "comments", Type: field.TypeString, Size: 2147483647},
		{Name: "rating", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StageFeedbackTable holds the schema information for the "stage_feedback" table.
	StageFeedbackTable = &schema.Table{
		Name:       "stage_feedback",
		Columns:    StageFeedbackColumns,
		PrimaryKey: []*schema.Column{StageFeedbackColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagefeedback_application_id_stage_id",
				Unique:  false,
				Columns: []*schema.Column{StageFeedbackColumns[2], StageFeedbackColumns[3]},
			},
			{
				Name:    "stagefeedback_tenant_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{StageFeedbackColumns[1], StageFeedbackColumns[4]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "owner_user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
	}
	// TenantApplicationStatusColumns holds the columns for the "tenant_application_status" table.
	TenantApplicationStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "outcome_type", Type: field.TypeEnum, Enums: []string{"ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL"}},
		{Name: "is_terminal", Type: field.TypeBool},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "action_code", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantApplicationStatusTable holds the schema information for the "tenant_application_status" table.
	TenantApplicationStatusTable = &schema.Table{
		Name:       "tenant_application_status",
		Columns:    TenantApplicationStatusColumns,
		PrimaryKey: []*schema.Column{TenantApplicationStatusColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenantapplicationstatus_tenant_id_status_code",
				Unique:  true,
				Columns: []*schema.Column{TenantApplicationStatusColumns[1], TenantApplicationStatusColumns[2]},
			},
			{
				Name:    "tenantapplicationstatus_tenant_id_outcome_type_sort_order",
				Unique:  false,
				Columns: []*schema.Column{TenantApplicationStatusColumns[1], TenantApplicationStatusColumns[4], TenantApplicationStatusColumns[7]},
			},
		},
	}
	// TenantStageActionsColumns holds the columns for the "tenant_stage_actions" table.
	TenantStageActionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "action_code", Type: field.TypeString},
		{Name: "display_label", Type: field.TypeString, Nullable: true},
		{Name: "outcome_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL"}},
		{Name: "moves_to_next_stage", Type: field.TypeBool, Default: false},
		{Name: "is_terminal", Type: field.TypeBool, Default: false},
		{Name: "required_capability", Type: field.TypeString, Nullable: true},
		{Name: "requires_feedback", Type: field.TypeBool, Default: false},
		{Name: "requires_notes", Type: field.TypeBool, Default: false},
		{Name: "signal_conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantStageActionsTable holds the schema information for the "tenant_stage_actions" table.
	TenantStageActionsTable = &schema.Table{
		Name:       "tenant_stage_actions",
		Columns:    TenantStageActionsColumns,
		PrimaryKey: []*schema.Column{TenantStageActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenantstageaction_tenant_id_stage_id_action_code",
				Unique:  true,
				Columns: []*schema.Column{TenantStageActionsColumns[1], TenantStageActionsColumns[2], TenantStageActionsColumns[3]},
			},
			{
				Name:    "tenantstageaction_tenant_id_stage_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{TenantStageActionsColumns[1], TenantStageActionsColumns[2], TenantStageActionsColumns[12]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "hiring_manager", "recruiter", "interviewer"}, Default: "interviewer"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_tenant_id_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1], UsersColumns[2]},
			},
			{
				Name:    "user_tenant_id_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1], UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionExecutionLogsTable,
		ApplicationPipelineStatesTable,
		ApplicationSignalsTable,
		ApplicationStageHistoryTable,
		EvaluationInstancesTable,
		EvaluationParticipantsTable,
		EvaluationResponsesTable,
		EvaluationTemplatesTable,
		EventsTable,
		JobsTable,
		PipelinesTable,
		PipelineStagesTable,
		RoleCapabilitiesTable,
		StageEvaluationsTable,
		StageFeedbackTable,
		TenantsTable,
		TenantApplicationStatusTable,
		TenantStageActionsTable,
		UsersTable,
	}
)

func init() {
	ApplicationStageHistoryTable.Annotation = &entsql.Annotation{
		Table: "application_stage_history",
	}
	EvaluationParticipantsTable.ForeignKeys[0].RefTable = EvaluationInstancesTable
	EvaluationResponsesTable.ForeignKeys[0].RefTable = EvaluationInstancesTable
	PipelineStagesTable.ForeignKeys[0].RefTable = PipelinesTable
	StageFeedbackTable.Annotation = &entsql.Annotation{
		Table: "stage_feedback",
	}
}
