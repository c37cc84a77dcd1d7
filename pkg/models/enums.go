// Package models defines the request/response types, JSON-embedded value
// types, and closed enumerations shared by the engine services and the
// persistence layer. It deliberately has no dependency on the generated
// ent packages so that ent schemas can reference these types directly.
package models

// OutcomeType is the high-level outcome family of an application.
type OutcomeType string

const (
	OutcomeActive  OutcomeType = "ACTIVE"
	OutcomeHold    OutcomeType = "HOLD"
	OutcomeSuccess OutcomeType = "SUCCESS"
	OutcomeFailure OutcomeType = "FAILURE"
	OutcomeNeutral OutcomeType = "NEUTRAL"
)

// Values implements entgo.io field.EnumValues.
func (OutcomeType) Values() []string {
	return []string{
		string(OutcomeActive),
		string(OutcomeHold),
		string(OutcomeSuccess),
		string(OutcomeFailure),
		string(OutcomeNeutral),
	}
}

// IsValid checks if the outcome type is a known value.
func (o OutcomeType) IsValid() bool {
	switch o {
	case OutcomeActive, OutcomeHold, OutcomeSuccess, OutcomeFailure, OutcomeNeutral:
		return true
	default:
		return false
	}
}

// SignalType is the value type of an application signal.
type SignalType string

const (
	SignalBoolean SignalType = "boolean"
	SignalInteger SignalType = "integer"
	SignalFloat   SignalType = "float"
	SignalText    SignalType = "text"
)

// Values implements entgo.io field.EnumValues.
func (SignalType) Values() []string {
	return []string{
		string(SignalBoolean),
		string(SignalInteger),
		string(SignalFloat),
		string(SignalText),
	}
}

// IsValid checks if the signal type is a known value.
func (t SignalType) IsValid() bool {
	switch t {
	case SignalBoolean, SignalInteger, SignalFloat, SignalText:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether values of this type live in the numeric column.
func (t SignalType) IsNumeric() bool {
	return t == SignalInteger || t == SignalFloat
}

// SignalSource identifies which subsystem produced a signal version.
type SignalSource string

const (
	SourceEvaluation SignalSource = "EVALUATION"
	SourceManual     SignalSource = "MANUAL"
	SourceSystem     SignalSource = "SYSTEM"
	SourceInterview  SignalSource = "INTERVIEW"
)

// Values implements entgo.io field.EnumValues.
func (SignalSource) Values() []string {
	return []string{
		string(SourceEvaluation),
		string(SourceManual),
		string(SourceSystem),
		string(SourceInterview),
	}
}

// IsValid checks if the source is a known value.
func (s SignalSource) IsValid() bool {
	switch s {
	case SourceEvaluation, SourceManual, SourceSystem, SourceInterview:
		return true
	default:
		return false
	}
}

// StageType classifies a pipeline stage.
type StageType string

const (
	StageScreening   StageType = "screening"
	StageInterview   StageType = "interview"
	StageDecision    StageType = "decision"
	StageOutcome     StageType = "outcome"
	StageReview      StageType = "review"
	StageFinalReview StageType = "final_review"
)

// Values implements entgo.io field.EnumValues.
func (StageType) Values() []string {
	return []string{
		string(StageScreening),
		string(StageInterview),
		string(StageDecision),
		string(StageOutcome),
		string(StageReview),
		string(StageFinalReview),
	}
}

// IsValid checks if the stage type is a known value.
func (t StageType) IsValid() bool {
	switch t {
	case StageScreening, StageInterview, StageDecision, StageOutcome, StageReview, StageFinalReview:
		return true
	default:
		return false
	}
}

// Role is a tenant-scoped user role. Capabilities are granted per
// (tenant, role); see RoleCapability.
type Role string

const (
	RoleOwner         Role = "owner"
	RoleAdmin         Role = "admin"
	RoleHiringManager Role = "hiring_manager"
	RoleRecruiter     Role = "recruiter"
	RoleInterviewer   Role = "interviewer"
)

// Values implements entgo.io field.EnumValues.
func (Role) Values() []string {
	return []string{
		string(RoleOwner),
		string(RoleAdmin),
		string(RoleHiringManager),
		string(RoleRecruiter),
		string(RoleInterviewer),
	}
}

// IsValid checks if the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleHiringManager, RoleRecruiter, RoleInterviewer:
		return true
	default:
		return false
	}
}

// ParticipantType determines how many reviewers an evaluation expects
// and what completion requires.
type ParticipantType string

const (
	ParticipantSingle     ParticipantType = "SINGLE"
	ParticipantPanel      ParticipantType = "PANEL"
	ParticipantSequential ParticipantType = "SEQUENTIAL"
)

// Values implements entgo.io field.EnumValues.
func (ParticipantType) Values() []string {
	return []string{
		string(ParticipantSingle),
		string(ParticipantPanel),
		string(ParticipantSequential),
	}
}

// IsValid checks if the participant type is a known value.
func (p ParticipantType) IsValid() bool {
	switch p {
	case ParticipantSingle, ParticipantPanel, ParticipantSequential:
		return true
	default:
		return false
	}
}

// EvaluationStatus is the lifecycle state of an evaluation instance.
type EvaluationStatus string

const (
	EvaluationPending    EvaluationStatus = "PENDING"
	EvaluationInProgress EvaluationStatus = "IN_PROGRESS"
	EvaluationCompleted  EvaluationStatus = "COMPLETED"
	EvaluationCancelled  EvaluationStatus = "CANCELLED"
)

// Values implements entgo.io field.EnumValues.
func (EvaluationStatus) Values() []string {
	return []string{
		string(EvaluationPending),
		string(EvaluationInProgress),
		string(EvaluationCompleted),
		string(EvaluationCancelled),
	}
}

// IsOpen reports whether the instance still accepts submissions.
func (s EvaluationStatus) IsOpen() bool {
	return s == EvaluationPending || s == EvaluationInProgress
}

// ParticipantStatus is the lifecycle state of an evaluation participant.
type ParticipantStatus string

const (
	ParticipantPending   ParticipantStatus = "PENDING"
	ParticipantSubmitted ParticipantStatus = "SUBMITTED"
	ParticipantDeclined  ParticipantStatus = "DECLINED"
)

// Values implements entgo.io field.EnumValues.
func (ParticipantStatus) Values() []string {
	return []string{
		string(ParticipantPending),
		string(ParticipantSubmitted),
		string(ParticipantDeclined),
	}
}

// Aggregation is the reduction rule that turns multiple participant
// responses into a single signal value.
type Aggregation string

const (
	AggregationMajority  Aggregation = "MAJORITY"
	AggregationUnanimous Aggregation = "UNANIMOUS"
	AggregationAny       Aggregation = "ANY"
	AggregationAverage   Aggregation = "AVERAGE"
)

// Values implements entgo.io field.EnumValues.
func (Aggregation) Values() []string {
	return []string{
		string(AggregationMajority),
		string(AggregationUnanimous),
		string(AggregationAny),
		string(AggregationAverage),
	}
}

// IsValid checks if the aggregation is a known value.
func (a Aggregation) IsValid() bool {
	switch a {
	case AggregationMajority, AggregationUnanimous, AggregationAny, AggregationAverage:
		return true
	default:
		return false
	}
}

// Capability tokens seeded for every tenant. Stage actions reference these
// by name in required_capability; custom tokens are allowed as long as a
// role holds them.
const (
	CapabilityAdvanceStage         = "ADVANCE_STAGE"
	CapabilityTerminateApplication = "TERMINATE_APPLICATION"
	CapabilityChangeStatus         = "CHANGE_STATUS"
	CapabilityProvideFeedback      = "PROVIDE_FEEDBACK"
	CapabilityViewTracking         = "VIEW_TRACKING"
	CapabilityManageSettings       = "MANAGE_SETTINGS"
	CapabilityOverrideFlow         = "OVERRIDE_FLOW"

	// CapabilityFeedbackAll is the wildcard over the feedback namespace,
	// e.g. feedback:manage, feedback:approve.
	CapabilityFeedbackAll    = "feedback:*"
	CapabilityFeedbackManage = "feedback:manage"
)
