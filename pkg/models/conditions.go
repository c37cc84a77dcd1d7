package models

import (
	"fmt"
	"strings"
)

// ConditionLogic combines the results of a signal gate's conditions.
type ConditionLogic string

const (
	LogicAll ConditionLogic = "ALL"
	LogicAny ConditionLogic = "ANY"
)

// IsValid checks if the logic is a known value.
func (l ConditionLogic) IsValid() bool {
	return l == LogicAll || l == LogicAny
}

// Operator is a comparison operator inside a signal condition.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
)

// IsValid checks if the operator is a known value.
func (o Operator) IsValid() bool {
	switch o {
	case OpEqual, OpNotEqual, OpGreater, OpGreaterEqual, OpLess, OpLessEqual:
		return true
	default:
		return false
	}
}

// IsOrdering reports whether the operator requires an ordered value type.
func (o Operator) IsOrdering() bool {
	switch o {
	case OpGreater, OpGreaterEqual, OpLess, OpLessEqual:
		return true
	default:
		return false
	}
}

// OnMissing chooses how the gate treats a condition whose signal has no
// current value. Unknown tokens degrade to BLOCK at evaluation time.
type OnMissing string

const (
	MissingBlock OnMissing = "BLOCK"
	MissingAllow OnMissing = "ALLOW"
	MissingWarn  OnMissing = "WARN"
)

// IsValid checks if the on-missing policy is a known value.
func (m OnMissing) IsValid() bool {
	return m == MissingBlock || m == MissingAllow || m == MissingWarn
}

// SignalCondition is one predicate of a signal gate: compare the current
// value of a signal against a stringified literal.
type SignalCondition struct {
	Signal    string    `json:"signal"`
	Operator  Operator  `json:"operator"`
	Value     string    `json:"value"`
	OnMissing OnMissing `json:"on_missing"`
}

// SignalConditions is the optional gate attached to a stage action.
type SignalConditions struct {
	Logic      ConditionLogic    `json:"logic"`
	Conditions []SignalCondition `json:"conditions"`
}

// Validate checks structural validity of a gate definition. OnMissing is
// intentionally not rejected here: unknown tokens are treated as BLOCK at
// evaluation time so that stored configuration never becomes unreadable.
func (sc *SignalConditions) Validate() error {
	if !sc.Logic.IsValid() {
		return fmt.Errorf("invalid logic %q: must be ALL or ANY", sc.Logic)
	}
	if len(sc.Conditions) == 0 {
		return fmt.Errorf("conditions must not be empty")
	}
	for i, c := range sc.Conditions {
		if strings.TrimSpace(c.Signal) == "" {
			return fmt.Errorf("condition %d: signal is required", i)
		}
		if !c.Operator.IsValid() {
			return fmt.Errorf("condition %d: invalid operator %q", i, c.Operator)
		}
		if c.Value == "" {
			return fmt.Errorf("condition %d: value is required", i)
		}
	}
	return nil
}

// ConditionResult is the per-condition trace recorded in the execution log.
// Actual is nil when the signal had no current value at decision time.
type ConditionResult struct {
	Signal    string `json:"signal"`
	Operator  string `json:"operator"`
	Expected  string `json:"expected"`
	Actual    any    `json:"actual"`
	OnMissing string `json:"on_missing"`
	Met       bool   `json:"met"`
	Reason    string `json:"reason,omitempty"`
	Warning   bool   `json:"warning,omitempty"`
}

// Condition trace reasons for missing signals.
const (
	ReasonSignalMissing      = "SIGNAL_MISSING"
	ReasonMissingAllowed     = "MISSING_ALLOWED"
	ReasonMissingWithWarning = "MISSING_WITH_WARNING"
)

// Describe formats the condition result for failure messages, e.g.
// "SCORE >= 3 (actual: 2)".
func (r ConditionResult) Describe() string {
	actual := "missing"
	if r.Actual != nil {
		actual = fmt.Sprintf("%v", r.Actual)
	}
	return fmt.Sprintf("%s %s %s (actual: %s)", r.Signal, r.Operator, r.Expected, actual)
}

// DescribeFailures joins the descriptions of every unmet condition,
// preserving gate order.
func DescribeFailures(results []ConditionResult) string {
	var parts []string
	for _, r := range results {
		if !r.Met {
			parts = append(parts, r.Describe())
		}
	}
	return strings.Join(parts, "; ")
}
