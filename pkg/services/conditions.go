package services

import (
	"log/slog"
	"strconv"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// gateEvaluation is the outcome of running a signal gate against the latest
// signal view: the per-condition trace recorded in the execution log plus
// the flags the action engine acts on.
type gateEvaluation struct {
	Results []models.ConditionResult

	// RequiresWarnNote is set when any condition passed via the WARN
	// missing-signal policy; the decision then demands a non-blank note.
	RequiresWarnNote bool
}

// Met applies the gate's combining logic over the per-condition results.
func (g gateEvaluation) Met(logic models.ConditionLogic) bool {
	if logic == models.LogicAny {
		for _, r := range g.Results {
			if r.Met {
				return true
			}
		}
		return false
	}
	// ALL, and any unknown logic token, fails closed on the first miss.
	for _, r := range g.Results {
		if !r.Met {
			return false
		}
	}
	return true
}

// evaluateGate runs every condition of a signal gate against the current
// signal view (keyed by signal key).
func evaluateGate(gate *models.SignalConditions, current map[string]*ent.ApplicationSignal) gateEvaluation {
	eval := gateEvaluation{Results: make([]models.ConditionResult, 0, len(gate.Conditions))}
	for _, cond := range gate.Conditions {
		result := evaluateCondition(cond, current[cond.Signal])
		if result.Warning {
			eval.RequiresWarnNote = true
		}
		eval.Results = append(eval.Results, result)
	}
	return eval
}

// evaluateCondition evaluates one condition against the signal's current
// row, or against its absence per the condition's on_missing policy.
func evaluateCondition(cond models.SignalCondition, sig *ent.ApplicationSignal) models.ConditionResult {
	result := models.ConditionResult{
		Signal:    cond.Signal,
		Operator:  string(cond.Operator),
		Expected:  cond.Value,
		OnMissing: string(cond.OnMissing),
	}

	if sig == nil {
		switch cond.OnMissing {
		case models.MissingAllow:
			result.Met = true
			result.Reason = models.ReasonMissingAllowed
		case models.MissingWarn:
			result.Met = true
			result.Reason = models.ReasonMissingWithWarning
			result.Warning = true
		default:
			// BLOCK, and any unknown token, fails the condition.
			result.Met = false
			result.Reason = models.ReasonSignalMissing
		}
		return result
	}

	result.Actual = signalValue(sig)
	result.Met = compareSignal(cond, sig)
	return result
}

// compareSignal is the type-strict comparison core. Operators are limited
// per value type; any other pairing, and any unparseable expected literal,
// fails closed.
func compareSignal(cond models.SignalCondition, sig *ent.ApplicationSignal) bool {
	switch sig.SignalType {
	case models.SignalBoolean:
		if sig.ValueBoolean == nil {
			return false
		}
		expected, err := strconv.ParseBool(cond.Value)
		if err != nil {
			slog.Warn("Signal condition failed closed: expected value is not a boolean",
				"signal", cond.Signal, "expected", cond.Value)
			return false
		}
		switch cond.Operator {
		case models.OpEqual:
			return *sig.ValueBoolean == expected
		case models.OpNotEqual:
			return *sig.ValueBoolean != expected
		default:
			slog.Warn("Signal condition failed closed: operator not valid for boolean",
				"signal", cond.Signal, "operator", cond.Operator)
			return false
		}

	case models.SignalInteger, models.SignalFloat:
		if sig.ValueNumeric == nil {
			return false
		}
		expected, err := strconv.ParseFloat(cond.Value, 64)
		if err != nil {
			slog.Warn("Signal condition failed closed: expected value is not numeric",
				"signal", cond.Signal, "expected", cond.Value)
			return false
		}
		actual := *sig.ValueNumeric
		switch cond.Operator {
		case models.OpEqual:
			return actual == expected
		case models.OpNotEqual:
			return actual != expected
		case models.OpGreater:
			return actual > expected
		case models.OpGreaterEqual:
			return actual >= expected
		case models.OpLess:
			return actual < expected
		case models.OpLessEqual:
			return actual <= expected
		default:
			slog.Warn("Signal condition failed closed: unknown operator",
				"signal", cond.Signal, "operator", cond.Operator)
			return false
		}

	case models.SignalText:
		if sig.ValueText == nil {
			return false
		}
		switch cond.Operator {
		case models.OpEqual:
			return *sig.ValueText == cond.Value
		case models.OpNotEqual:
			return *sig.ValueText != cond.Value
		default:
			slog.Warn("Signal condition failed closed: operator not valid for text",
				"signal", cond.Signal, "operator", cond.Operator)
			return false
		}

	default:
		slog.Warn("Signal condition failed closed: unknown signal type",
			"signal", cond.Signal, "signal_type", sig.SignalType)
		return false
	}
}
