package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ameyzing09/rtr-api-sub000/ent"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

func boolSignal(key string, v bool) *ent.ApplicationSignal {
	return &ent.ApplicationSignal{
		SignalKey:    key,
		SignalType:   models.SignalBoolean,
		ValueBoolean: &v,
	}
}

func numericSignal(key string, t models.SignalType, v float64) *ent.ApplicationSignal {
	return &ent.ApplicationSignal{
		SignalKey:    key,
		SignalType:   t,
		ValueNumeric: &v,
	}
}

func textSignal(key, v string) *ent.ApplicationSignal {
	return &ent.ApplicationSignal{
		SignalKey:  key,
		SignalType: models.SignalText,
		ValueText:  &v,
	}
}

func TestEvaluateCondition_Numeric(t *testing.T) {
	tests := []struct {
		name     string
		operator models.Operator
		expected string
		actual   float64
		met      bool
	}{
		{"greater met", models.OpGreater, "3", 4, true},
		{"greater boundary", models.OpGreater, "3", 3, false},
		{"greater equal boundary", models.OpGreaterEqual, "3", 3, true},
		{"less met", models.OpLess, "3", 2, true},
		{"less equal boundary", models.OpLessEqual, "3", 3, true},
		{"equal met", models.OpEqual, "3", 3, true},
		{"not equal met", models.OpNotEqual, "3", 2, true},
		{"equal unmet", models.OpEqual, "3", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := models.SignalCondition{
				Signal:    "SCORE",
				Operator:  tt.operator,
				Value:     tt.expected,
				OnMissing: models.MissingBlock,
			}
			result := evaluateCondition(cond, numericSignal("SCORE", models.SignalInteger, tt.actual))
			assert.Equal(t, tt.met, result.Met)
			assert.Equal(t, tt.actual, result.Actual)
		})
	}
}

func TestEvaluateCondition_Boolean(t *testing.T) {
	cond := models.SignalCondition{
		Signal:    "BACKGROUND_OK",
		Operator:  models.OpEqual,
		Value:     "true",
		OnMissing: models.MissingBlock,
	}

	assert.True(t, evaluateCondition(cond, boolSignal("BACKGROUND_OK", true)).Met)
	assert.False(t, evaluateCondition(cond, boolSignal("BACKGROUND_OK", false)).Met)

	t.Run("ordering operator on boolean fails closed", func(t *testing.T) {
		cond := models.SignalCondition{
			Signal:    "BACKGROUND_OK",
			Operator:  models.OpGreater,
			Value:     "true",
			OnMissing: models.MissingBlock,
		}
		assert.False(t, evaluateCondition(cond, boolSignal("BACKGROUND_OK", true)).Met)
	})

	t.Run("unparseable expected literal fails closed", func(t *testing.T) {
		cond := models.SignalCondition{
			Signal:    "BACKGROUND_OK",
			Operator:  models.OpEqual,
			Value:     "yes-ish",
			OnMissing: models.MissingBlock,
		}
		assert.False(t, evaluateCondition(cond, boolSignal("BACKGROUND_OK", true)).Met)
	})
}

func TestEvaluateCondition_Text(t *testing.T) {
	cond := models.SignalCondition{
		Signal:    "VISA",
		Operator:  models.OpEqual,
		Value:     "H1B",
		OnMissing: models.MissingBlock,
	}
	assert.True(t, evaluateCondition(cond, textSignal("VISA", "H1B")).Met)
	assert.False(t, evaluateCondition(cond, textSignal("VISA", "L1")).Met)

	t.Run("ordering operator on text fails closed", func(t *testing.T) {
		cond := models.SignalCondition{
			Signal:    "VISA",
			Operator:  models.OpGreaterEqual,
			Value:     "H1B",
			OnMissing: models.MissingBlock,
		}
		assert.False(t, evaluateCondition(cond, textSignal("VISA", "H1B")).Met)
	})
}

func TestEvaluateCondition_Missing(t *testing.T) {
	base := models.SignalCondition{
		Signal:   "SCORE",
		Operator: models.OpGreaterEqual,
		Value:    "3",
	}

	t.Run("BLOCK fails the condition", func(t *testing.T) {
		cond := base
		cond.OnMissing = models.MissingBlock
		result := evaluateCondition(cond, nil)
		assert.False(t, result.Met)
		assert.Equal(t, models.ReasonSignalMissing, result.Reason)
		assert.Nil(t, result.Actual)
	})

	t.Run("ALLOW passes the condition", func(t *testing.T) {
		cond := base
		cond.OnMissing = models.MissingAllow
		result := evaluateCondition(cond, nil)
		assert.True(t, result.Met)
		assert.Equal(t, models.ReasonMissingAllowed, result.Reason)
	})

	t.Run("WARN passes with warning flag", func(t *testing.T) {
		cond := base
		cond.OnMissing = models.MissingWarn
		result := evaluateCondition(cond, nil)
		assert.True(t, result.Met)
		assert.True(t, result.Warning)
		assert.Equal(t, models.ReasonMissingWithWarning, result.Reason)
	})

	t.Run("unknown token degrades to BLOCK", func(t *testing.T) {
		cond := base
		cond.OnMissing = models.OnMissing("SHRUG")
		result := evaluateCondition(cond, nil)
		assert.False(t, result.Met)
		assert.Equal(t, models.ReasonSignalMissing, result.Reason)
	})
}

func TestEvaluateGate(t *testing.T) {
	gate := &models.SignalConditions{
		Logic: models.LogicAll,
		Conditions: []models.SignalCondition{
			{Signal: "SCORE", Operator: models.OpGreaterEqual, Value: "3", OnMissing: models.MissingBlock},
			{Signal: "BACKGROUND_OK", Operator: models.OpEqual, Value: "true", OnMissing: models.MissingWarn},
		},
	}

	t.Run("ALL requires every condition", func(t *testing.T) {
		current := map[string]*ent.ApplicationSignal{
			"SCORE":         numericSignal("SCORE", models.SignalInteger, 4),
			"BACKGROUND_OK": boolSignal("BACKGROUND_OK", true),
		}
		eval := evaluateGate(gate, current)
		assert.True(t, eval.Met(models.LogicAll))
		assert.False(t, eval.RequiresWarnNote)
		assert.Len(t, eval.Results, 2)
	})

	t.Run("ALL fails on one miss", func(t *testing.T) {
		current := map[string]*ent.ApplicationSignal{
			"SCORE":         numericSignal("SCORE", models.SignalInteger, 2),
			"BACKGROUND_OK": boolSignal("BACKGROUND_OK", true),
		}
		eval := evaluateGate(gate, current)
		assert.False(t, eval.Met(models.LogicAll))
	})

	t.Run("ANY passes on one hit", func(t *testing.T) {
		current := map[string]*ent.ApplicationSignal{
			"SCORE":         numericSignal("SCORE", models.SignalInteger, 2),
			"BACKGROUND_OK": boolSignal("BACKGROUND_OK", true),
		}
		eval := evaluateGate(gate, current)
		assert.True(t, eval.Met(models.LogicAny))
	})

	t.Run("WARN missing sets note requirement but still passes", func(t *testing.T) {
		current := map[string]*ent.ApplicationSignal{
			"SCORE": numericSignal("SCORE", models.SignalInteger, 4),
		}
		eval := evaluateGate(gate, current)
		assert.True(t, eval.Met(models.LogicAll))
		assert.True(t, eval.RequiresWarnNote)
	})

	t.Run("unknown logic fails closed like ALL", func(t *testing.T) {
		current := map[string]*ent.ApplicationSignal{
			"SCORE": numericSignal("SCORE", models.SignalInteger, 2),
		}
		eval := evaluateGate(gate, current)
		assert.False(t, eval.Met(models.ConditionLogic("MOST")))
	})
}

func TestDescribeFailures(t *testing.T) {
	results := []models.ConditionResult{
		{Signal: "SCORE", Operator: ">=", Expected: "3", Actual: 2.0, Met: false},
		{Signal: "BACKGROUND_OK", Operator: "=", Expected: "true", Met: true},
		{Signal: "VISA", Operator: "=", Expected: "H1B", Met: false},
	}
	msg := models.DescribeFailures(results)
	assert.Equal(t, "SCORE >= 3 (actual: 2); VISA = H1B (actual: missing)", msg)
}
