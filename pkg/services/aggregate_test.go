package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

func aggPtr(a models.Aggregation) *models.Aggregation { return &a }

func TestReduceBool(t *testing.T) {
	tests := []struct {
		name   string
		agg    models.Aggregation
		values []bool
		want   bool
	}{
		{"majority clear win", models.AggregationMajority, []bool{true, true, false}, true},
		{"majority clear loss", models.AggregationMajority, []bool{true, false, false}, false},
		{"majority tie breaks false", models.AggregationMajority, []bool{true, false}, false},
		{"majority single true", models.AggregationMajority, []bool{true}, true},
		{"unanimous all true", models.AggregationUnanimous, []bool{true, true, true}, true},
		{"unanimous one false", models.AggregationUnanimous, []bool{true, false, true}, false},
		{"any one true", models.AggregationAny, []bool{false, true, false}, true},
		{"any all false", models.AggregationAny, []bool{false, false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reduceBool(tt.agg, tt.values))
		})
	}
}

func TestAggregateResponses(t *testing.T) {
	t.Run("average on integer field keeps exact mean", func(t *testing.T) {
		schema := []models.SignalField{
			{Key: "TECH_SCORE", Type: models.SignalInteger, Aggregation: aggPtr(models.AggregationAverage)},
		}
		responses := []map[string]any{
			{"TECH_SCORE": float64(3)},
			{"TECH_SCORE": float64(4)},
		}
		out := aggregateResponses(schema, nil, responses)
		require.Len(t, out, 1)
		assert.Equal(t, "TECH_SCORE", out[0].Key)
		assert.Equal(t, models.SignalInteger, out[0].Value.Type)
		require.NotNil(t, out[0].Value.Numeric)
		assert.Equal(t, 3.5, *out[0].Value.Numeric)
	})

	t.Run("average skips absent and nil values", func(t *testing.T) {
		schema := []models.SignalField{
			{Key: "TECH_SCORE", Type: models.SignalInteger, Aggregation: aggPtr(models.AggregationAverage)},
		}
		responses := []map[string]any{
			{"TECH_SCORE": float64(5)},
			{"TECH_SCORE": nil},
			{"TECH_SCORE": float64(3)},
		}
		out := aggregateResponses(schema, nil, responses)
		require.Len(t, out, 1)
		require.NotNil(t, out[0].Value.Numeric)
		assert.Equal(t, 4.0, *out[0].Value.Numeric)
	})

	t.Run("field aggregation overrides template default", func(t *testing.T) {
		schema := []models.SignalField{
			{Key: "RECOMMEND", Type: models.SignalBoolean, Aggregation: aggPtr(models.AggregationUnanimous)},
			{Key: "FAST_TRACK", Type: models.SignalBoolean},
		}
		responses := []map[string]any{
			{"RECOMMEND": true, "FAST_TRACK": true},
			{"RECOMMEND": false, "FAST_TRACK": false},
			{"RECOMMEND": true, "FAST_TRACK": false},
		}
		out := aggregateResponses(schema, aggPtr(models.AggregationMajority), responses)
		require.Len(t, out, 2)

		// UNANIMOUS from the field definition, not the MAJORITY default.
		assert.Equal(t, "RECOMMEND", out[0].Key)
		require.NotNil(t, out[0].Value.Boolean)
		assert.False(t, *out[0].Value.Boolean)

		// MAJORITY from the default: one of three is not a majority.
		assert.Equal(t, "FAST_TRACK", out[1].Key)
		require.NotNil(t, out[1].Value.Boolean)
		assert.False(t, *out[1].Value.Boolean)
	})

	t.Run("text fields never aggregate", func(t *testing.T) {
		schema := []models.SignalField{
			{Key: "NOTES", Type: models.SignalText},
		}
		responses := []map[string]any{{"NOTES": "great candidate"}}
		assert.Empty(t, aggregateResponses(schema, aggPtr(models.AggregationMajority), responses))
	})

	t.Run("no aggregation configured skips the field", func(t *testing.T) {
		schema := []models.SignalField{
			{Key: "RECOMMEND", Type: models.SignalBoolean},
		}
		responses := []map[string]any{{"RECOMMEND": true}}
		assert.Empty(t, aggregateResponses(schema, nil, responses))
	})

	t.Run("zero contributors skips the field", func(t *testing.T) {
		schema := []models.SignalField{
			{Key: "RECOMMEND", Type: models.SignalBoolean, Aggregation: aggPtr(models.AggregationAny)},
		}
		responses := []map[string]any{
			{"OTHER": true},
			{"RECOMMEND": nil},
			{"RECOMMEND": "not-a-bool"},
		}
		assert.Empty(t, aggregateResponses(schema, nil, responses))
	})

	t.Run("output preserves schema order", func(t *testing.T) {
		schema := []models.SignalField{
			{Key: "B", Type: models.SignalBoolean, Aggregation: aggPtr(models.AggregationAny)},
			{Key: "A", Type: models.SignalFloat, Aggregation: aggPtr(models.AggregationAverage)},
		}
		responses := []map[string]any{{"A": 1.5, "B": true}}
		out := aggregateResponses(schema, nil, responses)
		require.Len(t, out, 2)
		assert.Equal(t, "B", out[0].Key)
		assert.Equal(t, "A", out[1].Key)
		assert.Equal(t, models.SignalFloat, out[1].Value.Type)
	})
}
