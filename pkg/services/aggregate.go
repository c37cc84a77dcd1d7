package services

import (
	"log/slog"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// aggregatedSignal is one signal value produced by reducing participant
// responses on evaluation completion.
type aggregatedSignal struct {
	Key   string
	Value models.SignalValue
}

// aggregateResponses reduces the submitted responses into one value per
// schema field, in schema order. Fields use their own aggregation or fall
// back to the template default; text fields and fields with no aggregation
// are skipped, as are fields with zero contributing responses.
func aggregateResponses(schema []models.SignalField, defaultAgg *models.Aggregation, responses []map[string]any) []aggregatedSignal {
	var out []aggregatedSignal
	for _, field := range schema {
		if field.Type == models.SignalText {
			continue
		}
		agg := defaultAgg
		if field.Aggregation != nil {
			agg = field.Aggregation
		}
		if agg == nil {
			continue
		}

		value, ok := aggregateField(field, *agg, responses)
		if !ok {
			continue
		}
		out = append(out, aggregatedSignal{Key: field.Key, Value: value})
	}
	return out
}

func aggregateField(field models.SignalField, agg models.Aggregation, responses []map[string]any) (models.SignalValue, bool) {
	switch agg {
	case models.AggregationMajority, models.AggregationUnanimous, models.AggregationAny:
		values := boolResponses(field.Key, responses)
		if len(values) == 0 {
			return models.SignalValue{}, false
		}
		return models.BoolValue(reduceBool(agg, values)), true

	case models.AggregationAverage:
		values := numericResponses(field.Key, responses)
		if len(values) == 0 {
			return models.SignalValue{}, false
		}
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		mean := sum / float64(len(values))
		if field.Type == models.SignalInteger {
			// Integer fields share the numeric column; the mean stays exact.
			return models.SignalValue{Type: models.SignalInteger, Numeric: &mean}, true
		}
		return models.FloatValue(mean), true

	default:
		slog.Warn("Skipping signal with unknown aggregation",
			"signal_key", field.Key, "aggregation", agg)
		return models.SignalValue{}, false
	}
}

func reduceBool(agg models.Aggregation, values []bool) bool {
	switch agg {
	case models.AggregationUnanimous:
		for _, v := range values {
			if !v {
				return false
			}
		}
		return true
	case models.AggregationAny:
		for _, v := range values {
			if v {
				return true
			}
		}
		return false
	default:
		// MAJORITY. Ties break toward false: strictly more trues than
		// falses are required.
		trues := 0
		for _, v := range values {
			if v {
				trues++
			}
		}
		return trues > len(values)-trues
	}
}

// boolResponses collects present boolean values for a key. Absent keys,
// nulls and mistyped values do not contribute.
func boolResponses(key string, responses []map[string]any) []bool {
	var values []bool
	for _, data := range responses {
		raw, ok := data[key]
		if !ok || raw == nil {
			continue
		}
		b, ok := raw.(bool)
		if !ok {
			slog.Warn("Ignoring non-boolean response value during aggregation", "signal_key", key)
			continue
		}
		values = append(values, b)
	}
	return values
}

// numericResponses collects present numeric values for a key. JSON numbers
// decode as float64; anything else is ignored.
func numericResponses(key string, responses []map[string]any) []float64 {
	var values []float64
	for _, data := range responses {
		raw, ok := data[key]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case float64:
			values = append(values, v)
		case int:
			values = append(values, float64(v))
		default:
			slog.Warn("Ignoring non-numeric response value during aggregation", "signal_key", key)
		}
	}
	return values
}
