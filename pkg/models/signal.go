package models

import (
	"fmt"
	"strconv"
	"time"
)

// SignalValue is a typed signal value. Exactly one of Boolean/Numeric/Text
// is set, matching Type. Construct via the typed helpers or ParseSignalValue.
type SignalValue struct {
	Type    SignalType
	Boolean *bool
	Numeric *float64
	Text    *string
}

// BoolValue builds a boolean signal value.
func BoolValue(v bool) SignalValue {
	return SignalValue{Type: SignalBoolean, Boolean: &v}
}

// IntValue builds an integer signal value.
func IntValue(v int64) SignalValue {
	f := float64(v)
	return SignalValue{Type: SignalInteger, Numeric: &f}
}

// FloatValue builds a float signal value.
func FloatValue(v float64) SignalValue {
	return SignalValue{Type: SignalFloat, Numeric: &v}
}

// TextValue builds a text signal value.
func TextValue(v string) SignalValue {
	return SignalValue{Type: SignalText, Text: &v}
}

// ParseSignalValue parses a stringified literal into a typed value.
// Used by the manual-signal operation, which receives values as strings.
func ParseSignalValue(t SignalType, raw string) (SignalValue, error) {
	switch t {
	case SignalBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return SignalValue{}, fmt.Errorf("invalid boolean literal %q", raw)
		}
		return BoolValue(b), nil
	case SignalInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return SignalValue{}, fmt.Errorf("invalid integer literal %q", raw)
		}
		return IntValue(n), nil
	case SignalFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return SignalValue{}, fmt.Errorf("invalid float literal %q", raw)
		}
		return FloatValue(f), nil
	case SignalText:
		return TextValue(raw), nil
	default:
		return SignalValue{}, fmt.Errorf("unknown signal type %q", t)
	}
}

// Interface returns the value as a plain Go value (bool, float64 or string),
// or nil when unset. Integer signals surface as float64: both integer and
// float signals share the numeric column.
func (v SignalValue) Interface() any {
	switch {
	case v.Boolean != nil:
		return *v.Boolean
	case v.Numeric != nil:
		return *v.Numeric
	case v.Text != nil:
		return *v.Text
	default:
		return nil
	}
}

// PutSignalRequest carries one signal write into the signal store.
type PutSignalRequest struct {
	TenantID      string
	ApplicationID string
	Key           string
	Value         SignalValue
	Source        SignalSource
	SourceID      string // optional: evaluation instance, interview round, …
	Note          string // optional
	SetBy         string // user id
}

// SetManualSignalRequest is the admin-facing manual override operation.
// Value is a stringified literal parsed according to Type.
type SetManualSignalRequest struct {
	TenantID      string
	UserID        string
	ApplicationID string
	Key           string `json:"key"`
	Type          SignalType
	Value         string `json:"value"`
	Note          string `json:"note,omitempty"`
}

// SignalDTO is the read projection of one signal version.
type SignalDTO struct {
	ID           string       `json:"id"`
	Key          string       `json:"signal_key"`
	Type         SignalType   `json:"signal_type"`
	Value        any          `json:"value"`
	Source       SignalSource `json:"source_type"`
	SourceID     string       `json:"source_id,omitempty"`
	Note         string       `json:"note,omitempty"`
	SetBy        string       `json:"set_by"`
	SetAt        time.Time    `json:"set_at"`
	SupersededAt *time.Time   `json:"superseded_at,omitempty"`
	SupersededBy string       `json:"superseded_by,omitempty"`
}
