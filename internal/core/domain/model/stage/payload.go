package stage

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// normalizePayload turns the raw stage payload into JSON bytes ready for
// decoding. Payloads arrive either pre-parsed (maps from the store
// driver) or as serialized text, and serialized text is sometimes
// double-encoded as a JSON string. Returns ok=false when there is
// nothing to decode.
func normalizePayload(raw any) ([]byte, bool) {
	var data []byte

	switch v := raw.(type) {
	case nil:
		return nil, false
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	case string:
		data = []byte(v)
	default:
		marshaled, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		data = marshaled
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil, false
	}

	// Unwrap one level of double encoding ("{\"products\":...}").
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil, false
		}
		trimmed = strings.TrimSpace(inner)
		if trimmed == "" || trimmed == "null" {
			return nil, false
		}
	}

	return []byte(trimmed), true
}

// flexFloat decodes a quantity that may be a JSON number, a numeric
// string, null, or an empty string. Unusable values decode to 0 so that
// one sloppy field never rejects the whole payload.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	*f = 0

	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	*f = flexFloat(v)
	return nil
}

// flexInt decodes a count that may be a JSON number or a numeric string.
// Fractional values are truncated; unusable values decode to 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var v flexFloat
	_ = v.UnmarshalJSON(b)
	*f = flexInt(v)
	return nil
}

// flexString decodes an identifier that may be a JSON string or a bare
// number (driver and entity ids are written both ways).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	*f = ""

	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return nil
		}
		*f = flexString(strings.TrimSpace(inner))
		return nil
	}

	*f = flexString(s)
	return nil
}

// flexDecimal decodes a money amount that may be a JSON number, a
// numeric string, null, or empty. Unusable values decode to zero.
type flexDecimal decimal.Decimal

func (f *flexDecimal) UnmarshalJSON(b []byte) error {
	*f = flexDecimal(decimal.Zero)

	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	if s == "" || s == "null" {
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}

	*f = flexDecimal(d)
	return nil
}

func (f flexDecimal) decimal() decimal.Decimal {
	return decimal.Decimal(f)
}
