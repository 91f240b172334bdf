package lpapi

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Params holds the normalized parameters of one command. Nil values are
// omitted from the request body.
type Params map[string]any

// Encode serializes the parameters as a form body sorted by key.
func (p Params) Encode() string {
	values := url.Values{}
	for k, v := range p {
		if v == nil {
			continue
		}
		values.Set(k, formatValue(v))
	}
	return values.Encode()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// setBool stores b unless it is nil.
func (p Params) setBool(key string, b *bool) {
	if b != nil {
		p[key] = *b
	}
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Hundredths converts millimeters to the service's integer unit. The result
// is undefined for NaN, infinities and values beyond the service's range;
// commands reject those before converting.
func Hundredths(mm float64) int {
	return int(math.Round(mm * 100))
}

// maxLength is the largest length in millimeters whose hundredths still fit
// the service's 32-bit integers.
const maxLength = math.MaxInt32 / 100.0

// length names one millimeter value of a command for validation.
type length struct {
	field string
	mm    float64
}

// appendLength adds mm to ls when it is set.
func appendLength(ls []length, field string, mm *float64) []length {
	if mm == nil {
		return ls
	}
	return append(ls, length{field: field, mm: *mm})
}

// checkLengths rejects NaN, infinities and lengths too large to convert.
func checkLengths(action string, ls ...length) error {
	for _, l := range ls {
		if math.IsNaN(l.mm) || math.Abs(l.mm) > maxLength {
			return &InvalidParametersError{Action: action, Field: l.field, Reason: "is not a valid length"}
		}
	}
	return nil
}

// nonZeroOr returns v, or def when v is zero.
func nonZeroOr(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// joinHundredths converts every length and joins them with commas.
func joinHundredths(lengths []float64) string {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = strconv.Itoa(Hundredths(l))
	}
	return strings.Join(parts, ",")
}
