package utils

import (
	"math"
	"strconv"
	"strings"
)

// Constants
const (
	// DISPLAY_LAYOUT renders scheduled times in answers and prompts.
	DISPLAY_LAYOUT = "2006-01-02 15:04"
)

// scheduleLayouts are tried in order when parsing horario_previsto values.
// Layouts without an offset are read as UTC.
var scheduleLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FlexInt decodes JSON numbers, numeric strings, null and anything else
// into an int. Floats are truncated and unusable input decodes to 0, which
// callers treat as "use the default".
type FlexInt int

// UnmarshalJSON never fails; malformed values become 0.
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	f, ok := parseLooseNumber(b)
	if !ok {
		*n = 0
		return nil
	}
	if f > math.MaxInt32 {
		f = math.MaxInt32
	} else if f < math.MinInt32 {
		f = math.MinInt32
	}
	*n = FlexInt(int(f))
	return nil
}

// Int returns the plain int value.
func (n FlexInt) Int() int {
	return int(n)
}

// FlexFloat decodes JSON numbers and numeric strings ("450.00") into a float.
type FlexFloat float64

// UnmarshalJSON never fails; malformed values become 0.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	v, ok := parseLooseNumber(b)
	if !ok {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the plain float value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

func parseLooseNumber(b []byte) (float64, bool) {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return 0, false
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
