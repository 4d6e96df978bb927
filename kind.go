package csvfind

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// valueKind is the inferred semantic type of a condition's literal. The
// kind decides which operator family applies; the column side of a
// comparison is always the raw string from the row.
type valueKind int

const (
	// kindBool matches the literals true/false, as bool or string.
	kindBool valueKind = iota
	// kindInt matches whole numbers and strings of decimal digits.
	kindInt
	// kindFloat matches floating values and signed decimal strings.
	kindFloat
	// kindDatetime matches strings the generic date/time parser accepts.
	kindDatetime
	// kindString is the fallback for any other string.
	kindString
	// kindTuple is a two-element (lower, upper) pair of strings.
	kindTuple
	// kindNull is a nil literal, legal only for the emptiness operators.
	kindNull
)

// String returns the kind name used in error messages and XML reports.
func (k valueKind) String() string {
	switch k {
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	case kindDatetime:
		return "datetime"
	case kindString:
		return "string"
	case kindTuple:
		return "array"
	case kindNull:
		return "null"
	default:
		return "unknown"
	}
}

var (
	intLiteralRe   = regexp.MustCompile(`^[0-9]+$`)
	floatLiteralRe = regexp.MustCompile(`^[+-]?[0-9]*\.?[0-9]+$`)
)

// inferKind classifies a condition literal. Precedence is fixed and the
// first match wins: bool, int, float, datetime, string, tuple, null.
// Values of any other type fail with ErrLogic.
func inferKind(value any) (valueKind, error) {
	switch v := value.(type) {
	case nil:
		return kindNull, nil
	case bool:
		return kindBool, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return kindInt, nil
	case float32, float64:
		return kindFloat, nil
	case string:
		switch {
		case v == "true" || v == "false":
			return kindBool, nil
		case intLiteralRe.MatchString(v):
			return kindInt, nil
		case floatLiteralRe.MatchString(v):
			return kindFloat, nil
		case isDatetime(v):
			return kindDatetime, nil
		default:
			return kindString, nil
		}
	case [2]string:
		return kindTuple, nil
	case []string:
		if len(v) == 2 {
			return kindTuple, nil
		}
		return 0, fmt.Errorf("%w: unsupported value type: tuple must have exactly 2 elements, got %d", ErrLogic, len(v))
	default:
		return 0, fmt.Errorf("%w: unsupported value type %T", ErrLogic, value)
	}
}

// literalString returns the canonical string form the column value is
// compared against: bool as true/false, numbers via strconv, strings as-is.
func literalString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// tupleBounds extracts the (lower, upper) pair from a tuple literal.
// Element 0 is always the lower bound name; reversed pairs are kept as
// given, not normalized.
func tupleBounds(value any) (lower, upper string, ok bool) {
	switch v := value.(type) {
	case [2]string:
		return v[0], v[1], true
	case []string:
		if len(v) == 2 {
			return v[0], v[1], true
		}
	}
	return "", "", false
}

// Common datetime patterns the generic parser accepts
var datetimePatterns = []struct {
	pattern *regexp.Regexp
	formats []string // Multiple formats for the same pattern
}{
	// ISO8601 formats with timezone
	{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`),
		[]string{time.RFC3339, time.RFC3339Nano},
	},
	// ISO8601 formats without timezone
	{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?$`),
		[]string{"2006-01-02T15:04:05", "2006-01-02T15:04:05.000"},
	},
	// ISO8601 date and time with space
	{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(\.\d+)?$`),
		[]string{"2006-01-02 15:04:05", "2006-01-02 15:04:05.000"},
	},
	// ISO8601 date only
	{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		[]string{"2006-01-02"},
	},
	// US formats
	{
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{2}:\d{2}( (AM|PM))?$`),
		[]string{"1/2/2006 15:04:05", "1/2/2006 3:04:05 PM", "01/02/2006 15:04:05"},
	},
	{
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
		[]string{"1/2/2006", "01/02/2006"},
	},
	// European formats
	{
		regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4} \d{1,2}:\d{2}:\d{2}$`),
		[]string{"2.1.2006 15:04:05", "02.01.2006 15:04:05"},
	},
	{
		regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`),
		[]string{"2.1.2006", "02.01.2006"},
	},
}

// isDatetime checks if a string value represents a date or datetime
func isDatetime(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	for _, dp := range datetimePatterns {
		if dp.pattern.MatchString(value) {
			// Try each format for this pattern
			for _, format := range dp.formats {
				if _, err := time.Parse(format, value); err == nil {
					return true
				}
			}
		}
	}

	return false
}
