package csvfind

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator enumerates the condition operators.
type Operator int

const (
	// OpMatches tests exact equality against the literal.
	OpMatches Operator = iota
	// OpMatchesLoose trims both sides and compares loosely: numeric-looking
	// operands compare by magnitude, everything else by the trimmed text.
	OpMatchesLoose
	// OpNotMatches negates OpMatches.
	OpNotMatches
	// OpNotMatchesLoose negates OpMatchesLoose.
	OpNotMatchesLoose
	// OpContains tests substring presence.
	OpContains
	// OpContainsLoose tests substring presence case-insensitively.
	OpContainsLoose
	// OpNotContains negates OpContains.
	OpNotContains
	// OpNotContainsLoose negates OpContainsLoose.
	OpNotContainsLoose
	// OpGreater tests column > literal.
	OpGreater
	// OpGreaterOrEqual tests column >= literal.
	OpGreaterOrEqual
	// OpLower tests column < literal.
	OpLower
	// OpLowerOrEqual tests column <= literal.
	OpLowerOrEqual
	// OpBetween tests lower < column < upper (both bounds exclusive).
	OpBetween
	// OpBetweenInclusive tests lower <= column <= upper.
	OpBetweenInclusive
	// OpNotBetween negates OpBetween.
	OpNotBetween
	// OpNotBetweenInclusive negates OpBetweenInclusive.
	OpNotBetweenInclusive
	// OpEmpty tests that the column value is the empty string.
	OpEmpty
	// OpNotEmpty negates OpEmpty.
	OpNotEmpty

	operatorCount = int(OpNotEmpty) + 1
)

var operatorNames = map[Operator]string{
	OpMatches:             "matches",
	OpMatchesLoose:        "matches_loose",
	OpNotMatches:          "not_matches",
	OpNotMatchesLoose:     "not_matches_loose",
	OpContains:            "contains",
	OpContainsLoose:       "contains_loose",
	OpNotContains:         "not_contains",
	OpNotContainsLoose:    "not_contains_loose",
	OpGreater:             "greater",
	OpGreaterOrEqual:      "greater_or_equal",
	OpLower:               "lower",
	OpLowerOrEqual:        "lower_or_equal",
	OpBetween:             "between",
	OpBetweenInclusive:    "between_inclusive",
	OpNotBetween:          "not_between",
	OpNotBetweenInclusive: "not_between_inclusive",
	OpEmpty:               "empty",
	OpNotEmpty:            "not_empty",
}

// String returns the operator's wire name.
func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return fmt.Sprintf("operator(%d)", int(op))
}

// ParseOperator resolves a wire name like "contains_loose" back to its
// Operator. Unknown names fail with ErrValidation.
func ParseOperator(name string) (Operator, error) {
	for op, n := range operatorNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrValidation, name)
}

func (op Operator) isTuple() bool {
	return op == OpBetween || op == OpBetweenInclusive || op == OpNotBetween || op == OpNotBetweenInclusive
}

func (op Operator) isEmptiness() bool {
	return op == OpEmpty || op == OpNotEmpty
}

// ColumnSelector names the column a condition applies to: a header name,
// a 0-based index, or any column at all.
type ColumnSelector struct {
	name     string
	index    int
	selector selectorKind
}

type selectorKind int

const (
	selectAny selectorKind = iota
	selectName
	selectIndex
)

// Column selects a column by header name.
func Column(name string) ColumnSelector {
	return ColumnSelector{name: name, selector: selectName}
}

// ColumnIndex selects a column by 0-based index.
func ColumnIndex(index int) ColumnSelector {
	return ColumnSelector{index: index, selector: selectIndex}
}

// AnyColumn selects no particular column: the condition matches a row if
// any single field satisfies it.
func AnyColumn() ColumnSelector {
	return ColumnSelector{selector: selectAny}
}

// String renders the selector for reports: the name, the 1-based ordinal,
// or "*" for any column.
func (s ColumnSelector) String() string {
	switch s.selector {
	case selectName:
		return s.name
	case selectIndex:
		return strconv.Itoa(s.index + 1)
	default:
		return "*"
	}
}

// QueryCondition is one typed predicate: a column selector, an operator,
// and a literal whose inferred kind decides the comparison family.
// Immutable once constructed.
type QueryCondition struct {
	column   ColumnSelector
	operator Operator
	value    any
	kind     valueKind

	// precomputed comparison inputs
	literal      string
	lower, upper string
}

// NewCondition builds a condition and validates its shape: the value must
// be a 2-element tuple exactly for the between operators, nil exactly for
// the emptiness operators, and a scalar otherwise. Violations fail with
// ErrValidation; a value of an unsupported type fails with ErrLogic.
func NewCondition(column ColumnSelector, operator Operator, value any) (*QueryCondition, error) {
	if int(operator) < 0 || int(operator) >= operatorCount {
		return nil, fmt.Errorf("%w: unknown operator %d", ErrValidation, int(operator))
	}

	kind, err := inferKind(value)
	if err != nil {
		return nil, err
	}

	switch {
	case operator.isTuple() && kind != kindTuple:
		return nil, fmt.Errorf("%w: operator %s requires a 2-element tuple value, got %s", ErrValidation, operator, kind)
	case !operator.isTuple() && kind == kindTuple:
		return nil, fmt.Errorf("%w: tuple value is only valid with the between operators, not %s", ErrValidation, operator)
	case operator.isEmptiness() && kind != kindNull:
		return nil, fmt.Errorf("%w: operator %s takes no value, got %s", ErrValidation, operator, kind)
	case !operator.isEmptiness() && kind == kindNull:
		return nil, fmt.Errorf("%w: nil value is only valid with the empty operators, not %s", ErrValidation, operator)
	}

	c := &QueryCondition{
		column:   column,
		operator: operator,
		value:    value,
		kind:     kind,
	}
	if kind == kindTuple {
		c.lower, c.upper, _ = tupleBounds(value)
	} else {
		c.literal = literalString(value)
	}
	return c, nil
}

// MustCondition is NewCondition that panics on error, for fixed conditions
// in tests and examples.
func MustCondition(column ColumnSelector, operator Operator, value any) *QueryCondition {
	c, err := NewCondition(column, operator, value)
	if err != nil {
		panic(err)
	}
	return c
}

// Column returns the condition's column selector.
func (c *QueryCondition) Column() ColumnSelector { return c.column }

// Operator returns the condition's operator.
func (c *QueryCondition) Operator() Operator { return c.operator }

// Kind returns the wire name of the literal's inferred kind.
func (c *QueryCondition) Kind() string { return c.kind.String() }

// Value returns the literal in its canonical string form. For tuple
// literals it returns the lower bound; use Bounds for both.
func (c *QueryCondition) Value() string {
	if c.kind == kindTuple {
		return c.lower
	}
	return c.literal
}

// Bounds returns the (lower, upper) pair of a tuple literal and whether
// the condition carries one.
func (c *QueryCondition) Bounds() (lower, upper string, ok bool) {
	if c.kind != kindTuple {
		return "", "", false
	}
	return c.lower, c.upper, true
}

// matchFunc evaluates one operator for one value kind. The column value is
// always the raw string from the row.
type matchFunc func(c *QueryCondition, columnValue string) bool

type dispatchKey struct {
	kind valueKind
	op   Operator
}

// matchTable keys every legal (value kind, operator) pair to its
// comparison. A pair absent from the table cannot hold: MatchValue
// returns false without error. int, float, datetime and string literals
// share the string-comparison family; bool is restricted to the equality
// family; tuples and nil have their own families.
var matchTable = map[dispatchKey]matchFunc{}

func init() {
	equality := map[Operator]matchFunc{
		OpMatches:         func(c *QueryCondition, v string) bool { return v == c.literal },
		OpMatchesLoose:    func(c *QueryCondition, v string) bool { return looseEqual(v, c.literal) },
		OpNotMatches:      func(c *QueryCondition, v string) bool { return v != c.literal },
		OpNotMatchesLoose: func(c *QueryCondition, v string) bool { return !looseEqual(v, c.literal) },
	}
	substring := map[Operator]matchFunc{
		OpContains: func(c *QueryCondition, v string) bool { return strings.Contains(v, c.literal) },
		OpContainsLoose: func(c *QueryCondition, v string) bool {
			return strings.Contains(strings.ToLower(v), strings.ToLower(c.literal))
		},
		OpNotContains: func(c *QueryCondition, v string) bool { return !strings.Contains(v, c.literal) },
		OpNotContainsLoose: func(c *QueryCondition, v string) bool {
			return !strings.Contains(strings.ToLower(v), strings.ToLower(c.literal))
		},
	}
	ordering := map[Operator]matchFunc{
		OpGreater:        func(c *QueryCondition, v string) bool { return compareValues(v, c.literal) > 0 },
		OpGreaterOrEqual: func(c *QueryCondition, v string) bool { return compareValues(v, c.literal) >= 0 },
		OpLower:          func(c *QueryCondition, v string) bool { return compareValues(v, c.literal) < 0 },
		OpLowerOrEqual:   func(c *QueryCondition, v string) bool { return compareValues(v, c.literal) <= 0 },
	}
	tuple := map[Operator]matchFunc{
		OpBetween: func(c *QueryCondition, v string) bool {
			return compareValues(v, c.lower) > 0 && compareValues(v, c.upper) < 0
		},
		OpBetweenInclusive: func(c *QueryCondition, v string) bool {
			return compareValues(v, c.lower) >= 0 && compareValues(v, c.upper) <= 0
		},
		OpNotBetween: func(c *QueryCondition, v string) bool {
			return !(compareValues(v, c.lower) > 0 && compareValues(v, c.upper) < 0)
		},
		OpNotBetweenInclusive: func(c *QueryCondition, v string) bool {
			return !(compareValues(v, c.lower) >= 0 && compareValues(v, c.upper) <= 0)
		},
	}
	emptiness := map[Operator]matchFunc{
		OpEmpty:    func(_ *QueryCondition, v string) bool { return v == "" },
		OpNotEmpty: func(_ *QueryCondition, v string) bool { return v != "" },
	}

	register := func(kinds []valueKind, fns map[Operator]matchFunc) {
		for _, k := range kinds {
			for op, fn := range fns {
				matchTable[dispatchKey{kind: k, op: op}] = fn
			}
		}
	}

	stringFamily := []valueKind{kindInt, kindFloat, kindDatetime, kindString}
	register(stringFamily, equality)
	register(stringFamily, substring)
	register(stringFamily, ordering)
	register([]valueKind{kindBool}, equality)
	register([]valueKind{kindTuple}, tuple)
	register([]valueKind{kindNull}, emptiness)
}

// MatchValue reports whether the raw column value satisfies the condition.
// Dispatch is on the literal's inferred kind, never on the column content:
// an operator outside the kind's family simply cannot hold.
func (c *QueryCondition) MatchValue(columnValue string) bool {
	fn, ok := matchTable[dispatchKey{kind: c.kind, op: c.operator}]
	if !ok {
		return false
	}
	return fn(c, columnValue)
}

// looseEqual trims both operands, compares numeric-looking pairs by
// magnitude, and everything else by the trimmed text.
func looseEqual(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if fa, fb, ok := bothNumeric(a, b); ok {
		return fa == fb
	}
	return a == b
}

// compareValues orders two raw strings the way a caller of "9" < "10"
// expects: by numeric magnitude when both operands are numeric-looking,
// byte-wise lexicographically otherwise.
func compareValues(a, b string) int {
	if fa, fb, ok := bothNumeric(a, b); ok {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

func bothNumeric(a, b string) (fa, fb float64, ok bool) {
	fa, errA := strconv.ParseFloat(a, 64)
	if errA != nil {
		return 0, 0, false
	}
	fb, errB := strconv.ParseFloat(b, 64)
	if errB != nil {
		return 0, 0, false
	}
	return fa, fb, true
}
