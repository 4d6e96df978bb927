package csvfind

import (
	"errors"
	"testing"
)

func TestInferKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected valueKind
	}{
		{"bool literal true", true, kindBool},
		{"bool literal false", false, kindBool},
		{"bool string true", "true", kindBool},
		{"bool string false", "false", kindBool},
		{"integer", 42, kindInt},
		{"integer string", "42", kindInt},
		{"digit string with leading zero", "007", kindInt},
		{"float", 3.14, kindFloat},
		{"float string", "3.14", kindFloat},
		{"signed float string", "-3.14", kindFloat},
		{"float string without integer part", ".5", kindFloat},
		{"ISO date string", "2024-01-01", kindDatetime},
		{"ISO datetime string", "2024-01-01 10:30:00", kindDatetime},
		{"plain string", "hello", kindString},
		{"signed integer string is float", "-42", kindFloat},
		{"empty string", "", kindString},
		{"tuple array", [2]string{"1", "10"}, kindTuple},
		{"tuple slice", []string{"1", "10"}, kindTuple},
		{"nil", nil, kindNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inferKind(tt.value)
			if err != nil {
				t.Fatalf("inferKind(%v) unexpected error: %v", tt.value, err)
			}
			if got != tt.expected {
				t.Errorf("inferKind(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestInferKindPrecedence(t *testing.T) {
	t.Parallel()

	// "true" is a bool before it is anything else; digits are int before
	// float; a float wins before the date parser ever runs.
	for value, want := range map[string]valueKind{
		"true":       kindBool,
		"123":        kindInt,
		"1.5":        kindFloat,
		"2024-01-01": kindDatetime,
		"True":       kindString, // strict case-sensitive bool match
	} {
		got, err := inferKind(value)
		if err != nil {
			t.Fatalf("inferKind(%q) unexpected error: %v", value, err)
		}
		if got != want {
			t.Errorf("inferKind(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestInferKindUnsupported(t *testing.T) {
	t.Parallel()

	for _, value := range []any{
		[]string{"only-one"},
		[]string{"a", "b", "c"},
		struct{}{},
		map[string]string{},
	} {
		if _, err := inferKind(value); !errors.Is(err, ErrLogic) {
			t.Errorf("inferKind(%v) error = %v, want ErrLogic", value, err)
		}
	}
}

func TestIsDatetime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"ISO date", "2023-01-15", true},
		{"ISO datetime", "2023-01-15T10:30:00", true},
		{"ISO datetime with timezone", "2023-01-15T10:30:00Z", true},
		{"ISO date and time with space", "2023-01-15 10:30:00", true},
		{"US date", "1/15/2023", true},
		{"European date", "15.1.2023", true},
		{"plain text", "hello world", false},
		{"number", "123", false},
		{"invalid date", "2023-13-45", false},
		{"empty string", "", false},
		{"partial date", "2023-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDatetime(tt.value); got != tt.expected {
				t.Errorf("isDatetime(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestLiteralString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    any
		expected string
	}{
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(42), "42"},
		{uint(7), "7"},
		{3.14, "3.14"},
		{"hello", "hello"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := literalString(tt.value); got != tt.expected {
			t.Errorf("literalString(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}
