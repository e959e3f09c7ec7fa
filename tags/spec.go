// SPDX-License-Identifier: MIT
// Package: magcell/tags
//
// spec.go — the Kind/Spec/Value variant and raw-text parsing.
//
// Parsing rules:
//   • Int, Float: github.com/spf13/cast on the trimmed text.
//   • Bool: true/false, 1/0, t/f, yes/no, y/n, on/off (case-insensitive).
//   • List: whitespace-separated; all-numeric lists become float64 items,
//     otherwise items stay strings.
//   • Choice: integer-looking text is canonicalised ("07" → "7") before the
//     membership test.

package tags

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Kind is the closed set of value kinds.
type Kind int

const (
	// KindInt is a whole number.
	KindInt Kind = iota
	// KindFloat is a real number.
	KindFloat
	// KindBool is a boolean.
	KindBool
	// KindString is free text (non-empty).
	KindString
	// KindList is a whitespace-separated list.
	KindList
	// KindChoice is one of an enumerated set of values.
	KindChoice
)

var kindNames = [...]string{
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindString: "string",
	KindList:   "list",
	KindChoice: "choice",
}

// String returns the catalog name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// ParseKind maps a catalog name to a scalar Kind. "choice" is not accepted
// here: choices are written as sequences.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name && Kind(i) != KindChoice {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// Constraint bounds numeric kinds.
type Constraint int

const (
	// Unbounded accepts any finite number.
	Unbounded Constraint = iota
	// Positive requires > 0.
	Positive
	// NonNegative requires >= 0.
	NonNegative
)

// String renders the constraint as a comparison: "> 0", ">= 0" or "".
func (c Constraint) String() string {
	switch c {
	case Positive:
		return "> 0"
	case NonNegative:
		return ">= 0"
	}

	return ""
}

// Spec describes one tag.
type Spec struct {
	Kind Kind
	// Choices lists the allowed canonical values for KindChoice.
	Choices []string
	// Constraint applies to KindInt and KindFloat.
	Constraint Constraint
}

// Int returns an integer spec.
func Int(c Constraint) Spec { return Spec{Kind: KindInt, Constraint: c} }

// Float returns a real-number spec.
func Float(c Constraint) Spec { return Spec{Kind: KindFloat, Constraint: c} }

// Bool returns a boolean spec.
func Bool() Spec { return Spec{Kind: KindBool} }

// String returns a free-text spec.
func String() Spec { return Spec{Kind: KindString} }

// List returns a list spec.
func List() Spec { return Spec{Kind: KindList} }

// Choice returns a spec accepting only the given canonical values.
func Choice(allowed ...string) Spec { return Spec{Kind: KindChoice, Choices: allowed} }

// Value is a parsed, typed value. Exactly the field matching Kind is set.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	// Str holds KindString text and the canonical KindChoice value.
	Str string
	// List holds float64 items when every item is numeric, string items otherwise.
	List []any
}

// Any returns the value as a plain Go value.
func (v Value) Any() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindList:
		return v.List
	default:
		return v.Str
	}
}

// Parse converts raw text according to the spec.
func (s Spec) Parse(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)

	switch s.Kind {
	case KindInt:
		n, err := cast.ToInt64E(raw)
		if err != nil || raw == "" {
			return Value{}, fmt.Errorf("%q as int: %w", raw, ErrBadValue)
		}
		if err := s.check(float64(n)); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt, Int: n}, nil

	case KindFloat:
		f, err := cast.ToFloat64E(raw)
		if err != nil || raw == "" || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("%q as float: %w", raw, ErrBadValue)
		}
		if err := s.check(f); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindFloat, Float: f}, nil

	case KindBool:
		b, err := parseBool(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBool, Bool: b}, nil

	case KindString:
		if raw == "" {
			return Value{}, fmt.Errorf("empty string: %w", ErrBadValue)
		}
		return Value{Kind: KindString, Str: raw}, nil

	case KindList:
		return Value{Kind: KindList, List: parseList(raw)}, nil

	case KindChoice:
		canon := raw
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			canon = strconv.FormatInt(n, 10)
		}
		if !slices.Contains(s.Choices, canon) {
			return Value{}, fmt.Errorf("%q (allowed %v): %w", raw, s.Choices, ErrNotAllowed)
		}
		return Value{Kind: KindChoice, Str: canon}, nil
	}

	return Value{}, fmt.Errorf("%v: %w", s.Kind, ErrUnknownKind)
}

func (s Spec) check(x float64) error {
	switch {
	case s.Constraint == Positive && !(x > 0):
		return fmt.Errorf("%v must be > 0: %w", x, ErrConstraint)
	case s.Constraint == NonNegative && x < 0:
		return fmt.Errorf("%v must be >= 0: %w", x, ErrConstraint)
	}

	return nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "y", "yes", "on":
		return true, nil
	case "n", "no", "off":
		return false, nil
	}
	b, err := cast.ToBoolE(raw)
	if err != nil || raw == "" {
		return false, fmt.Errorf("%q as bool: %w", raw, ErrBadValue)
	}

	return b, nil
}

func parseList(raw string) []any {
	fields := strings.Fields(raw)
	out := make([]any, len(fields))
	numeric := true
	for i, f := range fields {
		x, err := cast.ToFloat64E(f)
		if err != nil {
			numeric = false
			break
		}
		out[i] = x
	}
	if !numeric {
		for i, f := range fields {
			out[i] = f
		}
	}

	return out
}
