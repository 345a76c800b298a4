package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
)

// Predicate reports whether a value is legal for an attribute.
type Predicate func(value any) bool

// All returns a predicate that holds when every predicate holds.
func All(preds ...Predicate) Predicate {
	return func(value any) bool {
		for _, p := range preds {
			if !p(value) {
				return false
			}
		}
		return true
	}
}

// Any returns a predicate that holds when at least one predicate holds.
func Any(preds ...Predicate) Predicate {
	return func(value any) bool {
		for _, p := range preds {
			if p(value) {
				return true
			}
		}
		return false
	}
}

// ----------------------------------------------------------------------------
// Booleans and numbers
// ----------------------------------------------------------------------------

// Bool holds for true and false.
func Bool(value any) bool {
	_, ok := value.(bool)
	return ok
}

// Bound restricts a numeric value.
type Bound func(x float64) bool

// Ge requires x >= n.
func Ge(n float64) Bound { return func(x float64) bool { return x >= n } }

// Gt requires x > n.
func Gt(n float64) Bound { return func(x float64) bool { return x > n } }

// Le requires x <= n.
func Le(n float64) Bound { return func(x float64) bool { return x <= n } }

// Lt requires x < n.
func Lt(n float64) Bound { return func(x float64) bool { return x < n } }

// Int returns a predicate accepting Go integer values within all bounds.
func Int(bounds ...Bound) Predicate {
	return func(value any) bool {
		x, ok := asInt(value)
		return ok && within(x, bounds)
	}
}

// Float returns a predicate accepting integer or floating point values
// within all bounds. NaN never satisfies a bound.
func Float(bounds ...Bound) Predicate {
	return func(value any) bool {
		x, ok := asInt(value)
		if !ok {
			x, ok = asFloat(value)
		}
		return ok && within(x, bounds)
	}
}

var (
	// IntGeZero accepts non-negative integers.
	IntGeZero = Int(Ge(0))
	// IntGtZero accepts positive integers.
	IntGtZero = Int(Gt(0))
	// FloatGtZero accepts positive numbers.
	FloatGtZero = Float(Gt(0))
)

func within(x float64, bounds []Bound) bool {
	if math.IsNaN(x) && len(bounds) > 0 {
		return false
	}
	for _, b := range bounds {
		if !b(x) {
			return false
		}
	}
	return true
}

func asInt(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// ----------------------------------------------------------------------------
// Strings
// ----------------------------------------------------------------------------

// Str holds for any value that is not a boolean.
func Str(value any) bool {
	return !Bool(value)
}

// StrCI is Str; it exists so case-insensitive schemas read uniformly.
func StrCI(value any) bool {
	return Str(value)
}

// StrLiteral accepts non-boolean values whose string form is one of values.
// With no values it behaves like Str.
func StrLiteral(values ...string) Predicate {
	return strLiteral(values, false)
}

// StrLiteralCI is StrLiteral with case-insensitive matching.
func StrLiteralCI(values ...string) Predicate {
	return strLiteral(values, true)
}

func strLiteral(values []string, fold bool) Predicate {
	allowed := tokenSet(values, fold)
	return func(value any) bool {
		if Bool(value) {
			return false
		}
		if len(allowed) == 0 {
			return true
		}
		_, ok := allowed[normalize(ToString(value), fold)]
		return ok
	}
}

// ----------------------------------------------------------------------------
// Token sets
// ----------------------------------------------------------------------------

// UniqueSet accepts space separated token lists without duplicates.
var UniqueSet = UniqueSetSep(" ", false)

// UniqueSetCI is UniqueSet with duplicates detected case-insensitively.
var UniqueSetCI = UniqueSetSep(" ", true)

// UniqueSetLiteral is UniqueSet restricted to the given tokens.
func UniqueSetLiteral(values ...string) Predicate {
	return UniqueSetSep(" ", false, values...)
}

// UniqueSetLiteralCI is UniqueSetLiteral with case-insensitive matching.
func UniqueSetLiteralCI(values ...string) Predicate {
	return UniqueSetSep(" ", true, values...)
}

// UniqueSetSep accepts non-boolean values that split on sep into distinct
// tokens. When values are given every token must be one of them.
func UniqueSetSep(sep string, fold bool, values ...string) Predicate {
	allowed := tokenSet(values, fold)
	return func(value any) bool {
		if Bool(value) {
			return false
		}
		parts := strings.Split(normalize(ToString(value), fold), sep)
		seen := make(map[string]struct{}, len(parts))
		for _, part := range parts {
			if _, dup := seen[part]; dup {
				return false
			}
			seen[part] = struct{}{}
			if values == nil {
				continue
			}
			if _, ok := allowed[part]; !ok {
				return false
			}
		}
		return true
	}
}

func tokenSet(values []string, fold bool) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[normalize(v, fold)] = struct{}{}
	}
	return set
}

func normalize(s string, fold bool) string {
	if !fold {
		return s
	}
	return cases.Fold().String(s)
}

// ToString converts an attribute or text value to its string form.
// Booleans become "true"/"false", numbers use their shortest exact
// representation and fmt.Stringer values their String method.
func ToString(value any) string {
	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return s
}
