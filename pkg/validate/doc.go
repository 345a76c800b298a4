// Package validate provides the attribute value predicates used by element
// schemas.
//
// Predicates are pure functions of a single value. They are composed by
// schema authors with All and Any:
//
//	"tabindex":  validate.Int(),
//	"accesskey": validate.All(validate.UniqueSet, singleChars),
//	"autocomplete": validate.Any(validate.StrLiteralCI("on", "off"), validate.Str),
//
// Values arrive untyped, exactly as the caller passed them to the node model:
// string, bool, any Go integer or float type. Booleans are never strings, so
// the string predicates reject them.
package validate
