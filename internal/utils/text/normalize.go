// Package text provides normalization helpers for values coming back
// from the Medium API. The functions are pure: no side effects, no
// network calls.
package text

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// HandleBearer is implemented by upstream values that carry a user
// handle, such as partially hydrated author references.
type HandleBearer interface {
	Handle() string
}

// NormalizeTag converts a display label to Medium's tag form: lowercase
// with every space replaced by a hyphen. Empty input passes through
// unchanged. No trimming or collapsing is performed, so consecutive,
// leading or trailing spaces each become their own hyphen; adjacent
// hyphens in the result are expected, not an error. The function is
// idempotent.
func NormalizeTag(tag string) string {
	if tag == "" {
		return tag
	}
	return strings.ReplaceAll(strings.ToLower(tag), " ", "-")
}

// Stringify converts an upstream value of unknown shape to text using a
// fixed precedence:
//
//  1. nil or the empty string yields "".
//  2. A HandleBearer with a non-empty handle yields that handle.
//  3. A time.Time yields "2006-01-02T15:04:05" (seconds precision, no
//     zone suffix, since upstream timestamps are naive wall-clock values).
//  4. Anything else yields its default text, except that zero numbers,
//     false, and empty containers yield "" rather than "0"/"false"/"[]".
//
// The last rule reproduces the falsy-to-empty behavior callers already
// observe; record fields that carry counts as native numbers are not
// routed through this function and keep their numeric zero values.
func Stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	if h, ok := value.(HandleBearer); ok {
		if handle := h.Handle(); handle != "" {
			return handle
		}
	}
	if t, ok := value.(time.Time); ok {
		return t.Format("2006-01-02T15:04:05")
	}
	if isFalsy(value) {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

// isFalsy reports whether value is a zero number, false, a nil pointer
// or an empty container.
func isFalsy(value any) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}
