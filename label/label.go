// Package label infers string names for arbitrary Go values. Repositories
// use a Namer to derive storage keys; Namify is the default strategy.
package label

import (
	"reflect"
	"strings"
	"unicode"
)

// Namer derives a string key from an item. Implementations must be
// deterministic so derived keys are reproducible.
type Namer[T any] func(item T) string

// Namify returns a name for item: a string names itself, anything exposing a
// Name() string method is asked, and any other value is named by the
// snake_case of its type name, pointers unwrapped. A nil item has no name
// and yields the empty string.
func Namify(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return v
	case interface{ Name() string }:
		return v.Name()
	}
	t := reflect.TypeOf(item)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		// unnamed types (maps, slices, anonymous structs) fall back to the
		// kind
		return Snakify(t.Kind().String())
	}
	return Snakify(t.Name())
}

// Snakify converts a CamelCase or mixedCase name to snake_case. A run of
// capitals counts as one word, so HTTPServer becomes http_server.
func Snakify(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		wordStart := i > 0 && !unicode.IsUpper(runes[i-1])
		runEnd := i > 0 && i+1 < len(runes) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i+1])
		if wordStart || runEnd {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
