// Package flatten collapses arbitrarily nested slices and arrays into a
// single flat slice.
package flatten

import (
	"fmt"
	"reflect"

	"helperkit/internal/errors"
)

var byteSliceType = reflect.TypeOf([]byte(nil))

// Flatten returns every non-collection element of input in depth-first,
// left-to-right order. Nested slices and arrays are expanded in place, empty
// ones contribute nothing. Duplicates and encounter order are preserved.
//
// input must itself be a slice or an array; anything else, including a
// string, yields a *errors.ValidationError matching errors.ErrNotCollection.
// Strings and []byte values found inside the collection are leaves.
func Flatten(input any) ([]any, error) {
	v := reflect.ValueOf(input)
	if !isCollection(v) {
		return nil, errors.NewNotCollectionError("input")
	}

	out := make([]any, 0, v.Len())
	return appendLeaves(out, v), nil
}

// Of flattens nested and asserts every leaf is a T.
func Of[T any](nested any) ([]T, error) {
	leaves, err := Flatten(nested)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(leaves))
	for i, leaf := range leaves {
		typed, ok := leaf.(T)
		if !ok {
			var zero T
			return nil, errors.NewValidationError("input",
				fmt.Sprintf("leaf %d has type %T, expected %T", i, leaf, zero))
		}
		out = append(out, typed)
	}
	return out, nil
}

func appendLeaves(out []any, v reflect.Value) []any {
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		// []any elements arrive as interfaces wrapping the real value
		for elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}

		if isCollection(elem) {
			out = appendLeaves(out, elem)
			continue
		}

		if elem.IsValid() && elem.CanInterface() {
			out = append(out, elem.Interface())
		} else {
			out = append(out, nil)
		}
	}
	return out
}

func isCollection(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Slice:
		return v.Type() != byteSliceType
	case reflect.Array:
		return true
	default:
		return false
	}
}
