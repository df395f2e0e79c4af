/*
   Copyright 2026 The resources-io Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package codec

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/movesthatmatter/resources-io/diag"
)

// Codec decodes an untyped value into T.
//
// raw is expected in the JSON data model (map[string]any, []any, string,
// bool, numbers, nil) but codecs also accept Go values that already have the
// target shape. On failure the returned error is a non-empty diag.List.
//
// Implementations must be immutable and safe for concurrent use.
type Codec[T any] interface {
	// Name identifies the codec in diagnostics and observer records.
	Name() string
	// Decode converts raw into T.
	Decode(raw any) (T, error)
}

// DecodeFunc is the function form of Codec.Decode.
type DecodeFunc[T any] func(raw any) (T, error)

type funcCodec[T any] struct {
	name string
	fn   DecodeFunc[T]
}

// New builds a Codec from a name and a decode function.
func New[T any](name string, fn DecodeFunc[T]) Codec[T] {
	if fn == nil {
		panic("codec: nil decode function")
	}
	return funcCodec[T]{name: name, fn: fn}
}

func (c funcCodec[T]) Name() string { return c.name }

func (c funcCodec[T]) Decode(raw any) (T, error) { return c.fn(raw) }

// Is reports whether c accepts raw.
func Is[T any](c Codec[T], raw any) bool {
	_, err := c.Decode(raw)
	return err == nil
}

// Map decodes with c and then converts the result with fn. An error from fn
// is reported at the root path unless it is already a diag.List.
func Map[T, U any](c Codec[T], name string, fn func(T) (U, error)) Codec[U] {
	return New(name, func(raw any) (U, error) {
		var zero U
		v, err := c.Decode(raw)
		if err != nil {
			return zero, err
		}
		out, err := fn(v)
		if err != nil {
			return zero, diag.From(err)
		}
		return out, nil
	})
}

// Fail is a convenience for decode functions: it returns the zero T and a
// single diagnostic.
func Fail[T any](path, format string, args ...any) (T, error) {
	var zero T
	return zero, diag.New(path, fmt.Sprintf(format, args...))
}

// Mismatch returns the standard "expected X, got Y" diagnostic.
func Mismatch[T any](path, want string, raw any) (T, error) {
	return Fail[T](path, "expected %s, got %s", want, Describe(raw))
}

// Describe names the JSON type of raw for diagnostics.
func Describe(raw any) string {
	if raw == nil {
		return "null"
	}
	switch raw.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return Describe(rv.Elem().Interface())
	}
	return fmt.Sprintf("%T", raw)
}

// Normalize converts an arbitrary Go value into the JSON data model by
// round-tripping it through encoding/json. Values already in the model are
// returned unchanged.
func Normalize(raw any) (any, error) {
	switch raw.(type) {
	case nil, string, bool, float64, map[string]any, []any:
		return raw, nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("codec: normalize %T: %w", raw, err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("codec: normalize %T: %w", raw, err)
	}
	return out, nil
}

// AsObject returns raw as a JSON object. Maps with string keys and structs are
// normalized first; anything else reports false.
func AsObject(raw any) (map[string]any, bool) {
	if m, ok := raw.(map[string]any); ok {
		return m, true
	}
	if raw == nil {
		return nil, false
	}
	rv := reflect.ValueOf(raw)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
	case reflect.Struct:
	default:
		return nil, false
	}
	n, err := Normalize(raw)
	if err != nil {
		return nil, false
	}
	m, ok := n.(map[string]any)
	return m, ok
}

// AsArray returns raw as a slice of elements. []any is returned as-is, other
// slices and arrays are copied element by element.
func AsArray(raw any) ([]any, bool) {
	if a, ok := raw.([]any); ok {
		return a, true
	}
	if raw == nil {
		return nil, false
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// []byte is a string on the wire
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	default:
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
