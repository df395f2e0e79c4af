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
	"math"
	"reflect"
	"strconv"
)

// String accepts JSON strings.
func String() Codec[string] {
	return stringCodec
}

// Number accepts any JSON number (and every Go integer or float kind) as
// float64.
func Number() Codec[float64] {
	return numberCodec
}

// Int accepts integral JSON numbers.
func Int() Codec[int64] {
	return intCodec
}

// Bool accepts JSON booleans.
func Bool() Codec[bool] {
	return boolCodec
}

// Any accepts every value, including null, and returns it unchanged.
func Any() Codec[any] {
	return anyCodec
}

// Empty accepts null or an object without keys. It is the request codec for
// operations that take no input.
func Empty() Codec[struct{}] {
	return emptyCodec
}

var (
	stringCodec = New("string", func(raw any) (string, error) {
		if s, ok := raw.(string); ok {
			return s, nil
		}
		rv := reflect.ValueOf(raw)
		if raw != nil && rv.Kind() == reflect.String {
			return rv.String(), nil
		}
		return Mismatch[string]("", "string", raw)
	})

	numberCodec = New("number", func(raw any) (float64, error) {
		f, ok := toFloat(raw)
		if !ok {
			return Mismatch[float64]("", "number", raw)
		}
		return f, nil
	})

	intCodec = New("integer", func(raw any) (int64, error) {
		switch v := raw.(type) {
		case json.Number:
			if i, err := v.Int64(); err == nil {
				return i, nil
			}
		}
		f, ok := toFloat(raw)
		if !ok {
			return Mismatch[int64]("", "integer", raw)
		}
		if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
			return Fail[int64]("", "expected integer, got %s", strconv.FormatFloat(f, 'g', -1, 64))
		}
		return int64(f), nil
	})

	boolCodec = New("boolean", func(raw any) (bool, error) {
		if b, ok := raw.(bool); ok {
			return b, nil
		}
		return Mismatch[bool]("", "boolean", raw)
	})

	anyCodec = New("any", func(raw any) (any, error) {
		return raw, nil
	})

	emptyCodec = New("empty", func(raw any) (struct{}, error) {
		if raw == nil {
			return struct{}{}, nil
		}
		if m, ok := AsObject(raw); ok && len(m) == 0 {
			return struct{}{}, nil
		}
		return Mismatch[struct{}]("", "null or empty object", raw)
	})
)

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return 0, false
}

// Literal accepts exactly v. Numeric literals match any numeric raw value
// that compares equal.
func Literal[T comparable](v T) Codec[T] {
	want, numeric := toFloat(v)
	return New("literal("+describeLiteral(v)+")", func(raw any) (T, error) {
		if got, ok := raw.(T); ok && got == v {
			return v, nil
		}
		if numeric {
			if f, ok := toFloat(raw); ok && f == want {
				return v, nil
			}
		}
		return Fail[T]("", "expected %s, got %s", describeLiteral(v), describeLiteral(raw))
	})
}

func describeLiteral(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return Describe(v)
	}
	return string(b)
}
