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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/movesthatmatter/resources-io/diag"
)

// JSONOption configures a JSON codec.
type JSONOption func(*jsonOpts)

type jsonOpts struct {
	strict bool
}

// Strict rejects object keys that have no matching struct field.
func Strict() JSONOption {
	return func(o *jsonOpts) { o.strict = true }
}

// JSON decodes into T using encoding/json struct tags. raw is re-encoded and
// decoded into a fresh T, so every shape T's fields accept is accepted.
// A raw value that already is a T is returned as-is.
//
// encoding/json does not enforce presence of fields; use a CUE codec when
// required fields matter.
func JSON[T any](name string, opts ...JSONOption) Codec[T] {
	var o jsonOpts
	for _, opt := range opts {
		opt(&o)
	}
	if name == "" {
		name = reflect.TypeFor[T]().String()
	}
	return New(name, func(raw any) (T, error) {
		var out T
		if v, ok := raw.(T); ok {
			return v, nil
		}
		b, err := json.Marshal(raw)
		if err != nil {
			return out, diag.New("", fmt.Sprintf("cannot encode %s: %v", Describe(raw), err))
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		if o.strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&out); err != nil {
			return out, jsonIssue(err)
		}
		return out, nil
	})
}

func jsonIssue(err error) diag.List {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return diag.New(typeErr.Field, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value))
	}
	return diag.New("", err.Error())
}
