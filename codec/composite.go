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
	"sort"
	"strings"

	"github.com/movesthatmatter/resources-io/diag"
)

// Slice decodes an array whose elements all satisfy elem. Element
// diagnostics are prefixed with their index; every element is checked.
func Slice[T any](elem Codec[T]) Codec[[]T] {
	return New("array<"+elem.Name()+">", func(raw any) ([]T, error) {
		items, ok := AsArray(raw)
		if !ok {
			return Mismatch[[]T]("", "array", raw)
		}
		out := make([]T, len(items))
		var issues diag.List
		for i, item := range items {
			v, err := elem.Decode(item)
			if err != nil {
				issues = append(issues, diag.From(err).PrefixIndex(i)...)
				continue
			}
			out[i] = v
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return out, nil
	})
}

// Record decodes an object whose values all satisfy elem.
func Record[T any](elem Codec[T]) Codec[map[string]T] {
	return New("record<"+elem.Name()+">", func(raw any) (map[string]T, error) {
		m, ok := AsObject(raw)
		if !ok {
			return Mismatch[map[string]T]("", "object", raw)
		}
		out := make(map[string]T, len(m))
		var issues diag.List
		for _, k := range sortedKeys(m) {
			v, err := elem.Decode(m[k])
			if err != nil {
				issues = append(issues, diag.From(err).Prefix(k)...)
				continue
			}
			out[k] = v
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return out, nil
	})
}

// Optional accepts null in addition to whatever c accepts. Null decodes to a
// nil pointer.
func Optional[T any](c Codec[T]) Codec[*T] {
	return New(c.Name()+"?", func(raw any) (*T, error) {
		if raw == nil {
			return nil, nil
		}
		v, err := c.Decode(raw)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}

// OneOf tries each codec in order and returns the first success. When all
// fail, the diagnostics of every alternative are reported.
func OneOf[T any](cs ...Codec[T]) Codec[T] {
	if len(cs) == 0 {
		panic("codec: OneOf needs at least one codec")
	}
	if len(cs) == 1 {
		return cs[0]
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name()
	}
	return New(strings.Join(names, " | "), func(raw any) (T, error) {
		var issues diag.List
		for _, c := range cs {
			v, err := c.Decode(raw)
			if err == nil {
				return v, nil
			}
			issues = append(issues, diag.From(err)...)
		}
		var zero T
		return zero, issues
	})
}

// Field decodes m[key] with c. A missing key is reported as such, so codecs
// that allow absence should use OptionalField.
func Field[T any](m map[string]any, key string, c Codec[T]) (T, diag.List) {
	raw, ok := m[key]
	if !ok {
		var zero T
		return zero, diag.New(key, "required field is missing")
	}
	v, err := c.Decode(raw)
	if err != nil {
		var zero T
		return zero, diag.From(err).Prefix(key)
	}
	return v, nil
}

// OptionalField decodes m[key] with c when the key is present and non-null.
func OptionalField[T any](m map[string]any, key string, c Codec[T]) (*T, diag.List) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	v, err := c.Decode(raw)
	if err != nil {
		return nil, diag.From(err).Prefix(key)
	}
	return &v, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
