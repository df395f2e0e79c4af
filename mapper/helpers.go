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

package mapper

import (
	"fmt"
	"maps"

	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/mapper/internal/segmenttrie"
	"github.com/movesthatmatter/resources-io/name"
)

// resolver is the frozen form of a table for one transport.
type resolver[V any] struct {
	overrides map[kind.Kind]V
	tries     map[kind.Kind]*segmenttrie.Trie[V]
	defaults  map[kind.Kind]V
	fallback  V
}

// compile normalizes every prefix, builds one trie per kind and copies the
// maps so the result shares nothing with the builder.
func compile[V any](transport string, t table[V], fallback V) (resolver[V], error) {
	r := resolver[V]{
		overrides: nilIfEmpty(maps.Clone(t.overrides)),
		defaults:  nilIfEmpty(maps.Clone(t.defaults)),
		fallback:  fallback,
	}
	for k, rules := range t.prefixes {
		if len(rules) == 0 {
			continue
		}
		tr := segmenttrie.New[V]()
		for _, ru := range rules {
			p := string(name.Normalize(ru.prefix))
			if err := tr.Insert(p, ru.val); err != nil {
				return resolver[V]{}, fmt.Errorf("mapper: %s prefix %q for kind %s: %w", transport, ru.prefix, k, err)
			}
		}
		if r.tries == nil {
			r.tries = make(map[kind.Kind]*segmenttrie.Trie[V], len(t.prefixes))
		}
		r.tries[k] = tr
	}
	return r, nil
}

// resolve returns the value for (k, n), the tier it came from and, for
// prefix hits, the matched pattern.
func (r *resolver[V]) resolve(k kind.Kind, n name.Name) (v V, src source, pattern string) {
	if v, ok := r.overrides[k]; ok {
		return v, sourceOverride, ""
	}
	if tr := r.tries[k]; tr != nil && n != name.Empty {
		if v, ok, p := tr.MatchWithPattern(string(n)); ok {
			return v, sourcePrefix, p
		}
	}
	if v, ok := r.defaults[k]; ok {
		return v, sourceDefault, ""
	}
	return r.fallback, sourceFallback, ""
}

type source string

const (
	sourceOverride source = "override"
	sourcePrefix   source = "prefix"
	sourceDefault  source = "default"
	sourceFallback source = "fallback"
)

func nilIfEmpty[K comparable, V any](m map[K]V) map[K]V {
	if len(m) == 0 {
		return nil
	}
	return m
}
