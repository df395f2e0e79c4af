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
	"google.golang.org/grpc/codes"

	"github.com/movesthatmatter/resources-io/kind"
)

type rule[V any] struct {
	// prefix is the raw resource-name prefix; normalized when compiled.
	prefix string
	val    V
}

// table collects the user rules for one transport.
type table[V any] struct {
	defaults  map[kind.Kind]V
	overrides map[kind.Kind]V
	prefixes  map[kind.Kind][]rule[V]
}

func newTable[V any](seed map[kind.Kind]V) table[V] {
	t := table[V]{
		defaults:  make(map[kind.Kind]V, len(seed)),
		overrides: make(map[kind.Kind]V),
		prefixes:  make(map[kind.Kind][]rule[V]),
	}
	for k, v := range seed {
		t.defaults[k] = v
	}
	return t
}

type builder struct {
	http table[int]
	grpc table[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code

	// errs collects invalid kinds and statuses reported by options.
	errs []error
}

func newBuilder() *builder {
	return &builder{
		http:         newTable(defaultHTTP),
		grpc:         newTable(defaultGRPC),
		fallbackHTTP: defaultFallbackHTTP,
		fallbackGRPC: defaultFallbackGRPC,
	}
}
