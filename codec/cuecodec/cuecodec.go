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

// Package cuecodec builds codecs from CUE schemas.
//
// A schema is compiled once. Every Decode compiles the raw value as data,
// unifies it with the schema, validates the result as concrete and final, and
// decodes it into T. Validation failures are reported per path:
//
//	c := cuecodec.MustNew[Move]("move", `{from: =~"^[a-h][1-8]$", to: =~"^[a-h][1-8]$", promotion?: "q" | "r" | "b" | "n"}`)
package cuecodec

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/movesthatmatter/resources-io/codec"
	"github.com/movesthatmatter/resources-io/diag"
)

// ErrSchemaInvalid is returned by New when the schema does not compile.
var ErrSchemaInvalid = errors.New("cuecodec: invalid schema")

// Option configures a Codec.
type Option func(*options)

type options struct {
	definition string
}

// Definition selects a definition (for example "#Move") inside the schema
// source as the value to validate against.
func Definition(def string) Option {
	return func(o *options) { o.definition = def }
}

// Codec is a codec.Codec backed by a CUE schema.
//
// A cue.Context is not safe for concurrent use, so every Decode holds mu.
type Codec[T any] struct {
	name   string
	mu     sync.Mutex
	ctx    *cue.Context
	schema cue.Value

	// base is the path of schema inside the compiled source, stripped from
	// diagnostics so they point into the decoded value.
	base []string
}

var _ codec.Codec[struct{}] = (*Codec[struct{}])(nil)

// New compiles src and returns a codec for T.
func New[T any](name, src string, opts ...Option) (*Codec[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	ctx := cuecontext.New()
	schema := ctx.CompileString(src, cue.Filename(name+".cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrSchemaInvalid, name, cueerrors.Details(err, nil))
	}
	if o.definition != "" {
		schema = schema.LookupPath(cue.ParsePath(o.definition))
		if !schema.Exists() {
			return nil, fmt.Errorf("%w: %s: definition %s not found", ErrSchemaInvalid, name, o.definition)
		}
	}
	var base []string
	for _, sel := range schema.Path().Selectors() {
		base = append(base, sel.String())
	}
	return &Codec[T]{name: name, ctx: ctx, schema: schema, base: base}, nil
}

// MustNew is New that panics on error.
func MustNew[T any](name, src string, opts ...Option) *Codec[T] {
	c, err := New[T](name, src, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name implements codec.Codec.
func (c *Codec[T]) Name() string { return c.name }

// Decode implements codec.Codec.
func (c *Codec[T]) Decode(raw any) (T, error) {
	var out T
	b, err := json.Marshal(raw)
	if err != nil {
		return out, diag.New("", fmt.Sprintf("cannot encode %s: %v", codec.Describe(raw), err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// CompileBytes keeps integers as ints, which a float64 round trip would not.
	data := c.ctx.CompileBytes(b)
	if err := data.Err(); err != nil {
		return out, issues(err, c.base)
	}
	unified := c.schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return out, issues(err, c.base)
	}
	if err := unified.Decode(&out); err != nil {
		return out, issues(err, c.base)
	}
	return out, nil
}

func issues(err error, base []string) diag.List {
	var out diag.List
	seen := make(map[diag.Diagnostic]struct{})
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		path := e.Path()
		if len(path) >= len(base) && slices.Equal(path[:len(base)], base) {
			path = path[len(base):]
		}
		d := diag.Diagnostic{
			Path:    strings.Join(path, "."),
			Message: fmt.Sprintf(format, args...),
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	if len(out) == 0 {
		return diag.New("", err.Error())
	}
	return out
}
