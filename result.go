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

package resources

import (
	"github.com/movesthatmatter/resources-io/adapter"
	"github.com/movesthatmatter/resources-io/kind"
)

// Result is the outcome of a resource operation: a value or an error kind,
// never both.
type Result[T any] struct {
	val T
	err *kind.Error
}

// Ok wraps a value.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Err wraps a failure. A nil e is recorded as a ServerError so that a
// failed Result always carries a kind.
func Err[T any](e *kind.Error) Result[T] {
	if e == nil {
		e = kind.Server("")
	}
	return Result[T]{err: e}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Value returns the value, or the zero T for a failure.
func (r Result[T]) Value() T { return r.val }

// ValueOr returns the value, or def for a failure.
func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.val
}

// Err returns the failure, or nil.
func (r Result[T]) Err() *kind.Error { return r.err }

// Unwrap returns the pair in the usual Go form. The error is a *kind.Error
// and is a true nil on success.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		return r.val, r.err
	}
	return r.val, nil
}

// ResultFrom builds a Result from a Go (value, error) pair, converting err
// with adapter.ToKind.
func ResultFrom[T any](v T, err error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	return Err[T](adapter.ToKind(err))
}
