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

package kind

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/movesthatmatter/resources-io/diag"
)

// Error is a failure outcome of a resource call.
//
// It is also the "error" member of a failure envelope: Type and Content are
// its wire form. Issues keeps the structured diagnostics of locally produced
// BadRequestError and BadEncodingError values and is never serialized.
//
// Errors are immutable once built; With* helpers return shallow copies.
type Error struct {
	// Type is the discriminator, e.g. BadRequestError or a custom kind.
	Type Kind `json:"type" cbor:"type"`

	// Content is the kind-specific payload. Absent when nil.
	Content any `json:"content,omitempty" cbor:"content,omitempty"`

	// Issues holds the diagnostics behind Content when they were produced
	// locally by a codec.
	Issues diag.List `json:"-" cbor:"-"`
}

// E builds an Error of kind k with the given content and applies opts in
// order.
func E(k Kind, content any, opts ...Option) *Error {
	e := &Error{Type: k, Content: content}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the error interface.
//
// The format is "<Type>" or "<Type>: <content>" when content is present.
// String lists are joined with "; ", other content is rendered as JSON.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Content == nil {
		return string(e.Type)
	}
	return fmt.Sprintf("%s: %s", e.Type, renderContent(e.Content))
}

func renderContent(c any) string {
	switch v := c.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "; ")
	}
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprint(c)
	}
	return string(b)
}

// Is makes errors.Is match any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Type == t.Type
}

// Retryable reports whether repeating the call could succeed. Only
// NetworkError qualifies; encoding failures point at a contract mismatch and
// local or business failures will not change on their own.
func (e *Error) Retryable() bool {
	return e != nil && e.Type == NetworkError
}

// Encoding reports whether e is one of the wire-malformation kinds.
func (e *Error) Encoding() bool {
	if e == nil {
		return false
	}
	switch e.Type {
	case BadEncodingError, BadErrorEncodingError, BadResponseError:
		return true
	}
	return false
}

// Fields returns the wire form {"type": ..., "content"?: ...}.
func (e *Error) Fields() map[string]any {
	if e == nil {
		return nil
	}
	m := map[string]any{"type": string(e.Type)}
	if e.Content != nil {
		m["content"] = e.Content
	}
	return m
}

// WithContent returns a copy of e carrying c.
func (e *Error) WithContent(c any) *Error {
	cp := *e
	cp.Content = c
	return &cp
}

// WithIssues returns a copy of e carrying l. When e has no content yet, l is
// also rendered into Content as a list of strings.
func (e *Error) WithIssues(l diag.List) *Error {
	cp := *e
	cp.Issues = append(diag.List(nil), l...)
	if cp.Content == nil && len(l) > 0 {
		cp.Content = l.Strings()
	}
	return &cp
}

// Option transforms an Error under construction.
type Option func(*Error) *Error

// WithContentOption sets Content on construction.
func WithContentOption(c any) Option {
	return func(e *Error) *Error { return e.WithContent(c) }
}

// WithIssuesOption sets Issues on construction.
func WithIssuesOption(l diag.List) Option {
	return func(e *Error) *Error { return e.WithIssues(l) }
}

// BadRequest builds a BadRequestError. With no messages content is absent.
func BadRequest(msgs ...string) *Error {
	if len(msgs) == 0 {
		return &Error{Type: BadRequestError}
	}
	return &Error{Type: BadRequestError, Content: append([]string(nil), msgs...)}
}

// BadRequestFrom builds a BadRequestError from codec diagnostics.
func BadRequestFrom(l diag.List) *Error {
	return E(BadRequestError, nil, WithIssuesOption(l))
}

// BadEncoding builds a BadEncodingError from codec diagnostics.
func BadEncoding(l diag.List) *Error {
	return E(BadEncodingError, nil, WithIssuesOption(l))
}

// BadResponse builds a BadResponseError.
func BadResponse() *Error { return &Error{Type: BadResponseError} }

// BadErrorEncoding builds a BadErrorEncodingError.
func BadErrorEncoding() *Error { return &Error{Type: BadErrorEncodingError} }

// Network builds a NetworkError.
func Network() *Error { return &Error{Type: NetworkError} }

// Server builds a ServerError. An empty message leaves content absent.
func Server(msg string) *Error {
	if msg == "" {
		return &Error{Type: ServerError}
	}
	return &Error{Type: ServerError, Content: msg}
}

// Inexistent builds a ResourceInexistent error.
func Inexistent() *Error { return &Error{Type: ResourceInexistent} }

// FailureHandled builds the ResourceFailureHandled sentinel.
func FailureHandled() *Error { return &Error{Type: ResourceFailureHandled} }
