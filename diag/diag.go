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

// Package diag holds the structured decode diagnostics produced by codecs.
//
// A Diagnostic pairs a dot-separated path into the decoded value (for example
// "error.content.0") with a human-readable message. The root of the value has
// the empty path. A List of diagnostics is itself an error, so codecs can
// return it directly from Decode.
package diag

import (
	"errors"
	"strconv"
	"strings"
)

// Diagnostic is one problem found while decoding a value.
type Diagnostic struct {
	// Path locates the offending value, segments joined with ".".
	// Array elements use their decimal index as the segment.
	Path string `json:"path"`

	// Message explains what was expected.
	Message string `json:"message"`
}

// String renders the diagnostic as "path: message", or just the message when
// the problem is at the root.
func (d Diagnostic) String() string {
	if d.Path == "" {
		return d.Message
	}
	return d.Path + ": " + d.Message
}

// List is an ordered set of diagnostics. A non-empty List is a decode failure.
type List []Diagnostic

// New returns a single-entry List.
func New(path, msg string) List {
	return List{{Path: path, Message: msg}}
}

// Error implements the error interface. Entries are joined with "; ".
func (l List) Error() string {
	if len(l) == 0 {
		return "diag: no diagnostics"
	}
	return strings.Join(l.Strings(), "; ")
}

// Strings renders every diagnostic with String. This is the wire form used in
// the content of BadRequestError and BadEncodingError.
func (l List) Strings() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	for i, d := range l {
		out[i] = d.String()
	}
	return out
}

// Prefix returns a copy of l with seg prepended to every path.
func (l List) Prefix(seg string) List {
	if len(l) == 0 || seg == "" {
		return l
	}
	out := make(List, len(l))
	for i, d := range l {
		out[i] = Diagnostic{Path: Join(seg, d.Path), Message: d.Message}
	}
	return out
}

// PrefixIndex is Prefix for array elements.
func (l List) PrefixIndex(i int) List {
	return l.Prefix(strconv.Itoa(i))
}

// Join concatenates non-empty path segments with ".".
func Join(segs ...string) string {
	var b strings.Builder
	for _, s := range segs {
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	return b.String()
}

// From extracts a List from err.
//
// A List anywhere in the chain is returned as-is. Any other non-nil error is
// turned into a single root diagnostic carrying err.Error(), so callers always
// get at least one entry for a failed decode. A nil error yields nil.
func From(err error) List {
	if err == nil {
		return nil
	}
	var l List
	if errors.As(err, &l) && len(l) > 0 {
		return l
	}
	return New("", err.Error())
}
