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
	"fmt"
	"slices"
	"strings"

	"github.com/movesthatmatter/resources-io/codec"
	"github.com/movesthatmatter/resources-io/diag"
)

// Discriminated is implemented by error codecs that only accept a fixed set of
// kinds. OneOf uses it to report only the diagnostics of the alternatives
// whose kind matches the payload's "type".
type Discriminated interface {
	Kinds() []Kind
}

// Codec is the error codec shape used by resources.
type Codec = codec.Codec[*Error]

// ContentFunc validates the content of one kind. raw is nil when content is
// absent or null.
type ContentFunc func(raw any) (any, error)

type kindCodec struct {
	kind    Kind
	name    string
	content ContentFunc
}

var _ Discriminated = kindCodec{}

func (c kindCodec) Name() string { return c.name }

func (c kindCodec) Kinds() []Kind { return []Kind{c.kind} }

func (c kindCodec) Decode(raw any) (*Error, error) {
	m, ok := asObject(raw)
	if !ok {
		return codec.Mismatch[*Error]("", "object", raw)
	}
	var issues diag.List
	if _, d := codec.Field(m, "type", codec.Literal(string(c.kind))); d != nil {
		issues = append(issues, d...)
	}
	content, err := c.content(m["content"])
	if err != nil {
		issues = append(issues, diag.From(err).Prefix("content")...)
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return &Error{Type: c.kind, Content: content}, nil
}

// asObject also accepts *Error and Error values through their wire form, so
// predicates and classification can run on already-decoded errors.
func asObject(raw any) (map[string]any, bool) {
	switch e := raw.(type) {
	case *Error:
		if e == nil {
			return nil, false
		}
		return e.Fields(), true
	case Error:
		return e.Fields(), true
	}
	return codec.AsObject(raw)
}

// New returns the codec for kind k with the given content rule.
func New(k Kind, content ContentFunc) Codec {
	if err := Validate(k); err != nil {
		panic(fmt.Sprintf("resources: error kind %q: %v", k, err))
	}
	return kindCodec{kind: k, name: string(k), content: content}
}

// Custom returns the codec for a resource-specific kind whose content is
// decoded by content. content always runs, with nil for absent content, so it
// decides whether content is required.
//
// Custom panics if k is empty.
func Custom[C any](k Kind, content codec.Codec[C]) Codec {
	return New(k, func(raw any) (any, error) {
		v, err := content.Decode(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// NoContent accepts only absent or null content.
func NoContent(raw any) (any, error) {
	if raw != nil {
		return codec.Mismatch[any]("", "no content", raw)
	}
	return nil, nil
}

// Messages accepts absent content or a list of strings.
func Messages(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	return stringsCodec.Decode(raw)
}

// Message accepts absent content or a string.
func Message(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	return codec.String().Decode(raw)
}

var stringsCodec = codec.Slice(codec.String())

var (
	badRequestCodec       = New(BadRequestError, Messages)
	badEncodingCodec      = New(BadEncodingError, Messages)
	badResponseCodec      = New(BadResponseError, NoContent)
	networkCodec          = New(NetworkError, NoContent)
	badErrorEncodingCodec = New(BadErrorEncodingError, NoContent)
	serverCodec           = New(ServerError, Message)
	inexistentCodec       = New(ResourceInexistent, NoContent)
	failureHandledCodec   = New(ResourceFailureHandled, NoContent)

	commonCodec = OneOf(
		badRequestCodec,
		badEncodingCodec,
		badResponseCodec,
		networkCodec,
		badErrorEncodingCodec,
		serverCodec,
		inexistentCodec,
	)
)

// BadRequestCodec accepts {type:"BadRequestError", content?: string[]}. It is
// the error codec of resources that declare none.
func BadRequestCodec() Codec { return badRequestCodec }

// BadEncodingCodec accepts {type:"BadEncodingError", content?: string[]}.
func BadEncodingCodec() Codec { return badEncodingCodec }

// BadResponseCodec accepts {type:"BadResponseError"}.
func BadResponseCodec() Codec { return badResponseCodec }

// NetworkCodec accepts {type:"NetworkError"}.
func NetworkCodec() Codec { return networkCodec }

// BadErrorEncodingCodec accepts {type:"BadErrorEncodingError"}.
func BadErrorEncodingCodec() Codec { return badErrorEncodingCodec }

// ServerCodec accepts {type:"ServerError", content?: string}.
func ServerCodec() Codec { return serverCodec }

// InexistentCodec accepts {type:"ResourceInexistent"}.
func InexistentCodec() Codec { return inexistentCodec }

// FailureHandledCodec accepts {type:"ResourceFailureHandled"}.
func FailureHandledCodec() Codec { return failureHandledCodec }

// CommonCodec accepts every common kind that may travel on the wire, i.e. all
// of them except ResourceFailureHandled.
func CommonCodec() Codec { return commonCodec }

type union struct {
	name   string
	codecs []Codec
	kinds  []Kind // nil when any member is open
}

// OneOf unions error codecs. Members are tried in order; when the payload's
// "type" names kinds some members declare, members that cannot accept it are
// skipped.
func OneOf(cs ...Codec) Codec {
	if len(cs) == 0 {
		panic("resources: kind.OneOf needs at least one codec")
	}
	u := union{codecs: cs}
	names := make([]string, len(cs))
	closed := true
	for i, c := range cs {
		names[i] = c.Name()
		d, ok := c.(Discriminated)
		if !ok || d.Kinds() == nil {
			closed = false
			continue
		}
		for _, k := range d.Kinds() {
			if !slices.Contains(u.kinds, k) {
				u.kinds = append(u.kinds, k)
			}
		}
	}
	if !closed {
		u.kinds = nil
	}
	u.name = strings.Join(names, " | ")
	return u
}

func (u union) Name() string { return u.name }

func (u union) Kinds() []Kind { return u.kinds }

func (u union) Decode(raw any) (*Error, error) {
	m, ok := asObject(raw)
	if !ok {
		return codec.Mismatch[*Error]("", "object", raw)
	}
	t, _ := m["type"].(string)

	var issues diag.List
	tried := 0
	for _, c := range u.codecs {
		if !accepts(c, Kind(t)) {
			continue
		}
		tried++
		e, err := c.Decode(m)
		if err == nil {
			return e, nil
		}
		issues = append(issues, diag.From(err)...)
	}
	if tried == 0 {
		if _, present := m["type"]; !present {
			return nil, diag.New("type", "required field is missing")
		}
		return nil, diag.New("type", fmt.Sprintf("unknown error type %s, expected one of %s",
			describe(m["type"]), strings.Join(kindNames(u.kinds), ", ")))
	}
	return nil, issues
}

func accepts(c Codec, k Kind) bool {
	d, ok := c.(Discriminated)
	if !ok || d.Kinds() == nil {
		return true
	}
	return slices.Contains(d.Kinds(), k)
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return codec.Describe(v)
}

func kindNames(ks []Kind) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = string(k)
	}
	return out
}

// All returns the codec for every error a resource with the given error codec
// can produce from the wire: CommonCodec first, then errCodec.
func All(errCodec Codec) Codec {
	if errCodec == nil {
		errCodec = badRequestCodec
	}
	return OneOf(commonCodec, errCodec)
}

// Is reports whether c accepts v. v may be a *Error, an Error or a raw
// payload.
func Is(c Codec, v any) bool {
	return codec.Is(c, v)
}

// IsBadRequest reports whether v is a well-formed BadRequestError.
func IsBadRequest(v any) bool { return Is(badRequestCodec, v) }

// IsBadEncoding reports whether v is a well-formed BadEncodingError.
func IsBadEncoding(v any) bool { return Is(badEncodingCodec, v) }

// IsBadResponse reports whether v is a well-formed BadResponseError.
func IsBadResponse(v any) bool { return Is(badResponseCodec, v) }

// IsBadErrorEncoding reports whether v is a well-formed BadErrorEncodingError.
func IsBadErrorEncoding(v any) bool { return Is(badErrorEncodingCodec, v) }

// IsNetwork reports whether v is a well-formed NetworkError.
func IsNetwork(v any) bool { return Is(networkCodec, v) }

// IsServerError reports whether v is a well-formed ServerError.
func IsServerError(v any) bool { return Is(serverCodec, v) }

// IsInexistent reports whether v is a well-formed ResourceInexistent error.
func IsInexistent(v any) bool { return Is(inexistentCodec, v) }

// IsResourceFailureHandled reports whether v is the ResourceFailureHandled
// sentinel.
func IsResourceFailureHandled(v any) bool { return Is(failureHandledCodec, v) }

// IsCommon reports whether v is any wire-decodable common error.
func IsCommon(v any) bool { return Is(commonCodec, v) }
