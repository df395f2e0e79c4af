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

package envelope

import (
	"github.com/movesthatmatter/resources-io/codec"
	"github.com/movesthatmatter/resources-io/diag"
	"github.com/movesthatmatter/resources-io/kind"
)

// Decoded is an inbound envelope after its payload has been decoded.
type Decoded[T any] struct {
	OK    bool
	Data  T
	Error *kind.Error
}

// asObject accepts outbound Envelope values through their wire form.
func asObject(raw any) (map[string]any, bool) {
	switch e := raw.(type) {
	case Envelope:
		return e.Fields(), true
	case *Envelope:
		if e == nil {
			return nil, false
		}
		return e.Fields(), true
	}
	return codec.AsObject(raw)
}

// shape checks the members common to both envelope variants and returns the
// value of "ok".
func shape(raw any) (map[string]any, bool, diag.List) {
	m, ok := asObject(raw)
	if !ok {
		_, err := codec.Mismatch[struct{}]("", "envelope object", raw)
		return nil, false, diag.From(err)
	}
	okv, d := codec.Field(m, "ok", codec.Bool())
	if d != nil {
		return nil, false, d
	}
	_, hasData := m["data"]
	_, hasErr := m["error"]
	switch {
	case hasData && hasErr:
		return nil, false, diag.New("", "envelope carries both data and error")
	case okv && hasErr:
		return nil, false, diag.New("error", "unexpected in a success envelope")
	case !okv && hasData:
		return nil, false, diag.New("data", "unexpected in a failure envelope")
	}
	return m, okv, nil
}

// OkCodec accepts {ok: true, data: T}.
func OkCodec[T any](data codec.Codec[T]) codec.Codec[T] {
	return codec.New("ok<"+data.Name()+">", func(raw any) (T, error) {
		var zero T
		m, okv, d := shape(raw)
		if d != nil {
			return zero, d
		}
		if !okv {
			return zero, diag.New("ok", "expected true, got false")
		}
		v, d := codec.Field(m, "data", data)
		if d != nil {
			return zero, d
		}
		return v, nil
	})
}

// ErrCodec accepts {ok: false, error: E} where E is accepted by errs.
func ErrCodec(errs kind.Codec) codec.Codec[*kind.Error] {
	return codec.New("err<"+errs.Name()+">", func(raw any) (*kind.Error, error) {
		m, okv, d := shape(raw)
		if d != nil {
			return nil, d
		}
		if okv {
			return nil, diag.New("ok", "expected false, got true")
		}
		e, d := codec.Field(m, "error", errs)
		if d != nil {
			return nil, d
		}
		return e, nil
	})
}

// Codec accepts either envelope variant and dispatches on "ok".
func Codec[T any](data codec.Codec[T], errs kind.Codec) codec.Codec[Decoded[T]] {
	okc, errc := OkCodec(data), ErrCodec(errs)
	return codec.New(okc.Name()+" | "+errc.Name(), func(raw any) (Decoded[T], error) {
		_, okv, d := shape(raw)
		if d != nil {
			return Decoded[T]{}, d
		}
		if okv {
			v, err := okc.Decode(raw)
			if err != nil {
				return Decoded[T]{}, err
			}
			return Decoded[T]{OK: true, Data: v}, nil
		}
		e, err := errc.Decode(raw)
		if err != nil {
			return Decoded[T]{}, err
		}
		return Decoded[T]{Error: e}, nil
	})
}

// looseError accepts any {type, content?} object whose type is a non-empty
// string.
var looseError = codec.New("error", func(raw any) (*kind.Error, error) {
	if e, isErr := raw.(*kind.Error); isErr && e != nil {
		return e, nil
	}
	m, ok := codec.AsObject(raw)
	if !ok {
		return codec.Mismatch[*kind.Error]("", "object", raw)
	}
	t, d := codec.Field(m, "type", codec.String())
	if d != nil {
		return nil, d
	}
	k := kind.Kind(t)
	if err := kind.Validate(k); err != nil {
		return nil, diag.New("type", err.Error())
	}
	return &kind.Error{Type: k, Content: m["content"]}, nil
})

// Any accepts any well-formed envelope, keeping data in the JSON data model.
func Any() codec.Codec[Decoded[any]] {
	return anyEnvelope
}

var anyEnvelope = Codec(codec.Any(), looseError)
