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

// Package wire provides the byte-level formats envelopes and payloads travel
// in. JSON is the default; CBOR (core deterministic encoding) is the compact
// alternative. Both decode into the JSON data model that codecs consume:
// objects become map[string]any, arrays []any.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// MaxBodySize bounds any single encoded payload read by transports.
const MaxBodySize = 1 << 20

// ErrUnknownFormat is returned when no format matches a name or content type.
var ErrUnknownFormat = errors.New("wire: unknown format")

// Format encodes and decodes payloads.
type Format interface {
	// Name is the short config name, e.g. "json".
	Name() string
	// ContentType is the MIME type sent on the wire.
	ContentType() string
	// Marshal encodes v.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes b into the JSON data model.
	Unmarshal(b []byte) (any, error)
}

var (
	// JSON is the application/json format.
	JSON Format = jsonFormat{}
	// CBOR is the application/cbor format.
	CBOR Format = newCBOR()
)

type jsonFormat struct{}

func (jsonFormat) Name() string        { return "json" }
func (jsonFormat) ContentType() string { return "application/json" }

func (jsonFormat) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonFormat) Unmarshal(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("wire: json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("wire: json: trailing data after value")
	}
	return out, nil
}

type cborFormat struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func newCBOR() cborFormat {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}
	dec, err := cbor.DecOptions{
		// any-typed targets must come out as map[string]any so the
		// result can be handed to codecs and encoding/json.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("wire: CBOR decoder initialization failed: " + err.Error())
	}
	return cborFormat{enc: enc, dec: dec}
}

func (cborFormat) Name() string        { return "cbor" }
func (cborFormat) ContentType() string { return "application/cbor" }

func (f cborFormat) Marshal(v any) ([]byte, error) {
	return f.enc.Marshal(v)
}

func (f cborFormat) Unmarshal(b []byte) (any, error) {
	var out any
	if err := f.dec.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("wire: cbor: %w", err)
	}
	return out, nil
}

var formats = []Format{JSON, CBOR}

// ByName returns the format registered under name ("json" or "cbor").
func ByName(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range formats {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ByContentType returns the format for a Content-Type header value.
// Parameters are ignored and an empty value selects JSON.
func ByContentType(ct string) (Format, error) {
	if strings.TrimSpace(ct) == "" {
		return JSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownFormat, ct, err)
	}
	for _, f := range formats {
		if f.ContentType() == mt {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ct)
}

// Read decodes at most MaxBodySize bytes from r with f.
func Read(f Format, r io.Reader) (any, error) {
	b, err := io.ReadAll(io.LimitReader(r, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("wire: read: %w", err)
	}
	if len(b) > MaxBodySize {
		return nil, fmt.Errorf("wire: body exceeds %d bytes", MaxBodySize)
	}
	if len(b) == 0 {
		return nil, nil
	}
	return f.Unmarshal(b)
}
