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

// Package envelope implements the wire wrapper every resource response
// travels in:
//
//	{"ok": true,  "data": <T>}
//	{"ok": false, "error": {"type": "...", "content": ...}}
//
// Exactly one payload member is present. Builders and marshalers always
// produce that shape; the codecs in this package reject anything else.
package envelope

import (
	"encoding/json"

	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/wire"
)

// Envelope is an outbound response wrapper. Build it with Ok or Err.
type Envelope struct {
	OK    bool
	Data  any
	Error *kind.Error
}

// Ok wraps a success payload.
func Ok(data any) Envelope {
	return Envelope{OK: true, Data: data}
}

// Err wraps a failure.
func Err(e *kind.Error) Envelope {
	return Envelope{Error: e}
}

// Fields returns the wire form of e. Only the member selected by OK is
// included; a success always carries "data", even when it is nil.
func (e Envelope) Fields() map[string]any {
	if e.OK {
		return map[string]any{"ok": true, "data": e.Data}
	}
	return map[string]any{"ok": false, "error": e.Error}
}

// MarshalJSON implements json.Marshaler.
func (e Envelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Fields())
}

// MarshalCBOR implements cbor.Marshaler with core deterministic encoding.
func (e Envelope) MarshalCBOR() ([]byte, error) {
	return wire.CBOR.Marshal(e.Fields())
}

// UnmarshalJSON implements json.Unmarshaler. The envelope shape is checked,
// data is kept in the JSON data model and the error must be a well-formed
// {type, content?} object of any kind.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	raw, err := wire.JSON.Unmarshal(b)
	if err != nil {
		return err
	}
	return e.fromRaw(raw)
}

// UnmarshalCBOR implements cbor.Unmarshaler with the same checks as
// UnmarshalJSON.
func (e *Envelope) UnmarshalCBOR(b []byte) error {
	raw, err := wire.CBOR.Unmarshal(b)
	if err != nil {
		return err
	}
	return e.fromRaw(raw)
}

func (e *Envelope) fromRaw(raw any) error {
	d, err := Any().Decode(raw)
	if err != nil {
		return err
	}
	*e = Envelope{OK: d.OK, Data: d.Data, Error: d.Error}
	return nil
}
