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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/movesthatmatter/resources-io/codec"
	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/wire"
)

func TestMarshalJSON_Shape(t *testing.T) {
	b, err := json.Marshal(Ok(42))
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true,"data":42}`, string(b))

	b, err = json.Marshal(Ok(nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true,"data":null}`, string(b))

	b, err = json.Marshal(Err(kind.BadRequest("must not be empty")))
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":false,"error":{"type":"BadRequestError","content":["must not be empty"]}}`, string(b))

	b, err = json.Marshal(Err(kind.Network()))
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":false,"error":{"type":"NetworkError"}}`, string(b))
}

func TestUnmarshalJSON(t *testing.T) {
	var e Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"ok":true,"data":{"id":"g1"}}`), &e))
	require.True(t, e.OK)
	require.Equal(t, map[string]any{"id": "g1"}, e.Data)

	require.NoError(t, json.Unmarshal([]byte(`{"ok":false,"error":{"type":"RoomFull","content":{"seats":2}}}`), &e))
	require.False(t, e.OK)
	require.Nil(t, e.Data)
	require.Equal(t, kind.Kind("RoomFull"), e.Error.Type)
	require.Equal(t, map[string]any{"seats": 2.0}, e.Error.Content)
}

func TestUnmarshalJSON_Rejects(t *testing.T) {
	tests := map[string]string{
		"not object":       `[1]`,
		"missing ok":       `{"data":1}`,
		"ok not bool":      `{"ok":"yes","data":1}`,
		"both payloads":    `{"ok":true,"data":1,"error":{"type":"ServerError"}}`,
		"error on success": `{"ok":true,"error":{"type":"ServerError"}}`,
		"data on failure":  `{"ok":false,"data":1}`,
		"missing data":     `{"ok":true}`,
		"missing error":    `{"ok":false}`,
		"empty error type": `{"ok":false,"error":{"type":""}}`,
		"error not object": `{"ok":false,"error":"boom"}`,
		"trailing garbage": `{"ok":true,"data":1} x`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			var e Envelope
			require.Error(t, json.Unmarshal([]byte(in), &e))
		})
	}
}

func TestCBOR_RoundTrip(t *testing.T) {
	in := Err(kind.E("RoomFull", map[string]any{"seats": uint64(2)}))
	b, err := in.MarshalCBOR()
	require.NoError(t, err)

	var out Envelope
	require.NoError(t, out.UnmarshalCBOR(b))
	require.False(t, out.OK)
	require.Equal(t, kind.Kind("RoomFull"), out.Error.Type)
	require.Equal(t, map[string]any{"seats": uint64(2)}, out.Error.Content)

	b, err = wire.CBOR.Marshal(Ok("hello"))
	require.NoError(t, err)
	raw, err := wire.CBOR.Unmarshal(b)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"ok": true, "data": "hello"}, raw)
}

func TestCodec(t *testing.T) {
	c := Codec(codec.Number(), kind.All(nil))

	d, err := c.Decode(map[string]any{"ok": true, "data": 42.0})
	require.NoError(t, err)
	require.True(t, d.OK)
	require.Equal(t, 42.0, d.Data)

	d, err = c.Decode(map[string]any{
		"ok":    false,
		"error": map[string]any{"type": "BadRequestError", "content": []any{"must not be empty"}},
	})
	require.NoError(t, err)
	require.False(t, d.OK)
	require.Equal(t, kind.BadRequest("must not be empty"), d.Error)

	_, err = c.Decode(map[string]any{"ok": true, "data": "42"})
	require.EqualError(t, err, "data: expected number, got string")

	_, err = c.Decode(map[string]any{"ok": false, "error": map[string]any{"type": "RoomFull"}})
	require.Error(t, err)
}

func TestCodec_AcceptsOutboundEnvelope(t *testing.T) {
	c := Codec(codec.String(), kind.All(nil))
	d, err := c.Decode(Ok("fen"))
	require.NoError(t, err)
	require.Equal(t, "fen", d.Data)

	d, err = c.Decode(Err(kind.Server("db down")))
	require.NoError(t, err)
	require.Equal(t, kind.ServerError, d.Error.Type)
	require.Equal(t, "db down", d.Error.Content)
}

func TestOkAndErrCodec(t *testing.T) {
	okc := OkCodec(codec.Bool())
	require.Equal(t, "ok<boolean>", okc.Name())
	_, err := okc.Decode(map[string]any{"ok": false, "error": map[string]any{"type": "ServerError"}})
	require.EqualError(t, err, "ok: expected true, got false")

	errc := ErrCodec(kind.NetworkCodec())
	_, err = errc.Decode(map[string]any{"ok": true, "data": 1.0})
	require.EqualError(t, err, "ok: expected false, got true")
	e, err := errc.Decode(map[string]any{"ok": false, "error": map[string]any{"type": "NetworkError"}})
	require.NoError(t, err)
	require.Equal(t, kind.Network(), e)
}
