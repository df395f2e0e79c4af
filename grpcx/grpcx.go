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

// Package grpcx carries resources over gRPC unary calls.
//
// Requests and envelopes travel as google.protobuf.Value messages, so no
// generated code is needed: a Service is a hand-built grpc.ServiceDesc whose
// methods each serve one resource. A success returns the {ok: true, data}
// envelope as the response message. A failure returns a status whose code
// comes from a mapper and whose details carry the {ok: false, error}
// envelope, which Transport hands back to Resource.Request as the failure
// body.
package grpcx

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/movesthatmatter/resources-io/adapter"
	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/envelope"
	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/name"
)

// ToValue converts v to a protobuf Value through its JSON encoding, so
// structs, envelopes and errors keep their JSON shape.
func ToValue(v any) (*structpb.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("grpcx: encode: %w", err)
	}
	out := new(structpb.Value)
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("grpcx: encode: %w", err)
	}
	return out, nil
}

// FromValue converts a protobuf Value to the JSON data model. A nil Value
// yields nil.
func FromValue(v *structpb.Value) any {
	if v == nil {
		return nil
	}
	return v.AsInterface()
}

// Status builds the gRPC status for e raised by resource n: the code comes
// from m, the message is e.Error() and the failure envelope rides in the
// details.
func Status(e *kind.Error, n name.Name, m apis.Mapper) *status.Status {
	st := status.New(adapter.ToStatus(e, n, m).GRPC, e.Error())
	v, err := ToValue(envelope.Err(e))
	if err != nil {
		return st
	}
	if with, err := st.WithDetails(v); err == nil {
		return with
	}
	return st
}

// Envelope extracts the failure envelope from the details of a status
// error, if present.
func Envelope(err error) (any, bool) {
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return nil, false
	}
	for _, d := range st.Details() {
		if v, ok := d.(*structpb.Value); ok {
			return v.AsInterface(), true
		}
	}
	return nil, false
}

// methodName turns "/games.v1.Games/Create" into the resource name
// "games.v1.games.create"; names that do not fit yield name.Empty.
func methodName(fullMethod string) name.Name {
	n, err := name.Parse(strings.TrimPrefix(fullMethod, "/"))
	if err != nil {
		return name.Empty
	}
	return n
}
