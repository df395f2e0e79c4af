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

package grpcx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/movesthatmatter/resources-io/apis"
)

// Transport is an apis.Transport that calls one unary method.
//
// A status error with a Value detail fails with *apis.TransportError whose
// Body is the detail; any other error fails without a body. Status is the
// gRPC code.
type Transport struct {
	Conn        grpc.ClientConnInterface
	Method      string // full method, e.g. "/games.v1.Games/Create"
	CallOptions []grpc.CallOption
}

var _ apis.Transport = (*Transport)(nil)

// Invoke implements apis.Transport.
func (t *Transport) Invoke(ctx context.Context, payload any) (apis.Response, error) {
	in, err := ToValue(payload)
	if err != nil {
		return apis.Response{}, &apis.TransportError{Cause: err}
	}
	out := new(structpb.Value)
	if err := t.Conn.Invoke(ctx, t.Method, in, out, t.CallOptions...); err != nil {
		te := &apis.TransportError{Cause: err}
		if st, ok := status.FromError(err); ok {
			te.Status = int(st.Code())
		}
		if body, ok := Envelope(err); ok {
			te.Body, te.BodyPresent = body, true
		}
		return apis.Response{}, te
	}
	return apis.Response{Data: FromValue(out)}, nil
}
