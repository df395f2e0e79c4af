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
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	resources "github.com/movesthatmatter/resources-io"
	"github.com/movesthatmatter/resources-io/adapter"
	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/envelope"
	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/mapper"
)

// RawHandler serves one unary method on protobuf Values.
type RawHandler func(ctx context.Context, in *structpb.Value) (*structpb.Value, error)

// HandlerFunc is the application side of a resource.
type HandlerFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

// Service is a gRPC service assembled at runtime. Build it with NewService,
// add methods, then Register it before the server starts serving.
type Service struct {
	name    string
	methods []grpc.MethodDesc
}

// NewService returns an empty service with the fully qualified name, e.g.
// "games.v1.Games".
func NewService(fullName string) *Service {
	return &Service{name: fullName}
}

// Name is the fully qualified service name.
func (s *Service) Name() string { return s.name }

// FullMethod is the path clients call for method.
func (s *Service) FullMethod(method string) string {
	return "/" + s.name + "/" + method
}

// Handle adds a method served by h. Server interceptors run around h.
func (s *Service) Handle(method string, h RawHandler) {
	full := s.FullMethod(method)
	s.methods = append(s.methods, grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Value)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return h(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return h(ctx, req.(*structpb.Value))
			})
		},
	})
}

// Register adds the service to r.
func (s *Service) Register(r grpc.ServiceRegistrar) {
	r.RegisterService(&grpc.ServiceDesc{
		ServiceName: s.name,
		HandlerType: (*any)(nil),
		Methods:     append([]grpc.MethodDesc(nil), s.methods...),
		Streams:     []grpc.StreamDesc{},
		Metadata:    "resources",
	}, s)
}

type options struct {
	mapper apis.Mapper
}

// Option configures Add.
type Option func(*options)

// WithMapper sets the mapper that turns failure kinds into gRPC codes.
// Defaults to mapper.Default.
func WithMapper(m apis.Mapper) Option {
	return func(o *options) { o.mapper = m }
}

// errNotSent marks a status that Fail produced but could not attach.
var errNotSent = errors.New("grpcx: failure envelope not delivered")

// Add serves res as method of s with fn: the request is checked with
// Resource.ParseRequest, failures go through Resource.Fail and become status
// errors, successes go through Resource.Respond.
func Add[Req, Res any](s *Service, method string, res *resources.Resource[Req, Res], fn HandlerFunc[Req, Res], opts ...Option) {
	o := options{mapper: mapper.Default}
	for _, opt := range opts {
		opt(&o)
	}
	s.Handle(method, func(ctx context.Context, in *structpb.Value) (*structpb.Value, error) {
		fail := func(e *kind.Error) error {
			var sent error = errNotSent
			res.Fail(e, func(env envelope.Envelope) error {
				sent = Status(env.Error, res.Name(), o.mapper).Err()
				return nil
			})
			return sent
		}

		req := res.ParseRequest(FromValue(in))
		if !req.IsOk() {
			return nil, fail(req.Err())
		}
		out, err := fn(ctx, req.Value())
		if err != nil {
			return nil, fail(adapter.ToKind(err))
		}
		var resp *structpb.Value
		err = res.Respond(out, func(env envelope.Envelope) error {
			v, err := ToValue(env)
			if err != nil {
				return err
			}
			resp = v
			return nil
		})
		if err != nil {
			return nil, fail(kind.Server(fmt.Sprintf("encode response: %v", err)))
		}
		return resp, nil
	})
}

// UnaryServerInterceptor converts a *kind.Error returned by any unary
// handler into the status shape Add produces, using the method path as the
// resource name. Other errors pass through untouched.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	if m == nil {
		m = mapper.Default
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var ke *kind.Error
		if !errors.As(err, &ke) || ke == nil {
			return nil, err
		}
		return nil, Status(ke, methodName(info.FullMethod), m).Err()
	}
}
