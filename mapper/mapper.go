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

package mapper

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/name"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// Options are applied in order, so a later option for the same kind wins.
// Every invalid kind, status or prefix is reported in the returned error.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	httpR, err := compile("http", b.http, b.fallbackHTTP)
	if err != nil {
		b.errs = append(b.errs, err)
	}
	grpcR, err := compile("grpc", b.grpc, b.fallbackGRPC)
	if err != nil {
		b.errs = append(b.errs, err)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return &mapper{http: httpR, grpc: grpcR}, nil
}

// Must is New that panics on error. Meant for package-level variables.
func Must(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Default is the mapper with no options applied.
var Default = Must()

type mapper struct {
	http resolver[int]
	grpc resolver[codes.Code]
}

// HTTPStatus resolves k raised by resource n. Precedence: override, longest
// matching resource prefix, kind default, fallback. The result is never 0.
func (m *mapper) HTTPStatus(k kind.Kind, n name.Name) int {
	v, _, _ := m.http.resolve(k, n)
	return v
}

// GRPCStatus is HTTPStatus for gRPC codes.
func (m *mapper) GRPCStatus(k kind.Kind, n name.Name) codes.Code {
	v, _, _ := m.grpc.resolve(k, n)
	return v
}

func (m *mapper) Status(k kind.Kind, n name.Name) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(k, n), GRPC: m.GRPCStatus(k, n)}
}

// Explain describes how both statuses were chosen, for example:
//
//	kind="NetworkError" resource="games.moves.submit"
//	http: source=prefix pattern="games.moves" -> 504
//	grpc: source=default -> Unavailable(14)
func (m *mapper) Explain(k kind.Kind, n name.Name) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q resource=%q\n", k, n)

	hv, hsrc, hpat := m.http.resolve(k, n)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describe(hsrc, hpat), hv)

	gv, gsrc, gpat := m.grpc.resolve(k, n)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describe(gsrc, gpat), gv, uint32(gv))
	return b.String()
}

func describe(src source, pattern string) string {
	if src == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", src, pattern)
	}
	return "source=" + string(src)
}
