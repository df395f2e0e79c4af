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

// Package httpx carries resources over HTTP.
//
// Transport is the client side: it POSTs the encoded request and hands the
// answer back to Resource.Request. Handler is the server side: it decodes the
// body, validates it with Resource.ParseRequest, runs the application
// function and answers with an envelope whose HTTP status comes from a
// mapper.
//
// JSON and CBOR bodies are both understood; the request Content-Type picks
// the format and the answer uses the same one.
package httpx

import (
	"context"
	"fmt"
	"net/http"

	resources "github.com/movesthatmatter/resources-io"
	"github.com/movesthatmatter/resources-io/adapter"
	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/envelope"
	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/mapper"
	"github.com/movesthatmatter/resources-io/name"
	"github.com/movesthatmatter/resources-io/wire"
)

// Writer writes envelopes to an http.ResponseWriter, resolving failure
// statuses through Mapper.
type Writer struct {
	Mapper apis.Mapper
	Format wire.Format
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default
	}
	return w.Mapper
}

func (w Writer) format() wire.Format {
	if w.Format == nil {
		return wire.JSON
	}
	return w.Format
}

// Sender returns a resources.Sender that writes one envelope with status.
func (w Writer) Sender(rw http.ResponseWriter, status int) resources.Sender {
	f := w.format()
	return func(env envelope.Envelope) error {
		b, err := f.Marshal(env)
		if err != nil {
			return fmt.Errorf("httpx: encode envelope: %w", err)
		}
		rw.Header().Set("Content-Type", f.ContentType())
		rw.WriteHeader(status)
		_, err = rw.Write(b)
		return err
	}
}

// WriteError writes {ok: false, error} for err raised by resource n. Plain Go
// errors are converted with adapter.ToKind.
func (w Writer) WriteError(rw http.ResponseWriter, n name.Name, err error) {
	e := adapter.ToKind(err)
	if e == nil {
		e = kind.Server("")
	}
	_ = w.Sender(rw, adapter.ToStatus(e, n, w.mapper()).HTTP)(envelope.Err(e))
}

// HandlerFunc is the application side of a resource.
type HandlerFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

type options struct {
	mapper apis.Mapper
}

// Option configures Handler.
type Option func(*options)

// WithMapper sets the mapper that turns failure kinds into HTTP statuses.
// Defaults to mapper.Default.
func WithMapper(m apis.Mapper) Option {
	return func(o *options) { o.mapper = m }
}

// Handler serves res over HTTP with fn.
//
// Only POST is accepted. The body is decoded by its Content-Type (JSON when
// absent) and limited to wire.MaxBodySize bytes. Rejected requests and
// failures returned by fn are sent with Resource.Fail; successes with
// Resource.Respond and status 200.
func Handler[Req, Res any](res *resources.Resource[Req, Res], fn HandlerFunc[Req, Res], opts ...Option) http.Handler {
	o := options{mapper: mapper.Default}
	for _, opt := range opts {
		opt(&o)
	}
	return http.HandlerFunc(func(hw http.ResponseWriter, r *http.Request) {
		rw := &statusWriter{ResponseWriter: hw}
		w := Writer{Mapper: o.mapper, Format: wire.JSON}

		if r.Method != http.MethodPost {
			rw.Header().Set("Allow", http.MethodPost)
			_ = w.Sender(rw, http.StatusMethodNotAllowed)(envelope.Err(kind.BadRequest("method " + r.Method + " not allowed")))
			return
		}
		f, err := wire.ByContentType(r.Header.Get("Content-Type"))
		if err != nil {
			_ = w.Sender(rw, http.StatusUnsupportedMediaType)(envelope.Err(kind.BadRequest(err.Error())))
			return
		}
		w.Format = f

		fail := func(e *kind.Error) {
			res.Fail(e, w.Sender(rw, adapter.ToStatus(e, res.Name(), o.mapper).HTTP))
		}

		raw, err := wire.Read(f, r.Body)
		if err != nil {
			fail(kind.BadRequest(err.Error()))
			return
		}
		req := res.ParseRequest(raw)
		if !req.IsOk() {
			fail(req.Err())
			return
		}
		out, err := fn(r.Context(), req.Value())
		if err != nil {
			fail(adapter.ToKind(err))
			return
		}
		// A failed write leaves the answer half sent; only an envelope that
		// could not be encoded is replaced by a failure.
		if err := res.Respond(out, w.Sender(rw, http.StatusOK)); err != nil && !rw.wroteHeader {
			fail(kind.Server(err.Error()))
		}
	})
}

// statusWriter records whether the status line went out.
type statusWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
