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

package resources

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/codec"
	"github.com/movesthatmatter/resources-io/diag"
	"github.com/movesthatmatter/resources-io/envelope"
	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/name"
)

var (
	// ErrNameSet is returned by SetName when the resource already has a name.
	ErrNameSet = errors.New("resources: name already set")
	// ErrInUse is returned by SetName once the resource has served a call.
	ErrInUse = errors.New("resources: resource already in use")
)

// Sender delivers an envelope through the caller's own channel (an HTTP
// response writer, a socket, a queue). A non-nil error or a panic means the
// envelope was not delivered.
type Sender func(envelope.Envelope) error

// Config declares a resource.
type Config[Req, Res any] struct {
	// Request decodes inbound request payloads. Required.
	Request codec.Codec[Req]

	// Response decodes the data of success envelopes. Required.
	Response codec.Codec[Res]

	// Error decodes the resource-specific failures. Defaults to
	// kind.BadRequestCodec(). Common kinds are always accepted in addition.
	Error kind.Codec

	// Name identifies the resource in records, logs and status rules. It is
	// normalized, not validated.
	Name string

	// Observer receives a record per operation. Defaults to apis.Nop.
	Observer apis.Observer
}

// Resource is the contract of one remote operation: what it accepts, what it
// answers on success, and which failures it may report.
//
// A Resource is immutable after construction, apart from a single SetName
// during wiring, and is safe for concurrent use.
type Resource[Req, Res any] struct {
	request  codec.Codec[Req]
	response codec.Codec[Res]
	errs     kind.Codec
	observer apis.Observer

	all      kind.Codec
	envelope codec.Codec[envelope.Decoded[Res]]
	failure  codec.Codec[*kind.Error]

	name atomic.Pointer[name.Name]
	used atomic.Bool
}

// New builds a Resource from cfg. It panics if cfg.Request or cfg.Response
// is nil.
func New[Req, Res any](cfg Config[Req, Res]) *Resource[Req, Res] {
	if cfg.Request == nil || cfg.Response == nil {
		panic("resources: Config.Request and Config.Response are required")
	}
	errs := cfg.Error
	if errs == nil {
		errs = kind.BadRequestCodec()
	}
	obs := cfg.Observer
	if obs == nil {
		obs = apis.Nop
	}
	all := kind.All(errs)
	r := &Resource[Req, Res]{
		request:  cfg.Request,
		response: cfg.Response,
		errs:     errs,
		observer: obs,
		all:      all,
		envelope: envelope.Codec(cfg.Response, all),
		failure:  envelope.ErrCodec(all),
	}
	if n := name.Normalize(cfg.Name); n != name.Empty {
		r.name.Store(&n)
	}
	return r
}

// Name returns the resource name, or name.Empty.
func (r *Resource[Req, Res]) Name() name.Name {
	if p := r.name.Load(); p != nil {
		return *p
	}
	return name.Empty
}

// SetName names an unnamed resource. It is meant for wiring code that learns
// the name after construction and fails once a name is set or the resource
// has served a call.
func (r *Resource[Req, Res]) SetName(s string) error {
	if r.used.Load() {
		return ErrInUse
	}
	n := name.Normalize(s)
	if !r.name.CompareAndSwap(nil, &n) {
		return ErrNameSet
	}
	return nil
}

// RequestCodec returns the request codec.
func (r *Resource[Req, Res]) RequestCodec() codec.Codec[Req] { return r.request }

// ResponseCodec returns the success data codec.
func (r *Resource[Req, Res]) ResponseCodec() codec.Codec[Res] { return r.response }

// ErrorCodec returns the resource-specific error codec, the default one when
// none was configured.
func (r *Resource[Req, Res]) ErrorCodec() kind.Codec { return r.errs }

// Errors returns the codec of every failure the resource accepts off the
// wire: common kinds then the resource's own.
func (r *Resource[Req, Res]) Errors() kind.Codec { return r.all }

// ParseRequest validates an inbound request payload. A rejected payload
// yields a BadRequestError whose content lists the diagnostics.
func (r *Resource[Req, Res]) ParseRequest(raw any) Result[Req] {
	start := time.Now()
	var res Result[Req]
	v, err := safeDecode(r.request, raw)
	if err != nil {
		res = Err[Req](kind.BadRequestFrom(diag.From(err)))
	} else {
		res = Ok(v)
	}
	r.emit(apis.Record{Op: apis.OpParseRequest, Request: raw, Error: res.err, Start: start})
	return res
}

// Request sends payload through t and decodes the answer.
//
// The outcome is Ok with the decoded data, the decoded failure when the
// remote end answered with a failure envelope (or a transport failure body
// that is one), BadEncodingError for an answer matching neither envelope,
// BadErrorEncodingError for a failure body matching none of the resource's
// errors, and BadRequestError without content when the transport failed
// without a body.
func (r *Resource[Req, Res]) Request(ctx context.Context, payload Req, t apis.Transport) Result[Res] {
	rec := apis.Record{Op: apis.OpRequest, Request: payload, Start: time.Now()}
	res := r.request0(ctx, payload, t, &rec)
	rec.Error = res.err
	r.emit(rec)
	return res
}

func (r *Resource[Req, Res]) request0(ctx context.Context, payload Req, t apis.Transport, rec *apis.Record) Result[Res] {
	resp, err := invoke(ctx, t, payload)
	if err != nil {
		var te *apis.TransportError
		if errors.As(err, &te) && te.HasBody() {
			rec.Response = te.Body
			return Err[Res](r.Classify(te.Body))
		}
		return Err[Res](kind.BadRequest())
	}
	rec.Response = resp.Data
	d, err := safeDecode(r.envelope, resp.Data)
	if err != nil {
		return Err[Res](kind.BadEncoding(diag.From(err)))
	}
	if !d.OK {
		return Err[Res](d.Error)
	}
	return Ok(d.Data)
}

// Classify decodes a failure envelope {ok: false, error} against the
// resource's errors. A body that is not one yields BadErrorEncodingError.
func (r *Resource[Req, Res]) Classify(raw any) *kind.Error {
	e, err := safeDecode(r.failure, raw)
	if err != nil || e == nil {
		return kind.BadErrorEncoding()
	}
	return e
}

// Respond sends {ok: true, data} through send and returns its error. data is
// trusted and not validated.
func (r *Resource[Req, Res]) Respond(data Res, send Sender) (err error) {
	r.used.Store(true)
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("resources: send panicked: %v", p)
		}
	}()
	return send(envelope.Ok(data))
}

// Fail sends {ok: false, error: e} through send.
//
// When the envelope was delivered Fail returns the ResourceFailureHandled
// sentinel, telling downstream code the failure is already reported. When
// send fails or panics, e is returned unchanged.
func (r *Resource[Req, Res]) Fail(e *kind.Error, send Sender) (out *kind.Error) {
	if e == nil {
		e = kind.Server("")
	}
	rec := apis.Record{Op: apis.OpFail, Error: e, Start: time.Now()}
	defer func() {
		if p := recover(); p != nil {
			out = e
		}
		r.emit(rec)
	}()
	if err := send(envelope.Err(e)); err != nil {
		return e
	}
	return kind.FailureHandled()
}

// IsResponseError reports whether v is one of the resource's own errors, as
// accepted by its error codec (kind.BadRequestCodec when none was
// configured).
func (r *Resource[Req, Res]) IsResponseError(v any) bool { return kind.Is(r.errs, v) }

// IsBadEncodingError reports whether v is a BadEncodingError.
func (r *Resource[Req, Res]) IsBadEncodingError(v any) bool { return kind.IsBadEncoding(v) }

// IsBadRequestError reports whether v is a BadRequestError.
func (r *Resource[Req, Res]) IsBadRequestError(v any) bool { return kind.IsBadRequest(v) }

// IsResourceFailureHandled reports whether v is the ResourceFailureHandled
// sentinel.
func (r *Resource[Req, Res]) IsResourceFailureHandled(v any) bool {
	return kind.IsResourceFailureHandled(v)
}

func (r *Resource[Req, Res]) emit(rec apis.Record) {
	if !r.used.Load() {
		r.used.Store(true)
	}
	rec.CallID = uuid.NewString()
	rec.Resource = r.Name()
	rec.RequestCodec = r.request.Name()
	rec.OkCodec = r.response.Name()
	rec.ErrCodec = r.errs.Name()
	rec.Duration = time.Since(rec.Start)
	defer func() { _ = recover() }()
	r.observer.Observe(rec)
}

func safeDecode[T any](c codec.Codec[T], raw any) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			v, err = zero, diag.New("", fmt.Sprintf("codec %s panicked: %v", c.Name(), p))
		}
	}()
	return c.Decode(raw)
}

func invoke(ctx context.Context, t apis.Transport, payload any) (resp apis.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("resources: transport panicked: %v", p)
		}
	}()
	return t.Invoke(ctx, payload)
}
