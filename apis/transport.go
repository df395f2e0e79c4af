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

package apis

import (
	"context"
	"fmt"
)

// Transport delivers an outbound payload and returns the raw response body.
//
// Invoke is the only blocking step of a resource call. Implementations own
// timeouts, retries and cancellation; ctx is handed over untouched.
//
// A resolved call returns the decoded body in Response.Data, whatever its
// shape. A failed call returns an error; failures that still produced a body
// (an HTTP 4xx with a JSON payload, a gRPC status with details) must be
// reported as *TransportError with Body set so the body can be classified.
type Transport interface {
	Invoke(ctx context.Context, payload any) (Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, payload any) (Response, error)

// Invoke calls f.
func (f TransportFunc) Invoke(ctx context.Context, payload any) (Response, error) {
	return f(ctx, payload)
}

// Response is a settled transport call.
type Response struct {
	// Data is the decoded response body in the JSON data model.
	Data any
}

// TransportError is the normalized failure of a transport call.
type TransportError struct {
	// Status is the transport status (HTTP status or gRPC code), 0 if none.
	Status int

	// Body is the decoded failure body. A nil Body is a JSON null when
	// BodyPresent is set, and no body at all otherwise.
	Body any

	// BodyPresent reports that the call produced a decodable body, so a null
	// Body is still classified.
	BodyPresent bool

	// Cause is the underlying error, if any.
	Cause error
}

// HasBody reports whether the failure carried a decodable body.
func (e *TransportError) HasBody() bool {
	return e != nil && (e.BodyPresent || e.Body != nil)
}

func (e *TransportError) Error() string {
	switch {
	case e.Cause != nil && e.Status != 0:
		return fmt.Sprintf("transport: status %d: %v", e.Status, e.Cause)
	case e.Cause != nil:
		return "transport: " + e.Cause.Error()
	case e.Status != 0:
		return fmt.Sprintf("transport: status %d", e.Status)
	}
	return "transport: failed"
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Cause }
