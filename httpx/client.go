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

package httpx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/wire"
)

// Transport is an apis.Transport that POSTs payloads to URL.
//
// A 2xx answer resolves with the decoded body; a body the client cannot
// decode is passed on as a string so the envelope check reports it. Any other
// status fails with *apis.TransportError carrying the decoded body when there
// is one, a JSON null included. Connection failures fail without a body.
type Transport struct {
	// Client defaults to http.DefaultClient.
	Client *http.Client
	// URL is the resource endpoint.
	URL string
	// Format encodes the request; defaults to wire.JSON.
	Format wire.Format
	// Header is added to every request.
	Header http.Header
}

var _ apis.Transport = (*Transport)(nil)

// Invoke implements apis.Transport.
func (t *Transport) Invoke(ctx context.Context, payload any) (apis.Response, error) {
	f := t.Format
	if f == nil {
		f = wire.JSON
	}
	body, err := f.Marshal(payload)
	if err != nil {
		return apis.Response{}, &apis.TransportError{Cause: fmt.Errorf("httpx: encode request: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, bytes.NewReader(body))
	if err != nil {
		return apis.Response{}, &apis.TransportError{Cause: err}
	}
	for k, vs := range t.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", f.ContentType())
	req.Header.Set("Accept", f.ContentType())

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return apis.Response{}, &apis.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, wire.MaxBodySize+1))
	if err != nil {
		return apis.Response{}, &apis.TransportError{Status: resp.StatusCode, Cause: err}
	}
	data, derr := decode(resp.Header.Get("Content-Type"), b)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if derr != nil {
			return apis.Response{Data: string(b)}, nil
		}
		return apis.Response{Data: data}, nil
	}
	if derr != nil || len(b) == 0 {
		return apis.Response{}, &apis.TransportError{Status: resp.StatusCode, Cause: fmt.Errorf("httpx: %s", resp.Status)}
	}
	return apis.Response{}, &apis.TransportError{Status: resp.StatusCode, Body: data, BodyPresent: true}
}

func decode(contentType string, b []byte) (any, error) {
	if len(b) > wire.MaxBodySize {
		return nil, fmt.Errorf("httpx: body exceeds %d bytes", wire.MaxBodySize)
	}
	f, err := wire.ByContentType(contentType)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	return f.Unmarshal(b)
}
