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
	"time"

	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/name"
)

// Op names the resource operation a Record describes.
type Op string

const (
	OpParseRequest Op = "parse_request"
	OpRequest      Op = "request"
	OpFail         Op = "fail"
)

// Record describes one finished resource operation.
type Record struct {
	// CallID is unique per operation.
	CallID string
	Op     Op

	Resource name.Name

	RequestCodec string
	OkCodec      string
	ErrCodec     string

	// Request is the outbound payload (OpRequest) or the raw inbound value
	// (OpParseRequest).
	Request any
	// Response is the raw response body or failure body, nil when there
	// was none.
	Response any
	// Error is the produced failure, nil on success.
	Error *kind.Error

	Start    time.Time
	Duration time.Duration
}

// Outcome is the kind of the produced error, or "Ok".
func (r Record) Outcome() string {
	if r.Error == nil {
		return "Ok"
	}
	return string(r.Error.Type)
}

// Observer receives a Record for every operation. Observe must not block for
// long; it runs on the caller's goroutine. A panicking observer is recovered
// and ignored.
type Observer interface {
	Observe(Record)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Record)

// Observe calls f.
func (f ObserverFunc) Observe(r Record) { f(r) }

// Nop is an Observer that drops every record.
var Nop Observer = ObserverFunc(func(Record) {})
