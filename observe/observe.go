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

// Package observe provides apis.Observer sinks: structured logs through
// logr, Prometheus metrics, and fan-out to several observers.
package observe

import (
	"github.com/go-logr/logr"

	"github.com/movesthatmatter/resources-io/adapter"
	"github.com/movesthatmatter/resources-io/apis"
)

// Log returns an observer that writes one log line per record. Failures are
// logged with Error; successes at V(1).
func Log(l logr.Logger) apis.Observer {
	return apis.ObserverFunc(func(r apis.Record) {
		kv := []any{
			"op", string(r.Op),
			"resource", r.Resource.String(),
			"callID", r.CallID,
			"outcome", r.Outcome(),
			"requestCodec", r.RequestCodec,
			"okCodec", r.OkCodec,
			"errCodec", r.ErrCodec,
			"duration", r.Duration,
		}
		if r.Error != nil {
			if v := adapter.ToView(r.Error); v.Content != nil {
				kv = append(kv, "content", v.Content)
			}
			l.Error(r.Error, "resource operation failed", kv...)
			return
		}
		l.V(1).Info("resource operation succeeded", kv...)
	})
}

// Multi fans a record out to every observer in order. A panicking observer
// does not keep the others from running.
func Multi(obs ...apis.Observer) apis.Observer {
	list := make([]apis.Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}
	return apis.ObserverFunc(func(r apis.Record) {
		for _, o := range list {
			observe(o, r)
		}
	})
}

func observe(o apis.Observer, r apis.Record) {
	defer func() { _ = recover() }()
	o.Observe(r)
}

// Nop drops every record.
var Nop = apis.Nop
