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

// Package adapter converts between plain Go errors, error kinds and
// transport statuses.
package adapter

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/name"
)

// ToKind converts err into an error kind.
//
// A *kind.Error in the chain is returned as-is. Errors implementing
// apis.ViewProvider or apis.KindedError are converted when their kind is
// valid. Everything else becomes a ServerError carrying err.Error(). A nil
// err yields nil.
func ToKind(err error) *kind.Error {
	if err == nil {
		return nil
	}
	var ke *kind.Error
	if errors.As(err, &ke) && ke != nil {
		return ke
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		v := vp.ErrorView()
		if k, perr := kind.Parse(v.Type); perr == nil {
			return kind.E(k, v.Content)
		}
	}
	var kd apis.KindedError
	if errors.As(err, &kd) {
		if k, perr := kind.Parse(kd.ErrorKind()); perr == nil {
			var content any
			var ce apis.ContentError
			if errors.As(err, &ce) {
				content = ce.ErrorContent()
			}
			return kind.E(k, content)
		}
	}
	return kind.Server(err.Error())
}

// ToView converts an error kind into its public view. It performs no
// redaction.
func ToView(e *kind.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{Type: string(e.Type), Content: e.Content}
}

// ToStatus resolves the transport statuses for e raised by resource n. A nil
// e is a success: 200 and OK.
func ToStatus(e *kind.Error, n name.Name, m apis.Mapper) apis.Status {
	if e == nil {
		return apis.Status{HTTP: http.StatusOK, GRPC: codes.OK}
	}
	return m.Status(e.Type, n)
}
