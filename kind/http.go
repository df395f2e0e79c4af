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

package kind

import (
	"github.com/movesthatmatter/resources-io/codec"
)

// HTTP error kinds for resources that mirror plain HTTP failures.
const (
	// HTTPGenericErrorKind is a failure with an optional message.
	HTTPGenericErrorKind Kind = "HttpGenericError"

	// HTTPCustomErrorKind is a failure whose content is declared by the
	// resource.
	HTTPCustomErrorKind Kind = "HttpCustomError"
)

// HTTPGenericError builds an HttpGenericError. An empty msg leaves the
// content absent.
func HTTPGenericError(msg string) *Error {
	if msg == "" {
		return &Error{Type: HTTPGenericErrorKind}
	}
	return &Error{Type: HTTPGenericErrorKind, Content: msg}
}

// HTTPGenericErrorCodec accepts an HttpGenericError with absent content or a
// string message.
func HTTPGenericErrorCodec() Codec { return httpGenericCodec }

var httpGenericCodec = New(HTTPGenericErrorKind, Message)

// HTTPCustomErrorCodec accepts an HttpCustomError whose content is decoded
// by content.
func HTTPCustomErrorCodec[C any](content codec.Codec[C]) Codec {
	return Custom(HTTPCustomErrorKind, content)
}

// HTTPErrorCodec unions the HTTP error kinds: generic, custom with content,
// and input validation over fields.
func HTTPErrorCodec[C any](content codec.Codec[C], fields ...string) Codec {
	return OneOf(
		HTTPGenericErrorCodec(),
		HTTPCustomErrorCodec(content),
		HTTPInputValidationErrorCodec(fields...),
	)
}
