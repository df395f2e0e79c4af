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

// KindedError is implemented by Go errors that know which error kind they
// correspond to. Adapters use it to turn handler errors into envelope
// failures without depending on the concrete error type.
type KindedError interface {
	error

	// ErrorKind returns the kind, e.g. "GameNotFound". A blank kind is
	// treated as a ServerError at the boundary.
	ErrorKind() string
}

// ContentError is implemented by errors that carry an envelope content
// payload in addition to their kind.
type ContentError interface {
	error

	// ErrorContent returns the payload. nil means no content.
	ErrorContent() any
}
