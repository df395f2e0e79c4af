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

// Local malformation
const (
	// BadRequestError reports that a request could not be built or completed.
	// Produced locally when inbound data fails the request codec (content is
	// the list of diagnostics) and when a transport fails without a decodable
	// body (no content). Servers may also send it with their own diagnostics.
	//
	// Can be mapped to an HTTP 400.
	BadRequestError Kind = "BadRequestError"
)

// Wire malformation
//
// These kinds signal a contract mismatch between the two ends of a resource.
// They are never retryable.
const (
	// BadResponseError reports a response the server itself considers
	// malformed. Carries no content.
	//
	// Can be mapped to an HTTP 502.
	BadResponseError Kind = "BadResponseError"

	// BadEncodingError reports a response envelope that did not match the
	// declared success or failure shapes. Content is the list of
	// diagnostics.
	//
	// Can be mapped to an HTTP 422.
	BadEncodingError Kind = "BadEncodingError"

	// BadErrorEncodingError reports a failure body that matched none of the
	// error kinds a resource declares. Carries no content.
	//
	// Can be mapped to an HTTP 502.
	BadErrorEncodingError Kind = "BadErrorEncodingError"
)

// Remote conditions
const (
	// NetworkError reports that the remote end could not be reached. It is
	// the only retryable common kind. Carries no content.
	//
	// Can be mapped to an HTTP 503.
	NetworkError Kind = "NetworkError"

	// ServerError reports an unclassified server-side failure. Content is an
	// optional message.
	//
	// Can be mapped to an HTTP 500.
	ServerError Kind = "ServerError"

	// ResourceInexistent reports that the addressed resource does not exist
	// on the remote end. Carries no content.
	//
	// Can be mapped to an HTTP 404.
	ResourceInexistent Kind = "ResourceInexistent"
)

// ResourceFailureHandled is the terminal sentinel returned by Fail once an
// error has been delivered through the caller's own channel. Downstream code
// must not report it again. It is never accepted off the wire.
const ResourceFailureHandled Kind = "ResourceFailureHandled"

var commonKinds = map[Kind]struct{}{
	BadRequestError:        {},
	BadResponseError:       {},
	BadEncodingError:       {},
	BadErrorEncodingError:  {},
	NetworkError:           {},
	ServerError:            {},
	ResourceInexistent:     {},
	ResourceFailureHandled: {},
}
