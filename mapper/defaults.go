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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/movesthatmatter/resources-io/kind"
)

// defaultHTTP maps the built-in kinds to HTTP statuses. Kinds outside this
// table resolve to the fallback unless an option adds them.
var defaultHTTP = map[kind.Kind]int{
	kind.BadRequestError:        http.StatusBadRequest,
	kind.BadResponseError:       http.StatusBadGateway,
	kind.BadEncodingError:       http.StatusUnprocessableEntity,
	kind.BadErrorEncodingError:  http.StatusBadGateway,
	kind.NetworkError:           http.StatusServiceUnavailable,
	kind.ServerError:            http.StatusInternalServerError,
	kind.ResourceInexistent:     http.StatusNotFound,
	kind.ResourceFailureHandled: http.StatusInternalServerError,
}

// defaultGRPC is the gRPC counterpart of defaultHTTP.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.BadRequestError:        codes.InvalidArgument,
	kind.BadResponseError:       codes.Internal,
	kind.BadEncodingError:       codes.InvalidArgument,
	kind.BadErrorEncodingError:  codes.Internal,
	kind.NetworkError:           codes.Unavailable,
	kind.ServerError:            codes.Internal,
	kind.ResourceInexistent:     codes.NotFound,
	kind.ResourceFailureHandled: codes.Internal,
}

// Custom kinds are domain failures declared by a resource's error codec,
// so by default they read as rejected requests.
const (
	defaultFallbackHTTP = http.StatusBadRequest
	defaultFallbackGRPC = codes.FailedPrecondition
)
