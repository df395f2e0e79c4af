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
	"google.golang.org/grpc/codes"

	"github.com/movesthatmatter/resources-io/kind"
	"github.com/movesthatmatter/resources-io/name"
)

// Mapper is an immutable, concurrency-safe view of status rules. It resolves
// an error kind, refined by the name of the resource that produced it, into
// transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the kind and resource.
	// If no resource-specific rule exists, the kind-level rule applies.
	HTTPStatus(k kind.Kind, n name.Name) int

	// GRPCStatus returns the gRPC code for the kind and resource.
	GRPCStatus(k kind.Kind, n name.Name) codes.Code

	// Status resolves both in one call with the same matching logic.
	Status(k kind.Kind, n name.Name) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(k kind.Kind, n name.Name) string
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int        // net/http compatible status
	GRPC codes.Code // gRPC status code
}

// RuleDescriptor is a flat description of one status rule, as found in
// configuration files. An empty Resource applies to the whole kind.
type RuleDescriptor struct {
	Kind     string `json:"kind" yaml:"kind"`
	Resource string `json:"resource,omitempty" yaml:"resource,omitempty"`
	HTTP     int    `json:"http,omitempty" yaml:"http,omitempty"`
	GRPC     string `json:"grpc,omitempty" yaml:"grpc,omitempty"`
	Override bool   `json:"override,omitempty" yaml:"override,omitempty"`
}
