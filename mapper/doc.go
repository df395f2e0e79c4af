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

// Package mapper turns error kinds into transport statuses for HTTP and gRPC.
//
// Every failure a resource reports carries a kind (BadRequestError,
// NetworkError, a domain kind like ValidationErrors). Servers that expose a
// resource over HTTP or gRPC need a status for it, and the same kind may
// deserve a different status depending on which resource raised it. A
// mapper answers that question from an immutable rule snapshot.
//
// # Resolution
//
// For a kind and a resource name the mapper tries, in order:
//
//  1. an override for the kind;
//  2. the longest resource-name prefix rule for the kind;
//  3. the kind default (library table or WithHTTPDefault/WithGRPCDefault);
//  4. the fallback (400 / FailedPrecondition unless WithFallback says otherwise).
//
// Prefixes are resource names split on "."; "*" stands for exactly one
// segment and a concrete segment beats "*" at the same depth:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(kind.NetworkError, "games.moves", http.StatusGatewayTimeout),
//	    mapper.WithGRPCPrefix(kind.NetworkError, "games.*.submit", codes.DeadlineExceeded),
//	)
//	st := m.Status(kind.NetworkError, name.MustParse("games.moves.submit"))
//	// st.HTTP == 504, st.GRPC == codes.DeadlineExceeded
//
// Explain prints which tier produced each status and is handy in tests.
package mapper
