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

// Package apis defines the ports a resource talks through and the small view
// types they exchange.
//
// The engine in the root package depends only on these contracts: a
// Transport to reach the remote end, an Observer to report calls, and a
// Mapper to turn error kinds into transport statuses. Concrete adapters live
// in httpx, grpcx, observe and mapper.
//
// This package must stay lightweight; it only holds interfaces and plain
// structs.
package apis
