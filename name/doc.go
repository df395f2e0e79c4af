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

// Package name defines canonical resource names.
//
// A resource name is optional. It is used for diagnostics (observer records,
// logs, metric labels) and as the refinement key when mapping an error kind to
// a transport status, e.g. "games.*" rules apply to "games.create" and
// "games.join".
//
// Resources store names in normalized form but never reject them; callers that
// need a strict name call Parse or Validate.
package name
