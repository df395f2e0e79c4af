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

// Package kind defines the closed taxonomy of failure outcomes.
//
// Every failed resource call resolves to exactly one *Error whose Type is
// either a common kind declared here or a custom kind contributed by the
// resource's error codec. On the wire an Error is the "error" member of a
// failure envelope:
//
//	{"ok": false, "error": {"type": "ServerError", "content": "db down"}}
//
// The package also provides the codecs that recognize these payloads
// (CommonCodec, BadRequestCodec, Custom, OneOf) and predicates built on them.
package kind
