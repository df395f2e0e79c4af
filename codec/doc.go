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

// Package codec defines the decoding capability every resource is built on.
//
// A Codec[T] turns an untyped value, usually fresh off the wire, into a T or
// a list of path/message diagnostics. The package ships primitive codecs
// (String, Number, Int, Bool, Any, Empty, Literal), combinators (Slice,
// Record, Optional, OneOf, Map), a struct codec based on encoding/json and
// pagination wrappers. Schema-backed codecs live in codec/cuecodec.
package codec
