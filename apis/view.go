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

// ViewProvider is implemented by errors that can render themselves as an
// envelope error in one step.
type ViewProvider interface {
	error

	// ErrorView returns the wire view of the error.
	ErrorView() ErrorView
}

// ErrorView is the serializable {type, content?} form of an error. Adapters
// validate Type before sending it.
type ErrorView struct {
	Type    string `json:"type"`
	Content any    `json:"content,omitempty"`
}
