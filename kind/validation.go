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

import (
	"github.com/movesthatmatter/resources-io/codec"
)

// Form validation kinds. All of them carry the same content:
//
//	{"type": "ValidationErrors", "content": {"fields": {"email": "already taken"}}}
const (
	ValidationErrorsKind         Kind = "ValidationErrors"
	InputValidationErrorKind     Kind = "InputValidationError"
	HTTPInputValidationErrorKind Kind = "HttpInputValidationError"
)

// ValidationContent is the content of the form validation kinds. Fields maps
// a form field to its message; fields without a problem are left out.
type ValidationContent struct {
	Fields map[string]string `json:"fields" cbor:"fields"`
}

// ValidationErrors builds a ValidationErrors error.
func ValidationErrors(fields map[string]string) *Error {
	return fieldsError(ValidationErrorsKind, fields)
}

// InputValidationError builds an InputValidationError error.
func InputValidationError(fields map[string]string) *Error {
	return fieldsError(InputValidationErrorKind, fields)
}

// HTTPInputValidationError builds an HttpInputValidationError error.
func HTTPInputValidationError(fields map[string]string) *Error {
	return fieldsError(HTTPInputValidationErrorKind, fields)
}

func fieldsError(k Kind, fields map[string]string) *Error {
	cp := make(map[string]string, len(fields))
	for f, msg := range fields {
		cp[f] = msg
	}
	return &Error{Type: k, Content: ValidationContent{Fields: cp}}
}

// ValidationErrorsCodec returns the codec for ValidationErrors over the given
// form fields. Every field is optional and may be null; keys outside fields
// are dropped.
func ValidationErrorsCodec(fields ...string) Codec {
	return fieldsCodec(ValidationErrorsKind, fields)
}

// InputValidationErrorCodec is ValidationErrorsCodec for
// InputValidationError.
func InputValidationErrorCodec(fields ...string) Codec {
	return fieldsCodec(InputValidationErrorKind, fields)
}

// HTTPInputValidationErrorCodec is ValidationErrorsCodec for
// HttpInputValidationError.
func HTTPInputValidationErrorCodec(fields ...string) Codec {
	return fieldsCodec(HTTPInputValidationErrorKind, fields)
}

func fieldsCodec(k Kind, fields []string) Codec {
	allowed := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	msg := codec.Optional(codec.String())
	return New(k, func(raw any) (any, error) {
		m, ok := codec.AsObject(raw)
		if !ok {
			return codec.Mismatch[any]("", "object", raw)
		}
		fm, d := codec.Field(m, "fields", codec.Record(msg))
		if d != nil {
			return nil, d
		}
		out := ValidationContent{Fields: make(map[string]string, len(fm))}
		for f, v := range fm {
			if _, ok := allowed[f]; !ok {
				continue
			}
			if v != nil {
				out.Fields[f] = *v
			}
		}
		return out, nil
	})
}
