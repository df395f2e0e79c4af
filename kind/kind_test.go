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
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/movesthatmatter/resources-io/codec"
	"github.com/movesthatmatter/resources-io/diag"
)

func TestParse(t *testing.T) {
	valid := []string{"BadRequestError", "GameNotFound", "  Abc  ", "game_not_found", "not-found", "NF"}
	for _, s := range valid {
		if _, err := Parse(s); err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", s, err)
		}
	}
	invalid := []string{"", "   "}
	for _, s := range invalid {
		if _, err := Parse(s); !errors.Is(err, ErrKindInvalid) {
			t.Fatalf("Parse(%q) err = %v, want ErrKindInvalid", s, err)
		}
	}
}

func TestCanonical(t *testing.T) {
	for _, k := range []Kind{BadRequestError, ResourceFailureHandled, "GameNotFound"} {
		if !Canonical(k) {
			t.Fatalf("Canonical(%q) = false", k)
		}
	}
	for _, k := range []Kind{"", "NF", "game_not_found", "Bad-Request", "1Bad"} {
		if Canonical(k) {
			t.Fatalf("Canonical(%q) = true", k)
		}
	}
}

func TestKind_TextKeepsWireValue(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte(" not-found ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if k != " not-found " {
		t.Fatalf("UnmarshalText = %q, want the text unchanged", k)
	}
	if err := k.UnmarshalText(nil); !errors.Is(err, ErrKindInvalid) {
		t.Fatalf("UnmarshalText(empty) err = %v, want ErrKindInvalid", err)
	}
	b, err := Kind("game_not_found").MarshalText()
	if err != nil || string(b) != "game_not_found" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
}

func TestCommon(t *testing.T) {
	if !ResourceFailureHandled.Common() || !ServerError.Common() {
		t.Fatal("common kinds not recognized")
	}
	if Kind("GameNotFound").Common() {
		t.Fatal("custom kind reported as common")
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		in   *Error
		want string
	}{
		{BadRequest(), "BadRequestError"},
		{BadRequest("a", "b"), "BadRequestError: a; b"},
		{Server("db down"), "ServerError: db down"},
		{E("GameNotFound", map[string]any{"id": "g1"}), `GameNotFound: {"id":"g1"}`},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		if got := tt.in.Error(); got != tt.want {
			t.Fatalf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestError_IsByKind(t *testing.T) {
	err := fmt.Errorf("call: %w", Server("boom"))
	if !errors.Is(err, Server("")) {
		t.Fatal("errors.Is did not match by kind")
	}
	if errors.Is(err, Network()) {
		t.Fatal("errors.Is matched a different kind")
	}
}

func TestError_CopyOnWrite(t *testing.T) {
	base := BadRequest()
	l := diag.New("name", "expected string")
	withIssues := base.WithIssues(l)
	if base.Content != nil || base.Issues != nil {
		t.Fatal("WithIssues mutated receiver")
	}
	if diff := cmp.Diff([]string{"name: expected string"}, withIssues.Content); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
	l[0].Message = "changed"
	if withIssues.Issues[0].Message != "expected string" {
		t.Fatal("WithIssues kept a reference to the caller's list")
	}

	replaced := withIssues.WithContent([]string{"x"})
	if diff := cmp.Diff([]string{"name: expected string"}, withIssues.Content); diff != "" {
		t.Fatalf("WithContent mutated receiver:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x"}, replaced.Content); diff != "" {
		t.Fatalf("WithContent content mismatch:\n%s", diff)
	}
}

func TestRetryable(t *testing.T) {
	for _, e := range []*Error{BadRequest(), BadEncoding(nil), BadErrorEncoding(), BadResponse(), Server(""), Inexistent(), FailureHandled()} {
		if e.Retryable() {
			t.Fatalf("%s must not be retryable", e.Type)
		}
	}
	if !Network().Retryable() {
		t.Fatal("NetworkError must be retryable")
	}
	if !BadErrorEncoding().Encoding() || Network().Encoding() {
		t.Fatal("Encoding() classification wrong")
	}
}

func TestCommonCodec(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want *Error
	}{
		{"bad request no content", map[string]any{"type": "BadRequestError"}, BadRequest()},
		{"bad request null content", map[string]any{"type": "BadRequestError", "content": nil}, BadRequest()},
		{"bad request messages", map[string]any{"type": "BadRequestError", "content": []any{"must not be empty"}}, BadRequest("must not be empty")},
		{"bad encoding", map[string]any{"type": "BadEncodingError", "content": []any{"a"}}, &Error{Type: BadEncodingError, Content: []string{"a"}}},
		{"server message", map[string]any{"type": "ServerError", "content": "boom"}, Server("boom")},
		{"network", map[string]any{"type": "NetworkError"}, Network()},
		{"inexistent", map[string]any{"type": "ResourceInexistent"}, Inexistent()},
		{"bad response", map[string]any{"type": "BadResponseError"}, BadResponse()},
		{"bad error encoding", map[string]any{"type": "BadErrorEncodingError"}, BadErrorEncoding()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CommonCodec().Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommonCodec_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		wantPath string
	}{
		{"not an object", "BadRequestError", ""},
		{"missing type", map[string]any{"content": "x"}, "type"},
		{"unknown type", map[string]any{"type": "Nope"}, "type"},
		{"failure handled off the wire", map[string]any{"type": "ResourceFailureHandled"}, "type"},
		{"network with content", map[string]any{"type": "NetworkError", "content": "x"}, "content"},
		{"server with list", map[string]any{"type": "ServerError", "content": []any{"x"}}, "content"},
		{"bad request with number", map[string]any{"type": "BadRequestError", "content": []any{1}}, "content.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CommonCodec().Decode(tt.raw)
			l := diag.From(err)
			if len(l) != 1 {
				t.Fatalf("want exactly one diagnostic, got %v", l)
			}
			if l[0].Path != tt.wantPath {
				t.Fatalf("path = %q, want %q (%v)", l[0].Path, tt.wantPath, l)
			}
		})
	}
}

type gameNotFound struct {
	GameID string `json:"gameId"`
}

func TestCustomAndAll(t *testing.T) {
	gnf := Custom("GameNotFound", codec.JSON[gameNotFound]("gameNotFound"))
	all := All(gnf)

	got, err := all.Decode(map[string]any{"type": "GameNotFound", "content": map[string]any{"gameId": "g1"}})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := &Error{Type: "GameNotFound", Content: gameNotFound{GameID: "g1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := all.Decode(map[string]any{"type": "ServerError"}); err != nil {
		t.Fatalf("common kind rejected by All: %v", err)
	}

	_, err = all.Decode(map[string]any{"type": "Other"})
	l := diag.From(err)
	if len(l) != 1 || l[0].Path != "type" {
		t.Fatalf("diagnostics = %v", l)
	}

	if all.Name() != CommonCodec().Name()+" | GameNotFound" {
		t.Fatalf("Name() = %q", all.Name())
	}
}

func TestAll_DefaultsToBadRequest(t *testing.T) {
	if !Is(All(nil), map[string]any{"type": "BadRequestError"}) {
		t.Fatal("All(nil) rejected BadRequestError")
	}
}

func TestOneOf_OpenMember(t *testing.T) {
	open := codec.New("anything", func(raw any) (*Error, error) {
		return E("Anything", raw), nil
	})
	u := OneOf(NetworkCodec(), open)
	if d, ok := u.(Discriminated); !ok || d.Kinds() != nil {
		t.Fatal("union with an open member must report open kinds")
	}
	got, err := u.Decode(map[string]any{"type": "Whatever"})
	if err != nil || got.Type != "Anything" {
		t.Fatalf("Decode = %v, %v", got, err)
	}
}

func TestCustom_PanicsOnInvalidKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Custom accepted an empty kind")
		}
	}()
	_ = Custom("", codec.Any())
}

func TestCustom_AnyNonEmptyKind(t *testing.T) {
	c := Custom("game_not_found", codec.Any())
	got, err := All(c).Decode(map[string]any{"type": "game_not_found", "content": "g1"})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Type != "game_not_found" || got.Content != "g1" {
		t.Fatalf("Decode = %+v", got)
	}
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"type":"game_not_found","content":"g1"}` {
		t.Fatalf("Marshal = %s", b)
	}
}

func TestPredicates(t *testing.T) {
	if !IsBadRequest(BadRequest("x")) || !IsBadRequest(*BadRequest()) {
		t.Fatal("IsBadRequest rejected a BadRequestError value")
	}
	if !IsBadRequest(map[string]any{"type": "BadRequestError", "content": []any{"x"}}) {
		t.Fatal("IsBadRequest rejected a raw payload")
	}
	if IsBadRequest(map[string]any{"type": "BadRequestError", "content": "x"}) {
		t.Fatal("IsBadRequest accepted string content")
	}
	if IsBadRequest((*Error)(nil)) {
		t.Fatal("IsBadRequest accepted nil")
	}
	if !IsResourceFailureHandled(FailureHandled()) || IsResourceFailureHandled(Network()) {
		t.Fatal("IsResourceFailureHandled wrong")
	}
	if !IsBadEncoding(BadEncoding(diag.New("ok", "expected boolean"))) {
		t.Fatal("IsBadEncoding rejected a BadEncodingError")
	}
	checks := []struct {
		fn func(any) bool
		e  *Error
	}{
		{IsNetwork, Network()},
		{IsServerError, Server("x")},
		{IsInexistent, Inexistent()},
		{IsBadResponse, BadResponse()},
		{IsBadErrorEncoding, BadErrorEncoding()},
		{IsCommon, Server("")},
	}
	for _, c := range checks {
		if !c.fn(c.e) {
			t.Fatalf("predicate rejected %s", c.e.Type)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	c := ValidationErrorsCodec("email", "password")
	got, err := c.Decode(map[string]any{
		"type": "ValidationErrors",
		"content": map[string]any{"fields": map[string]any{
			"email":    "already taken",
			"password": nil,
			"other":    "dropped",
		}},
	})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := &Error{Type: ValidationErrorsKind, Content: ValidationContent{Fields: map[string]string{"email": "already taken"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if !Is(c, ValidationErrors(map[string]string{"email": "x"})) {
		t.Fatal("codec rejected a built ValidationErrors")
	}
	if _, err := c.Decode(map[string]any{"type": "ValidationErrors", "content": map[string]any{"fields": map[string]any{"email": 3}}}); err == nil {
		t.Fatal("non-string message accepted")
	}
}

func TestHTTPErrorCodec(t *testing.T) {
	type quota struct {
		Limit int `json:"limit"`
	}
	c := HTTPErrorCodec(codec.JSON[quota]("quota"), "email")

	tests := []struct {
		name string
		in   map[string]any
		want *Error
	}{
		{"generic", map[string]any{"type": "HttpGenericError", "content": "teapot"}, HTTPGenericError("teapot")},
		{"generic without message", map[string]any{"type": "HttpGenericError"}, HTTPGenericError("")},
		{"custom", map[string]any{"type": "HttpCustomError", "content": map[string]any{"limit": 3.0}}, &Error{Type: HTTPCustomErrorKind, Content: quota{Limit: 3}}},
		{
			"input validation",
			map[string]any{"type": "HttpInputValidationError", "content": map[string]any{"fields": map[string]any{"email": "required"}}},
			HTTPInputValidationError(map[string]string{"email": "required"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := c.Decode(map[string]any{"type": "HttpGenericError", "content": 5.0}); err == nil {
		t.Fatal("numeric message accepted")
	}
	if _, err := c.Decode(map[string]any{"type": "InputValidationError", "content": map[string]any{"fields": map[string]any{}}}); err == nil {
		t.Fatal("InputValidationError accepted by the HTTP union")
	}
	if !Is(InputValidationErrorCodec("email"), InputValidationError(map[string]string{"email": "x"})) {
		t.Fatal("codec rejected a built InputValidationError")
	}
}
