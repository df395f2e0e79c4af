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

package codec

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/movesthatmatter/resources-io/diag"
)

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		codec interface{ Name() string }
		raw   any
		ok    bool
	}{
		{"string ok", String(), "x", true},
		{"string bad", String(), 5, false},
		{"number float", Number(), 42.0, true},
		{"number int", Number(), 42, true},
		{"number json.Number", Number(), json.Number("4.5"), true},
		{"number string", Number(), "42", false},
		{"int integral float", Int(), 7.0, true},
		{"int fraction", Int(), 7.5, false},
		{"bool", Bool(), true, true},
		{"bool null", Bool(), nil, false},
		{"empty null", Empty(), nil, true},
		{"empty object", Empty(), map[string]any{}, true},
		{"empty non-empty", Empty(), map[string]any{"a": 1}, false},
		{"any null", Any(), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			switch c := tt.codec.(type) {
			case Codec[string]:
				_, err = c.Decode(tt.raw)
			case Codec[float64]:
				_, err = c.Decode(tt.raw)
			case Codec[int64]:
				_, err = c.Decode(tt.raw)
			case Codec[bool]:
				_, err = c.Decode(tt.raw)
			case Codec[struct{}]:
				_, err = c.Decode(tt.raw)
			case Codec[any]:
				_, err = c.Decode(tt.raw)
			default:
				t.Fatalf("unexpected codec %T", tt.codec)
			}
			if (err == nil) != tt.ok {
				t.Fatalf("%s.Decode(%#v) err = %v, want ok=%v", tt.codec.Name(), tt.raw, err, tt.ok)
			}
			if err != nil {
				if l := diag.From(err); len(l) == 0 {
					t.Fatal("failure without diagnostics")
				}
			}
		})
	}
}

func TestMismatchMessage(t *testing.T) {
	_, err := String().Decode(5)
	want := diag.List{{Path: "", Message: "expected string, got number"}}
	if diff := cmp.Diff(want, diag.From(err)); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteral(t *testing.T) {
	c := Literal("BadRequestError")
	if _, err := c.Decode("BadRequestError"); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, err := c.Decode("ServerError"); err == nil {
		t.Fatal("literal accepted a different string")
	}

	n := Literal(42)
	if _, err := n.Decode(42.0); err != nil {
		t.Fatalf("numeric literal rejected 42.0: %v", err)
	}

	b := Literal(true)
	if _, err := b.Decode(false); err == nil {
		t.Fatal("literal(true) accepted false")
	}
}

func TestSlice_ReportsEveryElement(t *testing.T) {
	_, err := Slice(String()).Decode([]any{"a", 1, "c", false})
	got := diag.From(err).Strings()
	want := []string{"1: expected string, got number", "3: expected string, got boolean"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}

	v, err := Slice(Number()).Decode([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("typed slice: %v", err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, v); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestRecord(t *testing.T) {
	_, err := Record(String()).Decode(map[string]any{"b": 2, "a": "x", "c": 3})
	got := diag.From(err).Strings()
	want := []string{"b: expected string, got number", "c: expected string, got number"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestOptional(t *testing.T) {
	c := Optional(String())
	v, err := c.Decode(nil)
	if err != nil || v != nil {
		t.Fatalf("Decode(nil) = %v, %v", v, err)
	}
	v, err = c.Decode("x")
	if err != nil || v == nil || *v != "x" {
		t.Fatalf("Decode(x) = %v, %v", v, err)
	}
}

func TestOneOf(t *testing.T) {
	c := OneOf(Literal("a"), Literal("b"))
	if _, err := c.Decode("b"); err != nil {
		t.Fatalf("Decode(b): %v", err)
	}
	_, err := c.Decode("z")
	if got := len(diag.From(err)); got != 2 {
		t.Fatalf("want one diagnostic per alternative, got %d", got)
	}
	if c.Name() != `literal("a") | literal("b")` {
		t.Fatalf("Name() = %q", c.Name())
	}
}

func TestMap(t *testing.T) {
	positive := Map(Number(), "positive", func(f float64) (float64, error) {
		if f <= 0 {
			return 0, diag.New("", "must be positive")
		}
		return f, nil
	})
	if _, err := positive.Decode(-1); err == nil {
		t.Fatal("Map did not propagate converter failure")
	}
	if v, err := positive.Decode(3); err != nil || v != 3 {
		t.Fatalf("Decode(3) = %v, %v", v, err)
	}
}

type player struct {
	ID   string `json:"id"`
	Elo  int    `json:"elo"`
	Name string `json:"name,omitempty"`
}

func TestJSON(t *testing.T) {
	c := JSON[player]("player")
	got, err := c.Decode(map[string]any{"id": "p1", "elo": 1500.0, "extra": true})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(player{ID: "p1", Elo: 1500}, got); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}

	_, err = c.Decode(map[string]any{"id": "p1", "elo": "high"})
	l := diag.From(err)
	if len(l) != 1 || l[0].Path != "elo" {
		t.Fatalf("diagnostics = %v, want one at elo", l)
	}

	strict := JSON[player]("", Strict())
	if _, err := strict.Decode(map[string]any{"id": "p1", "extra": true}); err == nil {
		t.Fatal("strict codec accepted an unknown field")
	}
	if strict.Name() != "codec.player" {
		t.Fatalf("default name = %q", strict.Name())
	}

	same := player{ID: "p2"}
	if v, err := c.Decode(same); err != nil || v != same {
		t.Fatalf("typed passthrough = %v, %v", v, err)
	}
}

func TestPaginated(t *testing.T) {
	c := Paginated(String())
	got, err := c.Decode(map[string]any{"pageIndex": 2.0, "query": "rook"})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.PageIndex == nil || *got.PageIndex != 2 || got.PageSize != nil || got.Query == nil || *got.Query != "rook" {
		t.Fatalf("Decode = %+v", got)
	}
	if _, err := c.Decode(map[string]any{"pageSize": "ten"}); err == nil {
		t.Fatal("pageSize string accepted")
	}
}

func TestPage(t *testing.T) {
	c := Page(String())
	got, err := c.Decode(map[string]any{"items": []any{"a", "b"}, "itemsTotal": 10.0, "currentIndex": 0.0})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := PageResponse[string]{Items: []string{"a", "b"}, ItemsTotal: 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}

	_, err = c.Decode(map[string]any{"items": []any{1}})
	got2 := diag.From(err).Strings()
	want2 := []string{
		"items.0: expected string, got number",
		"itemsTotal: required field is missing",
		"currentIndex: required field is missing",
	}
	if diff := cmp.Diff(want2, got2); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestAsObject(t *testing.T) {
	if _, ok := AsObject(player{ID: "x"}); !ok {
		t.Fatal("struct not accepted as object")
	}
	if _, ok := AsObject(map[int]any{1: 2}); ok {
		t.Fatal("int-keyed map accepted as object")
	}
	if _, ok := AsObject("x"); ok {
		t.Fatal("string accepted as object")
	}
}

func TestIs(t *testing.T) {
	if !Is(String(), "x") || Is(String(), 1) {
		t.Fatal("Is disagrees with Decode")
	}
}

func BenchmarkSliceDecode(b *testing.B) {
	c := Slice(String())
	raw := []any{"a", "b", "c", "d", "e", "f", "g", "h"}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.Decode(raw); err != nil {
			b.Fatal(err)
		}
	}
}
