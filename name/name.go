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

package name

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Name is the canonical, validated identifier of a resource.
//
// Names are dot-separated, most general segment first, so that status rules
// and metrics can group resources by prefix:
//
//   - "games.create"
//   - "games.moves.list"
//   - "users.profile.get"
type Name string

// MinLength and MaxLength bound a non-empty canonical name.
const (
	MinLength = 2
	MaxLength = 128
)

// nameFmt accepts 1 to 6 segments. Each segment starts with a lowercase ASCII
// letter and continues with lowercase letters, digits or underscore.
const nameFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,5}$`

var nameRe = regexp.MustCompile(nameFmt)

var (
	// ErrNameInvalidFormat is returned when a name does not match the
	// canonical segment format.
	ErrNameInvalidFormat = errors.New("resources: invalid resource name format")
	// ErrNameInvalidLength is returned when a name is too short or too long.
	ErrNameInvalidLength = errors.New("resources: invalid resource name length")
)

var (
	_ encoding.TextMarshaler   = (*Name)(nil)
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// Empty means "unnamed". Resources may be created without a name and named
// later during wiring.
var Empty Name = ""

// Normalize brings s closer to canonical form without validating it:
// surrounding spaces are trimmed, the value is lowercased, "/" becomes "."
// and "-" becomes "_".
func Normalize(s string) Name {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return Name(s)
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Name, error) {
	n := Normalize(s)
	if n == Empty {
		return Empty, nil
	}
	if err := validate(string(n)); err != nil {
		return Empty, err
	}
	return n, nil
}

// MustParse is Parse that panics on error or on an empty name.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if n == Empty {
		panic("resources: empty resource name in MustParse")
	}
	return n
}

// Validate reports whether n is canonical. Empty is valid.
func Validate(n Name) error {
	if n == Empty {
		return nil
	}
	return validate(string(n))
}

func (n Name) String() string {
	return string(n)
}

// Segments splits n on ".". Empty yields nil.
func (n Name) Segments() []string {
	if n == Empty {
		return nil
	}
	return strings.Split(string(n), ".")
}

// HasPrefix reports whether n equals p or lies under it segment-wise, so
// "games.create" has prefix "games" but "gamesx" does not.
func (n Name) HasPrefix(p Name) bool {
	if p == Empty {
		return true
	}
	s, ps := string(n), string(p)
	if !strings.HasPrefix(s, ps) {
		return false
	}
	return len(s) == len(ps) || s[len(ps)] == '.'
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrNameInvalidLength
	}
	if !nameRe.MatchString(s) {
		return ErrNameInvalidFormat
	}
	return nil
}
