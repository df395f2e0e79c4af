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
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the discriminator of an error payload, the "type" field on the wire.
//
// Any non-empty string is a kind, so resources can declare the failures a
// remote end actually reports ("game_not_found", "not-found"). The common
// kinds declared in this package are PascalCase identifiers such as
// "BadRequestError"; Canonical checks that convention for callers who want to
// enforce it on their own kinds.
type Kind string

// MaxLength bounds a canonical kind.
const MaxLength = 64

// canonicalFmt: an uppercase ASCII letter followed by 2..63 letters or digits.
// The upper bound is tied to MaxLength.
const canonicalFmt = `^[A-Z][A-Za-z0-9]{2,63}$`

var canonicalRe = regexp.MustCompile(canonicalFmt)

// ErrKindInvalid is returned when a value cannot be parsed or validated as a
// kind.
var ErrKindInvalid = errors.New("resources: invalid error kind")

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero kind. It is never valid.
var Empty Kind = ""

// Parse trims s and validates it.
func Parse(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is Parse that panics on error.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate reports whether k is a usable kind: any non-empty string.
func Validate(k Kind) error {
	return validate(string(k))
}

// Canonical reports whether k follows the PascalCase convention of the
// common kinds.
func Canonical(k Kind) bool {
	return canonicalRe.MatchString(string(k))
}

func (k Kind) String() string {
	return string(k)
}

// Common reports whether k is one of the kinds declared in this package.
func (k Kind) Common() bool {
	_, ok := commonKinds[k]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is kept as is.
func (k *Kind) UnmarshalText(text []byte) error {
	if err := validate(string(text)); err != nil {
		return err
	}
	*k = Kind(text)
	return nil
}

func validate(s string) error {
	if s == "" {
		return ErrKindInvalid
	}
	return nil
}
