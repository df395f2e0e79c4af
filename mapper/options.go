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

package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/kind"
)

// Option adjusts the rules a mapper is built from.
type Option func(*builder)

// WithHTTPDefault sets the kind-level HTTP status for k.
func WithHTTPDefault(k kind.Kind, status int) Option {
	return func(b *builder) {
		if b.checkHTTP(k, status) {
			b.http.defaults[k] = status
		}
	}
}

// WithGRPCDefault sets the kind-level gRPC code for k.
func WithGRPCDefault(k kind.Kind, c codes.Code) Option {
	return func(b *builder) {
		if b.checkKind(k) {
			b.grpc.defaults[k] = c
		}
	}
}

// WithHTTPOverride forces the HTTP status for k regardless of resource.
func WithHTTPOverride(k kind.Kind, status int) Option {
	return func(b *builder) {
		if b.checkHTTP(k, status) {
			b.http.overrides[k] = status
		}
	}
}

// WithGRPCOverride forces the gRPC code for k regardless of resource.
func WithGRPCOverride(k kind.Kind, c codes.Code) Option {
	return func(b *builder) {
		if b.checkKind(k) {
			b.grpc.overrides[k] = c
		}
	}
}

// WithHTTPPrefix maps k raised by resources under prefix to status.
// The prefix is a resource name that may use "*" for one segment.
func WithHTTPPrefix(k kind.Kind, prefix string, status int) Option {
	return func(b *builder) {
		if b.checkHTTP(k, status) {
			b.http.prefixes[k] = append(b.http.prefixes[k], rule[int]{prefix: prefix, val: status})
		}
	}
}

// WithGRPCPrefix is WithHTTPPrefix for gRPC.
func WithGRPCPrefix(k kind.Kind, prefix string, c codes.Code) Option {
	return func(b *builder) {
		if b.checkKind(k) {
			b.grpc.prefixes[k] = append(b.grpc.prefixes[k], rule[codes.Code]{prefix: prefix, val: c})
		}
	}
}

// WithFallback sets the statuses used for kinds that have no rule at all.
func WithFallback(status int, c codes.Code) Option {
	return func(b *builder) {
		if status < 100 || status > 599 {
			b.errs = append(b.errs, fmt.Errorf("mapper: fallback http status %d out of range", status))
			return
		}
		b.fallbackHTTP, b.fallbackGRPC = status, c
	}
}

// WithRules applies flat rule descriptors, typically loaded from a config
// file. A descriptor with a resource becomes a prefix rule; one without is a
// kind default, or an override when Override is set.
func WithRules(rules ...apis.RuleDescriptor) Option {
	return func(b *builder) {
		for i, r := range rules {
			k, err := kind.Parse(r.Kind)
			if err != nil {
				b.errs = append(b.errs, fmt.Errorf("mapper: rule %d: %w", i, err))
				continue
			}
			if r.HTTP != 0 {
				switch {
				case r.Resource != "":
					WithHTTPPrefix(k, r.Resource, r.HTTP)(b)
				case r.Override:
					WithHTTPOverride(k, r.HTTP)(b)
				default:
					WithHTTPDefault(k, r.HTTP)(b)
				}
			}
			if r.GRPC != "" {
				c, err := ParseGRPCCode(r.GRPC)
				if err != nil {
					b.errs = append(b.errs, fmt.Errorf("mapper: rule %d: %w", i, err))
					continue
				}
				switch {
				case r.Resource != "":
					WithGRPCPrefix(k, r.Resource, c)(b)
				case r.Override:
					WithGRPCOverride(k, c)(b)
				default:
					WithGRPCDefault(k, c)(b)
				}
			}
		}
	}
}

// ParseGRPCCode reads a gRPC code written either as its canonical name
// ("NOT_FOUND", case-insensitive) or as its number ("5").
func ParseGRPCCode(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	raw := strconv.Quote(strings.ToUpper(s))
	if _, err := strconv.ParseUint(s, 10, 32); err == nil {
		raw = s
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return 0, fmt.Errorf("mapper: grpc code %q: %w", s, err)
	}
	return c, nil
}

func (b *builder) checkKind(k kind.Kind) bool {
	if err := kind.Validate(k); err != nil {
		b.errs = append(b.errs, fmt.Errorf("mapper: %w", err))
		return false
	}
	return true
}

func (b *builder) checkHTTP(k kind.Kind, status int) bool {
	if !b.checkKind(k) {
		return false
	}
	if status < 100 || status > 599 {
		b.errs = append(b.errs, fmt.Errorf("mapper: http status %d for %s out of range", status, k))
		return false
	}
	return true
}
