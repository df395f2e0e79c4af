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

// Package config loads transport settings for resources from YAML: the
// default wire format and the status rules fed to the mapper.
//
//	wire: cbor
//	statuses:
//	  - kind: RoomFull
//	    http: 409
//	    grpc: FAILED_PRECONDITION
//	  - kind: NetworkError
//	    resource: games.moves
//	    http: 504
//	    grpc: DEADLINE_EXCEEDED
//	fallback:
//	  http: 400
//	  grpc: FAILED_PRECONDITION
//
// The RESOURCES_WIRE_FORMAT environment variable, when set, replaces wire.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/movesthatmatter/resources-io/apis"
	"github.com/movesthatmatter/resources-io/mapper"
	"github.com/movesthatmatter/resources-io/wire"
)

// EnvWireFormat overrides Config.Wire.
const EnvWireFormat = "RESOURCES_WIRE_FORMAT"

// Config is the file layout.
type Config struct {
	// Wire is "json" (default) or "cbor".
	Wire string `yaml:"wire"`

	// Statuses are mapper rules, applied in order.
	Statuses []apis.RuleDescriptor `yaml:"statuses"`

	// Fallback applies to kinds without any rule.
	Fallback *Fallback `yaml:"fallback,omitempty"`
}

// Fallback is the pair of statuses for unmapped kinds.
type Fallback struct {
	HTTP int    `yaml:"http"`
	GRPC string `yaml:"grpc"`
}

// Load reads a Config from r, applies the environment override and
// validates the result. Unknown keys are rejected; empty input yields the
// defaults.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if v, ok := os.LookupEnv(EnvWireFormat); ok && strings.TrimSpace(v) != "" {
		c.Wire = v
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile is Load for the file at path.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Load(bytes.NewReader(b))
}

// Validate checks the wire format and every status rule.
func (c *Config) Validate() error {
	if _, err := c.Format(); err != nil {
		return err
	}
	if _, err := c.Mapper(); err != nil {
		return err
	}
	return nil
}

// Format returns the configured wire format.
func (c *Config) Format() (wire.Format, error) {
	if strings.TrimSpace(c.Wire) == "" {
		return wire.JSON, nil
	}
	f, err := wire.ByName(c.Wire)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

// MapperOptions translates the rules into mapper options.
func (c *Config) MapperOptions() ([]mapper.Option, error) {
	opts := []mapper.Option{mapper.WithRules(c.Statuses...)}
	if c.Fallback != nil {
		code, err := mapper.ParseGRPCCode(c.Fallback.GRPC)
		if err != nil {
			return nil, fmt.Errorf("config: fallback: %w", err)
		}
		opts = append(opts, mapper.WithFallback(c.Fallback.HTTP, code))
	}
	return opts, nil
}

// Mapper builds the mapper described by c, with extra options applied last.
func (c *Config) Mapper(extra ...mapper.Option) (apis.Mapper, error) {
	opts, err := c.MapperOptions()
	if err != nil {
		return nil, err
	}
	m, err := mapper.New(append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return m, nil
}
