// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// elementType selects the scalar type that is generated and sorted.
type elementType int

const (
	typeInt32 elementType = iota
	typeFloat32
	typeFloat64
)

func (e elementType) String() string {
	switch e {
	case typeInt32:
		return "int32"
	case typeFloat32:
		return "float32"
	case typeFloat64:
		return "float64"
	default:
		return "elementType(" + strconv.Itoa(int(e)) + ")"
	}
}

// parseElementType accepts the numeric selectors 0, 1 and 2 as well as the
// type names.
func parseElementType(s string) (elementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "int32", "":
		return typeInt32, nil
	case "1", "float32", "float":
		return typeFloat32, nil
	case "2", "float64", "double":
		return typeFloat64, nil
	}
	return 0, errors.Errorf("unknown element type %q (want 0/int32, 1/float32 or 2/float64)", s)
}

// config holds one benchmark run. The TOML keys match the flag names.
type config struct {
	Elements   int    `toml:"elements"`
	Iterations int    `toml:"iterations"`
	Type       string `toml:"type"`
	Seed       int64  `toml:"seed"`
	Baseline   bool   `toml:"baseline"`
	Verbose    bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Elements:   65536,
		Iterations: 1,
		Type:       "int32",
		Seed:       1,
	}
}

// loadConfig overlays the values found in the TOML file at path onto cfg.
func loadConfig(path string, cfg *config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return nil
}

func (c config) validate() error {
	if c.Elements < 0 {
		return errors.Errorf("elements must not be negative, got %d", c.Elements)
	}
	if c.Iterations < 1 {
		return errors.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	_, err := parseElementType(c.Type)
	return err
}
