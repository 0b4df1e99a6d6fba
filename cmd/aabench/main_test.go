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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseElementType(t *testing.T) {
	tests := []struct {
		in   string
		want elementType
	}{
		{"", typeInt32},
		{"0", typeInt32},
		{"int32", typeInt32},
		{"1", typeFloat32},
		{"Float32", typeFloat32},
		{"2", typeFloat64},
		{"double", typeFloat64},
	}
	for _, tt := range tests {
		got, err := parseElementType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseElementType("3")
	assert.ErrorContains(t, err, "unknown element type")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
elements = 1000
iterations = 3
type = "float64"
seed = 9
`)
	cfg := defaultConfig()
	require.NoError(t, loadConfig(path, &cfg))
	assert.Equal(t, config{Elements: 1000, Iterations: 3, Type: "float64", Seed: 9}, cfg)

	err := loadConfig(writeConfig(t, "elements = 1\nthreads = 4\n"), &cfg)
	assert.ErrorContains(t, err, "unknown keys")

	err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"), &cfg)
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	assert.NoError(t, cfg.validate())

	cfg.Iterations = 0
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.Type = "complex128"
	assert.Error(t, cfg.validate())
}

func TestRunBench(t *testing.T) {
	for _, typ := range []string{"int32", "float32", "float64"} {
		cfg := config{Elements: 1001, Iterations: 2, Type: typ, Seed: 5}
		res, err := runBench(cfg, zap.NewNop())
		require.NoError(t, err, typ)
		assert.Equal(t, typ, res.Type.String())
		assert.Equal(t, 1001, res.Elements)
		assert.Equal(t, 2, res.Iterations)
		assert.NotEmpty(t, res.First)

		cfg.Baseline = true
		base, err := runBench(cfg, zap.NewNop())
		require.NoError(t, err, typ)
		assert.Equal(t, res.First, base.First, "same seed gives the same minimum")
	}
}

func TestRunBenchEmpty(t *testing.T) {
	res, err := runBench(config{Iterations: 1, Type: "int32"}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, res.First)
}

func TestRootCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"300", "2", "1", "--seed", "3"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "engine aa-sort")
	assert.Contains(t, out.String(), "Sorted 300 float32 values 2 times")
}

func TestRootCommandConfigAndOverrides(t *testing.T) {
	path := writeConfig(t, "elements = 64\niterations = 1\ntype = \"2\"\nbaseline = true\n")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--baseline=false", "128"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "engine aa-sort")
	assert.Contains(t, out.String(), "Sorted 128 float64 values 1 times")
}

func TestRootCommandBadArgs(t *testing.T) {
	for _, args := range [][]string{
		{"many"},
		{"10", "0"},
		{"10", "1", "string"},
		{"1", "2", "3", "4"},
	} {
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "%v", args)
	}
}
