// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argslist/pkg/argslist"
)

const tomlSchema = `
[[args]]
names = ["build", "b"]
arity = "none"
example = "-b"
explanation = "if provided, re-builds"

[[args]]
names = ["files", "f"]
arity = "multi"
default = ["main.js"]

[[args]]
names = ["threads", "t"]
arity = 1
type = "int"
default = 8

[[args]]
names = ["define", "D"]
arity = "repeated"
default = [["a", "b"], ["c"]]
`

const yamlSchema = `
args:
  - names: [build, b]
    arity: none
    example: -b
    explanation: if provided, re-builds
  - names: [files, f]
    arity: multi
    default: [main.js]
  - names: [threads, t]
    arity: single
    type: int
    default: 8
  - names: [define, D]
    arity: 3
    default: [[a, b], [c]]
`

func wantDescriptors() []argslist.Descriptor {
	return []argslist.Descriptor{
		{Names: []string{"build", "b"}, Arity: argslist.NoValues, Example: "-b", Explanation: "if provided, re-builds"},
		{Names: []string{"files", "f"}, Arity: argslist.MultiValue, Default: []any{"main.js"}},
		{Names: []string{"threads", "t"}, Arity: argslist.SingleValue, Type: argslist.Int, Default: 8},
		{Names: []string{"define", "D"}, Arity: argslist.RepeatedGroup, Default: [][]any{{"a", "b"}, {"c"}}},
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{TOML, tomlSchema},
		{YAML, yamlSchema},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(wantDescriptors(), got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	got, err := Decode(strings.NewReader(""), YAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Decode() = %v, want empty", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{
			name:      "bad arity",
			input:     "[[args]]\nnames = [\"x\"]\narity = \"lots\"\n",
			wantField: "arity",
		},
		{
			name:      "presence default must be bool",
			input:     "[[args]]\nnames = [\"x\"]\ndefault = \"yes\"\n",
			wantField: "default",
		},
		{
			name:      "multi default must be a list",
			input:     "[[args]]\nnames = [\"x\"]\narity = \"multi\"\ndefault = \"a\"\n",
			wantField: "default",
		},
		{
			name:      "repeated default must be a list of lists",
			input:     "[[args]]\nnames = [\"x\"]\narity = \"repeated\"\ndefault = [\"a\"]\n",
			wantField: "default",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), TOML)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Decode() error = %v, want *FormatError", err)
			}
			if fe.Index != 0 || fe.Field != tt.wantField {
				t.Errorf("FormatError = %+v, want index 0 field %q", fe, tt.wantField)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.yml")
	if err := os.WriteFile(path, []byte(yamlSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(wantDescriptors(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	// The loaded schema must be accepted by the parser.
	if _, err := argslist.New(got, argslist.Options{}); err != nil {
		t.Errorf("argslist.New() error = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"args.toml", TOML, false},
		{"dir/args.YAML", YAML, false},
		{"args.yml", YAML, false},
		{"args.json", "", true},
		{"args", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
