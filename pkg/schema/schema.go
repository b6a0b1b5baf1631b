// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema loads argslist descriptor schemas from TOML and YAML files.
//
// A TOML schema lists its descriptors as an array of tables:
//
//	[[args]]
//	names = ["files", "f"]
//	arity = "multi"
//	default = ["main.js"]
//	example = "-f in_1.js in_2.js"
//	explanation = "the input files to process"
//
// The YAML form uses the same keys under a top-level "args" sequence.
package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argslist/pkg/argslist"
	"gopkg.in/yaml.v3"
)

// Format is a schema file format.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned when a schema format cannot be determined.
var ErrUnknownFormat = errors.New("unknown schema format")

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the format of a schema file from its extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// FormatError describes an invalid descriptor in a schema file.
type FormatError struct {
	Index int    // index of the descriptor
	Field string // offending field
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("args[%d].%s: %v", e.Index, e.Field, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

type rawSchema struct {
	Args []rawDescriptor `toml:"args" yaml:"args"`
}

type rawDescriptor struct {
	Names       []string `toml:"names" yaml:"names"`
	Arity       any      `toml:"arity" yaml:"arity"`
	Type        string   `toml:"type" yaml:"type"`
	Default     any      `toml:"default" yaml:"default"`
	Example     string   `toml:"example" yaml:"example"`
	Explanation string   `toml:"explanation" yaml:"explanation"`
}

// Load reads the schema file at path. An empty format is inferred from the
// file extension.
func Load(path string, format Format) ([]argslist.Descriptor, error) {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	descs, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return descs, nil
}

// Decode reads a schema in the given format from r.
func Decode(r io.Reader, format Format) ([]argslist.Descriptor, error) {
	var raw rawSchema
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	descs := make([]argslist.Descriptor, 0, len(raw.Args))
	for i, rd := range raw.Args {
		d, err := rd.descriptor(i)
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}
	return descs, nil
}

func (rd rawDescriptor) descriptor(i int) (argslist.Descriptor, error) {
	arity, err := parseArity(rd.Arity)
	if err != nil {
		return argslist.Descriptor{}, &FormatError{Index: i, Field: "arity", Err: err}
	}
	def, err := normalizeDefault(arity, rd.Default)
	if err != nil {
		return argslist.Descriptor{}, &FormatError{Index: i, Field: "default", Err: err}
	}
	return argslist.Descriptor{
		Names:       rd.Names,
		Arity:       arity,
		Type:        argslist.ValueType(rd.Type),
		Default:     def,
		Example:     rd.Example,
		Explanation: rd.Explanation,
	}, nil
}

// parseArity accepts both the named and the numeric arity forms.
func parseArity(v any) (argslist.Arity, error) {
	switch v := v.(type) {
	case nil:
		return argslist.NoValues, nil
	case string:
		return argslist.ParseArity(v)
	case int:
		return argslist.ParseArity(strconv.Itoa(v))
	case int64:
		return argslist.ParseArity(strconv.FormatInt(v, 10))
	}
	return 0, fmt.Errorf("unexpected arity value %v (%T)", v, v)
}

// normalizeDefault converts a decoded default into the shape produced by
// arity: bool, a scalar, []any or [][]any.
func normalizeDefault(arity argslist.Arity, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch arity {
	case argslist.NoValues:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("want bool for arity %v, got %T", arity, v)
		}
		return b, nil
	case argslist.SingleValue:
		return scalar(v)
	case argslist.MultiValue:
		return sequence(v)
	case argslist.RepeatedGroup:
		outer, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("want a list of lists for arity %v, got %T", arity, v)
		}
		groups := make([][]any, 0, len(outer))
		for _, g := range outer {
			seq, err := sequence(g)
			if err != nil {
				return nil, err
			}
			groups = append(groups, seq)
		}
		return groups, nil
	}
	return nil, fmt.Errorf("unexpected arity %v", arity)
}

func sequence(v any) ([]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("want a list, got %T", v)
	}
	out := make([]any, 0, len(list))
	for _, e := range list {
		s, err := scalar(e)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// scalar maps decoded scalars onto the types the parser produces. TOML
// decodes integers as int64; the parser produces int.
func scalar(v any) (any, error) {
	switch v := v.(type) {
	case string, bool, int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return v, nil
	}
	return nil, fmt.Errorf("want a string, int or bool, got %T", v)
}
