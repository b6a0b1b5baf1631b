// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders a parse result as shell environment assignments.
package env

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/yeetrun/argslist/pkg/argslist"
)

// Write replaces the file at path with the Marshal output for res.
func Write(path, prefix string, res argslist.Result) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create env file: %w", err)
	}
	defer f.Close()
	if err := Marshal(f, prefix, res); err != nil {
		return fmt.Errorf("failed to write env file %s: %w", path, err)
	}
	return f.Close()
}

// Marshal writes one KEY='value' line per entry of res, sorted by key. Keys
// are the prefixed canonical names upper-cased with every character outside
// [A-Z0-9_] replaced by '_'. Sequence elements are joined with ',' and
// groups with ';'.
func Marshal(o io.Writer, prefix string, res argslist.Result) error {
	names := make([]string, 0, len(res))
	for name := range res {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(o, "%s=%s\n", Key(prefix, name), quote(format(res[name]))); err != nil {
			return err
		}
	}
	return nil
}

// Key returns the variable name for a canonical argument name.
func Key(prefix, name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, prefix+name)
}

func format(v any) string {
	switch v := v.(type) {
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ",")
	case [][]any:
		groups := make([]string, len(v))
		for i, g := range v {
			groups[i] = format(g)
		}
		return strings.Join(groups, ";")
	}
	return fmt.Sprint(v)
}

// quote single-quotes s for POSIX shells.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
