// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argslist

import (
	"fmt"
	"strings"
)

// Arity is the cardinality contract for the values of an argument.
type Arity int

const (
	// NoValues is a boolean presence flag.
	NoValues Arity = iota
	// SingleValue takes exactly one value.
	SingleValue
	// MultiValue collects every value up to the next flag into one sequence.
	MultiValue
	// RepeatedGroup may recur; each occurrence starts a new inner sequence.
	RepeatedGroup
)

func (a Arity) String() string {
	switch a {
	case NoValues:
		return "none"
	case SingleValue:
		return "single"
	case MultiValue:
		return "multi"
	case RepeatedGroup:
		return "repeated"
	}
	return fmt.Sprintf("Arity(%d)", int(a))
}

func (a Arity) valid() bool {
	return a >= NoValues && a <= RepeatedGroup
}

// ParseArity parses the textual form of an Arity. Besides the names returned
// by Arity.String it accepts the numeric forms "0" through "3".
func ParseArity(s string) (Arity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "0":
		return NoValues, nil
	case "single", "1":
		return SingleValue, nil
	case "multi", "multiple", "2":
		return MultiValue, nil
	case "repeated", "repeated-group", "3":
		return RepeatedGroup, nil
	}
	return 0, fmt.Errorf("unknown arity %q (expected none, single, multi or repeated)", s)
}

// ValueType governs how raw value tokens are coerced.
type ValueType string

const (
	String ValueType = "string"
	Int    ValueType = "int"
	Bool   ValueType = "bool"
)

// orDefault maps the empty type to String.
func (t ValueType) orDefault() ValueType {
	if t == "" {
		return String
	}
	return t
}

// Descriptor declares a single argument of a schema.
type Descriptor struct {
	// Names are the aliases of the argument. Names[0] is the canonical name
	// under which the parsed value is reported.
	Names []string
	Arity Arity
	Type  ValueType
	// Default is substituted when the argument never appears. Its shape
	// should match what Arity produces: bool, a scalar, []any or [][]any.
	Default any

	Example     string
	Explanation string
}

// Name returns the canonical name of d.
func (d Descriptor) Name() string {
	if len(d.Names) == 0 {
		return ""
	}
	return d.Names[0]
}

// SchemaError is returned by New when the descriptor schema is malformed.
type SchemaError struct {
	Index  int    // index of the offending descriptor
	Name   string // offending alias, if any
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("descriptor %d: %s: %q", e.Index, e.Reason, e.Name)
	}
	return fmt.Sprintf("descriptor %d: %s", e.Index, e.Reason)
}
