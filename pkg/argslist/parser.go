// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argslist

import (
	"encoding/json"
	"fmt"
	"slices"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

const (
	defaultMarker = '-'
	helpCommand   = "help"
)

// Options configures a Parser.
type Options struct {
	// Marker is the character that introduces a flag token. Zero means '-'.
	Marker byte
	// PrintArgs echoes the final result mapping to the sink's info channel
	// after every parse.
	PrintArgs bool
}

// Parser parses token lists against a fixed descriptor schema. A Parser is
// immutable once built and may be shared by concurrent callers.
type Parser struct {
	descs     []Descriptor
	index     map[string]int // alias -> index into descs
	marker    byte
	printArgs bool
}

// New validates descs and returns a Parser for them. The descriptors are
// copied; later changes to descs do not affect the Parser.
func New(descs []Descriptor, opts Options) (*Parser, error) {
	p := &Parser{
		descs:     make([]Descriptor, 0, len(descs)),
		marker:    opts.Marker,
		printArgs: opts.PrintArgs,
	}
	if p.marker == 0 {
		p.marker = defaultMarker
	}
	for i, d := range descs {
		if len(d.Names) == 0 {
			return nil, &SchemaError{Index: i, Reason: "no names"}
		}
		if !d.Arity.valid() {
			return nil, &SchemaError{Index: i, Name: d.Names[0], Reason: fmt.Sprintf("invalid arity %v", d.Arity)}
		}
		for _, name := range d.Names {
			if name == "" {
				return nil, &SchemaError{Index: i, Reason: "empty name"}
			}
			if prev, dup := p.index[name]; dup {
				return nil, &SchemaError{Index: i, Name: name, Reason: fmt.Sprintf("name already used by descriptor %d", prev)}
			}
			mak.Set(&p.index, name, i)
		}
		p.descs = append(p.descs, cloneDescriptor(d))
	}
	return p, nil
}

// Descriptors returns a copy of the parser's schema.
func (p *Parser) Descriptors() []Descriptor {
	out := make([]Descriptor, len(p.descs))
	for i, d := range p.descs {
		out[i] = cloneDescriptor(d)
	}
	return out
}

// Lookup returns the descriptor that has name among its aliases.
func (p *Parser) Lookup(name string) (Descriptor, bool) {
	d := p.lookup(name)
	if d == nil {
		return Descriptor{}, false
	}
	return cloneDescriptor(*d), true
}

func (p *Parser) lookup(name string) *Descriptor {
	i, ok := p.index[name]
	if !ok {
		return nil
	}
	return &p.descs[i]
}

// IsFlag reports whether tok is a flag token: the marker followed by at
// least one more character.
func (p *Parser) IsFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == p.marker
}

// Parse parses tokens and returns the result mapping. Anomalies are
// reported to sink as warnings and never stop the parse; a nil sink discards
// them.
//
// After the pass, every descriptor with no entry in the result receives a
// copy of its default, if it has one. A single value flag given without a
// value has no entry and so gets its default; a multi value flag given
// without values keeps its empty sequence.
//
// Help text is written to sink when tokens is empty or starts with "help".
// In the latter case Parse returns (nil, false); otherwise ok is true.
func (p *Parser) Parse(tokens []string, sink Sink) (res Result, ok bool) {
	if sink == nil {
		sink = Discard
	}
	if len(tokens) == 0 || tokens[0] == helpCommand {
		sink.Info(p.Help())
		if len(tokens) > 0 {
			return nil, false
		}
	}

	res = make(Result, len(p.descs))
	seen := make(set.Set[string])
	var active *Descriptor
	for _, tok := range tokens {
		if p.IsFlag(tok) {
			active = p.flag(tok, res, seen, sink)
			continue
		}
		p.value(tok, active, res, sink)
	}
	p.applyDefaults(res)

	if p.printArgs {
		sink.Info("\nArgs: " + dump(res))
	}
	return res, true
}

// flag handles a flag token and returns the descriptor that becomes active,
// or nil when the flag is unknown.
func (p *Parser) flag(tok string, res Result, seen set.Set[string], sink Sink) *Descriptor {
	d := p.lookup(tok[1:])
	if d == nil {
		sink.Warn(Diagnostic{
			Kind:    UnknownName,
			Token:   tok,
			Message: fmt.Sprintf("unexpected arg name '%s'.", tok),
		})
		return nil
	}
	name := d.Name()
	if seen.Contains(name) && d.Arity != RepeatedGroup {
		sink.Warn(Diagnostic{
			Kind:    DuplicateName,
			Token:   tok,
			Name:    name,
			Message: fmt.Sprintf("arg name '%s' appeared multiple times.", tok),
		})
	}
	seen.Add(name)

	switch d.Arity {
	case NoValues:
		res[name] = true
	case MultiValue:
		if _, ok := res[name]; !ok {
			res[name] = []any{}
		}
	case RepeatedGroup:
		groups, _ := res[name].([][]any)
		res[name] = append(groups, []any{})
	}
	return d
}

// value handles a value token for the active descriptor d.
func (p *Parser) value(tok string, d *Descriptor, res Result, sink Sink) {
	if d == nil {
		sink.Warn(Diagnostic{
			Kind:    OrphanValue,
			Token:   tok,
			Message: fmt.Sprintf("arg value '%s' provided without an arg name.", tok),
		})
		return
	}
	name := d.Name()
	warn := func(k Kind, msg string) {
		sink.Warn(Diagnostic{Kind: k, Token: tok, Name: name, Message: msg})
	}

	switch d.Arity {
	case NoValues:
		warn(ZeroArityValue, fmt.Sprintf("arg value provided for zero value arg '%s'.", name))
	case SingleValue:
		if _, ok := res[name]; ok {
			warn(ExcessValue, fmt.Sprintf("multiple arg values provided for single value arg '%s'.", name))
			return
		}
		res[name] = coerce(tok, d.Type, warn)
	case MultiValue:
		vals, _ := res[name].([]any)
		res[name] = append(vals, coerce(tok, d.Type, warn))
	case RepeatedGroup:
		groups := res[name].([][]any)
		last := len(groups) - 1
		groups[last] = append(groups[last], coerce(tok, d.Type, warn))
	}
}

// applyDefaults fills in the default of every descriptor whose flag never
// produced an entry.
func (p *Parser) applyDefaults(res Result) {
	for _, d := range p.descs {
		name := d.Name()
		if _, ok := res[name]; ok || d.Default == nil {
			continue
		}
		res[name] = cloneValue(d.Default)
	}
}

func cloneDescriptor(d Descriptor) Descriptor {
	d.Names = slices.Clone(d.Names)
	d.Default = cloneValue(d.Default)
	return d
}

// cloneValue copies the sequences of a default so that callers mutating a
// Result cannot reach into the schema.
func cloneValue(v any) any {
	switch v := v.(type) {
	case []any:
		return slices.Clone(v)
	case [][]any:
		out := make([][]any, len(v))
		for i, g := range v {
			out[i] = slices.Clone(g)
		}
		return out
	}
	return v
}

func dump(res Result) string {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(res))
	}
	return string(b)
}
