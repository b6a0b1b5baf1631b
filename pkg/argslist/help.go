// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argslist

import (
	"strings"

	"github.com/yeetrun/argslist/pkg/columns"
)

const (
	helpHeader    = "Arguments:"
	helpSeparator = "    "
)

// Help renders the usage text of the parser's schema.
func (p *Parser) Help() string {
	return RenderHelp(p.descs)
}

// RenderHelp renders usage text for descs: a header line followed by one
// aligned row per descriptor with its example, aliases, value label and
// explanation.
func RenderHelp(descs []Descriptor) string {
	rows := make([][]string, 0, len(descs))
	for _, d := range descs {
		rows = append(rows, []string{
			"",
			d.Example,
			strings.Join(d.Names, "|"),
			ValueLabel(d.Arity, d.Type),
			d.Explanation,
		})
	}
	lines := append([]string{helpHeader}, columns.Join(rows, helpSeparator)...)
	return strings.Join(lines, "\n")
}

// ValueLabel describes the values an argument takes, such as "no values",
// "single int", "multiple strings" or "repeated multiple bools".
func ValueLabel(a Arity, t ValueType) string {
	typ := string(t.orDefault())
	switch a {
	case NoValues:
		return "no values"
	case SingleValue:
		return "single " + typ
	case MultiValue:
		return "multiple " + typ + "s"
	case RepeatedGroup:
		return "repeated multiple " + typ + "s"
	}
	return a.String()
}
