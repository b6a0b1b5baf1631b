// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package columns aligns rows of text cells into fixed-width columns.
package columns

import (
	"strings"
	"unicode/utf8"
)

// Align pads every cell to the width of the widest cell in its column.
// Width is measured in runes. Short rows are extended with empty cells so
// that every returned row has the same number of cells. The input is not
// modified.
func Align(rows [][]string) [][]string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	out := make([][]string, len(rows))
	for r, row := range rows {
		aligned := make([]string, len(widths))
		for i, w := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			aligned[i] = pad(cell, w)
		}
		out[r] = aligned
	}
	return out
}

// Join aligns rows and joins the cells of each row with sep.
func Join(rows [][]string, sep string) []string {
	aligned := Align(rows)
	lines := make([]string, len(aligned))
	for i, row := range aligned {
		lines[i] = strings.Join(row, sep)
	}
	return lines
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
