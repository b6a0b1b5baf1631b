// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui decorates argslist output for terminals.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/argslist/pkg/argslist"
	"golang.org/x/term"
)

// ColorEnabled reports whether colored output should be written to w. Color
// is off when NO_COLOR is set, when TERM is empty or "dumb", and when w is
// not a terminal.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Sink is an argslist.Sink that writes warnings in bold yellow and info
// text in bold blue.
type Sink struct {
	out  io.Writer
	warn *color.Color
	info *color.Color
	err  *color.Color

	// Warnings counts the warnings written so far.
	Warnings int
}

var _ argslist.Sink = (*Sink)(nil)

// NewSink returns a Sink writing to out. Colors are only used when enabled
// is true.
func NewSink(out io.Writer, enabled bool) *Sink {
	s := &Sink{
		out:  out,
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgBlue, color.Bold),
		err:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{s.warn, s.info, s.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s *Sink) Warn(d argslist.Diagnostic) {
	s.Warnings++
	s.warn.Fprintln(s.out, d.String())
}

func (s *Sink) Info(msg string) {
	s.info.Fprintln(s.out, msg)
}

// Errorf writes a red error line.
func (s *Sink) Errorf(format string, args ...any) {
	s.err.Fprintln(s.out, fmt.Sprintf(format, args...))
}
