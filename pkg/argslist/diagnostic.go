// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argslist

import (
	"fmt"
	"log"
)

// Kind identifies the anomaly a Diagnostic reports.
type Kind int

const (
	// UnknownName is a flag token that matches no descriptor.
	UnknownName Kind = iota + 1
	// OrphanValue is a value token with no active flag.
	OrphanValue
	// ZeroArityValue is a value token following a NoValues flag.
	ZeroArityValue
	// DuplicateName is a repeated occurrence of a non-repeatable flag.
	DuplicateName
	// ExcessValue is a second value for a SingleValue flag.
	ExcessValue
	// BadInt is an int value that is not a plain decimal integer.
	BadInt
	// BadBool is a bool value that is not one of the recognized spellings.
	BadBool
	// UnknownType is a value for a descriptor whose type is not recognized.
	UnknownType
)

var kindNames = map[Kind]string{
	UnknownName:    "unknown-name",
	OrphanValue:    "orphan-value",
	ZeroArityValue: "zero-arity-value",
	DuplicateName:  "duplicate-name",
	ExcessValue:    "excess-value",
	BadInt:         "bad-int",
	BadBool:        "bad-bool",
	UnknownType:    "unknown-type",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Severity is the severity of every Diagnostic. Diagnostics never abort a
// parse.
const Severity = "warning"

// Diagnostic describes a recoverable anomaly found during a parse.
type Diagnostic struct {
	Kind Kind
	// Token is the offending token as it appeared in the input.
	Token string
	// Name is the canonical name of the active descriptor, if any.
	Name    string
	Message string
}

func (d Diagnostic) String() string {
	return "Warning: " + d.Message
}

// Sink receives the output of a parse: warnings and informational text
// (help and the optional result dump).
type Sink interface {
	Warn(Diagnostic)
	Info(string)
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Warn(Diagnostic) {}
func (discard) Info(string)     {}

// Collector is a Sink that records what it receives.
type Collector struct {
	Diagnostics []Diagnostic
	Infos       []string
}

func (c *Collector) Warn(d Diagnostic) { c.Diagnostics = append(c.Diagnostics, d) }
func (c *Collector) Info(s string)     { c.Infos = append(c.Infos, s) }

// Kinds returns the kinds of the collected diagnostics in order.
func (c *Collector) Kinds() []Kind {
	kinds := make([]Kind, 0, len(c.Diagnostics))
	for _, d := range c.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

// Messages returns the rendered collected diagnostics in order.
func (c *Collector) Messages() []string {
	msgs := make([]string, 0, len(c.Diagnostics))
	for _, d := range c.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return msgs
}

// LogSink writes warnings and info text to a logger. A nil Logger means the
// standard logger.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

func (s LogSink) Warn(d Diagnostic) { s.logger().Print(d.String()) }
func (s LogSink) Info(msg string)   { s.logger().Print(msg) }
