// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argslist is a declarative command-line argument parser.
//
// A schema is an ordered list of Descriptors. Each declares the aliases of an
// argument, its arity, the type its values are coerced to, a default and help
// metadata:
//
//	p, err := argslist.New([]argslist.Descriptor{
//	    {Names: []string{"build", "b"}, Arity: argslist.NoValues, Explanation: "if provided, re-builds"},
//	    {Names: []string{"files", "f"}, Arity: argslist.MultiValue, Example: "-f a.js b.js"},
//	    {Names: []string{"threads", "t"}, Arity: argslist.SingleValue, Type: argslist.Int, Default: 8},
//	}, argslist.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, ok := p.Parse(os.Args[1:], argslist.LogSink{})
//	if !ok {
//	    return // help was shown
//	}
//	threads, _ := res.Int("threads")
//
// # Token Syntax
//
// A token that starts with the marker ('-' by default) and has at least one
// more character is a flag; the rest of the token is looked up among the
// aliases. Every other token is a value for the most recent flag. A single
// leading backslash is stripped from values, so `\-5` is the value "-5" and
// `\\x` is the value `\x`.
//
// # Arity
//
//   - NoValues: the result is true when the flag appears.
//   - SingleValue: the first value is kept.
//   - MultiValue: all values up to the next flag, in order.
//   - RepeatedGroup: the flag may recur; each occurrence starts a new group.
//
// # Diagnostics
//
// Malformed input never fails a parse. Each anomaly is reported to the Sink
// as a Diagnostic and the parser falls back: unknown flags and stray values
// are discarded, the first value of a single-value flag wins, malformed ints
// are parsed best-effort and malformed bools become false.
//
// # Defaults
//
// After the pass, every descriptor whose flag produced no entry receives its
// Default. A multi-value flag that appeared without values keeps its empty
// sequence.
package argslist
