// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argslist

// Result maps canonical argument names to parsed values:
//   - NoValues: bool
//   - SingleValue: string, int or bool depending on the descriptor type
//   - MultiValue: []any
//   - RepeatedGroup: [][]any, one inner sequence per occurrence
//
// Arguments that never appeared and have no default are absent.
type Result map[string]any

// Has reports whether name has an entry.
func (r Result) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Bool returns the bool stored under name, or false.
func (r Result) Bool(name string) bool {
	b, _ := r[name].(bool)
	return b
}

// StringValue returns the string stored under name.
func (r Result) StringValue(name string) (string, bool) {
	s, ok := r[name].(string)
	return s, ok
}

// Int returns the int stored under name.
func (r Result) Int(name string) (int, bool) {
	n, ok := r[name].(int)
	return n, ok
}

// Values returns the sequence stored under a MultiValue name.
func (r Result) Values(name string) []any {
	v, _ := r[name].([]any)
	return v
}

// Groups returns the sequences stored under a RepeatedGroup name.
func (r Result) Groups(name string) [][]any {
	g, _ := r[name].([][]any)
	return g
}
