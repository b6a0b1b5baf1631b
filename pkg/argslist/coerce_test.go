// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argslist

import (
	"math"
	"strconv"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-17", -17, true},
		{"007", 7, true},
		{"4.3", 4, false},
		{"12abc", 12, false},
		{"+5", 5, false},
		{" 9", 9, false},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"--3", 0, false},
		{"99999999999999999999999", math.MaxInt, false},
		{"-99999999999999999999999", math.MinInt, false},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.in), func(t *testing.T) {
			got, ok := parseInt(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseInt(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw      string
		typ      ValueType
		want     any
		wantWarn Kind
	}{
		{raw: "hello", typ: "", want: "hello"},
		{raw: `\-v`, typ: String, want: "-v"},
		{raw: `\\`, typ: String, want: `\`},
		{raw: "TRUE", typ: Bool, want: true},
		{raw: "t", typ: Bool, want: true},
		{raw: "F", typ: Bool, want: false},
		{raw: "nope", typ: Bool, want: false, wantWarn: BadBool},
		{raw: `\-12`, typ: Int, want: -12},
		{raw: "1e3", typ: Int, want: 1, wantWarn: BadInt},
		{raw: "x", typ: "uint", want: "x", wantWarn: UnknownType},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+tt.raw, func(t *testing.T) {
			var warned []Kind
			got := coerce(tt.raw, tt.typ, func(k Kind, _ string) { warned = append(warned, k) })
			if got != tt.want {
				t.Errorf("coerce(%q, %q) = %#v, want %#v", tt.raw, tt.typ, got, tt.want)
			}
			switch {
			case tt.wantWarn == 0 && len(warned) != 0:
				t.Errorf("unexpected warnings %v", warned)
			case tt.wantWarn != 0 && (len(warned) != 1 || warned[0] != tt.wantWarn):
				t.Errorf("warnings = %v, want [%v]", warned, tt.wantWarn)
			}
		})
	}
}

func TestParseArity(t *testing.T) {
	tests := []struct {
		in      string
		want    Arity
		wantErr bool
	}{
		{"none", NoValues, false},
		{"", NoValues, false},
		{"0", NoValues, false},
		{"Single", SingleValue, false},
		{"1", SingleValue, false},
		{"multi", MultiValue, false},
		{"2", MultiValue, false},
		{"repeated", RepeatedGroup, false},
		{"3", RepeatedGroup, false},
		{"many", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseArity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseArity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValueLabel(t *testing.T) {
	tests := []struct {
		arity Arity
		typ   ValueType
		want  string
	}{
		{NoValues, Int, "no values"},
		{SingleValue, "", "single string"},
		{SingleValue, Bool, "single bool"},
		{MultiValue, Int, "multiple ints"},
		{RepeatedGroup, Bool, "repeated multiple bools"},
		{RepeatedGroup, "", "repeated multiple strings"},
	}
	for _, tt := range tests {
		if got := ValueLabel(tt.arity, tt.typ); got != tt.want {
			t.Errorf("ValueLabel(%v, %q) = %q, want %q", tt.arity, tt.typ, got, tt.want)
		}
	}
}
