// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argslist

import (
	"fmt"
	"strconv"
	"strings"
)

// unescape strips a single leading backslash. It lets callers pass values
// that would otherwise look like flags, such as `\-5`.
func unescape(raw string) string {
	return strings.TrimPrefix(raw, `\`)
}

// coerce converts a raw value token to typ, reporting malformed values
// through warn. It always produces a value.
func coerce(raw string, typ ValueType, warn func(Kind, string)) any {
	v := unescape(raw)
	switch typ.orDefault() {
	case String:
		return v
	case Int:
		n, ok := parseInt(v)
		if !ok {
			warn(BadInt, fmt.Sprintf(`unexpected int arg value '%s'. Expected /^-?\d+$/.`, v))
		}
		return n
	case Bool:
		switch strings.ToLower(v) {
		case "true", "t", "1":
			return true
		case "false", "f", "0":
			return false
		}
		warn(BadBool, fmt.Sprintf("unexpected bool arg value '%s'. Expected 'true', 't', '1', 'false', 'f', or '0'.", v))
		return false
	default:
		warn(UnknownType, fmt.Sprintf("unexpected arg type '%s'. Expected 'int', 'bool', or 'string'.", typ))
		return v
	}
}

// isPlainInt reports whether s is an optional minus sign followed by one or
// more decimal digits.
func isPlainInt(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseInt parses s as a plain integer. When s is not plain it falls back to
// a best-effort parse of the leading integer prefix ("4.3" is 4, "abc" is 0)
// and reports ok == false. Values out of range clamp and are not ok.
func parseInt(s string) (n int, ok bool) {
	ok = isPlainInt(s)
	prefix := leadingInt(s)
	switch prefix {
	case "", "-", "+":
		return 0, false
	}
	v, err := strconv.ParseInt(prefix, 10, strconv.IntSize)
	if err != nil {
		// ParseInt clamps to the nearest bound on ErrRange.
		return int(v), false
	}
	return int(v), ok
}

// leadingInt returns the longest prefix of s, after leading whitespace, made
// of an optional sign and decimal digits.
func leadingInt(s string) string {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
