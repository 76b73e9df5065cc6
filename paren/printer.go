/*
Copyright (C) 2026  Paren Language Contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package paren

import (
	"reflect"
	"strconv"
	"strings"
)

// String renders v the way pr/prn/string render it: no surrounding quotes
// on strings or symbols, nil prints empty, doubles keep full round-trip
// precision.
func String(v Value) string {
	switch v.Tag {
	case TagNil:
		return ""
	case TagBool:
		if v.B {
			return "true"
		}
		return "false"
	case TagInt:
		return strconv.FormatInt(v.I, 10)
	case TagFloat:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case TagString, TagSymbol:
		return v.S
	case TagList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = String(e)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case TagFn:
		paramParts := make([]string, len(v.Fn.Params))
		for i, p := range v.Fn.Params {
			paramParts[i] = String(p)
		}
		parts := []string{"fn", "(" + strings.Join(paramParts, " ") + ")"}
		for _, e := range v.Fn.Body {
			parts = append(parts, String(e))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case TagBuiltin:
		return "#<builtin:" + funcHex(v.Builtin) + ">"
	case TagSpecial:
		return "#<builtin:" + funcHex(v.Special) + ">"
	case TagThread:
		return "#<thread>"
	default:
		return ""
	}
}

func funcHex(fn BuiltinFn) string {
	return strconv.FormatUint(uint64(reflect.ValueOf(fn).Pointer()), 16)
}

// WithType renders the REPL's "VALUE : TYPE" line.
func WithType(v Value) string {
	return String(v) + " : " + TypeName(v)
}
