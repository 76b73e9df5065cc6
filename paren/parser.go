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

import "strconv"

// reader turns a flat token sequence into a top-level form sequence.
type reader struct {
	tokens []string
	pos    int
	syms   *SymbolTable
}

// Parse reads every top-level form out of tokens, interning symbols into
// table as it goes.
func Parse(tokens []string, table *SymbolTable) []Value {
	r := &reader{tokens: tokens, syms: table}
	return r.readForms()
}

// ReadOne reads exactly the first top-level form out of tokens. Used by the
// read-string builtin, which per the language contract reads only the
// first form present in its argument.
func ReadOne(tokens []string, table *SymbolTable) Value {
	forms := Parse(tokens, table)
	if len(forms) == 0 {
		return NewNil()
	}
	return forms[0]
}

func (r *reader) readForms() []Value {
	var out []Value
	for r.pos < len(r.tokens) {
		tok := r.tokens[r.pos]
		// An empty token whose first byte has the high bit set terminates
		// parsing at the top level. This mirrors a platform-specific quirk
		// of the original reader and is preserved deliberately.
		if len(tok) > 0 && tok[0]&0x80 != 0 {
			break
		}
		if tok == ")" {
			r.pos++
			break
		}
		out = append(out, r.readOne())
	}
	return out
}

func (r *reader) readOne() Value {
	tok := r.tokens[r.pos]
	switch {
	case len(tok) > 0 && tok[0] == '"':
		r.pos++
		return NewString(tok[1:])
	case tok == "(":
		r.pos++
		items := r.readForms()
		return NewList(items)
	case isNumberStart(tok):
		r.pos++
		return parseNumber(tok)
	default:
		r.pos++
		return NewSymbol(r.syms, tok)
	}
}

func isNumberStart(tok string) bool {
	if len(tok) == 0 {
		return false
	}
	if tok[0] >= '0' && tok[0] <= '9' {
		return true
	}
	return tok[0] == '-' && len(tok) >= 2 && tok[1] >= '0' && tok[1] <= '9'
}

func parseNumber(tok string) Value {
	for i := 0; i < len(tok); i++ {
		if tok[i] == '.' || tok[i] == 'e' || tok[i] == 'E' {
			return NewFloat(atofPrefix(tok))
		}
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return NewInt(atoiPrefix(tok))
	}
	return NewInt(n)
}
