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

func (k *Kernel) installStrings() {
	k.Declare(k.Global, &Declaration{
		Name: "strlen", Desc: "(strlen X)", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewInt(int64(len(args[0].S))) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "char-at", Desc: "(char-at STR INDEX): byte at INDEX as int", MinParameter: 2, MaxParameter: 2, Foldable: true,
		Fn: func(args []Value, env *Env) Value {
			i := ToInt(args[1])
			s := args[0].S
			if i < 0 || i >= int64(len(s)) {
				return NewNil()
			}
			return NewInt(int64(s[i]))
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "chr", Desc: "(chr X): int -> one-byte string", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewString(string([]byte{byte(ToInt(args[0]))})) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "read-string", Desc: "(read-string SRC): parse the first form in SRC", MinParameter: 1, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value {
			tokens, _ := Tokenize(args[0].S)
			return ReadOne(tokens, k.Symbols)
		},
	})
}
