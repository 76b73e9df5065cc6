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

func (k *Kernel) installCoerce() {
	k.Declare(k.Global, &Declaration{
		Name: "int", Desc: "(int X)", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewInt(ToInt(args[0])) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "double", Desc: "(double X)", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewFloat(ToFloat(args[0])) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "type", Desc: "(type X): type name as string", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewString(TypeName(args[0])) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "string", Desc: "(string X...): concatenate printed forms", MinParameter: 0, MaxParameter: -1, Foldable: true,
		Fn: func(args []Value, env *Env) Value {
			if len(args) <= 1 {
				return NewString("")
			}
			acc := ""
			for _, a := range args {
				acc += String(a)
			}
			return NewString(acc)
		},
	})
}
