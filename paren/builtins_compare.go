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

func (k *Kernel) installCompare() {
	k.Declare(k.Global, &Declaration{
		Name: "<", Desc: "(< X Y)", MinParameter: 2, MaxParameter: 2, Foldable: true,
		Fn: func(args []Value, env *Env) Value {
			if args[0].Tag == TagInt {
				return NewBool(args[0].I < ToInt(args[1]))
			}
			return NewBool(ToFloat(args[0]) < ToFloat(args[1]))
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "==", Desc: "(== X...): n-ary, compares against operand 0", MinParameter: 1, MaxParameter: -1, Foldable: true,
		Fn: func(args []Value, env *Env) Value {
			first := args[0]
			if first.Tag == TagInt {
				v := first.I
				for _, a := range args[1:] {
					if ToInt(a) != v {
						return NewBool(false)
					}
				}
				return NewBool(true)
			}
			v := ToFloat(first)
			for _, a := range args[1:] {
				if ToFloat(a) != v {
					return NewBool(false)
				}
			}
			return NewBool(true)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "!", Desc: "(! X): negate the bool slot", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewBool(!args[0].B) },
	})
}
