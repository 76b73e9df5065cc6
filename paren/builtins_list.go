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

func (k *Kernel) installLists() {
	k.Declare(k.Global, &Declaration{
		Name: "list", Desc: "(list X...): construct", MinParameter: 0, MaxParameter: -1,
		Fn: func(args []Value, env *Env) Value { return NewList(append([]Value(nil), args...)) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "cons", Desc: "(cons X LST): prepend, new list", MinParameter: 2, MaxParameter: 2,
		Fn: func(args []Value, env *Env) Value {
			out := make([]Value, 0, len(args[1].List)+1)
			out = append(out, args[0])
			out = append(out, args[1].List...)
			return NewList(out)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "nth", Desc: "(nth INDEX LST)", MinParameter: 2, MaxParameter: 2,
		Fn: func(args []Value, env *Env) Value {
			i := ToInt(args[0])
			lst := args[1].List
			if i < 0 || i >= int64(len(lst)) {
				return NewNil()
			}
			return lst[i]
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "length", Desc: "(length LST)", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewInt(int64(len(args[0].List))) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "push-back!", Desc: "(push-back! LST ITEM): destructive append", MinParameter: 2, MaxParameter: 2,
		Fn: func(args []Value, env *Env) Value {
			args[0].List = append(args[0].List, Clone(args[1]))
			return args[0]
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "pop-back!", Desc: "(pop-back! LST): destructive remove-last", MinParameter: 1, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value {
			lst := args[0].List
			if len(lst) == 0 {
				return NewNil()
			}
			last := lst[len(lst)-1]
			args[0].List = lst[:len(lst)-1]
			return last
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "apply", Desc: "(apply FUNC LST)", MinParameter: 2, MaxParameter: 2,
		Fn: func(args []Value, env *Env) Value { return Apply(args[0], args[1].List, env) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "fold", Desc: "(fold FUNC LST): left fold seeded with element 0", MinParameter: 2, MaxParameter: 2,
		Fn: func(args []Value, env *Env) Value {
			f := args[0]
			lst := args[1].List
			if len(lst) == 0 {
				return NewNil()
			}
			acc := lst[0]
			for _, item := range lst[1:] {
				acc = Apply(f, []Value{acc, item}, env)
			}
			return acc
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "map", Desc: "(map FUNC LST)", MinParameter: 2, MaxParameter: 2,
		Fn: func(args []Value, env *Env) Value {
			f := args[0]
			lst := args[1].List
			out := make([]Value, len(lst))
			for i, item := range lst {
				out[i] = Apply(f, []Value{item}, env)
			}
			return NewList(out)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "filter", Desc: "(filter FUNC LST)", MinParameter: 2, MaxParameter: 2,
		Fn: func(args []Value, env *Env) Value {
			f := args[0]
			lst := args[1].List
			var out []Value
			for _, item := range lst {
				if Truthy(Apply(f, []Value{item}, env)) {
					out = append(out, item)
				}
			}
			return NewList(out)
		},
	})
}
