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

// installSpecials registers every head that receives its operand forms
// unevaluated. args here is always list[1:] of the call form: args[0] is
// what the original called raw_args[1].
func (k *Kernel) installSpecials() {
	k.Declare(k.Global, &Declaration{
		Name: "def", Desc: "(def SYM V): bind V in the current frame", MinParameter: 2, MaxParameter: 2, Special: true,
		Fn: func(args []Value, env *Env) Value {
			v := Clone(Eval(args[1], env))
			env.Set(args[0].SymCode, v)
			if env == k.Global {
				k.symbolIndex.ReplaceOrInsert(btreeString(args[0].S))
			}
			return v
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "set", Desc: "(set SYM-OR-PLACE V): rebind or overwrite in place", MinParameter: 2, MaxParameter: 2, Special: true,
		Fn: func(args []Value, env *Env) Value {
			place := Eval(args[0], env)
			v := Clone(Eval(args[1], env))
			if args[0].Tag == TagSymbol && IsNil(place) {
				env.Set(args[0].SymCode, v)
				return v
			}
			Overwrite(place, v)
			return place
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "if", Desc: "(if C T [E])", MinParameter: 2, MaxParameter: 3, Special: true,
		Fn: func(args []Value, env *Env) Value {
			if Truthy(Eval(args[0], env)) {
				return Eval(args[1], env)
			}
			if len(args) < 3 {
				return NewNil()
			}
			return Eval(args[2], env)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "fn", Desc: "(fn (PARAM...) BODY...): lexical closure", MinParameter: 1, MaxParameter: -1, Special: true,
		Fn: func(args []Value, env *Env) Value {
			return NewFn(&Closure{Params: args[0].List, Body: args[1:], Outer: env})
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "begin", Desc: "(begin E...): sequence, value of the last", MinParameter: 0, MaxParameter: -1, Special: true,
		Fn: func(args []Value, env *Env) Value {
			if len(args) == 0 {
				return NewNil()
			}
			for _, e := range args[:len(args)-1] {
				Eval(e, env)
			}
			return Eval(args[len(args)-1], env)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "while", Desc: "(while C E...)", MinParameter: 1, MaxParameter: -1, Special: true,
		Fn: func(args []Value, env *Env) Value {
			cond := args[0]
			body := args[1:]
			for Truthy(Eval(cond, env)) {
				for _, e := range body {
					Eval(e, env)
				}
			}
			return NewNil()
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "quote", Desc: "(quote X): return X unevaluated", MinParameter: 1, MaxParameter: 1, Special: true,
		Fn: func(args []Value, env *Env) Value {
			return args[0]
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "&&", Desc: "(&& X...): short-circuiting and", MinParameter: 0, MaxParameter: -1, Special: true,
		Fn: func(args []Value, env *Env) Value {
			for _, a := range args {
				if !Truthy(Eval(a, env)) {
					return NewBool(false)
				}
			}
			return NewBool(true)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "||", Desc: "(|| X...): short-circuiting or", MinParameter: 0, MaxParameter: -1, Special: true,
		Fn: func(args []Value, env *Env) Value {
			for _, a := range args {
				if Truthy(Eval(a, env)) {
					return NewBool(true)
				}
			}
			return NewBool(false)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "thread", Desc: "(thread E...): spawn sharing the spawner's environment", MinParameter: 0, MaxParameter: -1, Special: true,
		Fn: func(args []Value, env *Env) Value {
			return spawnThread(args, env)
		},
	})
}
