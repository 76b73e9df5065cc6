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

// Eval dispatches on form's tag. Symbols look themselves up in env; lists
// evaluate their head and then either hand the raw tail to a special form,
// or evaluate every remaining element left-to-right and apply a builtin or
// user function; every other variant is self-evaluating.
func Eval(form Value, env *Env) Value {
	switch form.Tag {
	case TagSymbol:
		return env.Get(form.SymCode)
	case TagList:
		list := form.List
		if len(list) == 0 {
			return NewNil()
		}
		head := Eval(list[0], env)
		switch head.Tag {
		case TagSpecial:
			return head.Special(list[1:], env)
		case TagBuiltin:
			args := evalArgs(list[1:], env)
			// A builtin has no captured environment of its own: the frame
			// handed to it is fresh or nil-rooted, matching the original
			// semantics that only a closure's captured environment ever
			// survives into the callee's view.
			return head.Builtin(args, NewEnv(nil))
		case TagFn:
			args := evalArgs(list[1:], env)
			return Apply(head, args, env)
		default:
			return NewNil()
		}
	default:
		return form
	}
}

func evalArgs(forms []Value, env *Env) []Value {
	args := make([]Value, len(forms))
	for i, f := range forms {
		args[i] = Eval(f, env)
	}
	return args
}

// Apply invokes func on the already-evaluated args. For a closure, it
// builds a fresh frame whose outer link is the closure's captured
// environment, binds parameters positionally (extra args are ignored,
// missing ones are simply left unbound), and evaluates the body in order,
// returning the last form's value (nil for an empty body). For anything
// other than a builtin or fn, it returns nil.
func Apply(fn Value, args []Value, env *Env) Value {
	switch fn.Tag {
	case TagBuiltin:
		return fn.Builtin(args, env)
	case TagFn:
		c := fn.Fn
		local := NewEnv(c.Outer)
		n := len(c.Params)
		if len(args) < n {
			n = len(args)
		}
		for i := 0; i < n; i++ {
			local.Set(c.Params[i].SymCode, args[i])
		}
		if len(c.Body) == 0 {
			return NewNil()
		}
		var result Value = NewNil()
		for _, b := range c.Body {
			result = Eval(b, local)
		}
		return result
	default:
		return NewNil()
	}
}

// EvalAll evaluates every form in order against env, returning the value of
// the last one (nil if forms is empty).
func EvalAll(forms []Value, env *Env) Value {
	var result Value = NewNil()
	for _, f := range forms {
		result = Eval(f, env)
	}
	return result
}
