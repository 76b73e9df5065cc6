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
	"math"
	"math/rand"
)

// installBuiltins registers every head whose operands are evaluated before
// the host function runs: arithmetic, comparison, logic, coercions,
// strings, lists, I/O, and control/FFI.
func (k *Kernel) installBuiltins() {
	k.installArith()
	k.installCompare()
	k.installCoerce()
	k.installStrings()
	k.installLists()
	k.installIO()
	k.installSys()
}

func (k *Kernel) installArith() {
	k.Declare(k.Global, &Declaration{
		Name: "+", Desc: "(+ X...): sum, identity 0 on int", MinParameter: 0, MaxParameter: -1, Foldable: true,
		Fn: arithFold(0, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }),
	})
	k.Declare(k.Global, &Declaration{
		Name: "-", Desc: "(- X...): difference, identity 0 on int", MinParameter: 0, MaxParameter: -1, Foldable: true,
		Fn: arithFold(0, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }),
	})
	k.Declare(k.Global, &Declaration{
		Name: "*", Desc: "(* X...): product, identity 1 on int", MinParameter: 0, MaxParameter: -1, Foldable: true,
		Fn: arithFold(1, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }),
	})
	k.Declare(k.Global, &Declaration{
		Name: "/", Desc: "(/ X...): quotient, identity 1 on int", MinParameter: 0, MaxParameter: -1, Foldable: true,
		Fn: arithFold(1, func(a, b int64) int64 { return a / b }, func(a, b float64) float64 { return a / b }),
	})
	k.Declare(k.Global, &Declaration{
		Name: "^", Desc: "(^ BASE EXP): double power", MinParameter: 2, MaxParameter: 2, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewFloat(math.Pow(ToFloat(args[0]), ToFloat(args[1]))) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "%", Desc: "(% DIVIDEND DIVISOR): integer modulo", MinParameter: 2, MaxParameter: 2, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewInt(ToInt(args[0]) % ToInt(args[1])) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "sqrt", Desc: "(sqrt X)", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewFloat(math.Sqrt(ToFloat(args[0]))) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "floor", Desc: "(floor X)", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewFloat(math.Floor(ToFloat(args[0]))) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "ceil", Desc: "(ceil X)", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewFloat(math.Ceil(ToFloat(args[0]))) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "ln", Desc: "(ln X): natural log", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewFloat(math.Log(ToFloat(args[0]))) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "log10", Desc: "(log10 X)", MinParameter: 1, MaxParameter: 1, Foldable: true,
		Fn: func(args []Value, env *Env) Value { return NewFloat(math.Log10(ToFloat(args[0]))) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "rand", Desc: "(rand): uniform double in [0,1)", MinParameter: 0, MaxParameter: 0,
		Fn: func(args []Value, env *Env) Value { return NewFloat(rand.Float64()) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "++", Desc: "(++ X): mutate in place, increment, return X", MinParameter: 1, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value {
			x := args[0]
			if x.Tag == TagInt {
				x.I++
			} else {
				x.F++
			}
			return x
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "--", Desc: "(-- X): mutate in place, decrement, return X", MinParameter: 1, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value {
			x := args[0]
			if x.Tag == TagInt {
				x.I--
			} else {
				x.F--
			}
			return x
		},
	})
}

// arithFold implements the shared shape of + - * /: with no operands return
// the type's identity as an int; otherwise the first operand's tag picks
// int or double mode for every remaining operand.
func arithFold(identity int64, iop func(a, b int64) int64, fop func(a, b float64) float64) BuiltinFn {
	return func(args []Value, env *Env) Value {
		if len(args) == 0 {
			return NewInt(identity)
		}
		first := args[0]
		if first.Tag == TagInt {
			sum := first.I
			for _, a := range args[1:] {
				sum = iop(sum, ToInt(a))
			}
			return NewInt(sum)
		}
		sum := ToFloat(first)
		for _, a := range args[1:] {
			sum = fop(sum, ToFloat(a))
		}
		return NewFloat(sum)
	}
}
