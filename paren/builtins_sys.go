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
	"os"
	"os/exec"

	"github.com/dc0d/onexit"
)

func (k *Kernel) installSys() {
	k.Declare(k.Global, &Declaration{
		Name: "eval", Desc: "(eval X): evaluate a form", MinParameter: 1, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value { return Eval(args[0], env) },
	})
	k.Declare(k.Global, &Declaration{
		Name: "exit", Desc: "(exit {CODE}): terminate the process", MinParameter: 0, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value {
			code := 0
			if len(args) > 0 {
				code = int(ToInt(args[0]))
			}
			onexit.ForceExit(code)
			return NewNil()
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "system", Desc: "(system CMD...): run a shell command, return its status", MinParameter: 0, MaxParameter: -1,
		Fn: func(args []Value, env *Env) Value {
			cmd := ""
			for _, a := range args {
				cmd += String(a)
			}
			c := exec.Command("sh", "-c", cmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			c.Stdin = os.Stdin
			err := c.Run()
			if err == nil {
				return NewInt(0)
			}
			if exitErr, ok := err.(*exec.ExitError); ok {
				return NewInt(int64(exitErr.ExitCode()))
			}
			return NewInt(-1)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "import", Desc: "(import PATH): slurp then evaluate as source", MinParameter: 1, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value {
			k.Import(String(args[0]))
			return NewNil()
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "join", Desc: "(join THREAD): wait for a thread handle", MinParameter: 1, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value {
			if args[0].Tag == TagThread && args[0].Thread != nil {
				args[0].Thread.Join()
			}
			return NewNil()
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "builtins", Desc: "(builtins): every declared builtin and special form, sorted by name", MinParameter: 0, MaxParameter: 0,
		Fn: func(args []Value, env *Env) Value {
			decls := k.Declarations()
			names := make([]Value, len(decls))
			for i, d := range decls {
				names[i] = NewString(d.Name)
			}
			return NewList(names)
		},
	})
}
