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
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/docker/go-units"
)

func (k *Kernel) installIO() {
	k.Declare(k.Global, &Declaration{
		Name: "pr", Desc: "(pr X...): space-separated, no trailing newline", MinParameter: 0, MaxParameter: -1,
		Fn: func(args []Value, env *Env) Value {
			pr(args)
			return NewNil()
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "prn", Desc: "(prn X...): same as pr plus a trailing newline", MinParameter: 0, MaxParameter: -1,
		Fn: func(args []Value, env *Env) Value {
			pr(args)
			fmt.Println()
			return NewNil()
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "read-line", Desc: "(read-line): one line from stdin, nil on EOF", MinParameter: 0, MaxParameter: 0,
		Fn: func(args []Value, env *Env) Value {
			if !stdinScanner.Scan() {
				return NewNil()
			}
			return NewString(stdinScanner.Text())
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "slurp", Desc: "(slurp FILE): whole file as a string, nil on failure", MinParameter: 1, MaxParameter: 1,
		Fn: func(args []Value, env *Env) Value {
			contents, err := Slurp(args[0].S)
			if err != nil {
				return NewNil()
			}
			return NewString(contents)
		},
	})
	k.Declare(k.Global, &Declaration{
		Name: "spit", Desc: "(spit FILE STRING): write, returns byte count or -1", MinParameter: 2, MaxParameter: 2,
		Fn: func(args []Value, env *Env) Value {
			n, err := Spit(args[0].S, args[1].S)
			if err != nil {
				return NewInt(-1)
			}
			return NewInt(int64(n))
		},
	})
}

func pr(args []Value) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = String(a)
	}
	fmt.Print(strings.Join(parts, " "))
}

var stdinScanner = bufio.NewScanner(os.Stdin)

// Slurp reads the whole of path into a string, logging a human-readable
// byte count at debug verbosity so a prelude load or a large import shows
// up in the process's diagnostic output.
func Slurp(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	log.Printf("slurp %s: %s", path, units.BytesSize(float64(len(data))))
	return string(data), nil
}

// Spit writes data to path, truncating any existing contents, and returns
// the number of bytes written.
func Spit(path, data string) (int, error) {
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return 0, err
	}
	log.Printf("spit %s: %s", path, units.BytesSize(float64(len(data))))
	return len(data), nil
}
