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

// parenc performs no language analysis: it wraps a .paren source file (plus
// any -i imports) into a tiny Go driver that calls the three kernel entry
// points, the same trivial role the original tool's LLVM path played for
// that host, targeting Go source instead since this is a Go module.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/tools/imports"
)

type importList []string

func (l *importList) String() string     { return fmt.Sprint(*l) }
func (l *importList) Set(v string) error { *l = append(*l, v); return nil }

const driverTemplate = `package main

import "github.com/paren-lang/paren/paren"

func main() {
	k := paren.NewKernel()
	k.Init()
%s	k.EvalString(%s)
}
`

func main() {
	var preImports importList
	output := flag.String("o", "-", "output Go file, - for stdout")
	flag.Var(&preImports, "i", "import a file before running the input (repeatable)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: parenc [-i FILE]... [-o OUTPUT] INPUT.paren")
		os.Exit(1)
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	importCalls := ""
	for _, p := range preImports {
		importCalls += fmt.Sprintf("\tk.Import(%s)\n", strconv.Quote(p))
	}

	driver := fmt.Sprintf(driverTemplate, importCalls, strconv.Quote(string(source)))

	formatted, err := imports.Process("driver.go", []byte(driver), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generated driver failed to format:", err)
		formatted = []byte(driver)
	}

	if *output == "-" {
		os.Stdout.Write(formatted)
		return
	}
	if err := os.WriteFile(*output, formatted, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
