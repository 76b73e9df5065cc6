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
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/btree"
)

// Version is the interpreter version line printed by PrintBanner, the Go
// equivalent of the original's PAREN_VERSION macro.
const Version = "1.9.8"

// Kernel bundles the process-wide state the language needs: one symbol
// table, one macro table, one global environment. Design note 9 of
// SPEC_FULL.md recommends exactly this shape over true package-level
// globals so the three embedding entry points can be wrapped around an
// explicit handle. cmd/libparen adapts a single package-level *Kernel to
// the flat paren_init/paren_eval_string/paren_import C symbols.
type Kernel struct {
	Symbols *SymbolTable
	Macros  *MacroTable
	Global  *Env

	declarations map[string]*Declaration
	symbolIndex  *btree.BTree // ordered index of global symbol names, introspection only
}

type btreeString string

func (s btreeString) Less(than btree.Item) bool { return s < than.(btreeString) }

// NewKernel allocates an uninitialized kernel: no builtins, no prelude.
// Call Init before evaluating anything against it.
func NewKernel() *Kernel {
	k := &Kernel{
		Symbols:      NewSymbolTable(),
		Macros:       NewMacroTable(),
		declarations: make(map[string]*Declaration),
		symbolIndex:  btree.New(8),
	}
	k.Global = NewEnv(nil)
	return k
}

// Init installs constants, special forms, and builtins, then loads the
// prelude (see prelude.go). Must be called exactly once before any other
// entry point, per the embedding contract.
func (k *Kernel) Init() {
	k.installConstants()
	k.installSpecials()
	k.installBuiltins()
	k.loadPrelude()
}

// Compile runs the macro-expanding compile pass over form.
func (k *Kernel) Compile(form Value) Value { return k.Macros.Compile(form) }

// EvalString tokenizes, reads, compiles, and evaluates every top-level form
// in s against the global environment, discarding all but the last value.
// Every form is compiled before any of them is evaluated, matching the
// original two-pass compile_all/eval_all structure: a defmacro later in
// the buffer can still be recorded before earlier forms run, but never the
// reverse of what plain top-to-bottom compilation would produce.
func (k *Kernel) EvalString(s string) Value {
	tokens, _ := Tokenize(s)
	forms := Parse(tokens, k.Symbols)
	compiled := make([]Value, len(forms))
	for i, f := range forms {
		compiled[i] = k.Compile(f)
	}
	return EvalAll(compiled, k.Global)
}

// Import slurps path and evaluates it like EvalString. If the file cannot
// be read, it prints a message to stderr and returns, per the embedding
// contract for paren_import.
func (k *Kernel) Import(path string) Value {
	contents, err := Slurp(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read file `%s`\n", path)
		return NewNil()
	}
	return k.EvalString(contents)
}

// GlobalSymbolNames returns every name ever bound in the global frame, in
// sorted order, backed by the btree index declare.go maintains alongside
// installation. Purely for introspection (the startup banner, netrepl's
// "symbols" operation); it has no effect on evaluation.
func (k *Kernel) GlobalSymbolNames() []string {
	names := make([]string, 0, k.symbolIndex.Len())
	k.symbolIndex.Ascend(func(it btree.Item) bool {
		names = append(names, string(it.(btreeString)))
		return true
	})
	return names
}

// MacroNames returns every currently-defined macro name, sorted.
func (k *Kernel) MacroNames() []string {
	names := k.Macros.Names()
	sort.Strings(names)
	return names
}

// PrintBanner writes the REPL startup banner to w: a version line, then
// every global-frame symbol name, then every macro name, both sorted and
// wrapped ten to a line, matching the original's print_logo/print_map_keys.
// Front ends call this only when dropping into a REPL, never when running
// a file, the same gating the original applies around print_logo.
func (k *Kernel) PrintBanner(w io.Writer) {
	fmt.Fprintf(w, "Paren %s\n", Version)
	fmt.Fprint(w, "Predefined Symbols:")
	printWrapped(w, k.GlobalSymbolNames())
	fmt.Fprintln(w, "Macros:")
	printWrapped(w, k.MacroNames())
}

func printWrapped(w io.Writer, names []string) {
	for i, n := range names {
		if i > 0 && i%10 == 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, " "+n)
	}
	fmt.Fprintln(w)
}
