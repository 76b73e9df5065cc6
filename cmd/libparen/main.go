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

// libparen builds a C shared library (-buildmode=c-shared) exporting the
// three-function embedding ABI. This is the only package in the module
// that imports "C"; the paren package itself stays an ordinary importable
// Go library.
package main

import "C"

import "github.com/paren-lang/paren/paren"

var kernel *paren.Kernel

//export paren_init
func paren_init() {
	kernel = paren.NewKernel()
	kernel.Init()
}

//export paren_eval_string
func paren_eval_string(s *C.char) {
	kernel.EvalString(C.GoString(s))
}

//export paren_import
func paren_import(path *C.char) {
	kernel.Import(C.GoString(path))
}

func main() {}
