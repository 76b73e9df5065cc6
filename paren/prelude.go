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

	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

const preludeName = "library.paren"

// loadPrelude tries library.paren, then a .lz4 sibling, then a .xz sibling,
// in that order. If none is found it prints a message to stderr and leaves
// the kernel usable with only built-ins, exactly per the plain-file
// contract — compression is purely a distribution convenience layered on
// top of it.
func (k *Kernel) loadPrelude() {
	if contents, ok := readPlain(preludeName); ok {
		k.EvalString(contents)
		return
	}
	if contents, ok := readLZ4(preludeName + ".lz4"); ok {
		k.EvalString(contents)
		return
	}
	if contents, ok := readXZ(preludeName + ".xz"); ok {
		k.EvalString(contents)
		return
	}
	fmt.Fprintf(os.Stderr, "Error loading %s\n", preludeName)
}

func readPlain(path string) (string, bool) {
	contents, err := Slurp(path)
	return contents, err == nil
}

func readLZ4(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()
	data, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func readXZ(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()
	r, err := xz.NewReader(f)
	if err != nil {
		return "", false
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", false
	}
	return string(data), true
}
