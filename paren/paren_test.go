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
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// newTestKernel builds a kernel with built-ins installed but skips the
// prelude load (no library.paren on disk during tests), so scenarios below
// only exercise what this package itself defines.
func newTestKernel() *Kernel {
	k := NewKernel()
	k.installConstants()
	k.installSpecials()
	k.installBuiltins()
	return k
}

func evalStr(t *testing.T, k *Kernel, src string) Value {
	t.Helper()
	return k.EvalString(src)
}

func TestArithmeticIntAndDouble(t *testing.T) {
	k := newTestKernel()
	if v := evalStr(t, k, "(+ 1 2 3)"); v.Tag != TagInt || v.I != 6 {
		t.Fatalf("got %v", WithType(v))
	}
	if v := evalStr(t, k, "(+ 1.5 2)"); v.Tag != TagFloat || v.F != 3.5 {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestDefSetMutateThroughBinding(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, "(def x 10) (set x (+ x 1)) x")
	if v.Tag != TagInt || v.I != 11 {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestRecursiveClosure(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, `(def f (fn (n) (if (< n 2) n (+ (f (- n 1)) (f (- n 2)))))) (f 10)`)
	if v.Tag != TagInt || v.I != 55 {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestDefmacroUnless(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, `(defmacro unless (c body) (if c nil body)) (unless false 42)`)
	if v.Tag != TagInt || v.I != 42 {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestPushBackMutatesSharedList(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, `(def xs (list 1 2 3)) (push-back! xs 4) (length xs)`)
	if v.Tag != TagInt || v.I != 4 {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestMapOverList(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, `(map (fn (x) (* x x)) (list 1 2 3))`)
	if v.Tag != TagList || len(v.List) != 3 || v.List[0].I != 1 || v.List[1].I != 4 || v.List[2].I != 9 {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestThreadJoin(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, `(def t (thread (+ 1 2))) (join t)`)
	if v.Tag != TagNil {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestDefBindsLocalFrameOnly(t *testing.T) {
	k := newTestKernel()
	evalStr(t, k, `(def x 1)`)
	evalStr(t, k, `(def f (fn () (def x 2) x))`)
	evalStr(t, k, `(f)`)
	v := evalStr(t, k, `x`)
	if v.Tag != TagInt || v.I != 1 {
		t.Fatalf("outer x clobbered: %v", WithType(v))
	}
}

func TestClosureSeesLaterSetOnOuter(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, `
		(def counter 0)
		(def inc (fn () (set counter (+ counter 1)) counter))
		(inc)
		(inc)
		(inc)
	`)
	if v.Tag != TagInt || v.I != 3 {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestMacroExpansionIsFixedPoint(t *testing.T) {
	mt := NewMacroTable()
	syms := NewSymbolTable()
	tokens, _ := Tokenize(`(defmacro twice (x) (begin x x))`)
	forms := Parse(tokens, syms)
	for _, f := range forms {
		mt.Compile(f)
	}
	tokens2, _ := Tokenize(`(twice (pr "a"))`)
	forms2 := Parse(tokens2, syms)
	first := mt.Compile(forms2[0])
	second := mt.Compile(first)
	if String(first) != String(second) {
		t.Fatalf("not a fixed point: %s vs %s", String(first), String(second))
	}
}

func TestAndOrNoOperandsIdentity(t *testing.T) {
	k := newTestKernel()
	if v := evalStr(t, k, `(&&)`); !Truthy(v) {
		t.Fatalf("(&&) should be true, got %v", WithType(v))
	}
	if v := evalStr(t, k, `(||)`); Truthy(v) {
		t.Fatalf("(||) should be false, got %v", WithType(v))
	}
}

func TestSymbolInterningStable(t *testing.T) {
	syms := NewSymbolTable()
	a := syms.ToCode("hello")
	b := syms.ToCode("hello")
	if a != b {
		t.Fatalf("re-interning changed code: %d vs %d", a, b)
	}
	if syms.NameOf(a) != "hello" {
		t.Fatalf("NameOf mismatch: %s", syms.NameOf(a))
	}
}

func TestTokenizerUnclosedCounter(t *testing.T) {
	_, unclosed := Tokenize(`(def x (list 1 2 "three`)
	if unclosed != 3 {
		t.Fatalf("expected 3 unclosed, got %d", unclosed)
	}
}

func TestReaderPrinterRoundTrip(t *testing.T) {
	k := newTestKernel()
	for _, src := range []string{"42", `"hello"`, "(1 2 3)", "3.5"} {
		v := evalStr(t, k, src)
		tokens, _ := Tokenize(String(v))
		reparsed := ReadOne(tokens, k.Symbols)
		if String(reparsed) != String(v) {
			t.Fatalf("round trip failed for %q: got %q", src, String(reparsed))
		}
	}
}

func TestCharAtOutOfRangeReturnsNil(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, `(char-at "hi" 99)`)
	if v.Tag != TagNil {
		t.Fatalf("got %v", WithType(v))
	}
}

func TestDeclarationRegistryListsArithmetic(t *testing.T) {
	k := newTestKernel()
	found := false
	for _, d := range k.Declarations() {
		if d.Name == "+" {
			found = true
			if d.Fn == nil {
				t.Fatalf("declaration %q missing Fn", d.Name)
			}
		}
	}
	if !found {
		t.Fatal("+ not found in declaration registry")
	}
}

func TestGlobalSymbolIndexSorted(t *testing.T) {
	k := newTestKernel()
	names := k.GlobalSymbolNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("symbol index not sorted at %d: %s > %s", i, names[i-1], names[i])
		}
	}
}

func TestDefAtGlobalFrameUpdatesSymbolIndex(t *testing.T) {
	k := newTestKernel()
	evalStr(t, k, `(def top-level-probe 1)`)
	for _, n := range k.GlobalSymbolNames() {
		if n == "top-level-probe" {
			return
		}
	}
	t.Fatal("top-level-probe not in GlobalSymbolNames after a top-level def")
}

func TestBuiltinsListsDeclarations(t *testing.T) {
	k := newTestKernel()
	v := evalStr(t, k, `(builtins)`)
	if v.Tag != TagList {
		t.Fatalf("got %v", WithType(v))
	}
	found := false
	for _, e := range v.List {
		if e.Tag == TagString && e.S == "+" {
			found = true
		}
	}
	if !found {
		t.Fatal("+ not listed by (builtins)")
	}
}

func TestPreludeLZ4Fallback(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/library.paren.lz4"
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := lz4.NewWriter(f)
	if _, err := w.Write([]byte(`(def lz4-loaded true)`)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	contents, ok := readLZ4(path)
	if !ok {
		t.Fatal("expected readLZ4 to succeed")
	}
	if contents != "(def lz4-loaded true)" {
		t.Fatalf("got %q", contents)
	}
}

func TestPreludeXZFallback(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/library.paren.xz"
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(`(def xz-loaded true)`)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	contents, ok := readXZ(path)
	if !ok {
		t.Fatal("expected readXZ to succeed")
	}
	if contents != "(def xz-loaded true)" {
		t.Fatalf("got %q", contents)
	}
}

func TestLoadPreludeFallsBackToCompressed(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	f, err := os.Create(dir + "/" + preludeName + ".lz4")
	if err != nil {
		t.Fatal(err)
	}
	w := lz4.NewWriter(f)
	w.Write([]byte(`(def prelude-loaded true)`))
	w.Close()
	f.Close()

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	k := newTestKernel()
	k.loadPrelude()
	v := evalStr(t, k, "prelude-loaded")
	if !Truthy(v) {
		t.Fatalf("expected prelude-loaded true, got %v", WithType(v))
	}
}
