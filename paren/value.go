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

// Tag discriminates the variants of a Value.
type Tag uint8

const (
	TagNil Tag = iota
	TagInt
	TagFloat
	TagBool
	TagString
	TagSymbol
	TagList
	TagBuiltin
	TagSpecial
	TagFn
	TagThread
)

func (t Tag) String() string {
	switch t {
	case TagNil:
		return "nil"
	case TagInt:
		return "int"
	case TagFloat:
		return "double"
	case TagBool:
		return "bool"
	case TagString:
		return "string"
	case TagSymbol:
		return "symbol"
	case TagList:
		return "list"
	case TagBuiltin:
		return "builtin"
	case TagSpecial:
		return "special"
	case TagFn:
		return "fn"
	case TagThread:
		return "thread"
	default:
		return "invalid type"
	}
}

// BuiltinFn is the uniform signature shared by builtins and special forms:
// builtins receive evaluated arguments, specials receive raw operand forms.
type BuiltinFn func(args []Value, env *Env) Value

// Closure is what a (fn (PARAM...) BODY...) form evaluates to.
type Closure struct {
	Params []Value // symbol Values
	Body   []Value
	Outer  *Env
}

// node is the tagged value cell. A Value is always a pointer to one: two
// bindings that alias the same node observe each other's mutation through
// set, push-back!, pop-back!, ++ and --, exactly as the language requires.
type node struct {
	Tag     Tag
	I       int64
	F       float64
	B       bool
	S       string // payload for TagString and TagSymbol
	SymCode int    // valid when Tag == TagSymbol
	List    []Value
	Builtin BuiltinFn
	Special BuiltinFn
	Fn      *Closure
	Thread  *ThreadHandle
}

// Value is a reference to one node. There is no declared-nil Value; every
// constructor returns a live pointer.
type Value = *node

func NewNil() Value { return &node{Tag: TagNil} }

func NewInt(i int64) Value { return &node{Tag: TagInt, I: i} }

func NewFloat(f float64) Value { return &node{Tag: TagFloat, F: f} }

func NewBool(b bool) Value { return &node{Tag: TagBool, B: b} }

func NewString(s string) Value { return &node{Tag: TagString, S: s} }

// NewSymbol interns name in table and returns a symbol Value carrying its code.
func NewSymbol(table *SymbolTable, name string) Value {
	return &node{Tag: TagSymbol, S: name, SymCode: table.ToCode(name)}
}

// NewSymbolWithCode builds a symbol Value when the code is already known
// (used by the macro expander, which never re-interns).
func NewSymbolWithCode(name string, code int) Value {
	return &node{Tag: TagSymbol, S: name, SymCode: code}
}

func NewList(items []Value) Value { return &node{Tag: TagList, List: items} }

func NewBuiltin(fn BuiltinFn) Value { return &node{Tag: TagBuiltin, Builtin: fn} }

func NewSpecial(fn BuiltinFn) Value { return &node{Tag: TagSpecial, Special: fn} }

func NewFn(c *Closure) Value { return &node{Tag: TagFn, Fn: c} }

func NewThread(t *ThreadHandle) Value { return &node{Tag: TagThread, Thread: t} }

// Clone makes a shallow copy of v: a fresh node with the same scalar fields
// and, for lists, the same element pointers (not copies of the elements).
// This is what `def` uses so that two `def`s of derived values never alias
// each other's top-level container.
func Clone(v Value) Value {
	c := *v
	if v.Tag == TagList {
		c.List = append([]Value(nil), v.List...)
	}
	return &c
}

// Overwrite mutates dst in place so every other binding sharing dst's
// pointer observes the change. This is how `set` and the in-place mutators
// (push-back!, pop-back!, ++, --) make their effect visible through aliases.
func Overwrite(dst, src Value) {
	*dst = *src
}

// Truthy reports whether v is considered true in a bool context. Per the
// data model only an explicit bool participates in bool context; everything
// else (including the empty list) behaves as false here only because this
// helper is used exclusively by forms that already expect a bool operand
// (if/while/&&/||). Use v.Tag == TagNil to test for nil specifically.
func Truthy(v Value) bool {
	return v.Tag == TagBool && v.B
}

func IsNil(v Value) bool { return v.Tag == TagNil }

// TypeName returns the type name printed by the `type` builtin.
func TypeName(v Value) string { return v.Tag.String() }
