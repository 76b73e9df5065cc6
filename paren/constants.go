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

// bindGlobal installs a plain value (not a function) under name in the
// global frame and records it in the symbol index, same as Declare does
// for functions.
func (k *Kernel) bindGlobal(name string, v Value) {
	code := k.Symbols.ToCode(name)
	k.Global.Set(code, v)
	k.symbolIndex.ReplaceOrInsert(btreeString(name))
}

// installConstants binds the handful of literal names the reader never
// produces on its own: the two booleans and the two math constants the
// prelude and ordinary programs expect to already exist at init.
func (k *Kernel) installConstants() {
	k.bindGlobal("true", NewBool(true))
	k.bindGlobal("false", NewBool(false))
	k.bindGlobal("E", NewFloat(2.71828182845904523536))
	k.bindGlobal("PI", NewFloat(3.14159265358979323846))
}
