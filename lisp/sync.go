/*
Copyright (C) 2026  Carl-Philip Hänsch

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

package lisp

/* shared mutable cells: the only mutable values in the language */

func atomArg(v Value, op string) *Value {
	if !v.IsAtom() {
		panic(op + " requires an atom")
	}
	return v.Atom()
}

func init_sync() {
	DeclareTitle("Atoms")

	Declare(&Globalenv, &Declaration{
		"atom", "wraps a value in a fresh mutable cell with its own identity",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "initial cell content"},
		}, "atom",
		func(a ...Value) Value {
			return NewAtom(a[0])
		},
	})
	Declare(&Globalenv, &Declaration{
		"atom?", "tells whether the argument is an atom",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to inspect"},
		}, "bool",
		func(a ...Value) Value {
			return NewBool(a[0].IsAtom())
		},
	})
	Declare(&Globalenv, &Declaration{
		"deref", "returns the current content of an atom",
		1, 1,
		[]DeclarationParameter{
			{"cell", "atom", "atom to read"},
		}, "any",
		func(a ...Value) Value {
			return *atomArg(a[0], "deref")
		},
	})
	Declare(&Globalenv, &Declaration{
		"reset!", "replaces the content of an atom and returns the new value",
		2, 2,
		[]DeclarationParameter{
			{"cell", "atom", "atom to write"},
			{"value", "any", "new content"},
		}, "any",
		func(a ...Value) Value {
			cell := atomArg(a[0], "reset!")
			*cell = a[1]
			return a[1]
		},
	})
	Declare(&Globalenv, &Declaration{
		"swap!", "applies a function to the current content of an atom (plus extra arguments), stores and returns the result",
		2, 1000,
		[]DeclarationParameter{
			{"cell", "atom", "atom to update"},
			{"f", "func", "function from old content to new content"},
			{"args...", "any", "additional arguments passed after the old content"},
		}, "any",
		func(a ...Value) Value {
			cell := atomArg(a[0], "swap!")
			args := make([]Value, 0, len(a)-1)
			args = append(args, *cell)
			args = append(args, a[2:]...)
			result := Apply(a[1], args...)
			*cell = result
			return result
		},
	})
}
