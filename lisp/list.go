/*
Copyright (C) 2026  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

func init_list() {
	DeclareTitle("Lists")

	Declare(&Globalenv, &Declaration{
		"list", "returns a list of its arguments",
		0, 1000,
		[]DeclarationParameter{
			{"item...", "any", "elements of the new list"},
		}, "list",
		func(a ...Value) Value {
			return NewList(a)
		},
	})
	Declare(&Globalenv, &Declaration{
		"list?", "tells whether the argument is a list",
		1, 1,
		[]DeclarationParameter{
			{"value", "any", "value to inspect"},
		}, "bool",
		func(a ...Value) Value {
			return NewBool(a[0].IsList())
		},
	})
	Declare(&Globalenv, &Declaration{
		"empty?", "tells whether a list or vector has no elements",
		1, 1,
		[]DeclarationParameter{
			{"seq", "list", "list or vector"},
		}, "bool",
		func(a ...Value) Value {
			if !a[0].IsSeq() {
				return NewNil()
			}
			return NewBool(len(a[0].Slice()) == 0)
		},
	})
	Declare(&Globalenv, &Declaration{
		"count", "counts the number of elements in a list or vector; nil counts as 0",
		1, 1,
		[]DeclarationParameter{
			{"seq", "list", "list, vector or nil"},
		}, "int",
		func(a ...Value) Value {
			if !a[0].IsSeq() {
				return NewInt(0)
			}
			return NewInt(int64(len(a[0].Slice())))
		},
	})
	Declare(&Globalenv, &Declaration{
		"cons", "prepends an item to a list or vector, returning a list",
		2, 2,
		[]DeclarationParameter{
			{"car", "any", "new head element"},
			{"cdr", "list", "tail that is appended after car"},
		}, "list",
		func(a ...Value) Value {
			// cons a b: prepend item a to sequence b (construct list from item + tail)
			if !a[1].IsSeq() {
				panic("cons requires a list or vector as second argument")
			}
			cdr := a[1].Slice()
			out := make([]Value, 0, len(cdr)+1)
			out = append(out, a[0])
			out = append(out, cdr...)
			return NewList(out)
		},
	})
	Declare(&Globalenv, &Declaration{
		"concat", "concatenates any number of lists or vectors into a list",
		0, 1000,
		[]DeclarationParameter{
			{"seq...", "list", "sequences to concatenate"},
		}, "list",
		func(a ...Value) Value {
			out := make([]Value, 0)
			for _, seq := range a {
				if !seq.IsSeq() {
					panic("concat requires list or vector arguments")
				}
				out = append(out, seq.Slice()...)
			}
			return NewList(out)
		},
	})
	Declare(&Globalenv, &Declaration{
		"vec", "converts a list to a vector; a vector is returned as-is",
		1, 1,
		[]DeclarationParameter{
			{"seq", "list", "list or vector"},
		}, "list",
		func(a ...Value) Value {
			switch a[0].GetTag() {
			case tagVector:
				return a[0]
			case tagList:
				return NewVector(a[0].Slice())
			}
			panic("vec requires a list or vector")
		},
	})
}
