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

import (
	"fmt"
	"strings"
)

func joinPrinted(a []Value, readable bool, sep string) string {
	var b strings.Builder
	for i, x := range a {
		if i > 0 {
			b.WriteString(sep)
		}
		Write(&b, x, readable)
	}
	return b.String()
}

func init_strings() {
	DeclareTitle("Strings / Printing")

	Declare(&Globalenv, &Declaration{
		"pr-str", "renders its arguments readably, joined with spaces",
		0, 1000,
		[]DeclarationParameter{
			{"value...", "any", "values to render"},
		}, "string",
		func(a ...Value) Value {
			return NewString(joinPrinted(a, true, " "))
		},
	})
	Declare(&Globalenv, &Declaration{
		"str", "concatenates its arguments rendered non-readably, without separator",
		0, 1000,
		[]DeclarationParameter{
			{"value...", "any", "values to render"},
		}, "string",
		func(a ...Value) Value {
			return NewString(joinPrinted(a, false, ""))
		},
	})
	Declare(&Globalenv, &Declaration{
		"prn", "prints its arguments readably, joined with spaces, followed by a newline",
		0, 1000,
		[]DeclarationParameter{
			{"value...", "any", "values to print"},
		}, "nil",
		func(a ...Value) Value {
			fmt.Println(joinPrinted(a, true, " "))
			return NewNil()
		},
	})
	Declare(&Globalenv, &Declaration{
		"println", "prints its arguments non-readably, joined with spaces, followed by a newline",
		0, 1000,
		[]DeclarationParameter{
			{"value...", "any", "values to print"},
		}, "nil",
		func(a ...Value) Value {
			fmt.Println(joinPrinted(a, false, " "))
			return NewNil()
		},
	})
}
