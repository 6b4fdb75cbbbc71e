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

func intArg(v Value, op string) int64 {
	if !v.IsInt() {
		panic(op + " requires integer arguments")
	}
	return v.Int()
}

func init_alu() {
	DeclareTitle("Arithmetic / Logic")

	Declare(&Globalenv, &Declaration{
		"+", "adds two integers",
		2, 2,
		[]DeclarationParameter{
			{"value...", "int", "values to add"},
		}, "int",
		func(a ...Value) Value {
			return NewInt(intArg(a[0], "+") + intArg(a[1], "+"))
		},
	})
	Declare(&Globalenv, &Declaration{
		"-", "subtracts an integer from another",
		2, 2,
		[]DeclarationParameter{
			{"value...", "int", "values"},
		}, "int",
		func(a ...Value) Value {
			return NewInt(intArg(a[0], "-") - intArg(a[1], "-"))
		},
	})
	Declare(&Globalenv, &Declaration{
		"*", "multiplies two integers",
		2, 2,
		[]DeclarationParameter{
			{"value...", "int", "values"},
		}, "int",
		func(a ...Value) Value {
			return NewInt(intArg(a[0], "*") * intArg(a[1], "*"))
		},
	})
	Declare(&Globalenv, &Declaration{
		"/", "divides an integer by another, truncating toward zero",
		2, 2,
		[]DeclarationParameter{
			{"value...", "int", "values"},
		}, "int",
		func(a ...Value) Value {
			divisor := intArg(a[1], "/")
			if divisor == 0 {
				panic("division by zero")
			}
			return NewInt(intArg(a[0], "/") / divisor)
		},
	})
	Declare(&Globalenv, &Declaration{
		"=", "compares two values structurally; lists and vectors compare element-wise against each other",
		2, 2,
		[]DeclarationParameter{
			{"value...", "any", "values"},
		}, "bool",
		func(a ...Value) Value {
			return EqualValue(a[0], a[1])
		},
	})
	Declare(&Globalenv, &Declaration{
		"<", "compares two integers",
		2, 2,
		[]DeclarationParameter{
			{"value...", "int", "values"},
		}, "bool",
		func(a ...Value) Value {
			return NewBool(intArg(a[0], "<") < intArg(a[1], "<"))
		},
	})
	Declare(&Globalenv, &Declaration{
		"<=", "compares two integers",
		2, 2,
		[]DeclarationParameter{
			{"value...", "int", "values"},
		}, "bool",
		func(a ...Value) Value {
			return NewBool(intArg(a[0], "<=") <= intArg(a[1], "<="))
		},
	})
	Declare(&Globalenv, &Declaration{
		">", "compares two integers",
		2, 2,
		[]DeclarationParameter{
			{"value...", "int", "values"},
		}, "bool",
		func(a ...Value) Value {
			return NewBool(intArg(a[0], ">") > intArg(a[1], ">"))
		},
	})
	Declare(&Globalenv, &Declaration{
		">=", "compares two integers",
		2, 2,
		[]DeclarationParameter{
			{"value...", "int", "values"},
		}, "bool",
		func(a ...Value) Value {
			return NewBool(intArg(a[0], ">=") >= intArg(a[1], ">="))
		},
	})
}
