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
/*
 * A minimal Lisp interpreter, as seen in lis.py and SICP
 * http://norvig.com/lispy.html
 * http://mitpress.mit.edu/sicp/full-text/sicp/book/node77.html
 */
package lisp

import (
	"fmt"
)

/*
 Eval / Apply
*/

func Eval(expression Value, en *Env) (value Value) {
	restart: // goto label because golang is lacking tail recursion, so just overwrite params and goto restart
	if expression.GetTag() != tagList {
		return evalAst(expression, en)
	}
	e := expression.Slice()
	if len(e) == 0 {
		return expression
	}
	if e[0].IsSymbol() {
		switch e[0].Text() {
		case "def!":
			if len(e) != 3 {
				panic("wrong amount of arguments for def!")
			}
			if !e[1].IsSymbol() {
				panic(Print(e[1], true) + " is not a symbol")
			}
			value = Eval(e[2], en)
			en.Define(Symbol(e[1].Text()), value)
			return value
		case "let*":
			if len(e) != 3 {
				panic("wrong amount of arguments for let*")
			}
			if !e[1].IsSeq() {
				panic("wrong bind format for let*")
			}
			binds := e[1].Slice()
			if len(binds)%2 != 0 {
				panic("wrong amount of arguments for bind of let*")
			}
			en2 := NewEnv(en)
			for i := 0; i < len(binds); i += 2 {
				if !binds[i].IsSymbol() {
					panic(Print(binds[i], true) + " is not a symbol")
				}
				// later bindings see earlier ones
				en2.Define(Symbol(binds[i].Text()), Eval(binds[i+1], en2))
			}
			expression = e[2]
			en = en2
			goto restart // tail call optimized
		case "do":
			if len(e) < 2 {
				panic("wrong amount of arguments for do")
			}
			for _, x := range e[1 : len(e)-1] {
				Eval(x, en)
			}
			expression = e[len(e)-1]
			goto restart // tail call optimized
		case "if":
			if len(e) < 3 {
				panic("wrong amount of arguments for if")
			}
			if Eval(e[1], en).IsTruthy() {
				expression = e[2]
			} else if len(e) >= 4 {
				expression = e[3]
			} else {
				return NewNil()
			}
			goto restart // tail call optimized
		case "fn*":
			if len(e) != 3 {
				panic("wrong amount of arguments for fn*")
			}
			if !e[1].IsSeq() {
				panic("wrong parameter format for fn*")
			}
			for _, p := range e[1].Slice() {
				if !p.IsSymbol() {
					panic(Print(p, true) + " is not a symbol")
				}
			}
			return NewProc(Proc{Params: e[1], Body: e[2], En: en})
		}
	}
	// application: evaluate operator and operands, then call or loop
	procedure := Eval(e[0], en)
	args := make([]Value, len(e)-1)
	for i, x := range e[1:] {
		args[i] = Eval(x, en)
	}
	switch procedure.GetTag() {
	case tagFunc:
		return procedure.Func()(args...)
	case tagProc:
		p := procedure.Proc()
		en = BindParams(p.En, p.Params.Slice(), args)
		expression = p.Body
		goto restart // tail call optimized
	default:
		panic(Print(procedure, true) + " is not a function")
	}
}

// evalAst resolves symbols and rebuilds composites with evaluated elements.
// Hash-map keys stay unevaluated, only the values are rewritten.
func evalAst(ast Value, en *Env) Value {
	switch ast.GetTag() {
	case tagSymbol:
		if v, ok := en.Get(Symbol(ast.Text())); ok {
			return v
		}
		panic(ast.Text() + " not found")
	case tagList:
		items := ast.Slice()
		out := make([]Value, len(items))
		for i, x := range items {
			out[i] = Eval(x, en)
		}
		return NewList(out)
	case tagVector:
		items := ast.Slice()
		out := make([]Value, len(items))
		for i, x := range items {
			out[i] = Eval(x, en)
		}
		return NewVector(out)
	case tagHashMap:
		items := ast.Slice()
		out := make([]Value, len(items))
		for i := 0; i < len(items)-1; i += 2 {
			out[i] = items[i]
			out[i+1] = Eval(items[i+1], en)
		}
		return NewHashMap(out)
	}
	return ast
}

// Apply is the non-tail entry point used by builtins (swap!) and host code.
func Apply(procedure Value, args ...Value) Value {
	switch procedure.GetTag() {
	case tagFunc:
		return procedure.Func()(args...)
	case tagProc:
		p := procedure.Proc()
		return Eval(p.Body, BindParams(p.En, p.Params.Slice(), args))
	}
	panic(Print(procedure, true) + " is not a function")
}

/*
 Root environment
*/

var Globalenv Env

func init() {
	Globalenv = Env{make(Vars), nil}
	init_declare()
	init_alu()
	init_list()
	init_strings()
	init_streams()
	init_sync()
	init_eval()
	init_settings()

	Eval(Read("boot", "(def! not (fn* (a) (if a false true)))"), &Globalenv)
	Eval(Read("boot", `(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`), &Globalenv)
	Globalenv.Define("*ARGV*", NewList(nil))
}

func init_eval() {
	DeclareTitle("Evaluation")

	Declare(&Globalenv, &Declaration{
		"read-string", "parses source text into a form; returns nil when the text does not parse",
		1, 1,
		[]DeclarationParameter{
			{"source", "string", "text to parse"},
		}, "any",
		func(a ...Value) (result Value) {
			if !a[0].IsString() {
				panic("read-string requires a string")
			}
			defer func() {
				if recover() != nil {
					result = NewNil()
				}
			}()
			return Read("read-string", a[0].Text())
		},
	})
	Declare(&Globalenv, &Declaration{
		"eval", "evaluates a form against the top level environment, bypassing the current lexical chain",
		1, 1,
		[]DeclarationParameter{
			{"form", "any", "form to evaluate"},
		}, "any",
		func(a ...Value) Value {
			return Eval(a[0], &Globalenv)
		},
	})
}

// RunFile executes (load-file filename) against the root environment. The
// first evaluation failure prints its diagnostic and aborts the run.
func RunFile(filename string) (ok bool) {
	ok = true
	defer func() {
		if r := recover(); r != nil {
			fmt.Println(r)
			ok = false
		}
	}()
	form := NewList([]Value{NewSymbol("load-file"), NewString(filename)})
	if Trace != nil {
		Trace.Duration("load-file", "file", func() { Eval(form, &Globalenv) })
	} else {
		Eval(form, &Globalenv)
	}
	return
}
