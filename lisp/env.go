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

/*
 Environments
*/

type Vars map[Symbol]Value

type Env struct {
	Vars
	Outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{make(Vars), outer}
}

// FindRead returns the innermost environment that binds s, or the root when
// the chain is exhausted.
func (e *Env) FindRead(s Symbol) *Env {
	if _, ok := e.Vars[s]; ok {
		return e
	}
	if e.Outer == nil {
		return e
	}
	return e.Outer.FindRead(s)
}

// Get resolves s through the lookup chain.
func (e *Env) Get(s Symbol) (Value, bool) {
	v, ok := e.FindRead(s).Vars[s]
	return v, ok
}

// Define writes into the local mapping only.
func (e *Env) Define(s Symbol, v Value) {
	e.Vars[s] = v
}

// BindParams constructs a call environment under outer. Parameters pair
// positionally with arguments; the literal symbol & makes the following
// parameter collect the remaining arguments (zero or more) as a list.
// Parameters beyond the supplied arguments stay unbound.
func BindParams(outer *Env, params []Value, args []Value) *Env {
	en := NewEnv(outer)
	for i, p := range params {
		name := Symbol(p.Text())
		if name == "&" {
			if i+1 < len(params) {
				rest := make([]Value, len(args[i:]))
				copy(rest, args[i:])
				en.Vars[Symbol(params[i+1].Text())] = NewList(rest)
			}
			break
		}
		if i >= len(args) {
			break
		}
		en.Vars[name] = args[i]
	}
	return en
}
