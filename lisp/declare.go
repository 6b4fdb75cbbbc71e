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
	"sort"
	"strings"
)

type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []DeclarationParameter
	Returns      string // any | string | int | bool | func | list | symbol | nil | atom
	Fn           Builtin
}

type DeclarationParameter struct {
	Name string
	Type string // any | string | int | bool | func | list | symbol | atom
	Desc string
}

var declarations map[string]*Declaration = make(map[string]*Declaration)

type helpSection struct {
	title string
	names []string
}

var helpSections []*helpSection

// DeclareTitle opens a help section; following Declare calls land in it.
func DeclareTitle(title string) {
	helpSections = append(helpSections, &helpSection{title: title})
}

// Declare registers a builtin and installs it into env. The installed
// function enforces the declared arity so every builtin reports a uniform
// "wrong amount of arguments" diagnostic.
func Declare(env *Env, def *Declaration) {
	declarations[def.Name] = def
	if len(helpSections) > 0 {
		sec := helpSections[len(helpSections)-1]
		sec.names = append(sec.names, def.Name)
	}
	if def.Fn != nil {
		fn := def.Fn
		min, max, name := def.MinParameter, def.MaxParameter, def.Name
		env.Vars[Symbol(def.Name)] = NewFunc(func(a ...Value) Value {
			if len(a) < min || len(a) > max {
				panic("wrong amount of arguments for " + name)
			}
			return fn(a...)
		})
	}
}

func Help(fn string) {
	if fn == "" {
		fmt.Println("Available functions:")
		for _, sec := range helpSections {
			fmt.Println("")
			fmt.Println(sec.title + ":")
			names := append([]string(nil), sec.names...)
			sort.Strings(names)
			for _, fname := range names {
				def := declarations[fname]
				fmt.Println("  " + fname + ": " + strings.Split(def.Desc, "\n")[0])
			}
		}
		fmt.Println("")
		fmt.Println("get further information by typing (help \"functionname\") to get more info")
	} else {
		if def, ok := declarations[fn]; ok {
			fmt.Println("Help for: " + def.Name)
			fmt.Println("===")
			fmt.Println("")
			fmt.Println(def.Desc)
			fmt.Println("")
			fmt.Println("Allowed nø of parameters: ", def.MinParameter, "-", def.MaxParameter)
			fmt.Println("")
			for _, p := range def.Params {
				fmt.Println(" - " + p.Name + " (" + p.Type + "): " + p.Desc)
			}
			fmt.Println("")
		} else {
			panic("function not found: " + fn)
		}
	}
}

func init_declare() {
	DeclareTitle("Help")

	Declare(&Globalenv, &Declaration{
		"help", "prints the list of builtin functions or the documentation of one of them",
		0, 1,
		[]DeclarationParameter{
			{"functionname", "string", "name of the function to document"},
		}, "nil",
		func(a ...Value) Value {
			if len(a) == 0 {
				Help("")
			} else {
				Help(Print(a[0], false))
			}
			return NewNil()
		},
	})
}
