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
	"runtime"
	"testing"
	"unsafe"
)

func TestValueSize(t *testing.T) {
	if unsafe.Sizeof(Value{}) != 16 {
		t.Fatalf("Value grew beyond 16 bytes: %d", unsafe.Sizeof(Value{}))
	}
}

func TestValueRoundtrips(t *testing.T) {
	if !NewNil().IsNil() {
		t.Fatal("nil tag lost")
	}
	if NewBool(true).Bool() != true || NewBool(false).Bool() != false {
		t.Fatal("bool payload lost")
	}
	for _, n := range []int64{0, 1, -1, 42, -2147483648, 2147483647} {
		if NewInt(n).Int() != n {
			t.Fatalf("int payload lost for %d", n)
		}
	}
	if NewString("hello world").Text() != "hello world" {
		t.Fatal("string payload lost")
	}
	if NewString("").Text() != "" {
		t.Fatal("empty string payload lost")
	}
	if NewKeyword("yes").Text() != "yes" || !NewKeyword("yes").IsKeyword() {
		t.Fatal("keyword payload lost")
	}
	if NewSymbol("foo").Text() != "foo" || !NewSymbol("foo").IsSymbol() {
		t.Fatal("symbol payload lost")
	}
	l := NewList([]Value{NewInt(1), NewString("x")})
	if !l.IsList() || len(l.Slice()) != 2 || l.Slice()[1].Text() != "x" {
		t.Fatal("list payload lost")
	}
	if len(NewList(nil).Slice()) != 0 || !NewList(nil).IsList() {
		t.Fatal("empty list mishandled")
	}
	v := NewVector([]Value{NewInt(7)})
	if !v.IsVector() || v.Slice()[0].Int() != 7 {
		t.Fatal("vector payload lost")
	}
}

func TestValueTruthiness(t *testing.T) {
	falsy := []Value{NewNil(), NewBool(false)}
	for _, v := range falsy {
		if v.IsTruthy() {
			t.Fatalf("%s should be falsy", Print(v, true))
		}
	}
	// 0, "" and empty collections are all true in this dialect
	truthy := []Value{NewBool(true), NewInt(0), NewString(""), NewList(nil), NewVector(nil), NewKeyword("k")}
	for _, v := range truthy {
		if !v.IsTruthy() {
			t.Fatalf("%s should be truthy", Print(v, true))
		}
	}
}

func TestAtomAliasing(t *testing.T) {
	a := NewAtom(NewInt(1))
	b := a // a copy of the value still aliases the same cell
	*a.Atom() = NewInt(2)
	if b.Atom().Int() != 2 {
		t.Fatal("atom copies must alias the same cell")
	}
	c := NewAtom(NewInt(2))
	if a.Atom() == c.Atom() {
		t.Fatal("two atom calls must produce distinct cells")
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{NewInt(3), NewInt(3), true},
		{NewInt(3), NewInt(4), false},
		{NewNil(), NewNil(), true},
		{NewNil(), NewBool(false), false},
		{NewString("a"), NewString("a"), true},
		{NewString("a"), NewSymbol("a"), false},
		{NewString("a"), NewKeyword("a"), false},
		{NewKeyword("a"), NewKeyword("a"), true},
		{NewList([]Value{NewInt(1), NewInt(2)}), NewVector([]Value{NewInt(1), NewInt(2)}), true},
		{NewList([]Value{NewInt(1)}), NewVector([]Value{NewInt(1), NewInt(2)}), false},
		{NewList(nil), NewVector(nil), true},
	}
	for _, c := range cases {
		if Equal(c.a, c.b) != c.want {
			t.Fatalf("Equal(%s, %s) != %v", Print(c.a, true), Print(c.b, true), c.want)
		}
		if Equal(c.b, c.a) != c.want {
			t.Fatalf("Equal(%s, %s) not symmetric", Print(c.b, true), Print(c.a, true))
		}
	}
	// functions, atoms and hash-maps have no structural equality
	f := NewFunc(func(a ...Value) Value { return NewNil() })
	if Equal(f, f) {
		t.Fatal("functions must not compare equal")
	}
	if Equal(NewAtom(NewInt(1)), NewAtom(NewInt(1))) {
		t.Fatal("atoms must not compare equal")
	}
	hm := NewHashMap([]Value{NewKeyword("a"), NewInt(1)})
	if Equal(hm, hm) {
		t.Fatal("hash-maps have unspecified equality and compare false")
	}
}

func stackGrow(depth int, v Value) {
	var scratch [64]byte
	scratch[0] = byte(depth)
	if depth == 0 {
		runtime.GC()
		runtime.KeepAlive(scratch)
		return
	}
	stackGrow(depth-1, v)
	runtime.KeepAlive(v)
	runtime.KeepAlive(scratch)
}

func TestValueDoesNotCrashGCDuringStackGrowth(t *testing.T) {
	// Tags with ptr=nil (no pointer stored)
	stackGrow(2000, NewNil())
	stackGrow(2000, NewBool(true))
	stackGrow(2000, NewBool(false))

	// Tag with sentinel pointer
	stackGrow(2000, NewInt(1))
	stackGrow(2000, NewInt(-9999999))

	// Tags with heap pointers to string backing store
	stackGrow(2000, NewString("hello world"))
	stackGrow(2000, NewString(""))
	stackGrow(2000, NewKeyword("kw"))
	stackGrow(2000, NewSymbol("my-symbol"))
	stackGrow(2000, NewSymbol(""))

	// Tags with heap pointers to slice backing arrays
	stackGrow(2000, NewList([]Value{NewInt(1), NewString("x")}))
	stackGrow(2000, NewList([]Value{}))
	stackGrow(2000, NewVector([]Value{NewInt(1), NewInt(2)}))
	stackGrow(2000, NewHashMap([]Value{NewKeyword("k"), NewInt(42)}))

	// Tags with heap-allocated typed pointers
	stackGrow(2000, NewFunc(func(a ...Value) Value { return a[0] }))
	stackGrow(2000, NewProc(Proc{
		Params: NewList([]Value{NewSymbol("x")}),
		Body:   NewSymbol("x"),
		En:     &Globalenv,
	}))
	stackGrow(2000, NewAtom(NewInt(7)))

	// Nested structures: list containing strings, funcs, atoms
	nested := NewList([]Value{
		NewString("nested"),
		NewList([]Value{NewInt(1), NewInt(2)}),
		NewFunc(func(a ...Value) Value { return NewNil() }),
		NewAtom(NewString("cell")),
	})
	stackGrow(2000, nested)
}
