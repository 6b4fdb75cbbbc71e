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
	"unsafe"
)

// Value is a compact tagged value container (16 bytes). !! NEVER CHANGE IT TO MORE THAN THAT, THE STRUCT SIZE IS CRUCIAL FOR PERFORMANCE
type Value struct {
	ptr *byte  // must always be a valid pointer; integer encoding: data is stored in aux and ptr contains a dummy that identifies the type
	aux uint64 // type tag + extra data (len, etc.)
}

// Type tags (upper 16 bits of aux)
// Software Contract: data will ALWAYS be stored with the correct tag, so a
// tagList will never hold a string payload and a tagAtom always points at a cell
const (
	tagNil = iota
	tagBool
	tagInt
	tagString
	tagKeyword
	tagSymbol
	tagList
	tagVector
	tagHashMap
	tagFunc
	tagProc
	tagAtom
)

// Symbol is the environment key type.
type Symbol string

// Builtin is a host-provided function value. It is opaque to the language:
// two builtins never compare equal structurally.
type Builtin func(...Value) Value

// Proc is a user-defined closure: a parameter list form, a body form and the
// environment captured at fn* time. The captured environment may transitively
// reference the Proc again (recursion via def!); the Go collector handles the
// resulting cycles.
type Proc struct {
	Params, Body Value
	En           *Env
}

var valueIntSentinel byte

// Helpers
func makeAux(tag uint16, val uint64) uint64 {
	return uint64(tag)<<48 | (val & ((1 << 48) - 1))
}
func auxTag(aux uint64) uint16 { return uint16(aux >> 48) }
func auxVal(aux uint64) uint64 { return aux & ((1 << 48) - 1) }

func (v Value) GetTag() uint16 {
	if v.ptr == &valueIntSentinel {
		return tagInt
	}
	return auxTag(v.aux)
}

//
// Constructors
//

func NewNil() Value { return Value{nil, makeAux(tagNil, 0)} }

func NewBool(b bool) Value {
	if b {
		return Value{nil, makeAux(tagBool, 1)}
	}
	return Value{nil, makeAux(tagBool, 0)}
}

func NewInt(i int64) Value {
	return Value{&valueIntSentinel, uint64(i)}
}

func newText(tag uint16, s string) Value {
	if len(s) == 0 {
		return Value{nil, makeAux(tag, 0)}
	}
	return Value{unsafe.StringData(s), makeAux(tag, uint64(len(s)))}
}

func NewString(s string) Value  { return newText(tagString, s) }
func NewKeyword(s string) Value { return newText(tagKeyword, s) }
func NewSymbol(s string) Value  { return newText(tagSymbol, s) }

func newSeq(tag uint16, items []Value) Value {
	if len(items) == 0 {
		return Value{nil, makeAux(tag, 0)}
	}
	data := unsafe.SliceData(items)
	return Value{(*byte)(unsafe.Pointer(data)), makeAux(tag, uint64(len(items)))}
}

func NewList(items []Value) Value   { return newSeq(tagList, items) }
func NewVector(items []Value) Value { return newSeq(tagVector, items) }

// NewHashMap builds a hash-map from a flat key value key value ... slice.
// Pair order is preserved as given; duplicate keys are all kept.
func NewHashMap(items []Value) Value { return newSeq(tagHashMap, items) }

func NewFunc(fn Builtin) Value {
	ptr := new(Builtin)
	*ptr = fn
	return Value{(*byte)(unsafe.Pointer(ptr)), makeAux(tagFunc, 0)}
}

func NewProc(p Proc) Value {
	ptr := new(Proc)
	*ptr = p
	return Value{(*byte)(unsafe.Pointer(ptr)), makeAux(tagProc, 0)}
}

// NewAtom allocates a fresh mutable cell. Two atoms over equal values are
// still distinct; identity is the cell pointer.
func NewAtom(v Value) Value {
	cell := new(Value)
	*cell = v
	return Value{(*byte)(unsafe.Pointer(cell)), makeAux(tagAtom, 0)}
}

//
// Predicates
//

func (v Value) IsNil() bool     { return v.GetTag() == tagNil }
func (v Value) IsBool() bool    { return v.GetTag() == tagBool }
func (v Value) IsInt() bool     { return v.GetTag() == tagInt }
func (v Value) IsString() bool  { return v.GetTag() == tagString }
func (v Value) IsKeyword() bool { return v.GetTag() == tagKeyword }
func (v Value) IsSymbol() bool  { return v.GetTag() == tagSymbol }
func (v Value) IsList() bool    { return v.GetTag() == tagList }
func (v Value) IsVector() bool  { return v.GetTag() == tagVector }
func (v Value) IsHashMap() bool { return v.GetTag() == tagHashMap }
func (v Value) IsFunc() bool    { return v.GetTag() == tagFunc }
func (v Value) IsProc() bool    { return v.GetTag() == tagProc }
func (v Value) IsAtom() bool    { return v.GetTag() == tagAtom }

// IsSeq reports whether v is a list or a vector.
func (v Value) IsSeq() bool {
	t := v.GetTag()
	return t == tagList || t == tagVector
}

// IsTruthy implements the conditional test: only false and nil are false,
// everything else (including 0, "" and empty collections) is true.
func (v Value) IsTruthy() bool {
	switch v.GetTag() {
	case tagNil:
		return false
	case tagBool:
		return auxVal(v.aux) != 0
	}
	return true
}

//
// Accessors
//

func (v Value) Bool() bool {
	if v.GetTag() != tagBool {
		panic("not a bool")
	}
	return auxVal(v.aux) != 0
}

func (v Value) Int() int64 {
	if v.GetTag() != tagInt {
		panic("not an int")
	}
	return int64(v.aux)
}

// Text returns the payload of a string, keyword or symbol. Keywords are
// stored without their leading colon.
func (v Value) Text() string {
	switch v.GetTag() {
	case tagString, tagKeyword, tagSymbol:
		if v.ptr == nil {
			return ""
		}
		return unsafe.String(v.ptr, int(auxVal(v.aux)))
	}
	panic("not a text value")
}

// Slice returns the elements of a list or vector, or the flat key/value
// sequence of a hash-map.
func (v Value) Slice() []Value {
	switch v.GetTag() {
	case tagList, tagVector, tagHashMap:
	default:
		panic("not a sequence")
	}
	ln := int(auxVal(v.aux))
	if ln == 0 || v.ptr == nil {
		return nil
	}
	return unsafe.Slice((*Value)(unsafe.Pointer(v.ptr)), ln)
}

func (v Value) Func() Builtin {
	if v.GetTag() != tagFunc {
		panic("not a function")
	}
	return *(*Builtin)(unsafe.Pointer(v.ptr))
}

func (v Value) Proc() *Proc {
	if v.GetTag() != tagProc {
		panic("not a closure")
	}
	return (*Proc)(unsafe.Pointer(v.ptr))
}

// Atom returns the shared mutable cell. All copies of the same atom value
// alias the same cell, so writes through the pointer are visible everywhere.
func (v Value) Atom() *Value {
	if v.GetTag() != tagAtom {
		panic("not an atom")
	}
	return (*Value)(unsafe.Pointer(v.ptr))
}

func (v Value) String() string {
	return Print(v, false)
}
