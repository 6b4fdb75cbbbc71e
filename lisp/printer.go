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
	"strconv"
	"strings"
)

var stringEscaper = strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n")

// Print renders a value as text. With readable set, strings come out quoted
// and escaped so the reader can reparse them; without it they come out raw.
func Print(v Value, readable bool) string {
	var b strings.Builder
	Write(&b, v, readable)
	return b.String()
}

func Write(b *strings.Builder, v Value, readable bool) {
	switch v.GetTag() {
	case tagNil:
		b.WriteString("nil")
	case tagBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case tagInt:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case tagString:
		if readable {
			b.WriteByte('"')
			b.WriteString(stringEscaper.Replace(v.Text()))
			b.WriteByte('"')
		} else {
			b.WriteString(v.Text())
		}
	case tagKeyword:
		b.WriteByte(':')
		b.WriteString(v.Text())
	case tagSymbol:
		b.WriteString(v.Text())
	case tagList:
		writeSeq(b, v.Slice(), '(', ')', readable)
	case tagVector:
		writeSeq(b, v.Slice(), '[', ']', readable)
	case tagHashMap:
		writeSeq(b, v.Slice(), '{', '}', readable)
	case tagFunc, tagProc:
		b.WriteString("#<function>")
	case tagAtom:
		b.WriteString("(atom ")
		Write(b, *v.Atom(), readable)
		b.WriteByte(')')
	}
}

func writeSeq(b *strings.Builder, items []Value, open, close byte, readable bool) {
	b.WriteByte(open)
	for i, x := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		Write(b, x, readable)
	}
	b.WriteByte(close)
}
