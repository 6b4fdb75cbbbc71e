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

func EqualValue(a, b Value) Value { return NewBool(Equal(a, b)) }

// Equal is the structural equality relation. Lists and vectors compare
// element-wise against each other regardless of which of the two tags either
// side carries. Functions, atoms and hash-maps have no structural equality
// and always compare false.
func Equal(a, b Value) bool {
	ta := a.GetTag()
	tb := b.GetTag()

	if (ta == tagList || ta == tagVector) && (tb == tagList || tb == tagVector) {
		as := a.Slice()
		bs := b.Slice()
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	}

	if ta != tb {
		return false
	}
	switch ta {
	case tagNil:
		return true
	case tagBool:
		return a.Bool() == b.Bool()
	case tagInt:
		return a.Int() == b.Int()
	case tagString, tagKeyword, tagSymbol:
		return a.Text() == b.Text()
	}
	return false
}
