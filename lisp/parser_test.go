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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustPanic(t *testing.T, f func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a parse/eval failure")
		}
		msg = fmt.Sprint(r)
	}()
	f()
	return
}

func TestReadForms(t *testing.T) {
	cases := []struct {
		in   string
		want string // readable print of the parsed form
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"true", "true"},
		{"false", "false"},
		{"nil", "nil"},
		{"foo-bar!", "foo-bar!"},
		{"-", "-"},
		{"-abc", "-abc"},
		{":yes", ":yes"},
		{`"hello"`, `"hello"`},
		{`""`, `""`},
		{"(1 2 3)", "(1 2 3)"},
		{"()", "()"},
		{"( ( ) ( ) )", "(() ())"},
		{"[1 [2] 3]", "[1 [2] 3]"},
		{"{:a 1 :b (2 3)}", "{:a 1 :b (2 3)}"},
		{"{}", "{}"},
		{"(+ 1 (* 2 3))", "(+ 1 (* 2 3))"},
		{"  42  ", "42"},
		{",,1,,", "1"},
		{"(1,2,\n3)", "(1 2 3)"},
		{"42 ; trailing comment", "42"},
		{"; leading comment\n42", "42"},
		{"(1 ; inside\n 2)", "(1 2)"},
	}
	for _, c := range cases {
		got := Print(Read("test", c.in), true)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Fatalf("Read(%q) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestReadStringEscapes(t *testing.T) {
	v := Read("test", `"a\"b\\c\nd"`)
	if !v.IsString() {
		t.Fatalf("not a string: %s", Print(v, true))
	}
	if diff := cmp.Diff("a\"b\\c\nd", v.Text()); diff != "" {
		t.Fatalf("escape processing mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMacros(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"'(1 2)", "(quote (1 2))"},
		{"'x", "(quote x)"},
		{"`x", "(quasiquote x)"},
		{"~x", "(unquote x)"},
		{"~@(1 2)", "(splice-unquote (1 2))"},
		{"@a", "(deref a)"},
		{"^{:a 1} [1 2]", "(with-meta [1 2] {:a 1})"}, // argument order swap
		{"''x", "(quote (quote x))"},
	}
	for _, c := range cases {
		got := Print(Read("test", c.in), true)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Fatalf("Read(%q) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestReadFailures(t *testing.T) {
	cases := []struct {
		in   string
		want string // substring of the diagnostic
	}{
		{"", "unexpected end of input"},
		{"   ; just a comment", "unexpected end of input"},
		{"(1 2", "expecting matching )"},
		{"[1 2", "expecting matching ]"},
		{"{:a 1", "expecting matching }"},
		{"(1 2))", "unexpected trailing characters"},
		{"1 2", "unexpected trailing characters"},
		{")", "unexpected )"},
		{`"abc`, "unterminated string"},
		{`"ab\`, "unterminated string"},
		{`"ab\q"`, "unsupported escape"},
		{"{:a 1 :b}", "even number of forms"},
		{"99999999999", "integer out of range"},
		{":", "expecting keyword name"},
		{"'", "expecting form after quote"},
	}
	for _, c := range cases {
		msg := mustPanic(t, func() { Read("test", c.in) })
		if !strings.Contains(msg, c.want) {
			t.Fatalf("Read(%q): diagnostic %q does not contain %q", c.in, msg, c.want)
		}
	}
}

func TestReadErrorPosition(t *testing.T) {
	msg := mustPanic(t, func() { Read("myfile", "(1\n2") })
	if !strings.HasPrefix(msg, "myfile:2:") {
		t.Fatalf("diagnostic %q lacks source:line prefix", msg)
	}
}

func TestPureNumericTokensAreInts(t *testing.T) {
	if !Read("test", "007").IsInt() {
		t.Fatal("digit run must read as an int")
	}
	if !Read("test", "-12x").IsSymbol() {
		t.Fatal("-12x must fall back to a symbol")
	}
}
