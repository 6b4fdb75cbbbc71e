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

import (
	"fmt"
	"strconv"
	"strings"
)

/*
 Parsing

 whitespace is space, tab, newline and comma; ; comments to end of line.
 Tokens stop at {[()]}, whitespace, comma, semicolon, colon, double quote
 and newline.
*/

const tokenTerminators = "{[()]} \t,;:\"\n"

type parser struct {
	source string // name used in diagnostics (file name, "user prompt", ...)
	s      string
	pos    int
}

// Read parses exactly one form out of s. Trailing whitespace and comments
// are allowed, anything else is a parse error. Parse errors panic with a
// source:line:col prefixed message.
func Read(source, s string) Value {
	p := &parser{source: source, s: s}
	p.skipSpace()
	if p.pos >= len(p.s) {
		panic(p.errf("unexpected end of input"))
	}
	v := p.readForm()
	p.skipSpace()
	if p.pos < len(p.s) {
		panic(p.errf("unexpected trailing characters"))
	}
	return v
}

func (p *parser) errf(msg string) string {
	line := 1 + strings.Count(p.s[:p.pos], "\n")
	col := p.pos - strings.LastIndexByte(p.s[:p.pos], '\n')
	return fmt.Sprintf("%s:%d:%d: %s", p.source, line, col, msg)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == ','
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) {
		ch := p.s[p.pos]
		if isSpace(ch) {
			p.pos++
			continue
		}
		if ch == ';' {
			for p.pos < len(p.s) && p.s[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

// readToken consumes symbol-legal characters. Multi-byte runes are never
// terminators, so a bytewise scan is enough.
func (p *parser) readToken() string {
	start := p.pos
	for p.pos < len(p.s) && strings.IndexByte(tokenTerminators, p.s[p.pos]) < 0 {
		p.pos++
	}
	return p.s[start:p.pos]
}

// readForm expects the cursor on the first character of a form.
func (p *parser) readForm() Value {
	switch ch := p.s[p.pos]; ch {
	case '(':
		p.pos++
		return NewList(p.readSeq(')'))
	case '[':
		p.pos++
		return NewVector(p.readSeq(']'))
	case '{':
		p.pos++
		items := p.readSeq('}')
		if len(items)%2 != 0 {
			panic(p.errf("hash-map literal requires an even number of forms"))
		}
		return NewHashMap(items)
	case ')', ']', '}':
		panic(p.errf("unexpected " + string(ch)))
	case '"':
		return p.readString()
	case ':':
		p.pos++
		tok := p.readToken()
		if tok == "" {
			panic(p.errf("expecting keyword name after :"))
		}
		return NewKeyword(tok)
	case '\'':
		p.pos++
		return p.readerMacro("quote")
	case '`':
		p.pos++
		return p.readerMacro("quasiquote")
	case '~':
		p.pos++
		if p.pos < len(p.s) && p.s[p.pos] == '@' {
			p.pos++
			return p.readerMacro("splice-unquote")
		}
		return p.readerMacro("unquote")
	case '@':
		p.pos++
		return p.readerMacro("deref")
	case '^':
		// ^meta form rewrites to (with-meta form meta): note the argument swap
		p.pos++
		p.skipSpace()
		if p.pos >= len(p.s) {
			panic(p.errf("expecting metadata form after ^"))
		}
		meta := p.readForm()
		p.skipSpace()
		if p.pos >= len(p.s) {
			panic(p.errf("expecting value form after ^"))
		}
		form := p.readForm()
		return NewList([]Value{NewSymbol("with-meta"), form, meta})
	}
	tok := p.readToken()
	if tok == "" {
		panic(p.errf("unexpected character " + strconv.Quote(string(p.s[p.pos]))))
	}
	switch tok {
	case "true":
		return NewBool(true)
	case "false":
		return NewBool(false)
	case "nil":
		return NewNil()
	}
	if isIntToken(tok) {
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			panic(p.errf("integer out of range: " + tok))
		}
		return NewInt(n)
	}
	return NewSymbol(tok)
}

// isIntToken matches an optional minus followed by one or more digits; a
// bare "-" stays a symbol.
func isIntToken(tok string) bool {
	body := tok
	if strings.HasPrefix(body, "-") {
		body = body[1:]
	}
	if body == "" {
		return false
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	return true
}

func (p *parser) readerMacro(name string) Value {
	p.skipSpace()
	if p.pos >= len(p.s) {
		panic(p.errf("expecting form after " + name))
	}
	return NewList([]Value{NewSymbol(name), p.readForm()})
}

func (p *parser) readSeq(close byte) []Value {
	items := make([]Value, 0)
	for {
		p.skipSpace()
		if p.pos >= len(p.s) {
			// the REPL recognizes this message and offers a continuation line
			panic(p.errf("expecting matching " + string(close)))
		}
		if p.s[p.pos] == close {
			p.pos++
			return items
		}
		items = append(items, p.readForm())
	}
}

func (p *parser) readString() Value {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.s) {
		switch ch := p.s[p.pos]; ch {
		case '"':
			p.pos++
			return NewString(b.String())
		case '\\':
			p.pos++
			if p.pos >= len(p.s) {
				panic(p.errf("unterminated string"))
			}
			switch p.s[p.pos] {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			default:
				panic(p.errf("unsupported escape \\" + string(p.s[p.pos])))
			}
			p.pos++
		default:
			b.WriteByte(ch)
			p.pos++
		}
	}
	panic(p.errf("unterminated string"))
}
