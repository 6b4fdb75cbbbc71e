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
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
)

const newprompt = "user> "
const contprompt = "....> "

// Repl runs the interactive read-eval-print loop until end-of-input. A line
// with unbalanced parentheses is carried over into a continuation prompt;
// any other diagnostic ends the turn and resumes with a fresh prompt.
func Repl(en *Env) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       Settings.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				oldline = ""
				l.SetPrompt(newprompt)
				continue
			}
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		// anti-panic func: one recover per REPL turn
		func() {
			defer func() {
				if r := recover(); r != nil {
					if msg, ok := r.(string); ok && strings.Contains(msg, "expecting matching") {
						// keep oldline
						oldline = line + "\n"
						l.SetPrompt(contprompt)
						return
					}
					fmt.Println(r)
					oldline = ""
					l.SetPrompt(newprompt)
				}
			}()
			started := time.Now()
			code := Read("user prompt", line)
			var result Value
			if Trace != nil {
				Trace.Duration("eval", "repl", func() { result = Eval(code, en) })
			} else {
				result = Eval(code, en)
			}
			fmt.Println(Print(result, true))
			if Settings.TracePrint {
				fmt.Println("; took " + time.Since(started).String())
			}
			oldline = ""
			l.SetPrompt(newprompt)
		}()
	}
}
