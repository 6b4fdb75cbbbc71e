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

import "github.com/dc0d/onexit"

type SettingsT struct {
	Trace       bool
	TracePrint  bool
	HistoryFile string
}

var Settings SettingsT = SettingsT{false, false, ".minilisp-history.tmp"}

// call this after you filled Settings
func InitSettings() {
	SetTrace(Settings.Trace)
	onexit.Register(func() { SetTrace(false) }) // close trace file on exit
}

func ChangeSettings(a ...Value) Value {
	if len(a) == 0 {
		return NewList([]Value{
			NewString("Trace"), NewBool(Settings.Trace),
			NewString("TracePrint"), NewBool(Settings.TracePrint),
			NewString("HistoryFile"), NewString(Settings.HistoryFile),
		})
	} else if len(a) == 1 {
		switch Print(a[0], false) {
		case "Trace":
			return NewBool(Settings.Trace)
		case "TracePrint":
			return NewBool(Settings.TracePrint)
		case "HistoryFile":
			return NewString(Settings.HistoryFile)
		default:
			panic("unknown setting: " + Print(a[0], false))
		}
	} else {
		switch Print(a[0], false) {
		case "Trace":
			Settings.Trace = a[1].IsTruthy()
			SetTrace(Settings.Trace)
		case "TracePrint":
			Settings.TracePrint = a[1].IsTruthy()
		case "HistoryFile":
			if !a[1].IsString() {
				panic("HistoryFile must be a string")
			}
			Settings.HistoryFile = a[1].Text()
		default:
			panic("unknown setting: " + Print(a[0], false))
		}
		return a[1]
	}
}

func init_settings() {
	DeclareTitle("Settings")

	Declare(&Globalenv, &Declaration{
		"settings", "lists all settings, reads one setting or changes one setting",
		0, 2,
		[]DeclarationParameter{
			{"key", "string", "name of the setting"},
			{"value", "any", "new value for the setting"},
		}, "any",
		ChangeSettings,
	})
}
