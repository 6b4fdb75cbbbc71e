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
/*
	minilisp: a small Lisp-1 interpreter with a readline REPL

	https://pkelchte.wordpress.com/2013/12/31/scm-go/
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/docker/go-units"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/launix-de/minilisp/lisp"
)

type configFile struct {
	HistoryFile string `yaml:"history_file"`
	Trace       bool   `yaml:"trace"`
	TracePrint  bool   `yaml:"trace_print"`
	Banner      *bool  `yaml:"banner"`
}

var (
	flagEval   string
	flagWatch  bool
	flagTrace  bool
	flagConfig string
	banner     = true
)

// loadConfig seeds lisp.Settings from an optional YAML file: an explicit
// --config path, ./.minilisp.yaml, or ~/.minilisp.yaml.
func loadConfig(path string) {
	if path == "" {
		path = ".minilisp.yaml"
		if _, err := os.Stat(path); err != nil {
			home, err2 := os.UserHomeDir()
			if err2 != nil {
				return
			}
			path = filepath.Join(home, ".minilisp.yaml")
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return // config is optional
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Println("bad config file " + path + ": " + err.Error())
		return
	}
	if cfg.HistoryFile != "" {
		lisp.Settings.HistoryFile = cfg.HistoryFile
	}
	if cfg.Trace {
		lisp.Settings.Trace = true
	}
	if cfg.TracePrint {
		lisp.Settings.TracePrint = true
	}
	if cfg.Banner != nil {
		banner = *cfg.Banner
	}
}

func printBanner() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Println(`minilisp Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
    (` + units.BytesSize(float64(m.Sys)) + ` reserved)`)
}

// watchAndRerun re-evaluates the script whenever it changes on disk.
func watchAndRerun(filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filename); err != nil {
		return err
	}
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				lisp.RunFile(filename)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(err)
		}
	}
}

func evalAndPrint(src string) (ok bool) {
	ok = true
	defer func() {
		if r := recover(); r != nil {
			fmt.Println(r)
			ok = false
		}
	}()
	fmt.Println(lisp.Print(lisp.Eval(lisp.Read("command line", src), &lisp.Globalenv), true))
	return
}

func main() {
	root := &cobra.Command{
		Use:   "minilisp [script [args...]]",
		Short: "a small Lisp interpreter with a readline REPL",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			loadConfig(flagConfig)
			if flagTrace {
				lisp.Settings.Trace = true
			}
			lisp.InitSettings()
			defer lisp.SetTrace(false)

			if flagEval != "" {
				if !evalAndPrint(flagEval) {
					os.Exit(1)
				}
				return
			}
			if len(args) == 0 {
				if banner {
					printBanner()
				}
				lisp.Repl(&lisp.Globalenv)
				return
			}
			argv := make([]lisp.Value, 0, len(args)-1)
			for _, arg := range args[1:] {
				argv = append(argv, lisp.NewString(arg))
			}
			lisp.Globalenv.Define("*ARGV*", lisp.NewList(argv))
			ok := lisp.RunFile(args[0])
			if flagWatch {
				if err := watchAndRerun(args[0]); err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
				return
			}
			if !ok {
				os.Exit(1)
			}
		},
		SilenceUsage: true,
	}
	root.Flags().StringVarP(&flagEval, "eval", "e", "", "evaluate an expression and exit")
	root.Flags().BoolVar(&flagWatch, "watch", false, "re-evaluate the script whenever it changes")
	root.Flags().BoolVar(&flagTrace, "trace", false, "write a trace file of reader/evaluator activity")
	root.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
