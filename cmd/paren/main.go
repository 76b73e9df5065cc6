/*
Copyright (C) 2026  Paren Language Contributors

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
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/fsnotify/fsnotify"

	"github.com/paren-lang/paren/paren"
)

type importList []string

func (l *importList) String() string     { return fmt.Sprint(*l) }
func (l *importList) Set(v string) error { *l = append(*l, v); return nil }

const (
	newPrompt    = "\033[32m>\033[0m "
	contPrompt   = "\033[32m.\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

func main() {
	var imports importList
	watch := flag.Bool("w", false, "reload the prelude when library.paren changes on disk")
	flag.Var(&imports, "i", "import a file before running the input (repeatable)")
	flag.Parse()

	k := paren.NewKernel()
	k.Init()
	onexit.Register(func() {})

	if *watch {
		watchPrelude()
	}

	for _, path := range imports {
		k.Import(path)
	}

	files := flag.Args()
	if len(files) > 0 {
		for _, path := range files {
			k.Import(path)
		}
		return
	}

	k.PrintBanner(os.Stdout)
	repl(k)
}

// watchPrelude reloads library.paren into a brand new kernel on change;
// since a kernel's global environment only ever grows, a "reload" in this
// front-end is scoped to re-reading the file for syntax feedback rather
// than mutating a live kernel's bindings out from under running code.
func watchPrelude() {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("prelude watch disabled: %v", err)
		return
	}
	onexit.Register(func() { w.Close() })
	if err := w.Add("library.paren"); err != nil {
		log.Printf("prelude watch disabled: %v", err)
		return
	}
	go func() {
		for event := range w.Events {
			if event.Op&fsnotify.Write != 0 {
				log.Printf("library.paren changed; restart to pick it up")
			}
		}
	}()
}

func repl(k *paren.Kernel) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".paren-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	onexit.Register(func() { l.Close() })
	l.CaptureExitSignal()

	buf := ""
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if buf == "" {
				break
			}
			buf = ""
			l.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		buf += line + "\n"

		_, unclosed := paren.Tokenize(buf)
		if unclosed > 0 {
			l.SetPrompt(contPrompt)
			continue
		}

		evalOneLine(k, buf)
		buf = ""
		l.SetPrompt(newPrompt)
	}
}

func evalOneLine(k *paren.Kernel, source string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("panic:", r, string(debug.Stack()))
		}
	}()
	result := k.EvalString(source)
	fmt.Print(resultPrompt)
	fmt.Println(paren.WithType(result))
}
