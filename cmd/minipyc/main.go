// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The minipyc command translates a minipy source file to C++.
// With no arguments and a terminal on standard input, it starts a
// read-translate-print loop (REPL); otherwise it reads the program
// from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"golang.org/x/term"

	"github.com/janasaade18/minipy"
	"github.com/janasaade18/minipy/repl"
	"github.com/janasaade18/minipy/syntax"
)

// flags
var (
	cpuprofile = flag.String("cpuprofile", "", "gather Go CPU profile in this file")
	memprofile = flag.String("memprofile", "", "gather Go memory profile in this file")
	execprog   = flag.String("c", "", "translate program `prog`")
	output     = flag.String("o", "", "write generated C++ to `file` instead of stdout")
	showTokens = flag.Bool("tokens", false, "print the token stream")
	showTrace  = flag.Bool("trace", false, "print the parser state trace")
	showAST    = flag.Bool("ast", false, "print the syntax tree")
	showJSON   = flag.Bool("json", false, "print the syntax tree as JSON")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("minipyc: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		check(err)
		err = pprof.StartCPUProfile(f)
		check(err)
		defer func() {
			pprof.StopCPUProfile()
			check(f.Close())
		}()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		check(err)
		defer func() {
			runtime.GC()
			check(pprof.Lookup("heap").WriteTo(f, 0))
			check(f.Close())
		}()
	}

	var src []byte
	switch {
	case *execprog != "":
		src = []byte(*execprog)
	case flag.NArg() == 1:
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Print(err)
			return 1
		}
		src = data
	case flag.NArg() == 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("Welcome to minipy (type a snippet, blank line ends a block)")
			repl.REPL()
			return 0
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Print(err)
			return 1
		}
		src = data
	default:
		log.Print("want at most one source file name")
		return 1
	}

	if *showTrace {
		events, err := minipy.ParseTrace(src)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
		for _, ev := range events {
			fmt.Printf("%-20s %s\n", ev.State, ev.Tok)
		}
		return 0
	}

	res, err := minipy.Translate(src)
	if *showTokens && res != nil {
		fmt.Print(syntax.FormatTokens(res.Tokens))
	}
	if err != nil {
		repl.PrintError(err)
		return 1
	}
	if *showAST {
		fmt.Println(syntax.TreeString(res.AST))
	}
	if *showJSON {
		check(syntax.FprintJSON(os.Stdout, res.AST))
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(res.Code), 0666); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	}
	fmt.Print(res.Code)
	return 0
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
