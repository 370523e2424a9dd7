// Package repl provides a read/translate/print loop.
//
// It supports readline-style command editing and interrupts through
// Control-C. A line that opens an indented block (it ends with a
// colon) switches to a continuation prompt; a blank line closes the
// block. Each completed snippet is translated as a standalone program
// and the body of the generated main() is printed; the :full command
// toggles printing of the complete translation unit instead.
package repl

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/janasaade18/minipy"
)

var interrupted = make(chan os.Signal, 1)

// REPL executes a read, translate, print loop on standard input.
func REPL() {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	full := false
	for {
		if err := rep(rl, &full); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads one snippet, translates it, and prints the result: the
// main() body by default, the whole unit when :full mode is on.
// It returns an error only if readline failed; translation errors are
// printed.
func rep(rl *readline.Instance, full *bool) error {
	rl.SetPrompt(">>> ")
	first, err := rl.Readline()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}
	switch strings.TrimSpace(first) {
	case "":
		return nil
	case ":full":
		*full = !*full
		if *full {
			fmt.Println("printing the full translation unit")
		} else {
			fmt.Println("printing the main() body")
		}
		return nil
	}

	lines := []string{first}
	if opensBlock(first) {
		rl.SetPrompt("... ")
		for {
			line, err := rl.Readline()
			if err != nil || strings.TrimSpace(line) == "" {
				break
			}
			lines = append(lines, line)
		}
	}

	res, err := minipy.Translate([]byte(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		PrintError(err)
		return nil
	}
	if *full {
		fmt.Println(res.Code)
		return nil
	}
	// A snippet that is only definitions has an empty main; show the
	// whole unit rather than nothing.
	if body := mainBody(res.Code); strings.TrimSpace(body) != "" {
		fmt.Println(body)
	} else {
		fmt.Println(res.Code)
	}
	return nil
}

// mainBody extracts the statements of the generated main function,
// without the preamble, the function definitions, and the trailing
// return.
func mainBody(code string) string {
	const open = "int main() {\n"
	i := strings.Index(code, open)
	if i < 0 {
		return code
	}
	body := code[i+len(open):]
	if j := strings.LastIndex(body, "\n    return 0;"); j >= 0 {
		body = body[:j]
	}
	return strings.TrimRight(body, "\n")
}

// opensBlock reports whether the line introduces an indented block:
// it ends with a colon, ignoring trailing whitespace and comments.
func opensBlock(line string) bool {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.HasSuffix(strings.TrimSpace(line), ":")
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
