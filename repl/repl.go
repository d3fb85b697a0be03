// Package repl implements the interactive Read-Eval-Print Loop for lyth.
// It is a collaborator of the language core, not part of it: everything
// here talks to the core only through package interp.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rtlang/lyth/interp"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text, prompt, and the
// interpreter session the loop evaluates lines against.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string

	session *interp.Session
}

// New creates a Repl with a fresh interp.Session.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, session: interp.NewSession()}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "lyth "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type an expression and press enter.")
	cyanColor.Fprintln(w, "Type .help for the list of meta-commands.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

func (r *Repl) printHelp(w io.Writer) {
	cyanColor.Fprintln(w, "Meta-commands:")
	yellowColor.Fprintln(w, "  .help     show this message")
	yellowColor.Fprintln(w, "  .clear    discard all bindings made so far this session")
	yellowColor.Fprintln(w, "  .ping     check that the REPL is responsive")
	yellowColor.Fprintln(w, "  .exit     leave the REPL")
}

// Start runs the loop until EOF, an error from readline, or .exit.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye.\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if r.handleMetaCommand(writer, line) {
			if line == ".exit" {
				return
			}
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// handleMetaCommand recognizes a leading-dot command and reports whether
// line was one (so the caller skips treating it as lyth source).
func (r *Repl) handleMetaCommand(w io.Writer, line string) bool {
	switch line {
	case ".help":
		r.printHelp(w)
		return true
	case ".clear":
		r.session = interp.NewSession()
		cyanColor.Fprintln(w, "Session cleared.")
		return true
	case ".ping":
		greenColor.Fprintln(w, "pong")
		return true
	case ".exit":
		w.Write([]byte("Goodbye.\n"))
		return true
	default:
		return false
	}
}

// executeWithRecovery evaluates one line against the session environment,
// recovering from a panic so a single bad line never kills the REPL.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	result, errs := r.session.Run(line)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
