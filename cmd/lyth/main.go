// Command lyth is the entry point for the interpreter: with no arguments
// it starts the interactive REPL, with a file path it runs that file once
// and exits.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/rtlang/lyth/ast"
	"github.com/rtlang/lyth/interp"
	"github.com/rtlang/lyth/parser"
	"github.com/rtlang/lyth/repl"
)

const version = "v0.1.0"

const banner = `
  .  o  .  o   lyth
  | o  | o  |  a small expression-oriented language
  '  o  '  o
`

const line = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
		case "--version", "-v":
			showVersion()
		case "--ast":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "usage: lyth --ast <path-to-file>")
				os.Exit(1)
			}
			dumpAST(os.Args[2])
		default:
			runFile(arg)
		}
		return
	}

	r := repl.New(banner, version, line, "lyth> ")
	r.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("lyth - a small expression-oriented interpreted language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  lyth                  start the interactive REPL")
	cyanColor.Println("  lyth <path-to-file>   run a lyth source file")
	cyanColor.Println("  lyth --help           show this message")
	cyanColor.Println("  lyth --version        show version information")
	cyanColor.Println("  lyth --ast <file>     print the parsed syntax tree instead of running it")
}

func showVersion() {
	cyanColor.Printf("lyth %s\n", version)
}

// runFile reads and evaluates a source file once, printing the final
// expression's value (if any) or any diagnostics produced along the way.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		os.Exit(1)
	}

	result, errs := interp.Interpret(string(source))
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	if result != nil {
		os.Stdout.WriteString(result.ToString() + "\n")
	}
}

// dumpAST parses path and prints its syntax tree without evaluating it.
func dumpAST(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	fmt.Print(ast.Dump(program))
}
