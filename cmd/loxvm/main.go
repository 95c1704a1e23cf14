// Command loxvm is the REPL/file-runner entry point for the compiler and
// VM, grounded on the teacher's cmd/barn/main.go flag+log+os.Exit idiom.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"loxvm/bytecode"
	"loxvm/compiler"
	"loxvm/vm"
)

const (
	exitOK           = 0
	exitUsageError   = 64
	exitCompileError = 65
	exitRuntimeError = 70
	exitFileError    = 74
)

var logger = log.New(os.Stderr, "", 0)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("loxvm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	disasm := fs.Bool("disasm", false, "compile the file and print its disassembly instead of running it")

	if err := fs.Parse(args); err != nil {
		printUsage()
		return exitUsageError
	}

	rest := fs.Args()
	if len(rest) > 1 {
		printUsage()
		return exitUsageError
	}
	if *disasm && len(rest) != 1 {
		printUsage()
		return exitUsageError
	}

	if len(rest) == 0 {
		runREPL()
		return exitOK
	}
	return runFile(rest[0], *disasm)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-disasm] [path]\n", os.Args[0])
}

func runFile(path string, disasm bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		logger.Printf("could not open file %q: %v", path, err)
		return exitFileError
	}

	machine := vm.New()
	fn, cerr := compiler.Compile(string(source), machine.Interner())
	if cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
		return exitCompileError
	}

	if disasm {
		bytecode.Disassemble(os.Stdout, fn.Chunk, path)
		return exitOK
	}

	if rerr := machine.Interpret(fn); rerr != nil {
		fmt.Fprintln(os.Stderr, rerr)
		return exitRuntimeError
	}
	return exitOK
}

func runREPL() {
	machine := vm.New()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return // EOF exits cleanly
		}
		line := scanner.Text()

		fn, cerr := compiler.Compile(line, machine.Interner())
		if cerr != nil {
			fmt.Fprintln(os.Stderr, cerr)
			continue
		}
		if rerr := machine.Interpret(fn); rerr != nil {
			fmt.Fprintln(os.Stderr, rerr)
		}
	}
}
