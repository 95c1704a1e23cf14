package conformance

import (
	"bytes"

	"loxvm/compiler"
	"loxvm/vm"
)

// Outcome is what actually happened running a Fixture's source: the
// captured stdout, and at most one of a compile or runtime error.
type Outcome struct {
	Stdout       string
	CompileError error
	RuntimeError error
}

// Run compiles and interprets src in a fresh VM, capturing Print output
// instead of writing it to the real stdout.
func Run(src string) Outcome {
	machine := vm.New()
	var buf bytes.Buffer
	machine.SetOutput(&buf)

	fn, cerr := compiler.Compile(src, machine.Interner())
	if cerr != nil {
		return Outcome{CompileError: cerr}
	}

	if rerr := machine.Interpret(fn); rerr != nil {
		return Outcome{Stdout: buf.String(), RuntimeError: rerr}
	}
	return Outcome{Stdout: buf.String()}
}
