package vm

import "loxvm/bytecode"

// maxFrames bounds the call-frame stack; a deeper call chain is a
// runtime stack overflow.
const maxFrames = 64

// callFrame is one activation of a Function. base is the index into the
// VM's shared value stack where this frame's local-slot window begins
// (slot 0 is the function object itself, slot 1..argc the arguments).
// It is a view onto the shared stack, not a copy: SetLocal inside the
// callee mutates the same backing array the caller's frame observes,
// which is what keeps recursive calls from corrupting the caller's own
// locals on return.
type callFrame struct {
	function *bytecode.Function
	ip       int
	base     int
}

func (f *callFrame) chunk() *bytecode.Chunk { return f.function.Chunk }
