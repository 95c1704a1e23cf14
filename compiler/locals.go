package compiler

import "loxvm/bytecode"

// uninitializedDepth marks a local that has been declared but whose
// initializer has not finished compiling yet; reading it in that window
// is the "own initializer" error.
const uninitializedDepth = -1

// maxLocals bounds user-declared live locals per function; slots are
// indexed by one byte in GetLocal/SetLocal operands, and slot 0 of
// every function's window is reserved for the callee itself (§4.5), so
// the backing array holds one more entry than a caller can declare.
const maxLocals = 256

type local struct {
	name  string
	depth int
}

// funcState is the per-function compiler frame: its own chunk, its own
// window of locals, and its own scope-depth counter. Nested function
// declarations push a new funcState chained to the enclosing one; since
// this language has no closures, the enclosing chain is only used to pop
// back to the surrounding function when a nested one finishes compiling,
// never to resolve a name across functions.
type funcState struct {
	enclosing  *funcState
	function   *bytecode.Function
	locals     []local
	scopeDepth int
}

func newFuncState(enclosing *funcState, name string, arity int) *funcState {
	fs := &funcState{
		enclosing: enclosing,
		function:  bytecode.NewFunction(name, arity),
	}
	// Slot 0 is reserved for the callee itself (see call sequence); every
	// function starts with it already occupied.
	fs.locals = append(fs.locals, local{name: "", depth: 0})
	return fs
}

func (c *Compiler) beginScope() {
	c.fn.scopeDepth++
}

// endScope pops every local declared at the scope being left and emits a
// Pop for each, per §8's "exactly one Pop per departing local" invariant.
func (c *Compiler) endScope() {
	c.fn.scopeDepth--
	for len(c.fn.locals) > 0 && c.fn.locals[len(c.fn.locals)-1].depth > c.fn.scopeDepth {
		c.emitByte(byte(bytecode.OpPop))
		c.fn.locals = c.fn.locals[:len(c.fn.locals)-1]
	}
}

// declareVariable registers name as a new local in the current scope. It
// is only called when scopeDepth > 0; globals skip local declaration
// entirely.
func (c *Compiler) declareVariable(name string) {
	for i := len(c.fn.locals) - 1; i >= 0; i-- {
		l := c.fn.locals[i]
		if l.depth != uninitializedDepth && l.depth < c.fn.scopeDepth {
			break
		}
		if l.name == name {
			c.error("Already a variable with this name in this scope.")
			return
		}
	}
	if len(c.fn.locals) > maxLocals {
		c.error("Too many local variables in function.")
		return
	}
	c.fn.locals = append(c.fn.locals, local{name: name, depth: uninitializedDepth})
}

// markInitialized sets the most recently declared local's depth to the
// current scope, making it visible to reads.
func (c *Compiler) markInitialized() {
	c.fn.locals[len(c.fn.locals)-1].depth = c.fn.scopeDepth
}

// resolveLocal scans locals top-down for name. ok is false if no local
// matches (the caller should then treat the name as a global).
func (c *Compiler) resolveLocal(name string) (slot int, ok bool) {
	for i := len(c.fn.locals) - 1; i >= 0; i-- {
		if c.fn.locals[i].name == name {
			if c.fn.locals[i].depth == uninitializedDepth {
				c.error("Cannot read local variable in its own initializer.")
				return 0, true
			}
			return i, true
		}
	}
	return 0, false
}
