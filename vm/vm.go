// Package vm implements the stack-based bytecode interpreter: a value
// stack, a bounded call-frame stack, a globals table, and a dispatch
// loop over the opcodes bytecode.OpCode defines. It is grounded on the
// teacher's vm/vm.go StackFrame/dispatch-loop shape and its MooError
// wrapped-error idiom, simplified to this language's four-case Value and
// to shared-stack-base call frames (fixing the copied-slice call-frame
// bug class the teacher and its relatives are prone to).
package vm

import (
	"fmt"
	"io"
	"os"

	"loxvm/bytecode"
	"loxvm/natives"
	"loxvm/value"
)

const stackMax = 256 * maxFrames

// VM owns everything a single interpret call touches: the value stack,
// the frame stack, the globals table, and the string intern table. All
// of this is single-threaded and never shared across VM instances.
type VM struct {
	stack  []value.Value
	frames []*callFrame

	globals  map[string]value.Value
	interner *value.Interner

	out io.Writer
}

// New constructs a VM with its native functions already installed into
// globals, ready to Interpret compiled scripts.
func New() *VM {
	interner := value.NewInterner()
	vm := &VM{
		stack:    make([]value.Value, 0, 256),
		frames:   make([]*callFrame, 0, maxFrames),
		globals:  make(map[string]value.Value),
		interner: interner,
		out:      os.Stdout,
	}
	for name, v := range natives.Install(interner) {
		vm.globals[name] = v
	}
	return vm
}

// SetOutput redirects where Print statements write; it defaults to
// os.Stdout.
func (vm *VM) SetOutput(w io.Writer) { vm.out = w }

// Interner exposes the VM's string intern table so the compiler can
// canonicalize string literals and identifier names the same way the VM
// canonicalizes runtime strings.
func (vm *VM) Interner() *value.Interner { return vm.interner }

func (vm *VM) push(v value.Value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() value.Value {
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

func (vm *VM) peek(distance int) value.Value {
	return vm.stack[len(vm.stack)-1-distance]
}

func (vm *VM) resetStack() {
	vm.stack = vm.stack[:0]
	vm.frames = vm.frames[:0]
}

// Interpret runs a compiled top-level Function (the script) to
// completion. On a runtime error the value stack is cleared and a
// *RuntimeError describing the failure and its call trace is returned.
func (vm *VM) Interpret(fn *bytecode.Function) error {
	vm.push(value.Obj(fn))
	vm.frames = append(vm.frames, &callFrame{function: fn, ip: 0, base: 0})
	err := vm.run()
	if err != nil {
		vm.resetStack()
	}
	return err
}

func (vm *VM) currentFrame() *callFrame {
	return vm.frames[len(vm.frames)-1]
}

func (vm *VM) trace() []Frame {
	trace := make([]Frame, 0, len(vm.frames))
	for i := len(vm.frames) - 1; i >= 0; i-- {
		f := vm.frames[i]
		name := f.function.Name
		trace = append(trace, Frame{Line: f.chunk().Line(f.ip - 1), Name: name})
	}
	return trace
}

func (vm *VM) runtimeError(format string, args ...interface{}) *RuntimeError {
	return newRuntimeError(fmt.Sprintf(format, args...), vm.trace())
}

func (vm *VM) run() error {
	for {
		frame := vm.currentFrame()
		chunk := frame.chunk()
		op := bytecode.OpCode(chunk.Byte(frame.ip))
		frame.ip++

		switch op {
		case bytecode.OpConstant:
			idx := int(chunk.Byte(frame.ip))
			frame.ip++
			vm.push(chunk.Constant(idx))

		case bytecode.OpNil:
			vm.push(value.Nil())
		case bytecode.OpTrue:
			vm.push(value.Bool(true))
		case bytecode.OpFalse:
			vm.push(value.Bool(false))
		case bytecode.OpPop:
			vm.pop()

		case bytecode.OpGetLocal:
			slot := int(chunk.Byte(frame.ip))
			frame.ip++
			vm.push(vm.stack[frame.base+slot])
		case bytecode.OpSetLocal:
			slot := int(chunk.Byte(frame.ip))
			frame.ip++
			vm.stack[frame.base+slot] = vm.peek(0)

		case bytecode.OpDefineGlobal:
			idx := int(chunk.Byte(frame.ip))
			frame.ip++
			name := chunk.Constant(idx).AsString()
			vm.globals[name] = vm.pop()

		case bytecode.OpGetGlobal:
			idx := int(chunk.Byte(frame.ip))
			frame.ip++
			name := chunk.Constant(idx).AsString()
			v, ok := vm.globals[name]
			if !ok {
				return vm.runtimeError("Undefined variable '%s'.", name)
			}
			vm.push(v)

		case bytecode.OpSetGlobal:
			idx := int(chunk.Byte(frame.ip))
			frame.ip++
			name := chunk.Constant(idx).AsString()
			if _, ok := vm.globals[name]; !ok {
				return vm.runtimeError("Undefined variable '%s'.", name)
			}
			vm.globals[name] = vm.peek(0)

		case bytecode.OpEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(value.Bool(a.Equal(b)))

		case bytecode.OpGreater:
			if err := vm.binaryCompare(func(a, b float64) bool { return a > b }); err != nil {
				return err
			}
		case bytecode.OpLess:
			if err := vm.binaryCompare(func(a, b float64) bool { return a < b }); err != nil {
				return err
			}

		case bytecode.OpAdd:
			if err := vm.add(); err != nil {
				return err
			}
		case bytecode.OpSubtract:
			if err := vm.binaryArith(func(a, b float64) float64 { return a - b }); err != nil {
				return err
			}
		case bytecode.OpMultiply:
			if err := vm.binaryArith(func(a, b float64) float64 { return a * b }); err != nil {
				return err
			}
		case bytecode.OpDivide:
			if err := vm.binaryArith(func(a, b float64) float64 { return a / b }); err != nil {
				return err
			}

		case bytecode.OpNot:
			vm.push(value.Bool(!vm.pop().Truthy()))

		case bytecode.OpNegate:
			if !vm.peek(0).IsNumber() {
				return vm.runtimeError("Operand must be a number.")
			}
			vm.push(value.Number(-vm.pop().AsNumber()))

		case bytecode.OpPrint:
			fmt.Fprintln(vm.out, vm.pop().String())

		case bytecode.OpJump:
			offset := chunk.ReadShort(frame.ip)
			frame.ip += 2 + offset
		case bytecode.OpJumpIfFalse:
			offset := chunk.ReadShort(frame.ip)
			frame.ip += 2
			if !vm.peek(0).Truthy() {
				frame.ip += offset
			}
		case bytecode.OpLoop:
			offset := chunk.ReadShort(frame.ip)
			frame.ip += 2 - offset

		case bytecode.OpCall:
			argCount := int(chunk.Byte(frame.ip))
			frame.ip++
			if err := vm.callValue(vm.peek(argCount), argCount); err != nil {
				return err
			}

		case bytecode.OpReturn:
			result := vm.pop()
			finished := vm.frames[len(vm.frames)-1]
			vm.frames = vm.frames[:len(vm.frames)-1]
			vm.stack = vm.stack[:finished.base]
			if len(vm.frames) == 0 {
				return nil
			}
			vm.push(result)

		default:
			return vm.runtimeError("Unknown opcode %d.", op)
		}
	}
}

func (vm *VM) binaryArith(op func(a, b float64) float64) error {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.pop().AsNumber()
	a := vm.pop().AsNumber()
	vm.push(value.Number(op(a, b)))
	return nil
}

func (vm *VM) binaryCompare(op func(a, b float64) bool) error {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.pop().AsNumber()
	a := vm.pop().AsNumber()
	vm.push(value.Bool(op(a, b)))
	return nil
}

func (vm *VM) add() error {
	b := vm.peek(0)
	a := vm.peek(1)
	switch {
	case a.IsNumber() && b.IsNumber():
		vm.pop()
		vm.pop()
		vm.push(value.Number(a.AsNumber() + b.AsNumber()))
	case a.IsString() && b.IsString():
		vm.pop()
		vm.pop()
		vm.push(vm.interner.String(a.AsString() + b.AsString()))
	default:
		return vm.runtimeError("Operands must be two numbers or two strings.")
	}
	return nil
}

func (vm *VM) callValue(callee value.Value, argCount int) error {
	if callee.IsObject() {
		switch obj := callee.AsObject().(type) {
		case *bytecode.Function:
			return vm.call(obj, argCount)
		case *value.Native:
			args := make([]value.Value, argCount)
			copy(args, vm.stack[len(vm.stack)-argCount:])
			vm.stack = vm.stack[:len(vm.stack)-argCount-1]
			result, err := obj.Fn(args)
			if err != nil {
				return vm.runtimeError("%s", err.Error())
			}
			vm.push(result)
			return nil
		}
	}
	return vm.runtimeError("Can only call functions and classes.")
}

func (vm *VM) call(fn *bytecode.Function, argCount int) error {
	if argCount != fn.Arity {
		return vm.runtimeError("Expected %d arguments but got %d.", fn.Arity, argCount)
	}
	if len(vm.frames) >= maxFrames {
		return vm.runtimeError("Stack overflow.")
	}
	vm.frames = append(vm.frames, &callFrame{
		function: fn,
		ip:       0,
		base:     len(vm.stack) - argCount - 1,
	})
	return nil
}
