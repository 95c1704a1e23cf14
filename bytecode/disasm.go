package bytecode

import (
	"fmt"
	"io"
)

// Disassemble writes a human-readable listing of every instruction in c
// to w, prefixed with name as a header.
func Disassemble(w io.Writer, c *Chunk, name string) {
	fmt.Fprintf(w, "== %s ==\n", name)
	for offset := 0; offset < c.Len(); {
		offset = DisassembleInstruction(w, c, offset)
	}
}

// DisassembleInstruction writes one instruction starting at offset and
// returns the offset of the next instruction.
func DisassembleInstruction(w io.Writer, c *Chunk, offset int) int {
	line := c.Line(offset)
	lineCol := "   |"
	if offset == 0 || line != c.Line(offset-1) {
		lineCol = fmt.Sprintf("%4d", line)
	}

	op := OpCode(c.Byte(offset))
	switch OperandBytes(op) {
	case 0:
		fmt.Fprintf(w, "%04d %s %s\n", offset, lineCol, op)
		return offset + 1
	case 1:
		operand := int(c.Byte(offset + 1))
		comment := ""
		switch op {
		case OpConstant, OpDefineGlobal, OpGetGlobal, OpSetGlobal:
			comment = fmt.Sprintf(" ; %s", c.Constant(operand).String())
		case OpGetLocal, OpSetLocal:
			comment = fmt.Sprintf(" ; slot %d", operand)
		case OpCall:
			comment = fmt.Sprintf(" ; %d arg(s)", operand)
		}
		fmt.Fprintf(w, "%04d %s %-14s %4d%s\n", offset, lineCol, op, operand, comment)
		return offset + 2
	case 2:
		jump := c.ReadShort(offset + 1)
		target := offset + 3
		if op == OpLoop {
			target -= jump
		} else {
			target += jump
		}
		fmt.Fprintf(w, "%04d %s %-14s %4d -> %d\n", offset, lineCol, op, jump, target)
		return offset + 3
	default:
		fmt.Fprintf(w, "%04d %s unknown opcode %d\n", offset, lineCol, op)
		return offset + 1
	}
}
