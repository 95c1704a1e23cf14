package bytecode

import (
	"bytes"
	"strings"
	"testing"

	"loxvm/value"
)

func TestDisassembleAnnotatesConstantOperand(t *testing.T) {
	c := NewChunk()
	idx, _ := c.AddConstant(value.Number(42))
	c.WriteOp(OpConstant, 1)
	c.WriteByte(byte(idx), 1)
	c.WriteOp(OpReturn, 1)

	var buf bytes.Buffer
	Disassemble(&buf, c, "test")

	out := buf.String()
	if !strings.Contains(out, "CONSTANT") {
		t.Errorf("disassembly missing CONSTANT instruction:\n%s", out)
	}
	if !strings.Contains(out, "; 42") {
		t.Errorf("disassembly missing resolved constant annotation:\n%s", out)
	}
}

func TestDisassembleAnnotatesJumpTarget(t *testing.T) {
	c := NewChunk()
	offset := c.EmitJump(OpJump, 1)
	c.WriteOp(OpNil, 1)
	c.PatchJump(offset)
	c.WriteOp(OpReturn, 1)

	var buf bytes.Buffer
	Disassemble(&buf, c, "test")

	out := buf.String()
	if !strings.Contains(out, "->") {
		t.Errorf("disassembly missing jump-target arrow:\n%s", out)
	}
}
