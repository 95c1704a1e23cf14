package bytecode

import (
	"testing"

	"loxvm/value"
)

func TestWriteByteKeepsBytesAndLinesInLockstep(t *testing.T) {
	c := NewChunk()
	c.WriteOp(OpNil, 1)
	c.WriteOp(OpPop, 1)
	c.WriteOp(OpReturn, 2)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if got := c.Line(2); got != 2 {
		t.Errorf("Line(2) = %d, want 2", got)
	}
}

func TestAddConstantRejectsOverflow(t *testing.T) {
	c := NewChunk()
	for i := 0; i < MaxConstants; i++ {
		if _, err := c.AddConstant(value.Number(float64(i))); err != nil {
			t.Fatalf("constant %d: unexpected error: %v", i, err)
		}
	}
	if _, err := c.AddConstant(value.Number(999)); err == nil {
		t.Fatal("expected an error adding the 257th constant")
	}
}

func TestJumpPatchRoundTrip(t *testing.T) {
	c := NewChunk()
	offset := c.EmitJump(OpJump, 1)
	c.WriteOp(OpNil, 1)
	c.WriteOp(OpNil, 1)
	if err := c.PatchJump(offset); err != nil {
		t.Fatalf("PatchJump: %v", err)
	}

	jump := c.ReadShort(offset)
	if jump != 2 {
		t.Errorf("patched jump = %d, want 2", jump)
	}
}

func TestEmitLoopBackwardOffset(t *testing.T) {
	c := NewChunk()
	start := c.Len()
	c.WriteOp(OpNil, 1)
	if err := c.EmitLoop(start, 1); err != nil {
		t.Fatalf("EmitLoop: %v", err)
	}
	// one OpNil byte + (OpLoop + 2 operand bytes) = 4 bytes written
	offset := c.ReadShort(2)
	if offset != 4 {
		t.Errorf("loop offset = %d, want 4", offset)
	}
}
