package compiler

import (
	"strconv"
	"strings"
	"testing"

	"loxvm/bytecode"
	"loxvm/value"
)

func compileOK(t *testing.T, source string) *bytecode.Function {
	t.Helper()
	fn, err := Compile(source, value.NewInterner())
	if err != nil {
		t.Fatalf("Compile(%q): unexpected error: %v", source, err)
	}
	return fn
}

func TestCompileSimpleExpression(t *testing.T) {
	fn := compileOK(t, "print 1 + 2;")
	chunk := fn.Chunk
	ops := []bytecode.OpCode{bytecode.OpConstant, bytecode.OpConstant, bytecode.OpAdd, bytecode.OpPrint}
	pos := 0
	for _, want := range ops {
		got := bytecode.OpCode(chunk.Byte(pos))
		if got != want {
			t.Fatalf("opcode at %d = %v, want %v", pos, got, want)
		}
		pos += 1 + bytecode.OperandBytes(got)
	}
}

func TestOwnInitializerError(t *testing.T) {
	_, err := Compile(`var a = "outer"; { var a = a; }`, value.NewInterner())
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if !strings.Contains(err.Error(), "Cannot read local variable in its own initializer.") {
		t.Errorf("error = %v, want initializer-self-reference message", err)
	}
}

func TestDuplicateLocalDeclaration(t *testing.T) {
	_, err := Compile(`{ var a = 1; var a = 2; }`, value.NewInterner())
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if !strings.Contains(err.Error(), "Already a variable with this name in this scope.") {
		t.Errorf("error = %v, want duplicate-name message", err)
	}
}

func TestTooManyLocals(t *testing.T) {
	var b strings.Builder
	b.WriteString("{\n")
	for i := 0; i < 257; i++ {
		b.WriteString("var v")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(" = 0;\n")
	}
	b.WriteString("}\n")

	_, err := Compile(b.String(), value.NewInterner())
	if err == nil {
		t.Fatal("expected a compile error past 256 locals")
	}
	if !strings.Contains(err.Error(), "Too many local variables in function.") {
		t.Errorf("error = %v, want too-many-locals message", err)
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	_, err := Compile("a * b = c;", value.NewInterner())
	if err == nil {
		t.Fatal("expected a compile error")
	}
	if !strings.Contains(err.Error(), "Invalid assignment target.") {
		t.Errorf("error = %v, want invalid-assignment-target message", err)
	}
}

func TestFunctionDeclarationCompilesNestedChunk(t *testing.T) {
	fn := compileOK(t, `fun add(a, b) { return a + b; } print add(2, 3);`)
	if fn.Chunk.Len() == 0 {
		t.Fatal("expected a non-empty script chunk")
	}

	var nested *bytecode.Function
	for _, k := range fn.Chunk.Constants() {
		if f, ok := k.AsObject().(*bytecode.Function); k.IsObject() && ok {
			nested = f
		}
	}
	if nested == nil {
		t.Fatal("expected the compiled function as a constant in the script chunk")
	}
	if nested.Name != "add" || nested.Arity != 2 || nested.Chunk.Len() == 0 {
		t.Errorf("nested function = %s arity %d with %d bytes, want <fn add> arity 2 with a non-empty chunk",
			nested, nested.Arity, nested.Chunk.Len())
	}
}
