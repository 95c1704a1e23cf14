// Package compiler implements a single-pass, table-driven Pratt parser
// that emits bytecode directly while scanning tokens — there is no
// intermediate AST. Parsing, local-variable resolution, and code
// generation are interleaved in one pass, mirroring the teacher's
// compile-time bookkeeping (scopes, loop/jump patch helpers) but driving
// a scanner directly instead of walking a pre-built parser.Node tree.
package compiler

import (
	"loxvm/bytecode"
	"loxvm/lexer"
	"loxvm/value"
)

// Compiler holds all state for one Compile call: the token stream, the
// panic-mode/error flags, and the chain of per-function compile frames.
type Compiler struct {
	scanner *lexer.Scanner
	previous lexer.Token
	current  lexer.Token

	hadError  bool
	panicMode bool
	firstErr  *Error

	interner *value.Interner
	fn       *funcState
}

// Compile compiles source into a top-level Function (the "script"), whose
// chunk the VM runs directly. On any compile error it returns a non-nil
// *Error alongside a nil Function; no partially-compiled bytecode is
// returned in that case.
func Compile(source string, interner *value.Interner) (*bytecode.Function, error) {
	c := &Compiler{
		scanner:  lexer.New(source),
		interner: interner,
		fn:       newFuncState(nil, "", 0),
	}

	c.advance()
	for !c.match(lexer.TokenEOF) {
		c.declaration()
	}

	fn := c.endFunction()
	if c.hadError {
		return nil, c.firstErr
	}
	return fn, nil
}

func (c *Compiler) currentChunk() *bytecode.Chunk {
	return c.fn.function.Chunk
}

func (c *Compiler) endFunction() *bytecode.Function {
	c.emitReturn()
	fn := c.fn.function
	c.fn = c.fn.enclosing
	return fn
}

// --- token stream -----------------------------------------------------

func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.ScanToken()
		if c.current.Type != lexer.TokenError {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *Compiler) check(t lexer.TokenType) bool {
	return c.current.Type == t
}

func (c *Compiler) match(t lexer.TokenType) bool {
	if !c.check(t) {
		return false
	}
	c.advance()
	return true
}

func (c *Compiler) consume(t lexer.TokenType, message string) {
	if c.current.Type == t {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

// --- error reporting ----------------------------------------------------

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *Compiler) error(message string) {
	c.errorAt(c.previous, message)
}

func (c *Compiler) errorAt(tok lexer.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	lexeme := tok.Lexeme
	if tok.Type == lexer.TokenEOF {
		lexeme = ""
	}
	err := &Error{Line: tok.Line, Lexeme: lexeme, Message: message}
	if c.firstErr == nil {
		c.firstErr = err
	}
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so one error doesn't cascade into a wall of spurious ones.
func (c *Compiler) synchronize() {
	c.panicMode = false

	for c.current.Type != lexer.TokenEOF {
		if c.previous.Type == lexer.TokenSemicolon {
			return
		}
		switch c.current.Type {
		case lexer.TokenClass, lexer.TokenFun, lexer.TokenVar, lexer.TokenFor,
			lexer.TokenIf, lexer.TokenWhile, lexer.TokenPrint, lexer.TokenReturn:
			return
		}
		c.advance()
	}
}

// --- emission -----------------------------------------------------------

func (c *Compiler) emitByte(b byte) {
	c.currentChunk().WriteByte(b, c.previous.Line)
}

func (c *Compiler) emitBytes(b1, b2 byte) {
	c.emitByte(b1)
	c.emitByte(b2)
}

func (c *Compiler) emitReturn() {
	c.emitByte(byte(bytecode.OpNil))
	c.emitByte(byte(bytecode.OpReturn))
}

func (c *Compiler) emitConstant(v value.Value) {
	idx, err := c.currentChunk().AddConstant(v)
	if err != nil {
		c.error(err.Error())
		return
	}
	c.emitBytes(byte(bytecode.OpConstant), byte(idx))
}

func (c *Compiler) identifierConstant(name string) int {
	idx, err := c.currentChunk().AddConstant(c.interner.String(name))
	if err != nil {
		c.error(err.Error())
		return 0
	}
	return idx
}

func (c *Compiler) emitJump(op bytecode.OpCode) int {
	return c.currentChunk().EmitJump(op, c.previous.Line)
}

func (c *Compiler) patchJump(offset int) {
	if err := c.currentChunk().PatchJump(offset); err != nil {
		c.error(err.Error())
	}
}

func (c *Compiler) emitLoop(start int) {
	if err := c.currentChunk().EmitLoop(start, c.previous.Line); err != nil {
		c.error(err.Error())
	}
}
