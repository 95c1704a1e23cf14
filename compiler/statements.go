package compiler

import (
	"loxvm/bytecode"
	"loxvm/lexer"
	"loxvm/value"
)

func (c *Compiler) declaration() {
	switch {
	case c.match(lexer.TokenFun):
		c.funDeclaration()
	case c.match(lexer.TokenVar):
		c.varDeclaration()
	default:
		c.statement()
	}

	if c.panicMode {
		c.synchronize()
	}
}

func (c *Compiler) statement() {
	switch {
	case c.match(lexer.TokenPrint):
		c.printStatement()
	case c.match(lexer.TokenIf):
		c.ifStatement()
	case c.match(lexer.TokenWhile):
		c.whileStatement()
	case c.match(lexer.TokenFor):
		c.forStatement()
	case c.match(lexer.TokenReturn):
		c.returnStatement()
	case c.match(lexer.TokenLeftBrace):
		c.beginScope()
		c.block()
		c.endScope()
	default:
		c.expressionStatement()
	}
}

func (c *Compiler) printStatement() {
	c.expression()
	c.consume(lexer.TokenSemicolon, "Expect ';' after value.")
	c.emitByte(byte(bytecode.OpPrint))
}

func (c *Compiler) expressionStatement() {
	c.expression()
	c.consume(lexer.TokenSemicolon, "Expect ';' after expression.")
	c.emitByte(byte(bytecode.OpPop))
}

func (c *Compiler) block() {
	for !c.check(lexer.TokenRightBrace) && !c.check(lexer.TokenEOF) {
		c.declaration()
	}
	c.consume(lexer.TokenRightBrace, "Expect '}' after block.")
}

func (c *Compiler) ifStatement() {
	c.consume(lexer.TokenLeftParen, "Expect '(' after 'if'.")
	c.expression()
	c.consume(lexer.TokenRightParen, "Expect ')' after condition.")

	thenJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitByte(byte(bytecode.OpPop))
	c.statement()

	elseJump := c.emitJump(bytecode.OpJump)
	c.patchJump(thenJump)
	c.emitByte(byte(bytecode.OpPop))

	if c.match(lexer.TokenElse) {
		c.statement()
	}
	c.patchJump(elseJump)
}

func (c *Compiler) whileStatement() {
	loopStart := c.currentChunk().Len()
	c.consume(lexer.TokenLeftParen, "Expect '(' after 'while'.")
	c.expression()
	c.consume(lexer.TokenRightParen, "Expect ')' after condition.")

	exitJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitByte(byte(bytecode.OpPop))
	c.statement()
	c.emitLoop(loopStart)

	c.patchJump(exitJump)
	c.emitByte(byte(bytecode.OpPop))
}

func (c *Compiler) forStatement() {
	c.beginScope()
	c.consume(lexer.TokenLeftParen, "Expect '(' after 'for'.")

	switch {
	case c.match(lexer.TokenSemicolon):
		// no initializer
	case c.match(lexer.TokenVar):
		c.varDeclaration()
	default:
		c.expressionStatement()
	}

	loopStart := c.currentChunk().Len()
	exitJump := -1
	if !c.match(lexer.TokenSemicolon) {
		c.expression()
		c.consume(lexer.TokenSemicolon, "Expect ';' after loop condition.")
		exitJump = c.emitJump(bytecode.OpJumpIfFalse)
		c.emitByte(byte(bytecode.OpPop))
	}

	if !c.check(lexer.TokenRightParen) {
		bodyJump := c.emitJump(bytecode.OpJump)
		incrStart := c.currentChunk().Len()
		c.expression()
		c.emitByte(byte(bytecode.OpPop))
		c.consume(lexer.TokenRightParen, "Expect ')' after for clauses.")

		c.emitLoop(loopStart)
		loopStart = incrStart
		c.patchJump(bodyJump)
	} else {
		c.consume(lexer.TokenRightParen, "Expect ')' after for clauses.")
	}

	c.statement()
	c.emitLoop(loopStart)

	if exitJump != -1 {
		c.patchJump(exitJump)
		c.emitByte(byte(bytecode.OpPop))
	}

	c.endScope()
}

func (c *Compiler) returnStatement() {
	if c.match(lexer.TokenSemicolon) {
		c.emitReturn()
		return
	}
	c.expression()
	c.consume(lexer.TokenSemicolon, "Expect ';' after return value.")
	c.emitByte(byte(bytecode.OpReturn))
}

func (c *Compiler) varDeclaration() {
	global := c.parseVariable("Expect variable name.")

	if c.match(lexer.TokenEqual) {
		c.expression()
	} else {
		c.emitByte(byte(bytecode.OpNil))
	}
	c.consume(lexer.TokenSemicolon, "Expect ';' after variable declaration.")

	c.defineVariable(global)
}

func (c *Compiler) funDeclaration() {
	global := c.parseVariable("Expect function name.")
	name := c.previous.Lexeme
	if c.fn.scopeDepth > 0 {
		c.markInitialized()
	}
	c.function(name)
	c.defineVariable(global)
}

// function compiles a nested function declaration's parameter list and
// body into its own chunk, then emits the resulting Function as a
// constant in the enclosing chunk.
func (c *Compiler) function(name string) {
	c.fn = newFuncState(c.fn, name, 0)
	c.beginScope()

	c.consume(lexer.TokenLeftParen, "Expect '(' after function name.")
	if !c.check(lexer.TokenRightParen) {
		for {
			c.fn.function.Arity++
			if c.fn.function.Arity > 255 {
				c.error("Can't have more than 255 parameters.")
			}
			paramConst := c.parseVariable("Expect parameter name.")
			c.defineVariable(paramConst)
			if !c.match(lexer.TokenComma) {
				break
			}
		}
	}
	c.consume(lexer.TokenRightParen, "Expect ')' after parameters.")
	c.consume(lexer.TokenLeftBrace, "Expect '{' before function body.")
	c.block()

	fn := c.endFunction()
	c.emitConstant(value.Obj(fn))
}

// parseVariable consumes an identifier and, inside a scope, declares it
// as a local immediately; for globals it returns the name's constant-pool
// index, which the later defineVariable call emits with DefineGlobal.
func (c *Compiler) parseVariable(errMsg string) int {
	c.consume(lexer.TokenIdentifier, errMsg)
	name := c.previous.Lexeme
	if c.fn.scopeDepth > 0 {
		c.declareVariable(name)
		return 0
	}
	return c.identifierConstant(name)
}

func (c *Compiler) defineVariable(global int) {
	if c.fn.scopeDepth > 0 {
		c.markInitialized()
		return
	}
	c.emitBytes(byte(bytecode.OpDefineGlobal), byte(global))
}
