package compiler

import (
	"strconv"

	"loxvm/bytecode"
	"loxvm/lexer"
	"loxvm/value"
)

// rules is the parse-rule table, indexed by token-type ordinal, built
// once at package init rather than reconstructed per compile.
var rules [lexer.NumTokenTypes]parseRule

func init() {
	rules[lexer.TokenLeftParen] = parseRule{prefix: grouping, infix: call, precedence: PrecCall}
	rules[lexer.TokenMinus] = parseRule{prefix: unary, infix: binary, precedence: PrecTerm}
	rules[lexer.TokenPlus] = parseRule{infix: binary, precedence: PrecTerm}
	rules[lexer.TokenSlash] = parseRule{infix: binary, precedence: PrecFactor}
	rules[lexer.TokenStar] = parseRule{infix: binary, precedence: PrecFactor}
	rules[lexer.TokenBang] = parseRule{prefix: unary}
	rules[lexer.TokenBangEqual] = parseRule{infix: binary, precedence: PrecEquality}
	rules[lexer.TokenEqualEqual] = parseRule{infix: binary, precedence: PrecEquality}
	rules[lexer.TokenGreater] = parseRule{infix: binary, precedence: PrecComparison}
	rules[lexer.TokenGreaterEqual] = parseRule{infix: binary, precedence: PrecComparison}
	rules[lexer.TokenLess] = parseRule{infix: binary, precedence: PrecComparison}
	rules[lexer.TokenLessEqual] = parseRule{infix: binary, precedence: PrecComparison}
	rules[lexer.TokenIdentifier] = parseRule{prefix: variable}
	rules[lexer.TokenString] = parseRule{prefix: stringLiteral}
	rules[lexer.TokenNumber] = parseRule{prefix: number}
	rules[lexer.TokenAnd] = parseRule{infix: and_, precedence: PrecAnd}
	rules[lexer.TokenOr] = parseRule{infix: or_, precedence: PrecOr}
	rules[lexer.TokenFalse] = parseRule{prefix: literal}
	rules[lexer.TokenNil] = parseRule{prefix: literal}
	rules[lexer.TokenTrue] = parseRule{prefix: literal}
}

func getRule(t lexer.TokenType) *parseRule {
	return &rules[t]
}

// parsePrecedence is the Pratt core: consume a prefix expression, then
// keep folding in infix operators whose precedence is at least prec.
func (c *Compiler) parsePrecedence(prec Precedence) {
	c.advance()
	rule := getRule(c.previous.Type)
	if rule.prefix == nil {
		c.error("Expect expression.")
		return
	}

	canAssign := prec <= PrecAssignment
	rule.prefix(c, canAssign)

	for prec <= getRule(c.current.Type).precedence {
		c.advance()
		infixRule := getRule(c.previous.Type).infix
		infixRule(c, canAssign)
	}

	if canAssign && c.check(lexer.TokenEqual) {
		c.error("Invalid assignment target.")
	}
}

func (c *Compiler) expression() {
	c.parsePrecedence(PrecAssignment)
}

func number(c *Compiler, _ bool) {
	v, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(value.Number(v))
}

func stringLiteral(c *Compiler, _ bool) {
	raw := c.previous.Lexeme
	s := raw[1 : len(raw)-1] // strip surrounding quotes
	c.emitConstant(c.interner.String(s))
}

func literal(c *Compiler, _ bool) {
	switch c.previous.Type {
	case lexer.TokenFalse:
		c.emitByte(byte(bytecode.OpFalse))
	case lexer.TokenNil:
		c.emitByte(byte(bytecode.OpNil))
	case lexer.TokenTrue:
		c.emitByte(byte(bytecode.OpTrue))
	}
}

func grouping(c *Compiler, _ bool) {
	c.expression()
	c.consume(lexer.TokenRightParen, "Expect ')' after expression.")
}

func unary(c *Compiler, _ bool) {
	opType := c.previous.Type
	c.parsePrecedence(PrecUnary)
	switch opType {
	case lexer.TokenBang:
		c.emitByte(byte(bytecode.OpNot))
	case lexer.TokenMinus:
		c.emitByte(byte(bytecode.OpNegate))
	}
}

func binary(c *Compiler, _ bool) {
	opType := c.previous.Type
	rule := getRule(opType)
	c.parsePrecedence(rule.precedence + 1)

	switch opType {
	case lexer.TokenBangEqual:
		c.emitByte(byte(bytecode.OpEqual))
		c.emitByte(byte(bytecode.OpNot))
	case lexer.TokenEqualEqual:
		c.emitByte(byte(bytecode.OpEqual))
	case lexer.TokenGreater:
		c.emitByte(byte(bytecode.OpGreater))
	case lexer.TokenGreaterEqual:
		c.emitByte(byte(bytecode.OpLess))
		c.emitByte(byte(bytecode.OpNot))
	case lexer.TokenLess:
		c.emitByte(byte(bytecode.OpLess))
	case lexer.TokenLessEqual:
		c.emitByte(byte(bytecode.OpGreater))
		c.emitByte(byte(bytecode.OpNot))
	case lexer.TokenPlus:
		c.emitByte(byte(bytecode.OpAdd))
	case lexer.TokenMinus:
		c.emitByte(byte(bytecode.OpSubtract))
	case lexer.TokenStar:
		c.emitByte(byte(bytecode.OpMultiply))
	case lexer.TokenSlash:
		c.emitByte(byte(bytecode.OpDivide))
	}
}

func and_(c *Compiler, _ bool) {
	endJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitByte(byte(bytecode.OpPop))
	c.parsePrecedence(PrecAnd)
	c.patchJump(endJump)
}

func or_(c *Compiler, _ bool) {
	elseJump := c.emitJump(bytecode.OpJumpIfFalse)
	endJump := c.emitJump(bytecode.OpJump)
	c.patchJump(elseJump)
	c.emitByte(byte(bytecode.OpPop))
	c.parsePrecedence(PrecOr)
	c.patchJump(endJump)
}

func call(c *Compiler, _ bool) {
	argCount := c.argumentList()
	c.emitBytes(byte(bytecode.OpCall), argCount)
}

func (c *Compiler) argumentList() byte {
	count := 0
	if !c.check(lexer.TokenRightParen) {
		for {
			c.expression()
			if count == 255 {
				c.error("Can't have more than 255 arguments.")
			}
			count++
			if !c.match(lexer.TokenComma) {
				break
			}
		}
	}
	c.consume(lexer.TokenRightParen, "Expect ')' after arguments.")
	return byte(count)
}

func variable(c *Compiler, canAssign bool) {
	c.namedVariable(c.previous.Lexeme, canAssign)
}

func (c *Compiler) namedVariable(name string, canAssign bool) {
	slot, isLocal := c.resolveLocal(name)

	if canAssign && c.match(lexer.TokenEqual) {
		c.expression()
		if isLocal {
			c.emitBytes(byte(bytecode.OpSetLocal), byte(slot))
		} else {
			idx := c.identifierConstant(name)
			c.emitBytes(byte(bytecode.OpSetGlobal), byte(idx))
		}
		return
	}

	if isLocal {
		c.emitBytes(byte(bytecode.OpGetLocal), byte(slot))
	} else {
		idx := c.identifierConstant(name)
		c.emitBytes(byte(bytecode.OpGetGlobal), byte(idx))
	}
}
