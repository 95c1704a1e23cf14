package bytecode

// OpCode is a single bytecode instruction.
type OpCode byte

const (
	OpConstant    OpCode = iota // Push constants[idx] [idx]
	OpNil                       // Push nil
	OpTrue                      // Push true
	OpFalse                     // Push false
	OpPop                       // Discard top of stack
	OpGetLocal                  // Push frame.slot [slot]
	OpSetLocal                  // frame.slot := peek(0) [slot]
	OpDefineGlobal              // globals[constants[idx]] := pop [idx]
	OpGetGlobal                 // Push globals[constants[idx]] or error [idx]
	OpSetGlobal                 // globals[name] := peek(0); error if undefined [idx]
	OpEqual                     // Pop b, a; push a == b
	OpGreater                   // Pop b, a; push a > b
	OpLess                      // Pop b, a; push a < b
	OpAdd                       // Pop b, a; push a + b (numbers or strings)
	OpSubtract                  // Pop b, a; push a - b
	OpMultiply                  // Pop b, a; push a * b
	OpDivide                    // Pop b, a; push a / b
	OpNot                       // Push !truthy(pop)
	OpNegate                    // Negate top of stack; error if not a number
	OpPrint                     // Pop; print its representation
	OpJump                      // ip += offset [offset u16]
	OpJumpIfFalse               // if !truthy(peek(0)): ip += offset [offset u16]
	OpLoop                      // ip -= offset [offset u16]
	OpCall                      // Invoke callee at peek(argc) [argc]
	OpReturn                    // Pop return value, discard frame, push in caller
)

var opcodeNames = map[OpCode]string{
	OpConstant:     "CONSTANT",
	OpNil:          "NIL",
	OpTrue:         "TRUE",
	OpFalse:        "FALSE",
	OpPop:          "POP",
	OpGetLocal:     "GET_LOCAL",
	OpSetLocal:     "SET_LOCAL",
	OpDefineGlobal: "DEFINE_GLOBAL",
	OpGetGlobal:    "GET_GLOBAL",
	OpSetGlobal:    "SET_GLOBAL",
	OpEqual:        "EQUAL",
	OpGreater:      "GREATER",
	OpLess:         "LESS",
	OpAdd:          "ADD",
	OpSubtract:     "SUBTRACT",
	OpMultiply:     "MULTIPLY",
	OpDivide:       "DIVIDE",
	OpNot:          "NOT",
	OpNegate:       "NEGATE",
	OpPrint:        "PRINT",
	OpJump:         "JUMP",
	OpJumpIfFalse:  "JUMP_IF_FALSE",
	OpLoop:         "LOOP",
	OpCall:         "CALL",
	OpReturn:       "RETURN",
}

func (op OpCode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}

// OperandBytes reports how many operand bytes follow op in the bytecode
// stream: 0, 1 (index/slot/argc), or 2 (jump offset).
func OperandBytes(op OpCode) int {
	switch op {
	case OpConstant, OpGetLocal, OpSetLocal, OpDefineGlobal, OpGetGlobal, OpSetGlobal, OpCall:
		return 1
	case OpJump, OpJumpIfFalse, OpLoop:
		return 2
	default:
		return 0
	}
}
