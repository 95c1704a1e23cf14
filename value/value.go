// Package value defines the runtime value representation shared by the
// compiler and the virtual machine.
package value

import (
	"fmt"
	"math"
)

// TypeCode identifies the dynamic type of a Value.
type TypeCode int

const (
	TypeNil TypeCode = iota
	TypeBool
	TypeNumber
	TypeObject
)

func (t TypeCode) String() string {
	switch t {
	case TypeNil:
		return "nil"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the four runtime shapes: nil, bool, number
// and object (string/function/native). Values are small and copied by
// value except for Object, which carries a reference to heap data.
type Value struct {
	typ TypeCode
	b   bool
	n   float64
	obj Object
}

// Object is the interface implemented by every heap-allocated value kind.
type Object interface {
	ObjType() string
	String() string
}

func Nil() Value          { return Value{typ: TypeNil} }
func Bool(b bool) Value   { return Value{typ: TypeBool, b: b} }
func Number(n float64) Value { return Value{typ: TypeNumber, n: n} }
func Obj(o Object) Value  { return Value{typ: TypeObject, obj: o} }

func (v Value) Type() TypeCode { return v.typ }

func (v Value) IsNil() bool    { return v.typ == TypeNil }
func (v Value) IsBool() bool   { return v.typ == TypeBool }
func (v Value) IsNumber() bool { return v.typ == TypeNumber }
func (v Value) IsObject() bool { return v.typ == TypeObject }

func (v Value) AsBool() bool      { return v.b }
func (v Value) AsNumber() float64 { return v.n }
func (v Value) AsObject() Object  { return v.obj }

// IsString reports whether v holds an interned string object.
func (v Value) IsString() bool {
	if v.typ != TypeObject {
		return false
	}
	_, ok := v.obj.(*StringObj)
	return ok
}

// AsString returns the Go string backing an interned string value.
// It panics if v does not hold a string; callers must check IsString first.
func (v Value) AsString() string {
	return v.obj.(*StringObj).Value
}

// Truthy implements this language's truthiness rule: nil and false are
// falsy, every other value (including 0 and "") is truthy.
func (v Value) Truthy() bool {
	switch v.typ {
	case TypeNil:
		return false
	case TypeBool:
		return v.b
	default:
		return true
	}
}

// Equal implements value equality. Numbers compare by value (NaN excepted,
// per IEEE 754), strings by content via interning (pointer equality),
// functions and natives by identity.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeNil:
		return true
	case TypeBool:
		return v.b == other.b
	case TypeNumber:
		return v.n == other.n
	case TypeObject:
		if vs, ok := v.obj.(*StringObj); ok {
			os, ok2 := other.obj.(*StringObj)
			return ok2 && vs == os
		}
		return v.obj == other.obj
	default:
		return false
	}
}

// String renders v the way it would appear in source or at a REPL prompt.
func (v Value) String() string {
	switch v.typ {
	case TypeNil:
		return "nil"
	case TypeBool:
		if v.b {
			return "true"
		}
		return "false"
	case TypeNumber:
		return formatNumber(v.n)
	case TypeObject:
		return v.obj.String()
	default:
		return "<invalid>"
	}
}

func formatNumber(n float64) string {
	if math.IsInf(n, 1) {
		return "inf"
	}
	if math.IsInf(n, -1) {
		return "-inf"
	}
	if math.IsNaN(n) {
		return "nan"
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}

// TypeName returns the name used in runtime type-error messages.
func (v Value) TypeName() string {
	switch v.typ {
	case TypeNil:
		return "nil"
	case TypeBool:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeObject:
		return v.obj.ObjType()
	default:
		return "unknown"
	}
}
