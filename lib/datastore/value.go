package datastore

import (
	"fmt"
	"strconv"
)

// ValueType enumerates the scalar types exchanged at the datastore boundary.
type ValueType uint8

const (
	TypeBool ValueType = iota
	TypeString
	TypeEnum
	TypeIdentityref
	TypeUint8
	TypeUint16
	TypeUint64
)

// Value is a typed scalar as stored under a datastore xpath.
type Value struct {
	Type ValueType
	Bool bool
	Str  string // string, enum and identityref payloads
	Uint uint64 // uint8/uint16/uint64 payloads
}

func BoolVal(b bool) Value          { return Value{Type: TypeBool, Bool: b} }
func StringVal(s string) Value      { return Value{Type: TypeString, Str: s} }
func EnumVal(s string) Value        { return Value{Type: TypeEnum, Str: s} }
func IdentityrefVal(s string) Value { return Value{Type: TypeIdentityref, Str: s} }
func Uint8Val(u uint8) Value        { return Value{Type: TypeUint8, Uint: uint64(u)} }
func Uint16Val(u uint16) Value      { return Value{Type: TypeUint16, Uint: uint64(u)} }
func Uint64Val(u uint64) Value      { return Value{Type: TypeUint64, Uint: u} }

func (v Value) String() string {
	switch v.Type {
	case TypeBool:
		return strconv.FormatBool(v.Bool)
	case TypeUint8, TypeUint16, TypeUint64:
		return strconv.FormatUint(v.Uint, 10)
	default:
		return v.Str
	}
}

func (v Value) GoString() string {
	return fmt.Sprintf("Value(type=%d, %s)", v.Type, v.String())
}

// StateValue is one operational-data leaf: an xpath and its value.
type StateValue struct {
	XPath string
	Value Value
}
