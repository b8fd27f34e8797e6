// File: literal.go
// Title: Lox Literal Values
// Description: Defines the tagged union of constant values carried by
//              NUMBER and STRING tokens and by literal syntax tree nodes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package literal defines the constant values of the Lox expression language.
package literal

import (
	"strconv"
)

// Type identifies the variant held by a Value
type Type int

const (
	// TypeNull is the absent value, written nil in source
	TypeNull Type = iota

	// TypeBoolean holds true or false
	TypeBoolean

	// TypeNumber holds a 64-bit float
	TypeNumber

	// TypeString holds the raw string content
	TypeString
)

// String returns the variant name
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is an immutable literal. The zero Value is Null.
type Value struct {
	typ Type
	b   bool
	n   float64
	s   string
}

// Null returns the null value
func Null() Value {
	return Value{typ: TypeNull}
}

// Bool returns a boolean value
func Bool(b bool) Value {
	return Value{typ: TypeBoolean, b: b}
}

// Number returns a numeric value
func Number(n float64) Value {
	return Value{typ: TypeNumber, n: n}
}

// String returns a string value
func String(s string) Value {
	return Value{typ: TypeString, s: s}
}

// Type returns the variant of v
func (v Value) Type() Type {
	return v.typ
}

// IsNull reports whether v is the null value
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// AsBool returns the boolean payload and whether v is a Boolean
func (v Value) AsBool() (bool, bool) {
	return v.b, v.typ == TypeBoolean
}

// AsNumber returns the numeric payload and whether v is a Number
func (v Value) AsNumber() (float64, bool) {
	return v.n, v.typ == TypeNumber
}

// AsString returns the string payload and whether v is a String
func (v Value) AsString() (string, bool) {
	return v.s, v.typ == TypeString
}

// Equal compares two values variant by variant
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeBoolean:
		return v.b == other.b
	case TypeNumber:
		return v.n == other.n
	case TypeString:
		return v.s == other.s
	default:
		return true
	}
}

// String formats the value. Numbers use the shortest decimal form without
// an exponent, null renders as "null" and strings render their raw content.
func (v Value) String() string {
	switch v.typ {
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	case TypeNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case TypeString:
		return v.s
	default:
		return "null"
	}
}

// Interface returns the payload as a plain Go value (nil, bool, float64 or string)
func (v Value) Interface() interface{} {
	switch v.typ {
	case TypeBoolean:
		return v.b
	case TypeNumber:
		return v.n
	case TypeString:
		return v.s
	default:
		return nil
	}
}
