// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

// Value is one node of a decoded JSON or YAML document. It is a closed
// union over Object, Array, String, Number, Bool and Null; a nil Value
// renders the same as Null.
type Value interface {
	valueNode()
}

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered key/value mapping. Slice order is document
// order, which Go maps would not preserve.
type Object []Member

// Array is an ordered sequence of values.
type Array []Value

// String is a textual scalar.
type String string

// Number is a numeric scalar kept in its original textual form, so
// "1.50" or "1e3" render exactly as written in the input.
type Number string

// Bool is a boolean scalar.
type Bool bool

// Null is an explicit null scalar.
type Null struct{}

func (Object) valueNode() {}
func (Array) valueNode()  {}
func (String) valueNode() {}
func (Number) valueNode() {}
func (Bool) valueNode()   {}
func (Null) valueNode()   {}
