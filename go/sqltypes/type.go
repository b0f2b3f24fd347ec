/*
Copyright 2024 The ShardingSphere Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package sqltypes implements the value, field and result model shared by the
// federation engine and its executors. Values are kept in their wire form
// (type tag plus bytes) so results can be merged across heterogeneous sources
// without eager conversion.
package sqltypes

import "fmt"

// Type is the column type of a field or value.
type Type int16

const (
	// Null means the value is NULL or the type is unknown.
	Null Type = iota
	// Int64 is a signed 64-bit integer.
	Int64
	// Float64 is a double-precision float.
	Float64
	// VarChar is a text value.
	VarChar
	// VarBinary is a binary value.
	VarBinary
)

var typeNames = map[Type]string{
	Null:      "null",
	Int64:     "int64",
	Float64:   "float64",
	VarChar:   "varchar",
	VarBinary: "varbinary",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int16(t))
}

// ParseType returns the Type named by s. It is the inverse of Type.String
// and is used by the test helpers.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return Null, fmt.Errorf("unknown type name: %q", s)
}

// IsNumber reports whether t holds a numeric value.
func (t Type) IsNumber() bool {
	return t == Int64 || t == Float64
}

// IsText reports whether t holds a text or binary value.
func (t Type) IsText() bool {
	return t == VarChar || t == VarBinary
}
