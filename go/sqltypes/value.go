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

package sqltypes

import (
	"bytes"
	"fmt"
	"strconv"
)

// Value is a single typed cell of a row. The zero Value is NULL.
type Value struct {
	typ Type
	val []byte
}

// NULL is the SQL NULL value.
var NULL = Value{}

// NewInt64 builds an Int64 Value.
func NewInt64(v int64) Value {
	return Value{typ: Int64, val: strconv.AppendInt(nil, v, 10)}
}

// NewFloat64 builds a Float64 Value.
func NewFloat64(v float64) Value {
	return Value{typ: Float64, val: strconv.AppendFloat(nil, v, 'g', -1, 64)}
}

// NewVarChar builds a VarChar Value.
func NewVarChar(v string) Value {
	return Value{typ: VarChar, val: []byte(v)}
}

// NewVarBinary builds a VarBinary Value.
func NewVarBinary(v []byte) Value {
	return Value{typ: VarBinary, val: v}
}

// MakeValue builds a Value from a type and raw bytes without validation.
func MakeValue(typ Type, val []byte) Value {
	if typ == Null {
		return NULL
	}
	return Value{typ: typ, val: val}
}

// InterfaceToValue converts a Go native value, such as a positional query
// parameter, into a Value.
func InterfaceToValue(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return NULL, nil
	case int:
		return NewInt64(int64(v)), nil
	case int32:
		return NewInt64(int64(v)), nil
	case int64:
		return NewInt64(v), nil
	case float64:
		return NewFloat64(v), nil
	case string:
		return NewVarChar(v), nil
	case []byte:
		return NewVarBinary(v), nil
	case Value:
		return v, nil
	default:
		return NULL, fmt.Errorf("unexpected type %T: %v", v, v)
	}
}

// Type returns the value's type.
func (v Value) Type() Type {
	return v.typ
}

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool {
	return v.typ == Null
}

// Raw returns the internal representation of the value.
func (v Value) Raw() []byte {
	return v.val
}

// ToInt64 converts the value to an int64.
func (v Value) ToInt64() (int64, error) {
	return strconv.ParseInt(string(v.val), 10, 64)
}

// ToFloat64 converts the value to a float64.
func (v Value) ToFloat64() (float64, error) {
	return strconv.ParseFloat(string(v.val), 64)
}

// ToString returns the value as a string, without type checking.
func (v Value) ToString() string {
	return string(v.val)
}

// String formats the value for debugging as TYPE(val).
func (v Value) String() string {
	if v.typ == Null {
		return "NULL"
	}
	return fmt.Sprintf("%v(%s)", v.typ, v.val)
}

// Equal reports whether v and other have the same type and representation.
func (v Value) Equal(other Value) bool {
	return v.typ == other.typ && bytes.Equal(v.val, other.val)
}

// Compare returns -1, 0 or 1 if a is respectively smaller than, equal to or
// larger than b. NULL sorts before every other value. Values of different
// type families cannot be compared.
func Compare(a, b Value) (int, error) {
	switch {
	case a.IsNull() && b.IsNull():
		return 0, nil
	case a.IsNull():
		return -1, nil
	case b.IsNull():
		return 1, nil
	}
	switch {
	case a.typ == Int64 && b.typ == Int64:
		// Integer pairs must not round-trip through float64: values above
		// 2^53 lose precision there and distinct keys would compare equal.
		av, err := a.ToInt64()
		if err != nil {
			return 0, err
		}
		bv, err := b.ToInt64()
		if err != nil {
			return 0, err
		}
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		}
		return 0, nil
	case a.typ.IsNumber() && b.typ.IsNumber():
		av, err := a.ToFloat64()
		if err != nil {
			return 0, err
		}
		bv, err := b.ToFloat64()
		if err != nil {
			return 0, err
		}
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		}
		return 0, nil
	case a.typ.IsText() && b.typ.IsText():
		return bytes.Compare(a.val, b.val), nil
	}
	return 0, fmt.Errorf("unsupported comparison between %v and %v", a.typ, b.typ)
}
