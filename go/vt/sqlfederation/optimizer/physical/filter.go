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

package physical

import (
	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

var _ Primitive = (*Filter)(nil)

// Filter evaluates one comparison predicate against every input row. The
// predicate's right-hand side is either an inline literal or a positional
// parameter resolved from the bind context.
type Filter struct {
	Predicate sqlstmt.Condition
	// ColIndex is the offset of the predicate column in the input row,
	// resolved at compile time.
	ColIndex int
	Input    Primitive
}

// Fields implements Primitive.
func (f *Filter) Fields() []*sqltypes.Field {
	return f.Input.Fields()
}

// Open implements Primitive.
func (f *Filter) Open(bctx *BindContext) (sqltypes.RowIterator, error) {
	arg, err := f.resolveArg(bctx)
	if err != nil {
		return nil, err
	}
	in, err := f.Input.Open(bctx)
	if err != nil {
		return nil, err
	}
	return &filterIterator{in: in, filter: f, arg: arg}, nil
}

func (f *Filter) resolveArg(bctx *BindContext) (sqltypes.Value, error) {
	if !f.Predicate.Arg.IsPlaceholder() {
		return f.Predicate.Arg.Literal, nil
	}
	raw, ok := bctx.Parameter(f.Predicate.Arg.Placeholder)
	if !ok {
		return sqltypes.NULL, vterrors.Errorf(vterrors.InvalidArgument,
			"missing value for parameter %s", ParameterName(f.Predicate.Arg.Placeholder))
	}
	value, err := sqltypes.InterfaceToValue(raw)
	if err != nil {
		return sqltypes.NULL, vterrors.Wrapf(err, "parameter %s", ParameterName(f.Predicate.Arg.Placeholder))
	}
	return value, nil
}

func (f *Filter) matches(row []sqltypes.Value, arg sqltypes.Value) (bool, error) {
	cmp, err := sqltypes.Compare(row[f.ColIndex], arg)
	if err != nil {
		return false, vterrors.Wrapf(err, "predicate on column %s", f.Predicate.Column)
	}
	switch f.Predicate.Op {
	case sqlstmt.EqualOp:
		return cmp == 0, nil
	case sqlstmt.NotEqualOp:
		return cmp != 0, nil
	case sqlstmt.LessThanOp:
		return cmp < 0, nil
	case sqlstmt.LessEqualOp:
		return cmp <= 0, nil
	case sqlstmt.GreaterThanOp:
		return cmp > 0, nil
	case sqlstmt.GreaterEqualOp:
		return cmp >= 0, nil
	}
	return false, vterrors.Errorf(vterrors.Unimplemented, "unsupported comparison operator %v", f.Predicate.Op)
}

type filterIterator struct {
	in     sqltypes.RowIterator
	filter *Filter
	arg    sqltypes.Value
}

func (it *filterIterator) Next() ([]sqltypes.Value, error) {
	for {
		row, err := it.in.Next()
		if err != nil {
			return nil, err
		}
		ok, err := it.filter.matches(row, it.arg)
		if err != nil {
			return nil, err
		}
		if ok {
			return row, nil
		}
	}
}

func (it *filterIterator) Close() error {
	return it.in.Close()
}
