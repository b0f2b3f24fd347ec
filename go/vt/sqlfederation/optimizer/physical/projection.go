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

import "github.com/SankarshanMishra/shardingsphere/go/sqltypes"

var _ Primitive = (*SimpleProjection)(nil)

// SimpleProjection selects which of the input columns to return, by offset.
type SimpleProjection struct {
	// Cols defines the column numbers to keep, in output order.
	Cols       []int
	ProjFields []*sqltypes.Field
	Input      Primitive
}

// Fields implements Primitive.
func (sp *SimpleProjection) Fields() []*sqltypes.Field {
	return sp.ProjFields
}

// Open implements Primitive.
func (sp *SimpleProjection) Open(bctx *BindContext) (sqltypes.RowIterator, error) {
	in, err := sp.Input.Open(bctx)
	if err != nil {
		return nil, err
	}
	return &projectionIterator{in: in, cols: sp.Cols}, nil
}

type projectionIterator struct {
	in   sqltypes.RowIterator
	cols []int
}

func (it *projectionIterator) Next() ([]sqltypes.Value, error) {
	row, err := it.in.Next()
	if err != nil {
		return nil, err
	}
	out := make([]sqltypes.Value, len(it.cols))
	for i, col := range it.cols {
		out[i] = row[col]
	}
	return out, nil
}

func (it *projectionIterator) Close() error {
	return it.in.Close()
}
