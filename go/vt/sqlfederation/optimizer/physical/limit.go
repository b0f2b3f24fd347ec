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
	"io"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
)

var _ Primitive = (*Limit)(nil)

// Limit returns at most Count rows after skipping Offset rows. It stays
// lazy: once the count is satisfied the input is not pulled further.
type Limit struct {
	Count  int
	Offset int
	Input  Primitive
}

// Fields implements Primitive.
func (l *Limit) Fields() []*sqltypes.Field {
	return l.Input.Fields()
}

// Open implements Primitive.
func (l *Limit) Open(bctx *BindContext) (sqltypes.RowIterator, error) {
	in, err := l.Input.Open(bctx)
	if err != nil {
		return nil, err
	}
	return &limitIterator{in: in, toSkip: l.Offset, left: l.Count}, nil
}

type limitIterator struct {
	in     sqltypes.RowIterator
	toSkip int
	left   int
}

func (it *limitIterator) Next() ([]sqltypes.Value, error) {
	for it.toSkip > 0 {
		if _, err := it.in.Next(); err != nil {
			return nil, err
		}
		it.toSkip--
	}
	if it.left <= 0 {
		return nil, io.EOF
	}
	row, err := it.in.Next()
	if err != nil {
		return nil, err
	}
	it.left--
	return row, nil
}

func (it *limitIterator) Close() error {
	return it.in.Close()
}
