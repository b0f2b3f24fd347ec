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

var _ Primitive = (*Concatenate)(nil)

// Concatenate streams the rows of its sources one after another. Sources
// are opened lazily: source i+1 is not opened until source i is exhausted,
// so abandoning the stream early never touches the remaining sources.
type Concatenate struct {
	Sources []Primitive
}

// Fields implements Primitive. All sources produce the same columns; the
// compiler guarantees it, so the first source speaks for all.
func (c *Concatenate) Fields() []*sqltypes.Field {
	return c.Sources[0].Fields()
}

// Open implements Primitive.
func (c *Concatenate) Open(bctx *BindContext) (sqltypes.RowIterator, error) {
	return &concatenateIterator{sources: c.Sources, bctx: bctx}, nil
}

type concatenateIterator struct {
	sources []Primitive
	bctx    *BindContext
	current sqltypes.RowIterator
	next    int
	closed  bool
}

func (it *concatenateIterator) Next() ([]sqltypes.Value, error) {
	for {
		if it.current == nil {
			if it.closed || it.next >= len(it.sources) {
				return nil, io.EOF
			}
			current, err := it.sources[it.next].Open(it.bctx)
			if err != nil {
				return nil, err
			}
			it.current = current
			it.next++
		}
		row, err := it.current.Next()
		if err == io.EOF {
			if err := it.current.Close(); err != nil {
				return nil, err
			}
			it.current = nil
			continue
		}
		return row, err
	}
}

func (it *concatenateIterator) Close() error {
	it.closed = true
	if it.current == nil {
		return nil
	}
	current := it.current
	it.current = nil
	return current.Close()
}
