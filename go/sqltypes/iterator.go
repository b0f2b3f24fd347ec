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

import "io"

// RowIterator is a forward-only, single-pass row stream. Next returns io.EOF
// once the stream is exhausted. The stream is not restartable: re-reading
// requires producing a new iterator. Close releases the resources backing
// the stream and must be called on every exit path, including early
// abandonment; it is safe to call more than once.
type RowIterator interface {
	Next() ([]Value, error)
	Close() error
}

type sliceIterator struct {
	rows [][]Value
	next int
}

// RowsToIterator wraps already materialized rows into a RowIterator.
func RowsToIterator(rows [][]Value) RowIterator {
	return &sliceIterator{rows: rows}
}

func (it *sliceIterator) Next() ([]Value, error) {
	if it.next >= len(it.rows) {
		return nil, io.EOF
	}
	row := it.rows[it.next]
	it.next++
	return row, nil
}

func (it *sliceIterator) Close() error {
	it.next = len(it.rows)
	return nil
}

// DrainIterator consumes the iterator to exhaustion and closes it. On a read
// error the iterator is still closed before the error is returned.
func DrainIterator(it RowIterator) ([][]Value, error) {
	var rows [][]Value
	for {
		row, err := it.Next()
		if err == io.EOF {
			return rows, it.Close()
		}
		if err != nil {
			_ = it.Close()
			return nil, err
		}
		rows = append(rows, row)
	}
}
