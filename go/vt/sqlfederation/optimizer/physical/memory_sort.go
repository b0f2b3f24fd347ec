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
	"sort"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
)

var _ Primitive = (*MemorySort)(nil)

// OrderBySpec is one sort key, resolved to a column offset at compile time.
type OrderBySpec struct {
	Col  int
	Desc bool
}

// MemorySort performs in-memory sorting of its input. It materializes the
// input, so the post-merge sort of a federated query happens here.
type MemorySort struct {
	OrderBy []OrderBySpec
	// UpperLimit truncates the sorted output when positive. The planner
	// pushes a downstream limit here so the sort never keeps more rows
	// than the query can return.
	UpperLimit int
	Input      Primitive
}

// Fields implements Primitive.
func (ms *MemorySort) Fields() []*sqltypes.Field {
	return ms.Input.Fields()
}

// Open implements Primitive.
func (ms *MemorySort) Open(bctx *BindContext) (sqltypes.RowIterator, error) {
	in, err := ms.Input.Open(bctx)
	if err != nil {
		return nil, err
	}
	rows, err := sqltypes.DrainIterator(in)
	if err != nil {
		return nil, err
	}
	var sortErr error
	sort.SliceStable(rows, func(i, j int) bool {
		less, err := ms.less(rows[i], rows[j])
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return less
	})
	if sortErr != nil {
		return nil, sortErr
	}
	if ms.UpperLimit > 0 && len(rows) > ms.UpperLimit {
		rows = rows[:ms.UpperLimit]
	}
	return sqltypes.RowsToIterator(rows), nil
}

func (ms *MemorySort) less(a, b []sqltypes.Value) (bool, error) {
	for _, spec := range ms.OrderBy {
		cmp, err := sqltypes.Compare(a[spec.Col], b[spec.Col])
		if err != nil {
			return false, err
		}
		if cmp == 0 {
			continue
		}
		if spec.Desc {
			return cmp > 0, nil
		}
		return cmp < 0, nil
	}
	return false, nil
}
