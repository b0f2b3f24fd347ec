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
)

var _ Primitive = (*Rows)(nil)

// Rows serves a fixed set of rows. The scan executor wraps the result of
// each data node in one so that per-node streams can be concatenated
// without copying them into a single buffer first.
type Rows struct {
	Rows      [][]sqltypes.Value
	RowFields []*sqltypes.Field
}

// Fields implements Primitive.
func (r *Rows) Fields() []*sqltypes.Field {
	return r.RowFields
}

// Open implements Primitive.
func (r *Rows) Open(*BindContext) (sqltypes.RowIterator, error) {
	return sqltypes.RowsToIterator(r.Rows), nil
}
