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

package optimizer

import (
	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer/physical"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

// schemaConverter turns a validated select into the initial primitive tree:
// scan, then filter, then sort, then projection, then limit. The sort runs
// before the projection so order-by columns need not survive projection.
type schemaConverter struct {
	schema *metadata.Schema
}

var _ physical.Converter = (*schemaConverter)(nil)

func (c *schemaConverter) Convert(sel *sqlstmt.Select) (physical.Primitive, error) {
	table, ok := c.schema.Table(sel.Tables[0])
	if !ok {
		return nil, vterrors.Errorf(vterrors.InvalidArgument, "table %s not found in schema %s", sel.Tables[0], c.schema.Name)
	}
	var root physical.Primitive = &physical.Scan{Table: table.Name, ScanFields: table.Fields()}
	if sel.Where != nil {
		root = &physical.Filter{
			Predicate: *sel.Where,
			ColIndex:  table.ColumnIndex(sel.Where.Column),
			Input:     root,
		}
	}
	if len(sel.OrderBy) > 0 {
		orderBy := make([]physical.OrderBySpec, len(sel.OrderBy))
		for i, item := range sel.OrderBy {
			orderBy[i] = physical.OrderBySpec{Col: table.ColumnIndex(item.Column), Desc: item.Desc}
		}
		root = &physical.MemorySort{OrderBy: orderBy, Input: root}
	}
	if len(sel.Projection) > 0 {
		cols := make([]int, len(sel.Projection))
		fields := make([]*sqltypes.Field, len(sel.Projection))
		for i, name := range sel.Projection {
			col := table.ColumnIndex(name)
			cols[i] = col
			fields[i] = &sqltypes.Field{Name: name, Type: table.Columns[col].Type}
		}
		root = &physical.SimpleProjection{Cols: cols, ProjFields: fields, Input: root}
	}
	if sel.Limit != nil {
		root = &physical.Limit{Count: sel.Limit.Count, Offset: sel.Limit.Offset, Input: root}
	}
	return root, nil
}
