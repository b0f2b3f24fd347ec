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
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer/physical"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

// schemaValidator checks a select statement against one schema before
// conversion.
type schemaValidator struct {
	schema *metadata.Schema
}

var _ physical.Validator = (*schemaValidator)(nil)

func (v *schemaValidator) Validate(sel *sqlstmt.Select) error {
	if len(sel.Tables) == 0 {
		return vterrors.New(vterrors.InvalidArgument, "select references no table")
	}
	if len(sel.Tables) > 1 {
		return vterrors.Errorf(vterrors.Unimplemented, "federated join over %d tables is not supported", len(sel.Tables))
	}
	table, ok := v.schema.Table(sel.Tables[0])
	if !ok {
		return vterrors.Errorf(vterrors.InvalidArgument, "table %s not found in schema %s", sel.Tables[0], v.schema.Name)
	}
	for _, col := range sel.Projection {
		if table.ColumnIndex(col) < 0 {
			return vterrors.Errorf(vterrors.InvalidArgument, "column %s not found in table %s", col, table.Name)
		}
	}
	if sel.Where != nil && table.ColumnIndex(sel.Where.Column) < 0 {
		return vterrors.Errorf(vterrors.InvalidArgument, "column %s not found in table %s", sel.Where.Column, table.Name)
	}
	for _, item := range sel.OrderBy {
		if table.ColumnIndex(item.Column) < 0 {
			return vterrors.Errorf(vterrors.InvalidArgument, "column %s not found in table %s", item.Column, table.Name)
		}
	}
	if sel.Limit != nil && (sel.Limit.Count < 0 || sel.Limit.Offset < 0) {
		return vterrors.New(vterrors.InvalidArgument, "limit and offset must not be negative")
	}
	return nil
}
