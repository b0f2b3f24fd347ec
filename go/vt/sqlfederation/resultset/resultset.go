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

// Package resultset implements the federation result: the lazy row stream
// of one executed query together with the metadata needed to interpret it.
package resultset

import (
	"io"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/schema"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

// FederationResultSet couples the lazy row iterator of one executed query
// with the originating schema, the federation schema view, the statement
// context and the plan's declared output columns. It is forward-only and
// single-pass; re-reading requires executing the query again.
type FederationResultSet struct {
	iter             sqltypes.RowIterator
	schemaMeta       *metadata.Schema
	federationSchema *schema.FederationSchema
	statement        *sqlstmt.Select
	columns          []*sqltypes.Field
	closed           bool
}

// New builds a result set around an open row iterator.
func New(iter sqltypes.RowIterator, schemaMeta *metadata.Schema, federationSchema *schema.FederationSchema,
	statement *sqlstmt.Select, columns []*sqltypes.Field) *FederationResultSet {
	return &FederationResultSet{
		iter:             iter,
		schemaMeta:       schemaMeta,
		federationSchema: federationSchema,
		statement:        statement,
		columns:          columns,
	}
}

// Next returns the next row, or io.EOF once the stream is exhausted.
func (rs *FederationResultSet) Next() ([]sqltypes.Value, error) {
	if rs.closed {
		return nil, vterrors.New(vterrors.FailedPrecondition, "result set is closed")
	}
	return rs.iter.Next()
}

// Columns returns the declared output columns.
func (rs *FederationResultSet) Columns() []*sqltypes.Field {
	return rs.columns
}

// ColumnTypes returns the declared output column types.
func (rs *FederationResultSet) ColumnTypes() []sqltypes.Type {
	types := make([]sqltypes.Type, len(rs.columns))
	for i, field := range rs.columns {
		types[i] = field.Type
	}
	return types
}

// Schema returns the originating catalog schema.
func (rs *FederationResultSet) Schema() *metadata.Schema {
	return rs.schemaMeta
}

// FederationSchema returns the federation schema view the query ran
// against.
func (rs *FederationResultSet) FederationSchema() *schema.FederationSchema {
	return rs.federationSchema
}

// Statement returns the statement context the result was produced for.
func (rs *FederationResultSet) Statement() *sqlstmt.Select {
	return rs.statement
}

// Drain consumes the remaining rows and closes the result set.
func (rs *FederationResultSet) Drain() ([][]sqltypes.Value, error) {
	var rows [][]sqltypes.Value
	for {
		row, err := rs.Next()
		if err == io.EOF {
			return rows, rs.Close()
		}
		if err != nil {
			_ = rs.Close()
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Close releases the resources backing the row stream. It is idempotent.
func (rs *FederationResultSet) Close() error {
	if rs.closed {
		return nil
	}
	rs.closed = true
	return rs.iter.Close()
}
