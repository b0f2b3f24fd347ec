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

package resultset

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/schema"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

type closeCountingIterator struct {
	inner  sqltypes.RowIterator
	closes int
}

func (it *closeCountingIterator) Next() ([]sqltypes.Value, error) { return it.inner.Next() }

func (it *closeCountingIterator) Close() error {
	it.closes++
	return it.inner.Close()
}

func testResultSet(iter sqltypes.RowIterator) *FederationResultSet {
	schemaMeta := metadata.NewSchema("public", &metadata.Table{
		Name:    "t_order",
		Columns: []metadata.Column{{Name: "order_id", Type: sqltypes.Int64}},
	})
	sel := &sqlstmt.Select{Query: "SELECT order_id FROM t_order", Tables: []string{"t_order"}}
	columns := []*sqltypes.Field{{Name: "order_id", Type: sqltypes.Int64}}
	return New(iter, schemaMeta, schema.NewFederationSchema(schemaMeta), sel, columns)
}

func TestResultSetStreams(t *testing.T) {
	rs := testResultSet(sqltypes.RowsToIterator([][]sqltypes.Value{
		{sqltypes.NewInt64(1)},
		{sqltypes.NewInt64(2)},
	}))

	row, err := rs.Next()
	require.NoError(t, err)
	require.Equal(t, sqltypes.NewInt64(1), row[0])
	row, err = rs.Next()
	require.NoError(t, err)
	require.Equal(t, sqltypes.NewInt64(2), row[0])
	_, err = rs.Next()
	require.ErrorIs(t, err, io.EOF)
	require.NoError(t, rs.Close())
}

func TestResultSetNextAfterClose(t *testing.T) {
	rs := testResultSet(sqltypes.RowsToIterator([][]sqltypes.Value{{sqltypes.NewInt64(1)}}))
	require.NoError(t, rs.Close())
	_, err := rs.Next()
	require.Equal(t, vterrors.FailedPrecondition, vterrors.CodeOf(err))
	require.Contains(t, err.Error(), "closed")
}

func TestResultSetCloseIdempotent(t *testing.T) {
	iter := &closeCountingIterator{inner: sqltypes.RowsToIterator(nil)}
	rs := testResultSet(iter)
	require.NoError(t, rs.Close())
	require.NoError(t, rs.Close())
	require.Equal(t, 1, iter.closes, "the backing stream is released once")
}

func TestResultSetDrain(t *testing.T) {
	iter := &closeCountingIterator{inner: sqltypes.RowsToIterator([][]sqltypes.Value{
		{sqltypes.NewInt64(1)},
		{sqltypes.NewInt64(2)},
	})}
	rs := testResultSet(iter)
	rows, err := rs.Drain()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 1, iter.closes)
}

func TestResultSetMetadata(t *testing.T) {
	rs := testResultSet(sqltypes.RowsToIterator(nil))
	require.Equal(t, "public", rs.Schema().Name)
	require.Equal(t, "public", rs.FederationSchema().Name())
	require.Equal(t, "SELECT order_id FROM t_order", rs.Statement().SQL())
	require.Equal(t, []sqltypes.Type{sqltypes.Int64}, rs.ColumnTypes())
	require.Len(t, rs.Columns(), 1)
}
