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

package executor

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/datanode"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/rule"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

func scanMetaData(nodes ...datanode.DataNode) *metadata.MetaData {
	orders := &metadata.Table{
		Name: "t_order",
		Columns: []metadata.Column{
			{Name: "order_id", Type: sqltypes.Int64},
			{Name: "status", Type: sqltypes.VarChar},
		},
		DataNodes: nodes,
	}
	schema := metadata.NewSchema("public", orders)
	db := metadata.NewDatabase("sharding_db", []*metadata.Schema{schema}, nil)
	return metadata.NewMetaData([]*metadata.Database{db}, nil)
}

func scanExecutor(t *testing.T, meta *metadata.MetaData, prepareEngine PrepareEngine) *TableScanExecutor {
	t.Helper()
	fctx := &FederationContext{
		Statement: &sqlstmt.Select{Query: "SELECT order_id, status FROM t_order", Tables: []string{"t_order"}},
		MetaData:  meta,
	}
	scanCtx := ScanContext{
		DatabaseName:      "sharding_db",
		SchemaName:        "public",
		ProcessID:         "test-process",
		FederationContext: fctx,
	}
	return NewTableScanExecutor(prepareEngine, NewScatterDriver(), QueryCallback,
		optimizer.NewContext(meta, metadata.NewStatistics()), rule.DefaultConfiguration(), scanCtx, metadata.NewStatistics())
}

func TestTableScanMergesDataNodes(t *testing.T) {
	meta := scanMetaData(datanode.New("ds_0", "t_order_0"), datanode.New("ds_1", "t_order_1"))
	prepareEngine := NewMemoryPrepareEngine(map[string]*MemorySource{
		"ds_0": NewMemorySource().AddTable("t_order_0", sqltypes.MakeTestResult(
			sqltypes.MakeTestFields("order_id|status", "int64|varchar"),
			"1|ok",
			"3|ok",
		)),
		"ds_1": NewMemorySource().AddTable("t_order_1", sqltypes.MakeTestResult(
			sqltypes.MakeTestFields("order_id|status", "int64|varchar"),
			"2|failed",
		)),
	})
	exec := scanExecutor(t, meta, prepareEngine)

	it, err := exec.Scan(context.Background(), "t_order")
	require.NoError(t, err)
	rows, err := sqltypes.DrainIterator(it)
	require.NoError(t, err)
	// Node streams are concatenated in data-node order: every ds_0 row
	// before any ds_1 row.
	want := [][]sqltypes.Value{
		{sqltypes.NewInt64(1), sqltypes.NewVarChar("ok")},
		{sqltypes.NewInt64(3), sqltypes.NewVarChar("ok")},
		{sqltypes.NewInt64(2), sqltypes.NewVarChar("failed")},
	}
	require.Equal(t, want, rows)
	require.NoError(t, it.Close())
	require.Equal(t, 0, prepareEngine.OpenConnections())
}

func TestTableScanIsLazy(t *testing.T) {
	meta := scanMetaData(datanode.New("ds_0", "t_order_0"))
	prepareEngine := NewMemoryPrepareEngine(map[string]*MemorySource{
		"ds_0": NewMemorySource().AddTable("t_order_0", sqltypes.MakeTestResult(
			sqltypes.MakeTestFields("order_id|status", "int64|varchar"),
			"1|ok",
		)),
	})
	exec := scanExecutor(t, meta, prepareEngine)

	it, err := exec.Scan(context.Background(), "t_order")
	require.NoError(t, err)
	// Nothing touches the sources until the first Next.
	require.Equal(t, 0, prepareEngine.OpenConnections())
	_, err = it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Close())
	require.Equal(t, 0, prepareEngine.OpenConnections())
}

func TestTableScanMissingDataSource(t *testing.T) {
	meta := scanMetaData(datanode.New("ds_0", "t_order_0"), datanode.New("ds_missing", "t_order_1"))
	prepareEngine := NewMemoryPrepareEngine(map[string]*MemorySource{
		"ds_0": NewMemorySource().AddTable("t_order_0", &sqltypes.Result{}),
	})
	exec := scanExecutor(t, meta, prepareEngine)

	it, err := exec.Scan(context.Background(), "t_order")
	require.NoError(t, err)
	_, err = it.Next()
	require.Error(t, err)
	require.Equal(t, vterrors.Unavailable, vterrors.CodeOf(err))
	require.Contains(t, err.Error(), "federated scan failed")
	require.Contains(t, err.Error(), "database=sharding_db")
	require.Contains(t, err.Error(), "table=t_order")
	// A failed prepare closes whatever it already acquired.
	require.Equal(t, 0, prepareEngine.OpenConnections())
}

func TestTableScanNoDataNodes(t *testing.T) {
	meta := scanMetaData()
	exec := scanExecutor(t, meta, NewMemoryPrepareEngine(nil))

	it, err := exec.Scan(context.Background(), "t_order")
	require.NoError(t, err)
	_, err = it.Next()
	require.Equal(t, vterrors.Unavailable, vterrors.CodeOf(err))
	require.Contains(t, err.Error(), "no data nodes")
}

func TestTableScanWidthMismatch(t *testing.T) {
	meta := scanMetaData(datanode.New("ds_0", "t_order_0"))
	prepareEngine := NewMemoryPrepareEngine(map[string]*MemorySource{
		"ds_0": NewMemorySource().AddTable("t_order_0", sqltypes.MakeTestResult(
			sqltypes.MakeTestFields("order_id", "int64"),
			"1",
		)),
	})
	exec := scanExecutor(t, meta, prepareEngine)

	it, err := exec.Scan(context.Background(), "t_order")
	require.NoError(t, err)
	_, err = it.Next()
	require.Equal(t, vterrors.Internal, vterrors.CodeOf(err))
	require.Contains(t, err.Error(), "want 2")
	require.Equal(t, 0, prepareEngine.OpenConnections())
}

func TestTableScanCloseBeforeNext(t *testing.T) {
	meta := scanMetaData(datanode.New("ds_0", "t_order_0"))
	prepareEngine := NewMemoryPrepareEngine(map[string]*MemorySource{
		"ds_0": NewMemorySource().AddTable("t_order_0", &sqltypes.Result{}),
	})
	exec := scanExecutor(t, meta, prepareEngine)

	it, err := exec.Scan(context.Background(), "t_order")
	require.NoError(t, err)
	require.NoError(t, it.Close())
	require.Equal(t, 0, prepareEngine.OpenConnections())
	// Closed means closed: no late fetch.
	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
}
