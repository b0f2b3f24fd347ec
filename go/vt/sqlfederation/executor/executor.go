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

// Package executor implements table-scan execution against the underlying
// physical data sources. The engine constructs one table-scan executor per
// query; the executor turns a table's data nodes into execution units,
// acquires source connections through the prepare engine, fans the units
// out through the driver and merges the per-unit results into one row
// stream. How a connection reaches a real source is the driver and prepare
// engine collaborators' business, never this package's.
package executor

import (
	"context"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/datanode"
)

// ExecutionUnit is one scan issued against one physical data source.
type ExecutionUnit struct {
	DataNode datanode.DataNode
	// SQL is the statement text pushed down to the source.
	SQL string
}

// Connection is an open connection to one underlying data source.
type Connection interface {
	// Query scans one physical table and returns its rows.
	Query(ctx context.Context, tableName string) (sqltypes.RowIterator, error)
	Close() error
}

// Prepared couples an execution unit with the connection serving it.
type Prepared struct {
	Unit ExecutionUnit
	Conn Connection
}

// PrepareEngine acquires source connections for a set of execution units.
type PrepareEngine interface {
	Prepare(ctx context.Context, units []ExecutionUnit) ([]Prepared, error)
}

// Callback materializes the result of one prepared unit. Callers supply it
// so they control how source rows are read and converted.
type Callback func(ctx context.Context, prepared Prepared) (*sqltypes.Result, error)

// Driver executes prepared units and collects their results, one result per
// unit, in unit order. Implementations may fan out concurrently.
type Driver interface {
	Execute(ctx context.Context, prepared []Prepared, callback Callback) ([]*sqltypes.Result, error)
}

// QueryCallback is the default callback: scan the unit's table on its
// connection and drain the rows.
func QueryCallback(ctx context.Context, prepared Prepared) (*sqltypes.Result, error) {
	it, err := prepared.Conn.Query(ctx, prepared.Unit.DataNode.TableName)
	if err != nil {
		return nil, err
	}
	rows, err := sqltypes.DrainIterator(it)
	if err != nil {
		return nil, err
	}
	return &sqltypes.Result{Rows: rows}, nil
}
