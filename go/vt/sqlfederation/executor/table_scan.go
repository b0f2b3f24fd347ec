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

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/log"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer/physical"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/rule"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/schema"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

// TableScanExecutor serves the scan leaves of one query. It is request
// scoped: the engine builds a fresh one per executeQuery call and binds it
// to the statement's tables through the request's binding map.
type TableScanExecutor struct {
	prepareEngine PrepareEngine
	driver        Driver
	callback      Callback
	optimizerCtx  *optimizer.Context
	config        rule.Configuration
	scanCtx       ScanContext
	statistics    *metadata.Statistics
}

// NewTableScanExecutor builds a table-scan executor closing over the
// request's collaborators.
func NewTableScanExecutor(prepareEngine PrepareEngine, driver Driver, callback Callback,
	optimizerCtx *optimizer.Context, config rule.Configuration, scanCtx ScanContext, statistics *metadata.Statistics) *TableScanExecutor {
	return &TableScanExecutor{
		prepareEngine: prepareEngine,
		driver:        driver,
		callback:      callback,
		optimizerCtx:  optimizerCtx,
		config:        config,
		scanCtx:       scanCtx,
		statistics:    statistics,
	}
}

// Scan pulls the rows of one logical table from all of its physical
// locations. The returned iterator is lazy: no connection is acquired until
// the first Next call, so a query that fails before evaluation leaves
// nothing to release.
func (e *TableScanExecutor) Scan(ctx context.Context, table string) (sqltypes.RowIterator, error) {
	return &lazyScanIterator{exec: e, ctx: ctx, table: table}, nil
}

func (e *TableScanExecutor) fetch(ctx context.Context, table string) (sqltypes.RowIterator, error) {
	view, err := e.optimizerCtx.SchemaView(e.scanCtx.DatabaseName, e.scanCtx.SchemaName)
	if err != nil {
		return nil, err
	}
	viewTable, ok := view.Table(table)
	if !ok {
		return nil, vterrors.Errorf(vterrors.Internal, "table %s not found in federation schema %s", table, view.Name())
	}
	fedTable, ok := viewTable.(*schema.FederationTable)
	if !ok {
		return nil, vterrors.Errorf(vterrors.Internal, "table %s is a view and cannot serve federated scans", table)
	}
	nodes := fedTable.Meta().DataNodes
	if len(nodes) == 0 {
		return nil, vterrors.Errorf(vterrors.Unavailable, "table %s has no data nodes", table)
	}
	units := make([]ExecutionUnit, len(nodes))
	for i, node := range nodes {
		units[i] = ExecutionUnit{DataNode: node, SQL: e.scanCtx.FederationContext.Statement.SQL()}
	}
	if log.V(2) {
		log.Infof("process %s: scanning table %s across %d data nodes (federation enabled=%t)",
			e.scanCtx.ProcessID, table, len(units), e.config.SQLFederationEnabled)
	}
	prepared, err := e.prepareEngine.Prepare(ctx, units)
	if err != nil {
		return nil, e.scanError(err, table)
	}
	results, execErr := e.driver.Execute(ctx, prepared, e.callback)
	closeErr := closeConnections(prepared)
	if execErr != nil {
		return nil, e.scanError(execErr, table)
	}
	if closeErr != nil {
		return nil, e.scanError(closeErr, table)
	}
	width := len(fedTable.Meta().Columns)
	if e.statistics != nil {
		if log.V(2) {
			log.Infof("process %s: table %s statistics row count %d",
				e.scanCtx.ProcessID, table, e.statistics.RowCount(e.scanCtx.DatabaseName, e.scanCtx.SchemaName, table))
		}
	}
	fields := fedTable.Fields()
	sources := make([]physical.Primitive, 0, len(results))
	for i, result := range results {
		if result == nil {
			continue
		}
		for _, row := range result.Rows {
			if len(row) != width {
				return nil, vterrors.Errorf(vterrors.Internal,
					"source %s returned %d columns for table %s, want %d",
					prepared[i].Unit.DataNode.DataSourceName, len(row), table, width)
			}
		}
		sources = append(sources, &physical.Rows{Rows: result.Rows, RowFields: fields})
	}
	// Per-node results stay in their own buffers in unit order; the
	// concatenation streams them without a merged copy.
	merge := &physical.Concatenate{Sources: sources}
	return merge.Open(&physical.BindContext{Context: ctx})
}

func (e *TableScanExecutor) scanError(err error, table string) error {
	code := vterrors.CodeOf(err)
	if code == vterrors.Unknown {
		code = vterrors.Internal
	}
	return vterrors.WrapfCode(code, err, "federated scan failed: database=%s schema=%s table=%s statement=%q",
		e.scanCtx.DatabaseName, e.scanCtx.SchemaName, table, e.scanCtx.FederationContext.Statement.SQL())
}

func closeConnections(prepared []Prepared) error {
	var firstErr error
	for _, p := range prepared {
		if err := p.Conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type lazyScanIterator struct {
	exec  *TableScanExecutor
	ctx   context.Context
	table string
	inner sqltypes.RowIterator
	done  bool
}

func (it *lazyScanIterator) Next() ([]sqltypes.Value, error) {
	if it.done {
		return nil, io.EOF
	}
	if it.inner == nil {
		inner, err := it.exec.fetch(it.ctx, it.table)
		if err != nil {
			it.done = true
			return nil, err
		}
		it.inner = inner
	}
	return it.inner.Next()
}

func (it *lazyScanIterator) Close() error {
	it.done = true
	if it.inner == nil {
		return nil
	}
	inner := it.inner
	it.inner = nil
	return inner.Close()
}
