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

// Package engine implements the SQL federation engine: per query it decides
// whether federated execution is required, and when it is, compiles the
// statement into a physical plan, binds the plan's table scans to
// request-scoped executors and streams the merged rows back as a federation
// result set.
package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/SankarshanMishra/shardingsphere/go/vt/log"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/datanode"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/decider"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/executor"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer/physical"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/resultset"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/rule"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/schema"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

// SQLFederationEngine serves one logical query-execution session. It is not
// safe for concurrent use: decide, execute and close are made by the one
// query-processing thread that owns the instance.
type SQLFederationEngine struct {
	deciders     *decider.Registry
	databaseName string
	schemaName   string
	metaData     *metadata.MetaData
	statistics   *metadata.Statistics
	driver       executor.Driver
	rule         *rule.SQLFederationRule

	// result is the at-most-one live federation result of this engine.
	result *resultset.FederationResultSet
}

// NewSQLFederationEngine builds an engine for one (database, schema) pair.
// The decider registry is assembled here, once, from the database's routing
// rules.
func NewSQLFederationEngine(databaseName, schemaName string, metaData *metadata.MetaData,
	statistics *metadata.Statistics, driver executor.Driver, federationRule *rule.SQLFederationRule) (*SQLFederationEngine, error) {
	db, ok := metaData.Database(databaseName)
	if !ok {
		return nil, vterrors.Errorf(vterrors.InvalidArgument, "database %s not found", databaseName)
	}
	return &SQLFederationEngine{
		deciders:     decider.NewRegistry(db),
		databaseName: databaseName,
		schemaName:   schemaName,
		metaData:     metaData,
		statistics:   statistics,
		driver:       driver,
		rule:         federationRule,
	}, nil
}

// Decide reports whether the statement needs federated execution.
//
// Selects touching only system schemas always federate, even with
// federation disabled. Otherwise a disabled flag or a non-select decides
// false immediately. The remaining work walks the decider registry in
// order over a shared data node set; the first policy to answer true ends
// the walk and later policies are never consulted.
func (e *SQLFederationEngine) Decide(stmt sqlstmt.Statement, params []any,
	db *metadata.Database, config *rule.Configuration) (bool, error) {
	sel, isSelect := stmt.(*sqlstmt.Select)
	if isSelect && metadata.AllSystemSchemas(sel.SchemaNames(), db) {
		decideResults.WithLabelValues("federated").Inc()
		return true, nil
	}
	if !config.SQLFederationEnabled || !isSelect {
		decideResults.WithLabelValues("single").Inc()
		return false, nil
	}
	if config.AllQueryUseSQLFederation {
		decideResults.WithLabelValues("federated").Inc()
		return true, nil
	}
	includedNodes := datanode.NewSet()
	for _, entry := range e.deciders.Entries() {
		useFederation, err := entry.Decider.Decide(sel, params, config, db, entry.Rule, includedNodes)
		if err != nil {
			decideResults.WithLabelValues("error").Inc()
			return false, err
		}
		if useFederation {
			decideResults.WithLabelValues("federated").Inc()
			return true, nil
		}
	}
	decideResults.WithLabelValues("single").Inc()
	return false, nil
}

// ExecuteQuery compiles, binds and executes one federated select and
// returns its result set. The engine keeps the returned result as its live
// result until Close or until the next ExecuteQuery call replaces it.
func (e *SQLFederationEngine) ExecuteQuery(ctx context.Context, prepareEngine executor.PrepareEngine,
	callback executor.Callback, federationContext *executor.FederationContext) (*resultset.FederationResultSet, error) {
	sel, ok := federationContext.Select()
	if !ok {
		executeErrors.Inc()
		return nil, vterrors.New(vterrors.FailedPrecondition, "statement context must be a select statement context")
	}
	octx := e.rule.OptimizerContext()
	federationSchema, err := octx.SchemaView(e.databaseName, e.schemaName)
	if err != nil {
		executeErrors.Inc()
		return nil, err
	}
	bindings := e.bindTableScans(federationSchema, sel, prepareEngine, callback, federationContext)
	pctx, err := octx.PlannerContext(e.databaseName, e.schemaName)
	if err != nil {
		executeErrors.Inc()
		return nil, err
	}
	compilerEngine := optimizer.NewCompilerEngine(optimizer.NewCompiler(pctx), e.rule.ExecutionPlanCache())
	plan, err := compilerEngine.Compile(sel, true)
	if err != nil {
		executeErrors.Inc()
		return nil, err
	}
	bctx := &physical.BindContext{
		Context:    ctx,
		Validator:  pctx.Validator,
		Converter:  pctx.Converter,
		Parameters: physical.BindParameters(federationContext.Parameters),
		Bindings:   bindings,
	}
	iter, err := plan.Physical.Open(bctx)
	if err != nil {
		executeErrors.Inc()
		return nil, err
	}
	schemaMeta := e.schemaMetaData()
	if e.result != nil {
		// The previous result is replaced without being closed; its
		// resources stay with whoever still holds the reference.
		log.Warningf("replacing an unclosed federation result for database %s", e.databaseName)
	}
	e.result = resultset.New(iter, schemaMeta, federationSchema, sel, plan.Columns)
	queriesExecuted.Inc()
	return e.result, nil
}

// bindTableScans builds the request-scoped binding map: one fresh
// table-scan executor, shared by all of the statement's federation-capable
// tables. Plain views are skipped. Bindings never touch the shared schema
// view, so concurrent queries cannot observe each other's executors.
func (e *SQLFederationEngine) bindTableScans(federationSchema *schema.FederationSchema, sel *sqlstmt.Select,
	prepareEngine executor.PrepareEngine, callback executor.Callback, federationContext *executor.FederationContext) *physical.Bindings {
	scanCtx := executor.ScanContext{
		DatabaseName:      e.databaseName,
		SchemaName:        e.schemaName,
		ProcessID:         uuid.NewString(),
		Props:             e.metaData.Props,
		FederationContext: federationContext,
	}
	scanExecutor := executor.NewTableScanExecutor(prepareEngine, e.driver, callback,
		e.rule.OptimizerContext(), e.rule.Configuration(), scanCtx, e.statistics)
	bindings := physical.NewBindings()
	for _, tableName := range sel.TableNames() {
		table, ok := federationSchema.Table(tableName)
		if !ok {
			continue
		}
		if _, ok := table.(*schema.FederationTable); ok {
			bindings.Bind(tableName, scanExecutor)
		}
	}
	return bindings
}

func (e *SQLFederationEngine) schemaMetaData() *metadata.Schema {
	db, ok := e.metaData.Database(e.databaseName)
	if !ok {
		return nil
	}
	schemaMeta, _ := db.Schema(e.schemaName)
	return schemaMeta
}

// Result returns the engine's live result set, if any.
func (e *SQLFederationEngine) Result() *resultset.FederationResultSet {
	return e.result
}

// Close releases the live result's resources. The engine is idle
// afterwards even when the release fails, so a new query can always start.
// Close without a live result is a no-op.
func (e *SQLFederationEngine) Close() error {
	if e.result == nil {
		return nil
	}
	result := e.result
	e.result = nil
	if err := result.Close(); err != nil {
		return vterrors.Wrap(err, "close federation result")
	}
	return nil
}
