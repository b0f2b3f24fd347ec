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

// Package physical implements the operator tree of a compiled execution
// plan. The tree is immutable once built; per-query state lives in the
// BindContext each Open call receives, so one plan can be bound to many
// parameter sets concurrently.
package physical

import (
	"context"
	"strconv"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
)

// Primitive is one node of the physical execution plan. Open binds the node
// to a request-scoped context and returns a lazy, forward-only row stream.
type Primitive interface {
	Open(bctx *BindContext) (sqltypes.RowIterator, error)
	// Fields describes the columns the node produces, fixed at compile
	// time.
	Fields() []*sqltypes.Field
}

// ScanSource pulls rows for one table from its real underlying source or
// sources. Table-scan executors implement it.
type ScanSource interface {
	Scan(ctx context.Context, table string) (sqltypes.RowIterator, error)
}

// Bindings is the request-scoped table binding map: it carries, per query,
// which scan source serves each table. Threading it through the bind
// context instead of storing executors on the shared schema view keeps
// concurrent queries from racing on each other's bindings.
type Bindings struct {
	sources map[string]ScanSource
}

// NewBindings builds an empty binding map.
func NewBindings() *Bindings {
	return &Bindings{sources: make(map[string]ScanSource)}
}

// Bind attaches a scan source to a table. A second Bind for the same table
// within the same request overwrites the first.
func (b *Bindings) Bind(table string, source ScanSource) {
	b.sources[table] = source
}

// Source returns the scan source bound to a table.
func (b *Bindings) Source(table string) (ScanSource, bool) {
	source, ok := b.sources[table]
	return source, ok
}

// Len returns the number of bound tables.
func (b *Bindings) Len() int {
	return len(b.sources)
}

// Validator checks a select statement against the target schema.
type Validator interface {
	Validate(sel *sqlstmt.Select) error
}

// Converter turns a validated select statement into a primitive tree.
type Converter interface {
	Convert(sel *sqlstmt.Select) (Primitive, error)
}

// BindContext is the per-request evaluation context a plan is bound to: the
// validator and converter of the target schema, the named parameter map and
// the table bindings. It is built once per executeQuery call and never
// shared across queries.
type BindContext struct {
	Context    context.Context
	Validator  Validator
	Converter  Converter
	Parameters map[string]any
	Bindings   *Bindings
}

// parameterPrefix is the placeholder prefix of named parameters.
const parameterPrefix = "?"

// ParameterName returns the named-parameter key of the i-th positional
// parameter: "?0", "?1", ...
func ParameterName(i int) string {
	return parameterPrefix + strconv.Itoa(i)
}

// BindParameters converts a positional parameter list into the named
// parameter map, preserving input order with zero-based keys: one entry per
// input parameter, no more, no fewer.
func BindParameters(params []any) map[string]any {
	named := make(map[string]any, len(params))
	for i, param := range params {
		named[ParameterName(i)] = param
	}
	return named
}

// Parameter returns the i-th positional parameter from the named map.
func (bctx *BindContext) Parameter(i int) (any, bool) {
	v, ok := bctx.Parameters[ParameterName(i)]
	return v, ok
}
