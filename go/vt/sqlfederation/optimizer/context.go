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

// Package optimizer compiles select statements into immutable physical
// execution plans. Compilation runs validate, convert and optimize against
// the planner context of the target (database, schema) pair, and the
// compiler engine fronts it with the execution plan cache so equivalent
// statement shapes compile once.
package optimizer

import (
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer/physical"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/schema"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

// Planner is the rule-based and cost-based optimization step applied to a
// converted primitive tree.
type Planner interface {
	Optimize(sel *sqlstmt.Select, root physical.Primitive) (physical.Primitive, error)
}

// PlannerContext bundles the validator, converter and planner of one
// (database, schema) pair. It is shared by every query against that pair
// and holds no per-query state.
type PlannerContext struct {
	Validator physical.Validator
	Converter physical.Converter
	Planner   Planner
}

// Context owns the planner contexts and federation schema views of every
// known database. It is built once from the catalog and read-only
// afterwards.
type Context struct {
	statistics *metadata.Statistics
	planners   map[string]map[string]*PlannerContext
	views      map[string]map[string]*schema.FederationSchema
}

// NewContext derives planner contexts and schema views from the catalog.
func NewContext(meta *metadata.MetaData, statistics *metadata.Statistics) *Context {
	ctx := &Context{
		statistics: statistics,
		planners:   make(map[string]map[string]*PlannerContext),
		views:      make(map[string]map[string]*schema.FederationSchema),
	}
	for dbName, db := range meta.Databases() {
		ctx.planners[dbName] = make(map[string]*PlannerContext)
		ctx.views[dbName] = make(map[string]*schema.FederationSchema)
		for schemaName, sch := range db.Schemas() {
			ctx.planners[dbName][schemaName] = &PlannerContext{
				Validator: &schemaValidator{schema: sch},
				Converter: &schemaConverter{schema: sch},
				Planner:   &heuristicPlanner{statistics: statistics, database: dbName, schema: schemaName},
			}
			ctx.views[dbName][schemaName] = schema.NewFederationSchema(sch)
		}
	}
	return ctx
}

// PlannerContext returns the planner context of one (database, schema)
// pair.
func (c *Context) PlannerContext(database, schemaName string) (*PlannerContext, error) {
	if pctx, ok := c.planners[database][schemaName]; ok {
		return pctx, nil
	}
	return nil, vterrors.Errorf(vterrors.Unimplemented, "no planner context for %s.%s", database, schemaName)
}

// SchemaView returns the shared federation schema view of one (database,
// schema) pair.
func (c *Context) SchemaView(database, schemaName string) (*schema.FederationSchema, error) {
	if view, ok := c.views[database][schemaName]; ok {
		return view, nil
	}
	return nil, vterrors.Errorf(vterrors.Unimplemented, "no federation schema for %s.%s", database, schemaName)
}

// Statistics returns the statistics snapshot the planners consult.
func (c *Context) Statistics() *metadata.Statistics {
	return c.statistics
}
