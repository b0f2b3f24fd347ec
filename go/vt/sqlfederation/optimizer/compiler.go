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
	"github.com/SankarshanMishra/shardingsphere/go/cache"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

// Compiler runs the validate, convert, optimize pipeline of one planner
// context.
type Compiler struct {
	pctx *PlannerContext
}

// NewCompiler builds a compiler over a planner context.
func NewCompiler(pctx *PlannerContext) *Compiler {
	return &Compiler{pctx: pctx}
}

// Compile compiles one select statement into an execution plan.
func (c *Compiler) Compile(sel *sqlstmt.Select) (*ExecutionPlan, error) {
	if err := c.pctx.Validator.Validate(sel); err != nil {
		return nil, vterrors.Wrapf(err, "validate %q", sel.SQL())
	}
	root, err := c.pctx.Converter.Convert(sel)
	if err != nil {
		return nil, vterrors.Wrapf(err, "convert %q", sel.SQL())
	}
	root, err = c.pctx.Planner.Optimize(sel, root)
	if err != nil {
		return nil, vterrors.Wrapf(err, "optimize %q", sel.SQL())
	}
	return &ExecutionPlan{Physical: root, Columns: root.Fields()}, nil
}

// CompilerEngine fronts a compiler with the execution plan cache. Plans are
// cached by statement shape; a failed compilation never populates the
// cache.
type CompilerEngine struct {
	compiler *Compiler
	cache    cache.Cache
}

// NewCompilerEngine builds a compiler engine over the given plan cache.
func NewCompilerEngine(compiler *Compiler, planCache cache.Cache) *CompilerEngine {
	return &CompilerEngine{compiler: compiler, cache: planCache}
}

// Compile returns the cached plan for the statement's shape, compiling and
// caching it on a miss. With useCache false the cache is bypassed in both
// directions.
func (e *CompilerEngine) Compile(sel *sqlstmt.Select, useCache bool) (*ExecutionPlan, error) {
	key := sel.ShapeKey()
	if useCache {
		if cached, ok := e.cache.Get(key); ok {
			planCacheHits.Inc()
			return cached.(*ExecutionPlan), nil
		}
		planCacheMisses.Inc()
	}
	plan, err := e.compiler.Compile(sel)
	if err != nil {
		return nil, err
	}
	if useCache {
		e.cache.Set(key, plan)
	}
	return plan, nil
}
