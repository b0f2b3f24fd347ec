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
)

// heuristicPlanner is the rule-based and cost-based optimization step. The
// rule pass pushes a downstream limit into the in-memory sort as an upper
// bound, so the sort never retains more rows than the query can return; the
// cost side of the pass skips the push when statistics show the scan is
// already within the bound.
type heuristicPlanner struct {
	statistics *metadata.Statistics
	database   string
	schema     string
}

var _ Planner = (*heuristicPlanner)(nil)

func (p *heuristicPlanner) Optimize(sel *sqlstmt.Select, root physical.Primitive) (physical.Primitive, error) {
	p.pushUpperLimit(sel, root)
	return root, nil
}

func (p *heuristicPlanner) pushUpperLimit(sel *sqlstmt.Select, root physical.Primitive) {
	limit, ok := root.(*physical.Limit)
	if !ok {
		return
	}
	input := limit.Input
	if proj, ok := input.(*physical.SimpleProjection); ok {
		input = proj.Input
	}
	sort, ok := input.(*physical.MemorySort)
	if !ok {
		return
	}
	bound := limit.Count + limit.Offset
	if len(sel.Tables) == 1 && p.statistics != nil {
		rowCount := p.statistics.RowCount(p.database, p.schema, sel.Tables[0])
		if rowCount > 0 && rowCount <= int64(bound) {
			// The whole input fits under the bound already.
			return
		}
	}
	sort.UpperLimit = bound
}
