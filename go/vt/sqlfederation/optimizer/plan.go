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
	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer/physical"
)

// ExecutionPlan is the compiled, immutable result of optimization: the
// physical operator tree plus its declared output columns. Parameter values
// are not baked in; they arrive at bind time, so one plan serves many
// parameter bindings.
type ExecutionPlan struct {
	Physical physical.Primitive
	Columns  []*sqltypes.Field
}

// ResultColumnTypes returns the declared column types of the plan's output.
func (p *ExecutionPlan) ResultColumnTypes() []sqltypes.Type {
	types := make([]sqltypes.Type, len(p.Columns))
	for i, field := range p.Columns {
		types[i] = field.Type
	}
	return types
}
