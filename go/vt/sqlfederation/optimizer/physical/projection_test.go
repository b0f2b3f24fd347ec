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

package physical

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
)

func TestSimpleProjection(t *testing.T) {
	input := &fakePrimitive{result: r(
		"order_id|user_id|status", "int64|int64|varchar",
		"1|10|ok",
		"2|20|failed",
	)}
	proj := &SimpleProjection{
		Cols:       []int{2, 0},
		ProjFields: sqltypes.MakeTestFields("status|order_id", "varchar|int64"),
		Input:      input,
	}

	it, err := proj.Open(&BindContext{})
	require.NoError(t, err)
	rows, err := sqltypes.DrainIterator(it)
	require.NoError(t, err)

	want := r("status|order_id", "varchar|int64",
		"ok|1",
		"failed|2",
	).Rows
	require.Equal(t, want, rows)
	require.Equal(t, 1, input.closes)

	fields := proj.Fields()
	require.Equal(t, "status", fields[0].Name)
	require.Equal(t, sqltypes.VarChar, fields[0].Type)
}
