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

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
)

func TestNewFederationSchema(t *testing.T) {
	orders := &metadata.Table{
		Name: "t_order",
		Columns: []metadata.Column{
			{Name: "order_id", Type: sqltypes.Int64},
			{Name: "status", Type: sqltypes.VarChar},
		},
	}
	orderView := &metadata.Table{
		Name: "v_order",
		Type: metadata.View,
	}
	view := NewFederationSchema(metadata.NewSchema("public", orders, orderView))
	require.Equal(t, "public", view.Name())

	table, ok := view.Table("t_order")
	require.True(t, ok)
	fedTable, ok := table.(*FederationTable)
	require.True(t, ok, "base tables are federation capable")
	require.Equal(t, "t_order", fedTable.Name())
	require.Same(t, orders, fedTable.Meta())
	fields := fedTable.Fields()
	require.Len(t, fields, 2)
	require.Equal(t, "order_id", fields[0].Name)

	table, ok = view.Table("v_order")
	require.True(t, ok)
	_, ok = table.(*ViewTable)
	require.True(t, ok, "views stay plain")
	require.Equal(t, "v_order", table.Name())

	_, ok = view.Table("t_missing")
	require.False(t, ok)
}
