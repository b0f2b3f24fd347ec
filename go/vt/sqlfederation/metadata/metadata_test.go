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

package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
)

func TestTableColumnIndex(t *testing.T) {
	table := &Table{
		Name: "t_order",
		Columns: []Column{
			{Name: "order_id", Type: sqltypes.Int64},
			{Name: "status", Type: sqltypes.VarChar},
		},
	}
	require.Equal(t, 0, table.ColumnIndex("order_id"))
	require.Equal(t, 1, table.ColumnIndex("status"))
	require.Equal(t, -1, table.ColumnIndex("missing"))

	fields := table.Fields()
	require.Len(t, fields, 2)
	require.Equal(t, "status", fields[1].Name)
	require.Equal(t, sqltypes.VarChar, fields[1].Type)
}

func TestAllSystemSchemas(t *testing.T) {
	userDB := NewDatabase("sharding_db", nil, nil)
	sysDB := NewDatabase("information_schema", nil, nil)

	testCases := []struct {
		name    string
		schemas []string
		db      *Database
		want    bool
	}{{
		name:    "all system",
		schemas: []string{"information_schema", "pg_catalog"},
		db:      userDB,
		want:    true,
	}, {
		name:    "mixed",
		schemas: []string{"information_schema", "public"},
		db:      userDB,
		want:    false,
	}, {
		name:    "empty falls back to user database name",
		schemas: nil,
		db:      userDB,
		want:    false,
	}, {
		name:    "empty falls back to system database name",
		schemas: nil,
		db:      sysDB,
		want:    true,
	}, {
		name:    "empty without database",
		schemas: nil,
		db:      nil,
		want:    false,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, AllSystemSchemas(tc.schemas, tc.db))
		})
	}
}

func TestStatistics(t *testing.T) {
	statistics := NewStatistics()
	require.Zero(t, statistics.RowCount("db", "public", "t_order"))

	statistics.SetRowCount("db", "public", "t_order", 42)
	require.EqualValues(t, 42, statistics.RowCount("db", "public", "t_order"))
	require.Zero(t, statistics.RowCount("db", "public", "t_other"))

	statistics.SetRowCount("db", "public", "t_order", 7)
	require.EqualValues(t, 7, statistics.RowCount("db", "public", "t_order"))
}

func TestMetaDataLookups(t *testing.T) {
	schema := NewSchema("public", &Table{Name: "t_order"})
	db := NewDatabase("sharding_db", []*Schema{schema}, nil)
	meta := NewMetaData([]*Database{db}, map[string]string{"sql-show": "true"})

	got, ok := meta.Database("sharding_db")
	require.True(t, ok)
	require.Same(t, db, got)
	_, ok = meta.Database("missing")
	require.False(t, ok)

	gotSchema, ok := db.Schema("public")
	require.True(t, ok)
	require.Same(t, schema, gotSchema)

	table, ok := schema.Table("t_order")
	require.True(t, ok)
	require.Equal(t, "t_order", table.Name)

	require.Equal(t, "true", meta.Props["sql-show"])
}
