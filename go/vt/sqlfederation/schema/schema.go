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

// Package schema implements the federation schema view: the optimizer-facing
// picture of one schema, distinguishing federation-capable tables from plain
// views. One view instance is shared by every query against the same
// (database, schema) pair, so it is read-only after construction; per-query
// executor bindings live in the request-scoped binding map instead of on
// these objects.
package schema

import (
	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
)

// Table is one table of the federation schema view.
type Table interface {
	Name() string
}

// FederationTable is a federation-capable table: scans against it can be
// bound to a table-scan executor.
type FederationTable struct {
	meta *metadata.Table
}

var _ Table = (*FederationTable)(nil)

// Name implements Table.
func (t *FederationTable) Name() string {
	return t.meta.Name
}

// Meta returns the underlying catalog table.
func (t *FederationTable) Meta() *metadata.Table {
	return t.meta
}

// Fields returns the table's result fields.
func (t *FederationTable) Fields() []*sqltypes.Field {
	return t.meta.Fields()
}

// ViewTable is a plain view. It participates in the schema but scans are
// never bound to it.
type ViewTable struct {
	name string
}

var _ Table = (*ViewTable)(nil)

// Name implements Table.
func (t *ViewTable) Name() string {
	return t.name
}

// FederationSchema is the schema view object shared across queries against
// the same database.
type FederationSchema struct {
	name   string
	tables map[string]Table
}

// NewFederationSchema derives the view from a catalog schema.
func NewFederationSchema(meta *metadata.Schema) *FederationSchema {
	schema := &FederationSchema{name: meta.Name, tables: make(map[string]Table)}
	for name, table := range meta.Tables() {
		if table.Type == metadata.View {
			schema.tables[name] = &ViewTable{name: name}
			continue
		}
		schema.tables[name] = &FederationTable{meta: table}
	}
	return schema
}

// Name returns the schema name.
func (s *FederationSchema) Name() string {
	return s.name
}

// Table returns the named table of the view.
func (s *FederationSchema) Table(name string) (Table, bool) {
	table, ok := s.tables[name]
	return table, ok
}
