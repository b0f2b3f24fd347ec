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

// Package metadata holds the catalog the federation engine works against:
// databases, schemas, tables with their physical data nodes, the routing
// rules attached to a database, and table statistics. The catalog is
// assembled by the surrounding system and treated as read-only here.
package metadata

import (
	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/datanode"
)

// TableType distinguishes base tables, which can serve federated scans,
// from plain views, which cannot.
type TableType int8

const (
	// BaseTable is a regular table backed by one or more data nodes.
	BaseTable TableType = iota
	// View is a derived table; scans are never bound to it.
	View
)

// Column is one column of a table.
type Column struct {
	Name string
	Type sqltypes.Type
}

// Table is one logical table. A sharded table carries one data node per
// physical location; a single-source table carries exactly one.
type Table struct {
	Name      string
	Type      TableType
	Columns   []Column
	DataNodes []datanode.DataNode
}

// Fields returns the table's columns as result fields, in column order.
func (t *Table) Fields() []*sqltypes.Field {
	fields := make([]*sqltypes.Field, len(t.Columns))
	for i, col := range t.Columns {
		fields[i] = &sqltypes.Field{Name: col.Name, Type: col.Type}
	}
	return fields
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// Schema is one schema of a database.
type Schema struct {
	Name   string
	tables map[string]*Table
}

// NewSchema builds a schema from its tables.
func NewSchema(name string, tables ...*Table) *Schema {
	schema := &Schema{Name: name, tables: make(map[string]*Table, len(tables))}
	for _, table := range tables {
		schema.tables[table.Name] = table
	}
	return schema
}

// Table returns the named table.
func (s *Schema) Table(name string) (*Table, bool) {
	table, ok := s.tables[name]
	return table, ok
}

// Tables returns the schema's tables keyed by name.
func (s *Schema) Tables() map[string]*Table {
	return s.tables
}

// Rule is an opaque routing rule attached to a database. The engine only
// knows a rule by its kind; the rule's semantics live in its decision
// policy.
type Rule interface {
	Kind() string
}

// Database is one logical database composed of underlying sources.
type Database struct {
	Name    string
	schemas map[string]*Schema
	rules   []Rule
}

// NewDatabase builds a database from its schemas and routing rules.
func NewDatabase(name string, schemas []*Schema, rules []Rule) *Database {
	db := &Database{Name: name, schemas: make(map[string]*Schema, len(schemas)), rules: rules}
	for _, schema := range schemas {
		db.schemas[schema.Name] = schema
	}
	return db
}

// Schema returns the named schema.
func (d *Database) Schema(name string) (*Schema, bool) {
	schema, ok := d.schemas[name]
	return schema, ok
}

// Schemas returns the database's schemas keyed by name.
func (d *Database) Schemas() map[string]*Schema {
	return d.schemas
}

// Rules returns the routing rules attached to the database, in the order
// they were assembled.
func (d *Database) Rules() []Rule {
	return d.rules
}

// MetaData is the top-level catalog handed to the engine.
type MetaData struct {
	databases map[string]*Database
	// Props are global configuration properties threaded through to the
	// request-scoped executor contexts.
	Props map[string]string
}

// NewMetaData builds the catalog from its databases.
func NewMetaData(databases []*Database, props map[string]string) *MetaData {
	meta := &MetaData{databases: make(map[string]*Database, len(databases)), Props: props}
	for _, db := range databases {
		meta.databases[db.Name] = db
	}
	return meta
}

// Database returns the named database.
func (m *MetaData) Database(name string) (*Database, bool) {
	db, ok := m.databases[name]
	return db, ok
}

// Databases returns all databases keyed by name.
func (m *MetaData) Databases() map[string]*Database {
	return m.databases
}
