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

// Package sqlstmt defines the statement contexts consumed by the federation
// engine. Parsing and validation happen upstream; these types are the
// already-bound representation the engine inspects. The engine only cares
// whether a statement is a select and, if so, which schemas and tables it
// references.
package sqlstmt

import "github.com/SankarshanMishra/shardingsphere/go/sqltypes"

// Statement is a parsed, validated statement context, polymorphic over
// statement kind.
type Statement interface {
	// SQL returns the statement text, with positional parameters as '?'.
	SQL() string
	// SchemaNames returns the schemas the statement references, if any.
	SchemaNames() []string
	// TableNames returns the tables the statement references, in
	// statement order.
	TableNames() []string
}

// CompareOp is the operator of a where condition.
type CompareOp int8

const (
	EqualOp CompareOp = iota
	NotEqualOp
	LessThanOp
	LessEqualOp
	GreaterThanOp
	GreaterEqualOp
)

var compareOpNames = map[CompareOp]string{
	EqualOp:        "=",
	NotEqualOp:     "!=",
	LessThanOp:     "<",
	LessEqualOp:    "<=",
	GreaterThanOp:  ">",
	GreaterEqualOp: ">=",
}

func (op CompareOp) String() string {
	return compareOpNames[op]
}

// Arg is one operand of a condition: either a positional parameter
// placeholder or an inline literal.
type Arg struct {
	// Placeholder is the zero-based parameter index, or -1 for a literal.
	Placeholder int
	Literal     sqltypes.Value
}

// NewPlaceholderArg references the i-th positional parameter.
func NewPlaceholderArg(i int) Arg {
	return Arg{Placeholder: i}
}

// NewLiteralArg embeds a literal value.
func NewLiteralArg(v sqltypes.Value) Arg {
	return Arg{Placeholder: -1, Literal: v}
}

// IsPlaceholder reports whether the arg references a positional parameter.
func (a Arg) IsPlaceholder() bool {
	return a.Placeholder >= 0
}

// Condition is a single comparison predicate of a where clause.
type Condition struct {
	Column string
	Op     CompareOp
	Arg    Arg
}

// OrderByItem is one column of an order-by clause.
type OrderByItem struct {
	Column string
	Desc   bool
}

// Limit is a row limit with an optional offset.
type Limit struct {
	Count  int
	Offset int
}

// Select is the select statement context.
type Select struct {
	// Query is the original statement text.
	Query string
	// Schemas are the schema names the statement references.
	Schemas []string
	// Tables are the table names in the statement's table list.
	Tables []string
	// Projection lists the selected columns. Empty means all columns.
	Projection []string
	// Where is the optional filter predicate.
	Where *Condition
	// OrderBy is the optional sort specification.
	OrderBy []OrderByItem
	// Limit is the optional row limit.
	Limit *Limit
}

var _ Statement = (*Select)(nil)

func (s *Select) SQL() string           { return s.Query }
func (s *Select) SchemaNames() []string { return s.Schemas }
func (s *Select) TableNames() []string  { return s.Tables }

// Update is a non-select statement context. The engine never compiles it;
// it exists so routing decisions can reject non-select kinds.
type Update struct {
	Query   string
	Schemas []string
	Tables  []string
}

var _ Statement = (*Update)(nil)

func (u *Update) SQL() string           { return u.Query }
func (u *Update) SchemaNames() []string { return u.Schemas }
func (u *Update) TableNames() []string  { return u.Tables }
