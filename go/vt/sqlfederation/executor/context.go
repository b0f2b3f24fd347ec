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

package executor

import (
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
)

// FederationContext carries the per-query inputs of one federated
// execution: the statement context, its positional parameters and the
// catalog snapshot they run against.
type FederationContext struct {
	Statement  sqlstmt.Statement
	Parameters []any
	MetaData   *metadata.MetaData
}

// Select returns the statement as a select context, if it is one.
func (c *FederationContext) Select() (*sqlstmt.Select, bool) {
	sel, ok := c.Statement.(*sqlstmt.Select)
	return sel, ok
}

// ScanContext is the request-scoped context a table-scan executor closes
// over: where the scan runs, the global configuration properties and the
// query's process identity.
type ScanContext struct {
	DatabaseName string
	SchemaName   string
	// ProcessID identifies the query across log lines and source scans.
	ProcessID string
	Props     map[string]string

	FederationContext *FederationContext
}
