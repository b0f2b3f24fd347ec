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

// TableStatistics is the cardinality snapshot for one table.
type TableStatistics struct {
	RowCount int64
}

// Statistics is the statistics snapshot handed to the planner and to the
// table-scan executors. It is read-only during query execution; the
// surrounding system refreshes it out of band.
type Statistics struct {
	tables map[string]TableStatistics
}

// NewStatistics builds an empty statistics snapshot.
func NewStatistics() *Statistics {
	return &Statistics{tables: make(map[string]TableStatistics)}
}

func statisticsKey(database, schema, table string) string {
	return database + "." + schema + "." + table
}

// SetRowCount records the row count for one table.
func (s *Statistics) SetRowCount(database, schema, table string, rowCount int64) {
	s.tables[statisticsKey(database, schema, table)] = TableStatistics{RowCount: rowCount}
}

// RowCount returns the recorded row count for one table, or zero when no
// statistics were collected for it.
func (s *Statistics) RowCount(database, schema, table string) int64 {
	return s.tables[statisticsKey(database, schema, table)].RowCount
}
