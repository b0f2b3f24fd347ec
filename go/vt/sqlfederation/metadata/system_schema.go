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

// systemSchemas are the system and virtual schemas that are always served
// through the federation path.
var systemSchemas = map[string]struct{}{
	"information_schema": {},
	"performance_schema": {},
	"mysql":              {},
	"sys":                {},
	"pg_catalog":         {},
	"shardingsphere":     {},
}

// IsSystemSchema reports whether name is a system or virtual schema.
func IsSystemSchema(name string) bool {
	_, ok := systemSchemas[name]
	return ok
}

// AllSystemSchemas reports whether every referenced schema is a system
// schema. When a statement references no schema explicitly, the database
// name stands in for the implicit schema.
func AllSystemSchemas(schemaNames []string, db *Database) bool {
	if len(schemaNames) == 0 {
		return db != nil && IsSystemSchema(db.Name)
	}
	for _, name := range schemaNames {
		if !IsSystemSchema(name) {
			return false
		}
	}
	return true
}
