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

package sqltypes

// Field describes one output column of a result.
type Field struct {
	Name string
	Type Type
}

// Result is a materialized query result: the fields describing its columns
// and the rows produced by one source.
type Result struct {
	Fields []*Field
	Rows   [][]Value
}
