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

import "strings"

// MakeTestFields builds fields from a pipe-delimited list of names and
// types: MakeTestFields("a|b", "int64|varchar"). It panics on bad input
// and must only be used in tests.
func MakeTestFields(names, types string) []*Field {
	nameList := strings.Split(names, "|")
	typeList := strings.Split(types, "|")
	if len(nameList) != len(typeList) {
		panic("MakeTestFields: names and types must have the same length")
	}
	fields := make([]*Field, len(nameList))
	for i, name := range nameList {
		typ, err := ParseType(typeList[i])
		if err != nil {
			panic(err)
		}
		fields[i] = &Field{Name: name, Type: typ}
	}
	return fields
}

// MakeTestResult builds a result from fields and pipe-delimited rows:
// MakeTestResult(fields, "1|a", "2|b"). A "null" cell becomes NULL. It
// panics on bad input and must only be used in tests.
func MakeTestResult(fields []*Field, rows ...string) *Result {
	result := &Result{Fields: fields}
	for _, row := range rows {
		cells := strings.Split(row, "|")
		if len(cells) != len(fields) {
			panic("MakeTestResult: row width does not match fields")
		}
		values := make([]Value, len(cells))
		for i, cell := range cells {
			if cell == "null" {
				values[i] = NULL
				continue
			}
			values[i] = MakeValue(fields[i].Type, []byte(cell))
		}
		result.Rows = append(result.Rows, values)
	}
	return result
}
