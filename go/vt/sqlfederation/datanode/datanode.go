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

// Package datanode defines the (data source, table) location identifier used
// while reasoning about routing, and the set that accumulates them across
// decision policies within one decision pass.
package datanode

import "sort"

// DataNode identifies one physical table location. It is an immutable value;
// two nodes are equal when both fields are equal.
type DataNode struct {
	DataSourceName string
	TableName      string
}

// New builds a DataNode.
func New(dataSourceName, tableName string) DataNode {
	return DataNode{DataSourceName: dataSourceName, TableName: tableName}
}

func (n DataNode) String() string {
	return n.DataSourceName + "." + n.TableName
}

// Set accumulates data nodes. A decision policy may read nodes added by
// earlier policies and add its own, which is how one policy's decision can
// build on another's partial conclusions.
type Set map[DataNode]struct{}

// NewSet builds a Set holding the given nodes.
func NewSet(nodes ...DataNode) Set {
	set := make(Set, len(nodes))
	set.AddAll(nodes)
	return set
}

// Add inserts one node into the set.
func (s Set) Add(node DataNode) {
	s[node] = struct{}{}
}

// AddAll inserts all given nodes into the set.
func (s Set) AddAll(nodes []DataNode) {
	for _, node := range nodes {
		s.Add(node)
	}
}

// Contains reports whether the set holds node.
func (s Set) Contains(node DataNode) bool {
	_, ok := s[node]
	return ok
}

// Len returns the number of accumulated nodes.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the accumulated nodes in a deterministic order.
func (s Set) Sorted() []DataNode {
	nodes := make([]DataNode, 0, len(s))
	for node := range s {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].DataSourceName != nodes[j].DataSourceName {
			return nodes[i].DataSourceName < nodes[j].DataSourceName
		}
		return nodes[i].TableName < nodes[j].TableName
	})
	return nodes
}
