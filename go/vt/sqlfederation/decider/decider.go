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

// Package decider defines the decision-policy contract of the federation
// decider and the ordered registry that pairs every routing rule of a
// database with its policy. Policies are registered by rule kind with an
// explicit order, so registry iteration is deterministic and stable across
// calls.
package decider

import (
	"sort"
	"sync"

	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/datanode"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/rule"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/sqlstmt"
)

// Decider is the decision policy of one routing rule: it reports whether
// the rule requires federated execution for the given select. A policy may
// read the data nodes accumulated by earlier policies and add its own into
// the same set.
type Decider interface {
	Decide(sel *sqlstmt.Select, params []any, config *rule.Configuration,
		db *metadata.Database, r metadata.Rule, includedNodes datanode.Set) (bool, error)
}

// Entry pairs one routing rule instance with its decision policy.
type Entry struct {
	Rule    metadata.Rule
	Decider Decider
}

// Registry is the ordered rule-to-policy table of one database. It is
// assembled once when an engine is constructed and read-only afterwards.
type Registry struct {
	entries []Entry
}

// Entries returns the registry's entries in evaluation order.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

type provider struct {
	ruleKind string
	order    int
	factory  func() Decider
}

var (
	providersMu sync.Mutex
	providers   []provider
)

// RegisterProvider registers the decision-policy factory for one rule kind.
// The order value fixes the policy's position in every registry built
// afterwards; ties break on rule kind. Registration normally happens from
// package init functions of the rule implementations.
func RegisterProvider(ruleKind string, order int, factory func() Decider) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers = append(providers, provider{ruleKind: ruleKind, order: order, factory: factory})
}

// NewRegistry assembles the registry for one database: for every registered
// provider, in order, one entry per rule of that kind attached to the
// database.
func NewRegistry(db *metadata.Database) *Registry {
	providersMu.Lock()
	sorted := make([]provider, len(providers))
	copy(sorted, providers)
	providersMu.Unlock()
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].order != sorted[j].order {
			return sorted[i].order < sorted[j].order
		}
		return sorted[i].ruleKind < sorted[j].ruleKind
	})
	registry := &Registry{}
	for _, p := range sorted {
		for _, dbRule := range db.Rules() {
			if dbRule.Kind() == p.ruleKind {
				registry.entries = append(registry.entries, Entry{Rule: dbRule, Decider: p.factory()})
			}
		}
	}
	return registry
}

// NewRegistryFromEntries builds a registry with a fixed entry order,
// bypassing provider registration. Tests use it to stage policy chains.
func NewRegistryFromEntries(entries []Entry) *Registry {
	return &Registry{entries: entries}
}
