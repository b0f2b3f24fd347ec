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

package rule

import (
	"github.com/SankarshanMishra/shardingsphere/go/cache"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/metadata"
	"github.com/SankarshanMishra/shardingsphere/go/vt/sqlfederation/optimizer"
)

// SQLFederationRule is the global federation rule. It owns the optimizer
// context derived from the catalog and the execution plan cache; both are
// shared by every engine instance in the process.
type SQLFederationRule struct {
	config       Configuration
	optimizerCtx *optimizer.Context
	planCache    cache.Cache
}

// NewSQLFederationRule builds the rule from its configuration and the
// catalog.
func NewSQLFederationRule(config Configuration, meta *metadata.MetaData, statistics *metadata.Statistics) *SQLFederationRule {
	return &SQLFederationRule{
		config:       config,
		optimizerCtx: optimizer.NewContext(meta, statistics),
		planCache: cache.NewDefaultCacheImpl(cache.Options{
			MaxEntries: config.ExecutionPlanCache.MaxEntries,
			TTL:        config.ExecutionPlanCache.TTL,
		}),
	}
}

// Configuration returns the rule's configuration.
func (r *SQLFederationRule) Configuration() Configuration {
	return r.config
}

// OptimizerContext returns the shared optimizer context.
func (r *SQLFederationRule) OptimizerContext() *optimizer.Context {
	return r.optimizerCtx
}

// ExecutionPlanCache returns the shared compiled-plan cache.
func (r *SQLFederationRule) ExecutionPlanCache() cache.Cache {
	return r.planCache
}
