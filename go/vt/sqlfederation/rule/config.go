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

// Package rule holds the SQL federation rule: its configuration and the
// process-wide resources the rule owns, the optimizer context and the
// execution plan cache.
package rule

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration is the global routing configuration of the federation rule.
type Configuration struct {
	// SQLFederationEnabled turns the federation path on. System schema
	// queries take the federation path regardless.
	SQLFederationEnabled bool
	// AllQueryUseSQLFederation forces every select through the federation
	// path without consulting the decision policies.
	AllQueryUseSQLFederation bool
	// ExecutionPlanCache sizes and expires the compiled-plan cache.
	ExecutionPlanCache CacheOptions
}

// CacheOptions configures the execution plan cache eviction policy.
type CacheOptions struct {
	MaxEntries int
	TTL        time.Duration
}

const (
	defaultPlanCacheMaxEntries = 2000
	defaultPlanCacheTTL        = 0
)

// DefaultConfiguration returns the configuration used when nothing is set:
// federation disabled, capacity-bound plan cache.
func DefaultConfiguration() Configuration {
	return Configuration{
		ExecutionPlanCache: CacheOptions{
			MaxEntries: defaultPlanCacheMaxEntries,
			TTL:        defaultPlanCacheTTL,
		},
	}
}

// RegisterFlags installs the federation configuration flags.
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := DefaultConfiguration()
	fs.Bool("sql-federation-enabled", defaults.SQLFederationEnabled, "enable federated execution of cross-source selects")
	fs.Bool("all-query-use-sql-federation", defaults.AllQueryUseSQLFederation, "route every select through the federation path")
	fs.Int("sql-federation-plan-cache-max-entries", defaults.ExecutionPlanCache.MaxEntries, "maximum number of cached execution plans; 0 disables the capacity bound")
	fs.Duration("sql-federation-plan-cache-ttl", defaults.ExecutionPlanCache.TTL, "expiry of cached execution plans; 0 disables expiry")
}

// LoadConfiguration reads the configuration from viper, falling back to the
// defaults for unset keys.
func LoadConfiguration(v *viper.Viper) Configuration {
	defaults := DefaultConfiguration()
	v.SetDefault("sql_federation.enabled", defaults.SQLFederationEnabled)
	v.SetDefault("sql_federation.all_query_use_sql_federation", defaults.AllQueryUseSQLFederation)
	v.SetDefault("sql_federation.plan_cache.max_entries", defaults.ExecutionPlanCache.MaxEntries)
	v.SetDefault("sql_federation.plan_cache.ttl", defaults.ExecutionPlanCache.TTL)
	return Configuration{
		SQLFederationEnabled:     v.GetBool("sql_federation.enabled"),
		AllQueryUseSQLFederation: v.GetBool("sql_federation.all_query_use_sql_federation"),
		ExecutionPlanCache: CacheOptions{
			MaxEntries: v.GetInt("sql_federation.plan_cache.max_entries"),
			TTL:        v.GetDuration("sql_federation.plan_cache.ttl"),
		},
	}
}
