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
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	config := DefaultConfiguration()
	require.False(t, config.SQLFederationEnabled)
	require.False(t, config.AllQueryUseSQLFederation)
	require.Equal(t, 2000, config.ExecutionPlanCache.MaxEntries)
	require.Equal(t, time.Duration(0), config.ExecutionPlanCache.TTL)
}

func TestLoadConfigurationDefaults(t *testing.T) {
	config := LoadConfiguration(viper.New())
	require.Equal(t, DefaultConfiguration(), config)
}

func TestLoadConfiguration(t *testing.T) {
	v := viper.New()
	v.Set("sql_federation.enabled", true)
	v.Set("sql_federation.all_query_use_sql_federation", true)
	v.Set("sql_federation.plan_cache.max_entries", 128)
	v.Set("sql_federation.plan_cache.ttl", "5m")

	config := LoadConfiguration(v)
	require.True(t, config.SQLFederationEnabled)
	require.True(t, config.AllQueryUseSQLFederation)
	require.Equal(t, 128, config.ExecutionPlanCache.MaxEntries)
	require.Equal(t, 5*time.Minute, config.ExecutionPlanCache.TTL)
}

func TestRegisterFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--sql-federation-enabled",
		"--sql-federation-plan-cache-max-entries=64",
	}))
	enabled, err := fs.GetBool("sql-federation-enabled")
	require.NoError(t, err)
	require.True(t, enabled)
	maxEntries, err := fs.GetInt("sql-federation-plan-cache-max-entries")
	require.NoError(t, err)
	require.Equal(t, 64, maxEntries)
}
