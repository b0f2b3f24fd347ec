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

package optimizer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	planCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sql_federation_plan_cache_hits_total",
		Help: "Execution plan cache hits.",
	})
	planCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sql_federation_plan_cache_misses_total",
		Help: "Execution plan cache misses.",
	})
)
