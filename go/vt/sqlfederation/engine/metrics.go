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

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decideResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sql_federation_decide_total",
		Help: "Routing decisions by outcome.",
	}, []string{"outcome"})
	queriesExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sql_federation_queries_total",
		Help: "Federated queries executed.",
	})
	executeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sql_federation_execute_errors_total",
		Help: "Federated query executions that failed before returning a result set.",
	})
)
