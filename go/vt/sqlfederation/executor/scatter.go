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

package executor

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
)

// ScatterDriver executes prepared units concurrently, one goroutine per
// unit, and returns their results in unit order. The first failing unit
// cancels the rest through the group context.
type ScatterDriver struct {
	// MaxConcurrency bounds the number of in-flight units. Zero means
	// unbounded.
	MaxConcurrency int
}

var _ Driver = (*ScatterDriver)(nil)

// NewScatterDriver builds a ScatterDriver with unbounded concurrency.
func NewScatterDriver() *ScatterDriver {
	return &ScatterDriver{}
}

// Execute implements Driver.
func (d *ScatterDriver) Execute(ctx context.Context, prepared []Prepared, callback Callback) ([]*sqltypes.Result, error) {
	results := make([]*sqltypes.Result, len(prepared))
	g, gctx := errgroup.WithContext(ctx)
	if d.MaxConcurrency > 0 {
		g.SetLimit(d.MaxConcurrency)
	}
	for i, p := range prepared {
		i, p := i, p
		g.Go(func() error {
			result, err := callback(gctx, p)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
