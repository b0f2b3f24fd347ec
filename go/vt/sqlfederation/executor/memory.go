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
	"sync"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

// MemorySource is an in-process data source keyed by physical table name.
// It backs the reference prepare engine used in tests and local setups.
type MemorySource struct {
	mu     sync.Mutex
	tables map[string]*sqltypes.Result
}

// NewMemorySource builds an empty source.
func NewMemorySource() *MemorySource {
	return &MemorySource{tables: make(map[string]*sqltypes.Result)}
}

// AddTable loads one physical table into the source.
func (s *MemorySource) AddTable(name string, result *sqltypes.Result) *MemorySource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[name] = result
	return s
}

func (s *MemorySource) query(tableName string) (sqltypes.RowIterator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.tables[tableName]
	if !ok {
		return nil, vterrors.Errorf(vterrors.Unavailable, "physical table %s does not exist", tableName)
	}
	return sqltypes.RowsToIterator(result.Rows), nil
}

// MemoryPrepareEngine hands out connections to in-process sources keyed by
// data source name.
type MemoryPrepareEngine struct {
	sources map[string]*MemorySource

	mu     sync.Mutex
	opened int
	closed int
}

var _ PrepareEngine = (*MemoryPrepareEngine)(nil)

// NewMemoryPrepareEngine builds a prepare engine over the given sources.
func NewMemoryPrepareEngine(sources map[string]*MemorySource) *MemoryPrepareEngine {
	return &MemoryPrepareEngine{sources: sources}
}

// Prepare implements PrepareEngine. Connections already acquired are closed
// again when a later unit cannot be resolved, so a failed prepare never
// leaks.
func (e *MemoryPrepareEngine) Prepare(_ context.Context, units []ExecutionUnit) ([]Prepared, error) {
	prepared := make([]Prepared, 0, len(units))
	for _, unit := range units {
		source, ok := e.sources[unit.DataNode.DataSourceName]
		if !ok {
			_ = closeConnections(prepared)
			return nil, vterrors.Errorf(vterrors.Unavailable, "data source %s does not exist", unit.DataNode.DataSourceName)
		}
		e.mu.Lock()
		e.opened++
		e.mu.Unlock()
		prepared = append(prepared, Prepared{Unit: unit, Conn: &memoryConnection{engine: e, source: source}})
	}
	return prepared, nil
}

// OpenConnections returns the number of connections currently open, for
// leak assertions in tests.
func (e *MemoryPrepareEngine) OpenConnections() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opened - e.closed
}

type memoryConnection struct {
	engine *MemoryPrepareEngine
	source *MemorySource

	mu     sync.Mutex
	closed bool
}

var _ Connection = (*memoryConnection)(nil)

func (c *memoryConnection) Query(_ context.Context, tableName string) (sqltypes.RowIterator, error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, vterrors.New(vterrors.Unavailable, "connection is closed")
	}
	return c.source.query(tableName)
}

func (c *memoryConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.engine.mu.Lock()
	c.engine.closed++
	c.engine.mu.Unlock()
	return nil
}
