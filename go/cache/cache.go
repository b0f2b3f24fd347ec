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

// Package cache provides the pluggable cache used for compiled execution
// plans. Eviction policy is chosen by configuration: a capacity-bound LRU,
// a TTL cache, or no caching at all.
package cache

import "time"

// Cache is a generic interface type for a data structure that keeps recently
// used objects in memory and evicts them per the configured policy.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, val any)
	Delete(key string)
	Clear()
	Len() int
}

// Options selects and sizes the cache backend.
type Options struct {
	// MaxEntries bounds the number of cached entries. When positive, the
	// LRU backend is used.
	MaxEntries int
	// TTL expires entries after a fixed duration. When positive and
	// MaxEntries is zero, the TTL backend is used.
	TTL time.Duration
}

// NewDefaultCacheImpl returns the cache implementation selected by opts.
// With neither a capacity nor a TTL configured, caching is disabled and a
// null cache is returned.
func NewDefaultCacheImpl(opts Options) Cache {
	switch {
	case opts.MaxEntries > 0:
		return newLRUCache(opts.MaxEntries)
	case opts.TTL > 0:
		return newTTLCache(opts.TTL)
	}
	return &nullCache{}
}
