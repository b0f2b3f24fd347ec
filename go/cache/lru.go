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

package cache

import lru "github.com/hashicorp/golang-lru"

// lruCache is the capacity-bound backend.
type lruCache struct {
	impl *lru.Cache
}

func newLRUCache(maxEntries int) *lruCache {
	impl, err := lru.New(maxEntries)
	if err != nil {
		// lru.New only fails on a non-positive size, which the caller
		// has already checked.
		panic(err)
	}
	return &lruCache{impl: impl}
}

func (c *lruCache) Get(key string) (any, bool) {
	return c.impl.Get(key)
}

func (c *lruCache) Set(key string, val any) {
	c.impl.Add(key, val)
}

func (c *lruCache) Delete(key string) {
	c.impl.Remove(key)
}

func (c *lruCache) Clear() {
	c.impl.Purge()
}

func (c *lruCache) Len() int {
	return c.impl.Len()
}
