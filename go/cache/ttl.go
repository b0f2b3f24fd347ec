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

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ttlCache is the expiration-based backend.
type ttlCache struct {
	impl *gocache.Cache
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{impl: gocache.New(ttl, ttl)}
}

func (c *ttlCache) Get(key string) (any, bool) {
	return c.impl.Get(key)
}

func (c *ttlCache) Set(key string, val any) {
	c.impl.Set(key, val, gocache.DefaultExpiration)
}

func (c *ttlCache) Delete(key string) {
	c.impl.Delete(key)
}

func (c *ttlCache) Clear() {
	c.impl.Flush()
}

func (c *ttlCache) Len() int {
	return c.impl.ItemCount()
}
