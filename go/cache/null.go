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

// nullCache is a no-op cache implementation used when caching is disabled.
type nullCache struct{}

func (n *nullCache) Get(_ string) (any, bool) { return nil, false }

func (n *nullCache) Set(_ string, _ any) {}

func (n *nullCache) Delete(_ string) {}

func (n *nullCache) Clear() {}

func (n *nullCache) Len() int { return 0 }
