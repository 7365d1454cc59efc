/*
 *     Copyright 2025 The Atlas Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	"github.com/mapstack/atlas/manager/config"
)

const (
	// ProjectNamespace is the project prefix of cache key.
	ProjectNamespace = "projects"

	// JobNamespace is the job prefix of cache key.
	JobNamespace = "jobs"

	// ReleaseNamespace is the release prefix of cache key.
	ReleaseNamespace = "releases"
)

// Cache is cache client.
type Cache struct {
	*cache.Cache
	TTL time.Duration
}

// New cache instance.
func New(cfg *config.Config, rdb redis.UniversalClient) *Cache {
	var localCache *cache.TinyLFU
	if cfg.Cache != nil {
		localCache = cache.NewTinyLFU(cfg.Cache.Local.Size, cfg.Cache.Local.TTL)
	}

	// If the attribute TTL of cache.Item(cache's instance) is 0,
	// redis expiration time is 1 hour.
	// cfg.TTL sets the expiration time of TinyLFU.
	return &Cache{
		Cache: cache.New(&cache.Options{
			Redis:      rdb,
			LocalCache: localCache,
		}),
		TTL: cfg.Cache.Redis.TTL,
	}
}

// MakeCacheKey makes the namespaced cache key.
func MakeCacheKey(namespace string, id string) string {
	return fmt.Sprintf("atlas:%s:%s", namespace, id)
}

// MakeProjectCacheKey makes the cache key for a project.
func MakeProjectCacheKey(id uint) string {
	return MakeCacheKey(ProjectNamespace, fmt.Sprintf("%d", id))
}

// MakeJobCacheKey makes the cache key for a job.
func MakeJobCacheKey(id uint) string {
	return MakeCacheKey(JobNamespace, fmt.Sprintf("%d", id))
}

// MakeReleaseCacheKey makes the cache key for a release.
func MakeReleaseCacheKey(releaseID string) string {
	return MakeCacheKey(ReleaseNamespace, releaseID)
}
