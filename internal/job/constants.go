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

package job

const (
	// PreviewBuildJob is the name of the preview build job.
	PreviewBuildJob = "preview-build"

	// BuildingTilesJob is the name of the building view build job.
	BuildingTilesJob = "building-tiles"

	// PublishJob is the name of the publish job.
	PublishJob = "publish"
)

const (
	// DefaultResultsExpireIn is the default expiration of task results
	// in the backend, in seconds.
	DefaultResultsExpireIn = 86400

	// DefaultRedisMaxIdle is the default max idle connections of the
	// machinery redis pool.
	DefaultRedisMaxIdle = 10

	// DefaultRedisIdleTimeout is the default idle timeout of the machinery
	// redis pool, in seconds.
	DefaultRedisIdleTimeout = 300

	// DefaultRedisReadTimeout is the default read timeout of the machinery
	// redis pool, in seconds.
	DefaultRedisReadTimeout = 60

	// DefaultRedisWriteTimeout is the default write timeout of the machinery
	// redis pool, in seconds.
	DefaultRedisWriteTimeout = 60

	// DefaultRedisConnectTimeout is the default connect timeout of the
	// machinery redis pool, in seconds.
	DefaultRedisConnectTimeout = 60
)
