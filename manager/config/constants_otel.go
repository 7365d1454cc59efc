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

package config

import "go.opentelemetry.io/otel/attribute"

const (
	AttributeJobID       = attribute.Key("atlas.job.id")
	AttributeJobType     = attribute.Key("atlas.job.type")
	AttributeProjectID   = attribute.Key("atlas.project.id")
	AttributeVersionID   = attribute.Key("atlas.version.id")
	AttributeBuildingID  = attribute.Key("atlas.building.id")
	AttributeBuildID     = attribute.Key("atlas.build.id")
	AttributeReleaseID   = attribute.Key("atlas.release.id")
	AttributeTileCount   = attribute.Key("atlas.tile.count")
	AttributeObjectCount = attribute.Key("atlas.object.count")
)

const (
	SpanPreviewBuild  = "preview-build"
	SpanBuildingTiles = "building-tiles"
	SpanPublish       = "publish"
)
