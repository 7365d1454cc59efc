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

// PreviewBuildRequest defines the request parameters for building a draft
// preview of a version.
type PreviewBuildRequest struct {
	JobID     uint `json:"job_id" validate:"required"`
	ProjectID uint `json:"project_id" validate:"required"`
	VersionID uint `json:"version_id" validate:"required"`
}

// PreviewBuildResponse defines the response parameters for building a draft
// preview of a version.
type PreviewBuildResponse struct {
	BuildID        string `json:"build_id"`
	ManifestPath   string `json:"manifest_path"`
	TilesGenerated int    `json:"tiles_generated"`
	TilesFailed    int    `json:"tiles_failed"`
}

// BuildingTilesRequest defines the request parameters for building the tile
// sets of all views of one building. BuildID selects an existing build to
// add the tiles to, a fresh build is created when empty.
type BuildingTilesRequest struct {
	JobID      uint   `json:"job_id" validate:"required"`
	ProjectID  uint   `json:"project_id" validate:"required"`
	VersionID  uint   `json:"version_id" validate:"omitempty"`
	BuildingID uint   `json:"building_id" validate:"required"`
	BuildID    string `json:"build_id" validate:"omitempty"`
}

// BuildingTilesResponse defines the response parameters for building the
// tile sets of all views of one building.
type BuildingTilesResponse struct {
	BuildID        string `json:"build_id"`
	ViewsProcessed int    `json:"views_processed"`
	TilesGenerated int    `json:"tiles_generated"`
}

// PublishRequest defines the request parameters for publishing a version to
// an immutable release. BuildID selects the build to promote, the latest
// completed build of the version is used when empty.
type PublishRequest struct {
	JobID       uint   `json:"job_id" validate:"required"`
	ProjectID   uint   `json:"project_id" validate:"required"`
	VersionID   uint   `json:"version_id" validate:"required"`
	BuildID     string `json:"build_id" validate:"omitempty"`
	PublishedBy string `json:"published_by" validate:"omitempty"`
}

// PublishResponse defines the response parameters for publishing a version
// to an immutable release.
type PublishResponse struct {
	ReleaseID     string `json:"release_id"`
	ManifestPath  string `json:"manifest_path"`
	ObjectsCopied int    `json:"objects_copied"`
	ZoneCount     int    `json:"zone_count"`
}
