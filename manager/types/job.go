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

package types

type CreateJobRequest struct {
	Type string                 `json:"type" binding:"required"`
	Args map[string]interface{} `json:"args" binding:"omitempty"`
}

type CreatePreviewBuildJobRequest struct {
	Type string           `json:"type" binding:"required"`
	Args PreviewBuildArgs `json:"args" binding:"required"`
}

type PreviewBuildArgs struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	VersionID uint   `json:"version_id" binding:"required"`
	CreatedBy string `json:"created_by" binding:"omitempty"`
}

type CreateBuildingTilesJobRequest struct {
	Type string            `json:"type" binding:"required"`
	Args BuildingTilesArgs `json:"args" binding:"required"`
}

type BuildingTilesArgs struct {
	ProjectID  uint   `json:"project_id" binding:"required"`
	VersionID  uint   `json:"version_id" binding:"omitempty"`
	BuildingID uint   `json:"building_id" binding:"required"`
	BuildID    string `json:"build_id" binding:"omitempty"`
	CreatedBy  string `json:"created_by" binding:"omitempty"`
}

type CreatePublishJobRequest struct {
	Type string      `json:"type" binding:"required"`
	Args PublishArgs `json:"args" binding:"required"`
}

type PublishArgs struct {
	ProjectID   uint   `json:"project_id" binding:"required"`
	VersionID   uint   `json:"version_id" binding:"required"`
	BuildID     string `json:"build_id" binding:"omitempty"`
	PublishedBy string `json:"published_by" binding:"omitempty"`
}

type JobParams struct {
	ID uint `uri:"id" binding:"required"`
}

type GetJobsQuery struct {
	ProjectID uint   `form:"project_id" binding:"omitempty"`
	Type      string `form:"type" binding:"omitempty,oneof=preview-build building-tiles publish"`
	Status    string `form:"status" binding:"omitempty,oneof=queued running completed failed cancelled"`
	Page      int    `form:"page" binding:"omitempty,gte=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,gte=1,lte=50"`
}
