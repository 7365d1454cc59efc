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

import "time"

type ReleaseParams struct {
	ID        uint   `uri:"id" binding:"required"`
	ReleaseID string `uri:"release_id" binding:"required"`
}

type ReleaseInfo struct {
	VersionNumber int        `json:"version_number"`
	ReleaseID     string     `json:"release_id"`
	ReleaseURL    string     `json:"release_url"`
	PublishedAt   *time.Time `json:"published_at"`
	PublishedBy   string     `json:"published_by"`
	IsCurrent     bool       `json:"is_current"`
}

type GetReleasesResponse struct {
	ProjectSlug      string        `json:"project_slug"`
	CurrentReleaseID string        `json:"current_release_id"`
	Releases         []ReleaseInfo `json:"releases"`
	Total            int           `json:"total"`
}

type CurrentReleaseResponse struct {
	ReleaseInfo
	ManifestPath string `json:"manifest_path"`
	ManifestURL  string `json:"manifest_url"`
}
