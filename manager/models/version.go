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

package models

import "time"

const (
	// VersionStatusDraft is the only status that accepts edits and publishes.
	VersionStatusDraft = "draft"

	// VersionStatusPublished marks a version with a live release.
	VersionStatusPublished = "published"

	// VersionStatusArchived marks a retired version.
	VersionStatusArchived = "archived"
)

type Version struct {
	BaseModel
	ProjectID     uint       `gorm:"column:project_id;not null;uniqueIndex:uq_version_number;comment:project id" json:"project_id"`
	Project       Project    `json:"-"`
	VersionNumber int        `gorm:"column:version_number;not null;uniqueIndex:uq_version_number;comment:version number" json:"version_number"`
	Name          string     `gorm:"column:name;type:varchar(256);comment:version name" json:"name"`
	Status        string     `gorm:"column:status;type:varchar(256);not null;default:'draft';comment:version status" json:"status"`
	ReleaseID     string     `gorm:"column:release_id;type:varchar(256);comment:release id" json:"release_id"`
	ReleaseURL    string     `gorm:"column:release_url;type:varchar(1024);comment:release url" json:"release_url"`
	PublishedAt   *time.Time `gorm:"column:published_at;comment:publish time" json:"published_at"`
	PublishedBy   string     `gorm:"column:published_by;type:varchar(256);comment:publisher" json:"published_by"`
	Overlays      []Overlay  `json:"-"`
}
