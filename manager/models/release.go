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

type Release struct {
	BaseModel
	ReleaseID    string     `gorm:"column:release_id;type:varchar(256);uniqueIndex;not null;comment:release id" json:"release_id"`
	ProjectID    uint       `gorm:"column:project_id;not null;index;comment:project id" json:"project_id"`
	Project      Project    `json:"-"`
	VersionID    uint       `gorm:"column:version_id;not null;comment:version id" json:"version_id"`
	Version      Version    `json:"-"`
	ManifestPath string     `gorm:"column:manifest_path;type:varchar(1024);comment:manifest object key" json:"manifest_path"`
	ReleaseURL   string     `gorm:"column:release_url;type:varchar(1024);comment:public release url" json:"release_url"`
	Checksum     string     `gorm:"column:checksum;type:varchar(256);comment:manifest checksum" json:"checksum"`
	OverlayCount int        `gorm:"column:overlay_count;comment:published overlay count" json:"overlay_count"`
	TilesCopied  int        `gorm:"column:tiles_copied;comment:tile objects copied" json:"tiles_copied"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true;comment:active flag" json:"is_active"`
	PublishedBy  string     `gorm:"column:published_by;type:varchar(256);comment:publisher" json:"published_by"`
	PublishedAt  *time.Time `gorm:"column:published_at;comment:publish time" json:"published_at"`
}
