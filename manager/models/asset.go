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

const (
	// AssetTypeBaseMap is a master plan raster used as tiling input.
	AssetTypeBaseMap = "base_map"

	// AssetTypeOverlaySVG is an uploaded overlay source document.
	AssetTypeOverlaySVG = "overlay_svg"

	// AssetTypeIcon is a marker or amenity icon.
	AssetTypeIcon = "icon"

	// AssetTypeOther is any other uploaded file.
	AssetTypeOther = "other"
)

const (
	ProcessingStatusPending    = "pending"
	ProcessingStatusProcessing = "processing"
	ProcessingStatusCompleted  = "completed"
	ProcessingStatusFailed     = "failed"
)

type Asset struct {
	BaseModel
	ProjectID        uint    `gorm:"column:project_id;not null;index;comment:project id" json:"project_id"`
	Project          Project `json:"-"`
	AssetType        string  `gorm:"column:asset_type;type:varchar(256);not null;index;comment:asset type" json:"asset_type"`
	Level            string  `gorm:"column:level;type:varchar(256);comment:map level the asset belongs to" json:"level"`
	Filename         string  `gorm:"column:filename;type:varchar(1024);not null;comment:original filename" json:"filename"`
	MimeType         string  `gorm:"column:mime_type;type:varchar(256);comment:mime type" json:"mime_type"`
	FileSize         int64   `gorm:"column:file_size;comment:file size in bytes" json:"file_size"`
	StoragePath      string  `gorm:"column:storage_path;type:varchar(1024);not null;comment:object storage key" json:"storage_path"`
	Width            int     `gorm:"column:width;comment:pixel width" json:"width"`
	Height           int     `gorm:"column:height;comment:pixel height" json:"height"`
	TileMetadata     JSONMap `gorm:"column:tile_metadata;comment:tiling result metadata" json:"tile_metadata"`
	ProcessingStatus string  `gorm:"column:processing_status;type:varchar(256);not null;default:'pending';comment:processing status" json:"processing_status"`
	ProcessingError  string  `gorm:"column:processing_error;type:varchar(1024);comment:processing error" json:"processing_error"`
}
