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
	// OverlayTypeZone marks an overlay that links to a deeper zone level.
	OverlayTypeZone = "zone"

	// OverlayTypeUnit marks a sellable unit overlay.
	OverlayTypeUnit = "unit"

	// OverlayTypeBuilding marks a building footprint overlay.
	OverlayTypeBuilding = "building"

	// OverlayTypeAmenity marks an amenity overlay.
	OverlayTypeAmenity = "amenity"

	// OverlayTypeLabel marks a text label overlay.
	OverlayTypeLabel = "label"
)

const (
	OverlayStatusAvailable  = "available"
	OverlayStatusReserved   = "reserved"
	OverlayStatusSold       = "sold"
	OverlayStatusHidden     = "hidden"
	OverlayStatusUnreleased = "unreleased"
)

// SourceLevelProject is the level carried by overlays that belong to the
// project-level manifest rather than to a zone.
const SourceLevelProject = "project"

type Overlay struct {
	BaseModel
	VersionID     uint      `gorm:"column:version_id;not null;uniqueIndex:uq_overlay_ref;comment:version id" json:"version_id"`
	Version       Version   `json:"-"`
	OverlayType   string    `gorm:"column:overlay_type;type:varchar(256);not null;uniqueIndex:uq_overlay_ref;comment:overlay type" json:"overlay_type"`
	Ref           string    `gorm:"column:ref;type:varchar(256);not null;uniqueIndex:uq_overlay_ref;comment:stable overlay reference" json:"ref"`
	Level         string    `gorm:"column:level;type:varchar(256);index;comment:source level" json:"level"`
	Geometry      JSONMap   `gorm:"column:geometry;not null;comment:overlay geometry" json:"geometry"`
	ViewBox       string    `gorm:"column:view_box;type:varchar(256);comment:svg view box" json:"view_box"`
	Label         JSONMap   `gorm:"column:label;comment:localized label" json:"label"`
	LabelPosition JSONArray `gorm:"column:label_position;comment:label anchor point" json:"label_position"`
	Status        string    `gorm:"column:status;type:varchar(256);not null;default:'available';comment:overlay status" json:"status"`
	Props         JSONMap   `gorm:"column:props;comment:custom properties" json:"props"`
	StyleOverride JSONMap   `gorm:"column:style_override;comment:style override" json:"style_override"`
	SortOrder     int       `gorm:"column:sort_order;not null;default:0;comment:sort order" json:"sort_order"`
	IsVisible     bool      `gorm:"column:is_visible;not null;default:true;comment:visibility flag" json:"is_visible"`
}
