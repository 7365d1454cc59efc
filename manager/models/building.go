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
	// ViewTypeElevation is a building facade view.
	ViewTypeElevation = "elevation"

	// ViewTypeRotation is a frame in a rotation sequence.
	ViewTypeRotation = "rotation"

	// ViewTypeFloorPlan is a floor plan view.
	ViewTypeFloorPlan = "floor_plan"
)

type Building struct {
	BaseModel
	ProjectID   uint           `gorm:"column:project_id;not null;uniqueIndex:uq_building_ref;comment:project id" json:"project_id"`
	Project     Project        `json:"-"`
	Ref         string         `gorm:"column:ref;type:varchar(256);not null;uniqueIndex:uq_building_ref;comment:stable building reference" json:"ref"`
	Name        JSONMap        `gorm:"column:name;comment:localized name" json:"name"`
	FloorsCount int            `gorm:"column:floors_count;not null;default:0;comment:floor count" json:"floors_count"`
	FloorsStart int            `gorm:"column:floors_start;not null;default:1;comment:first floor number" json:"floors_start"`
	SkipFloors  JSONArray      `gorm:"column:skip_floors;comment:skipped floor numbers" json:"skip_floors"`
	Metadata    JSONMap        `gorm:"column:metadata;comment:custom metadata" json:"metadata"`
	SortOrder   int            `gorm:"column:sort_order;not null;default:0;comment:sort order" json:"sort_order"`
	IsActive    bool           `gorm:"column:is_active;not null;default:true;comment:active flag" json:"is_active"`
	Views       []BuildingView `json:"-"`
}

type BuildingView struct {
	BaseModel
	BuildingID     uint     `gorm:"column:building_id;not null;uniqueIndex:uq_building_view_ref;comment:building id" json:"building_id"`
	Building       Building `json:"-"`
	Ref            string   `gorm:"column:ref;type:varchar(256);not null;uniqueIndex:uq_building_view_ref;comment:stable view reference" json:"ref"`
	ViewType       string   `gorm:"column:view_type;type:varchar(256);not null;comment:view type" json:"view_type"`
	Label          JSONMap  `gorm:"column:label;comment:localized label" json:"label"`
	Angle          *int     `gorm:"column:angle;comment:rotation angle in degrees" json:"angle"`
	FloorNumber    *int     `gorm:"column:floor_number;comment:floor number" json:"floor_number"`
	ViewBox        string   `gorm:"column:view_box;type:varchar(256);comment:svg view box" json:"view_box"`
	AssetPath      string   `gorm:"column:asset_path;type:varchar(1024);comment:source asset path" json:"asset_path"`
	TilesGenerated bool     `gorm:"column:tiles_generated;not null;default:false;comment:tiles generated flag" json:"tiles_generated"`
	SortOrder      int      `gorm:"column:sort_order;not null;default:0;comment:sort order" json:"sort_order"`
	IsActive       bool     `gorm:"column:is_active;not null;default:true;comment:active flag" json:"is_active"`
}
