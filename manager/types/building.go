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

type BuildingParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateBuildingRequest struct {
	Ref         string                 `json:"ref" binding:"required,min=1,max=50"`
	Name        map[string]interface{} `json:"name" binding:"required"`
	FloorsCount int                    `json:"floors_count" binding:"required,gt=0"`
	FloorsStart *int                   `json:"floors_start" binding:"omitempty"`
	SkipFloors  []int                  `json:"skip_floors" binding:"omitempty"`
	Metadata    map[string]interface{} `json:"metadata" binding:"omitempty"`
	SortOrder   int                    `json:"sort_order" binding:"omitempty"`
}

type UpdateBuildingRequest struct {
	Name        map[string]interface{} `json:"name" binding:"omitempty"`
	FloorsCount int                    `json:"floors_count" binding:"omitempty,gt=0"`
	FloorsStart *int                   `json:"floors_start" binding:"omitempty"`
	SkipFloors  []int                  `json:"skip_floors" binding:"omitempty"`
	Metadata    map[string]interface{} `json:"metadata" binding:"omitempty"`
	SortOrder   *int                   `json:"sort_order" binding:"omitempty"`
	IsActive    *bool                  `json:"is_active" binding:"omitempty"`
}

type GetBuildingsQuery struct {
	Page    int `form:"page" binding:"omitempty,gte=1"`
	PerPage int `form:"per_page" binding:"omitempty,gte=1,lte=50"`
}

type CreateBuildingViewRequest struct {
	ViewType    string                 `json:"view_type" binding:"required,oneof=elevation rotation floor_plan"`
	Ref         string                 `json:"ref" binding:"required,min=1,max=50"`
	Label       map[string]interface{} `json:"label" binding:"omitempty"`
	Angle       *int                   `json:"angle" binding:"required_if=ViewType rotation,omitempty,gte=0,lt=360"`
	FloorNumber *int                   `json:"floor_number" binding:"required_if=ViewType floor_plan,omitempty"`
	ViewBox     string                 `json:"view_box" binding:"omitempty,max=100"`
	AssetPath   string                 `json:"asset_path" binding:"omitempty,max=500"`
	SortOrder   int                    `json:"sort_order" binding:"omitempty"`
}

type GetBuildingViewsQuery struct {
	ViewType string `form:"view_type" binding:"omitempty,oneof=elevation rotation floor_plan"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PerPage  int    `form:"per_page" binding:"omitempty,gte=1,lte=50"`
}
