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

type OverlayParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateOverlayRequest struct {
	OverlayType   string                 `json:"overlay_type" binding:"required,oneof=zone unit building amenity label"`
	Ref           string                 `json:"ref" binding:"required,min=1,max=255"`
	Level         string                 `json:"level" binding:"omitempty,max=255"`
	Geometry      map[string]interface{} `json:"geometry" binding:"required"`
	ViewBox       string                 `json:"view_box" binding:"omitempty,max=100"`
	Label         map[string]interface{} `json:"label" binding:"omitempty"`
	LabelPosition []float64              `json:"label_position" binding:"omitempty,len=2"`
	Status        string                 `json:"status" binding:"omitempty,oneof=available reserved sold hidden unreleased"`
	Props         map[string]interface{} `json:"props" binding:"omitempty"`
	StyleOverride map[string]interface{} `json:"style_override" binding:"omitempty"`
	SortOrder     int                    `json:"sort_order" binding:"omitempty"`
	IsVisible     *bool                  `json:"is_visible" binding:"omitempty"`
}

type UpdateOverlayRequest struct {
	Geometry      map[string]interface{} `json:"geometry" binding:"omitempty"`
	ViewBox       string                 `json:"view_box" binding:"omitempty,max=100"`
	Label         map[string]interface{} `json:"label" binding:"omitempty"`
	LabelPosition []float64              `json:"label_position" binding:"omitempty,len=2"`
	Status        string                 `json:"status" binding:"omitempty,oneof=available reserved sold hidden unreleased"`
	Props         map[string]interface{} `json:"props" binding:"omitempty"`
	StyleOverride map[string]interface{} `json:"style_override" binding:"omitempty"`
	SortOrder     *int                   `json:"sort_order" binding:"omitempty"`
	IsVisible     *bool                  `json:"is_visible" binding:"omitempty"`
}

type BulkUpsertOverlaysRequest struct {
	Overlays []CreateOverlayRequest `json:"overlays" binding:"required,min=1,dive"`
}

type BulkUpsertError struct {
	Index int    `json:"index"`
	Ref   string `json:"ref"`
	Error string `json:"error"`
}

type BulkUpsertOverlaysResponse struct {
	Created int               `json:"created"`
	Updated int               `json:"updated"`
	Errors  []BulkUpsertError `json:"errors"`
}

type GetOverlaysQuery struct {
	OverlayType string `form:"overlay_type" binding:"omitempty,oneof=zone unit building amenity label"`
	Level       string `form:"level" binding:"omitempty"`
	Status      string `form:"status" binding:"omitempty,oneof=available reserved sold hidden unreleased"`
	Page        int    `form:"page" binding:"omitempty,gte=1"`
	PerPage     int    `form:"per_page" binding:"omitempty,gte=1,lte=1000"`
}
