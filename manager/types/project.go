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

type ProjectParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateProjectRequest struct {
	Slug              string                 `json:"slug" binding:"required,min=2,max=100,lowercase"`
	Name              string                 `json:"name" binding:"required,min=1,max=255"`
	BIO               string                 `json:"bio" binding:"omitempty"`
	DefaultViewBox    string                 `json:"default_view_box" binding:"omitempty,max=100"`
	ZoomMin           float64                `json:"zoom_min" binding:"omitempty"`
	ZoomMax           float64                `json:"zoom_max" binding:"omitempty"`
	ZoomDefault       float64                `json:"zoom_default" binding:"omitempty"`
	DefaultLocale     string                 `json:"default_locale" binding:"omitempty"`
	SupportedLocales  []string               `json:"supported_locales" binding:"omitempty"`
	StatusStyles      map[string]interface{} `json:"status_styles" binding:"omitempty"`
	InteractionStyles map[string]interface{} `json:"interaction_styles" binding:"omitempty"`
	CreatedBy         string                 `json:"created_by" binding:"omitempty"`
}

type UpdateProjectRequest struct {
	Name              string                 `json:"name" binding:"omitempty,min=1,max=255"`
	BIO               string                 `json:"bio" binding:"omitempty"`
	IsActive          *bool                  `json:"is_active" binding:"omitempty"`
	DefaultViewBox    string                 `json:"default_view_box" binding:"omitempty,max=100"`
	ZoomMin           float64                `json:"zoom_min" binding:"omitempty"`
	ZoomMax           float64                `json:"zoom_max" binding:"omitempty"`
	ZoomDefault       float64                `json:"zoom_default" binding:"omitempty"`
	DefaultLocale     string                 `json:"default_locale" binding:"omitempty"`
	SupportedLocales  []string               `json:"supported_locales" binding:"omitempty"`
	StatusStyles      map[string]interface{} `json:"status_styles" binding:"omitempty"`
	InteractionStyles map[string]interface{} `json:"interaction_styles" binding:"omitempty"`
}

type GetProjectsQuery struct {
	Slug    string `form:"slug" binding:"omitempty"`
	Name    string `form:"name" binding:"omitempty"`
	Page    int    `form:"page" binding:"omitempty,gte=1"`
	PerPage int    `form:"per_page" binding:"omitempty,gte=1,lte=50"`
}
