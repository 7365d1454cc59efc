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

type Project struct {
	BaseModel
	Slug              string    `gorm:"column:slug;type:varchar(256);uniqueIndex;not null;comment:project slug" json:"slug"`
	Name              string    `gorm:"column:name;type:varchar(256);not null;comment:project name" json:"name"`
	BIO               string    `gorm:"column:bio;type:varchar(1024);comment:biography" json:"bio"`
	IsActive          bool      `gorm:"column:is_active;not null;default:true;comment:active flag" json:"is_active"`
	CurrentReleaseID  string    `gorm:"column:current_release_id;type:varchar(256);comment:current release id" json:"current_release_id"`
	DefaultViewBox    string    `gorm:"column:default_view_box;type:varchar(256);comment:default svg view box" json:"default_view_box"`
	ZoomMin           float64   `gorm:"column:zoom_min;comment:minimum zoom" json:"zoom_min"`
	ZoomMax           float64   `gorm:"column:zoom_max;comment:maximum zoom" json:"zoom_max"`
	ZoomDefault       float64   `gorm:"column:zoom_default;comment:default zoom" json:"zoom_default"`
	DefaultLocale     string    `gorm:"column:default_locale;type:varchar(256);comment:default locale" json:"default_locale"`
	SupportedLocales  Array     `gorm:"column:supported_locales;comment:supported locales" json:"supported_locales"`
	StatusStyles      JSONMap   `gorm:"column:status_styles;comment:overlay status styles" json:"status_styles"`
	InteractionStyles JSONMap   `gorm:"column:interaction_styles;comment:overlay interaction styles" json:"interaction_styles"`
	CreatedBy         string    `gorm:"column:created_by;type:varchar(256);comment:creator" json:"created_by"`
	Versions          []Version `json:"-"`
	Assets            []Asset   `json:"-"`
}
