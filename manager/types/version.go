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

type VersionParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateVersionRequest struct {
	Name        string `json:"name" binding:"omitempty,max=255"`
	BaseVersion int    `json:"base_version" binding:"omitempty,gte=1"`
}

type GetVersionsQuery struct {
	Status  string `form:"status" binding:"omitempty,oneof=draft published archived"`
	Page    int    `form:"page" binding:"omitempty,gte=1"`
	PerPage int    `form:"per_page" binding:"omitempty,gte=1,lte=50"`
}
