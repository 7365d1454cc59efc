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

type AssetParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateUploadURLRequest struct {
	Filename    string `json:"filename" binding:"required,min=1,max=255"`
	AssetType   string `json:"asset_type" binding:"required,oneof=base_map overlay_svg icon other"`
	ContentType string `json:"content_type" binding:"required,min=1,max=100"`
}

type UploadURLResponse struct {
	UploadURL        string `json:"upload_url"`
	StoragePath      string `json:"storage_path"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

type ConfirmAssetRequest struct {
	StoragePath string                 `json:"storage_path" binding:"required,min=1"`
	AssetType   string                 `json:"asset_type" binding:"required,oneof=base_map overlay_svg icon other"`
	Level       string                 `json:"level" binding:"omitempty,max=255"`
	Filename    string                 `json:"filename" binding:"required,min=1,max=255"`
	FileSize    int64                  `json:"file_size" binding:"required,gt=0"`
	Metadata    map[string]interface{} `json:"metadata" binding:"omitempty"`
}

type GetAssetsQuery struct {
	AssetType string `form:"asset_type" binding:"omitempty,oneof=base_map overlay_svg icon other"`
	Level     string `form:"level" binding:"omitempty"`
	Page      int    `form:"page" binding:"omitempty,gte=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,gte=1,lte=50"`
}

type AssetDownloadResponse struct {
	DownloadURL      string `json:"download_url"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}
