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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mapstack/atlas/manager/types"
)

// @Summary Create Upload URL
// @Description Sign a short-lived url for a direct asset upload
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Asset body types.CreateUploadURLRequest true "Asset"
// @Success 200 {object} types.UploadURLResponse
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /projects/{id}/assets/upload-url [post]
func (h *Handlers) CreateUploadURL(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.CreateUploadURLRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	uploadURL, err := h.service.CreateUploadURL(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, uploadURL)
}

// @Summary Confirm Asset
// @Description Register an uploaded object as the asset of its slot
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Asset body types.ConfirmAssetRequest true "Asset"
// @Success 200 {object} models.Asset
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /projects/{id}/assets [post]
func (h *Handlers) ConfirmAsset(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.ConfirmAssetRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	asset, err := h.service.ConfirmAsset(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, asset)
}

// @Summary Get Asset
// @Description Get Asset by id
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Asset
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /assets/{id} [get]
func (h *Handlers) GetAsset(ctx *gin.Context) {
	var params types.AssetParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	asset, err := h.service.GetAsset(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, asset)
}

// @Summary Get Assets
// @Description Get Assets of a project
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Asset
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/assets [get]
func (h *Handlers) GetAssets(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.GetAssetsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	assets, count, err := h.service.GetAssets(ctx.Request.Context(), params.ID, query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, assets)
}

// @Summary Download Asset
// @Description Sign a short-lived url for downloading the asset object
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} types.AssetDownloadResponse
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /assets/{id}/download [get]
func (h *Handlers) DownloadAsset(ctx *gin.Context) {
	var params types.AssetParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	download, err := h.service.GetAssetDownloadURL(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, download)
}

// @Summary Destroy Asset
// @Description Destroy by id
// @Tags Asset
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /assets/{id} [delete]
func (h *Handlers) DestroyAsset(ctx *gin.Context) {
	var params types.AssetParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyAsset(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}
