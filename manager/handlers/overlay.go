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

// @Summary Create Overlay
// @Description Create by json config in a draft version
// @Tags Overlay
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Overlay body types.CreateOverlayRequest true "Overlay"
// @Success 200 {object} models.Overlay
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /versions/{id}/overlays [post]
func (h *Handlers) CreateOverlay(ctx *gin.Context) {
	var params types.VersionParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.CreateOverlayRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	overlay, err := h.service.CreateOverlay(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, overlay)
}

// @Summary Bulk Upsert Overlays
// @Description Create or replace overlays matched by overlay type and ref
// @Tags Overlay
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Overlays body types.BulkUpsertOverlaysRequest true "Overlays"
// @Success 200 {object} types.BulkUpsertOverlaysResponse
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /versions/{id}/overlays/bulk [post]
func (h *Handlers) BulkUpsertOverlays(ctx *gin.Context) {
	var params types.VersionParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.BulkUpsertOverlaysRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	result, err := h.service.BulkUpsertOverlays(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Update Overlay
// @Description Update by json config in a draft version
// @Tags Overlay
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Overlay body types.UpdateOverlayRequest true "Overlay"
// @Success 200 {object} models.Overlay
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /overlays/{id} [patch]
func (h *Handlers) UpdateOverlay(ctx *gin.Context) {
	var params types.OverlayParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateOverlayRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	overlay, err := h.service.UpdateOverlay(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, overlay)
}

// @Summary Destroy Overlay
// @Description Destroy by id in a draft version
// @Tags Overlay
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /overlays/{id} [delete]
func (h *Handlers) DestroyOverlay(ctx *gin.Context) {
	var params types.OverlayParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyOverlay(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Get Overlays
// @Description Get Overlays of a version
// @Tags Overlay
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 1000" default(10) minimum(2) maximum(1000)
// @Success 200 {object} []models.Overlay
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /versions/{id}/overlays [get]
func (h *Handlers) GetOverlays(ctx *gin.Context) {
	var params types.VersionParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.GetOverlaysQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	overlays, count, err := h.service.GetOverlays(ctx.Request.Context(), params.ID, query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, overlays)
}
