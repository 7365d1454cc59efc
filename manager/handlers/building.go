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

// @Summary Create Building
// @Description Create by json config
// @Tags Building
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Building body types.CreateBuildingRequest true "Building"
// @Success 200 {object} models.Building
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /projects/{id}/buildings [post]
func (h *Handlers) CreateBuilding(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.CreateBuildingRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	building, err := h.service.CreateBuilding(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, building)
}

// @Summary Get Building
// @Description Get Building by id
// @Tags Building
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Building
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /buildings/{id} [get]
func (h *Handlers) GetBuilding(ctx *gin.Context) {
	var params types.BuildingParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	building, err := h.service.GetBuilding(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, building)
}

// @Summary Update Building
// @Description Update by json config
// @Tags Building
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Building body types.UpdateBuildingRequest true "Building"
// @Success 200 {object} models.Building
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /buildings/{id} [patch]
func (h *Handlers) UpdateBuilding(ctx *gin.Context) {
	var params types.BuildingParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateBuildingRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	building, err := h.service.UpdateBuilding(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, building)
}

// @Summary Get Buildings
// @Description Get Buildings of a project
// @Tags Building
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Building
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/buildings [get]
func (h *Handlers) GetBuildings(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.GetBuildingsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	buildings, count, err := h.service.GetBuildings(ctx.Request.Context(), params.ID, query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, buildings)
}

// @Summary Create BuildingView
// @Description Create by json config
// @Tags Building
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param BuildingView body types.CreateBuildingViewRequest true "BuildingView"
// @Success 200 {object} models.BuildingView
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /buildings/{id}/views [post]
func (h *Handlers) CreateBuildingView(ctx *gin.Context) {
	var params types.BuildingParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.CreateBuildingViewRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	view, err := h.service.CreateBuildingView(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// @Summary Get BuildingViews
// @Description Get BuildingViews of a building
// @Tags Building
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.BuildingView
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /buildings/{id}/views [get]
func (h *Handlers) GetBuildingViews(ctx *gin.Context) {
	var params types.BuildingParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.GetBuildingViewsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	views, count, err := h.service.GetBuildingViews(ctx.Request.Context(), params.ID, query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, views)
}
