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

// @Summary Create Version
// @Description Create the next draft version of a project
// @Tags Version
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Version body types.CreateVersionRequest true "Version"
// @Success 200 {object} models.Version
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /projects/{id}/versions [post]
func (h *Handlers) CreateVersion(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.CreateVersionRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	version, err := h.service.CreateVersion(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, version)
}

// @Summary Get Version
// @Description Get Version by id
// @Tags Version
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Version
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /versions/{id} [get]
func (h *Handlers) GetVersion(ctx *gin.Context) {
	var params types.VersionParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	version, err := h.service.GetVersion(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, version)
}

// @Summary Get Versions
// @Description Get Versions of a project
// @Tags Version
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Version
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/versions [get]
func (h *Handlers) GetVersions(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.GetVersionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	versions, count, err := h.service.GetVersions(ctx.Request.Context(), params.ID, query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, versions)
}

// @Summary Validate Version
// @Description Check whether a version satisfies the publish preconditions
// @Tags Version
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} job.PublishValidation
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /versions/{id}/publish/validate [get]
func (h *Handlers) ValidateVersionPublish(ctx *gin.Context) {
	var params types.VersionParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	validation, err := h.service.ValidateVersionForPublish(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, validation)
}
