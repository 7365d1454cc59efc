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

// @Summary Create Project
// @Description Create by json config
// @Tags Project
// @Accept json
// @Produce json
// @Param Project body types.CreateProjectRequest true "Project"
// @Success 200 {object} models.Project
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects [post]
func (h *Handlers) CreateProject(ctx *gin.Context) {
	var json types.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	project, err := h.service.CreateProject(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// @Summary Update Project
// @Description Update by json config
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Project body types.UpdateProjectRequest true "Project"
// @Success 200 {object} models.Project
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id} [patch]
func (h *Handlers) UpdateProject(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	project, err := h.service.UpdateProject(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// @Summary Get Project
// @Description Get Project by id
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Project
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id} [get]
func (h *Handlers) GetProject(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	project, err := h.service.GetProject(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// @Summary Get Projects
// @Description Get Projects
// @Tags Project
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Project
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects [get]
func (h *Handlers) GetProjects(ctx *gin.Context) {
	var query types.GetProjectsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	projects, count, err := h.service.GetProjects(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, projects)
}
