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

// @Summary Get Releases
// @Description Get the release history of a project
// @Tags Release
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} types.GetReleasesResponse
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/releases [get]
func (h *Handlers) GetReleases(ctx *gin.Context) {
	var params types.ProjectParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	releases, err := h.service.GetReleases(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, releases)
}

// @Summary Get Release
// @Description Get the current release or a release manifest by release id
// @Tags Release
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param release_id path string true "release_id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /projects/{id}/releases/{release_id} [get]
func (h *Handlers) GetRelease(ctx *gin.Context) {
	var params types.ReleaseParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	// The reserved segment "current" resolves to whatever release the
	// project serves right now instead of naming one by id.
	if params.ReleaseID == "current" {
		release, err := h.service.GetCurrentRelease(ctx.Request.Context(), params.ID)
		if err != nil {
			ctx.Error(err) // nolint: errcheck
			return
		}

		ctx.JSON(http.StatusOK, release)
		return
	}

	manifest, err := h.service.GetReleaseManifest(ctx.Request.Context(), params.ID, params.ReleaseID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, manifest)
}
