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
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/mapstack/atlas/internal/job"
	"github.com/mapstack/atlas/manager/metrics"
	_ "github.com/mapstack/atlas/manager/models" // nolint
	"github.com/mapstack/atlas/manager/types"
)

// @Summary Create Job
// @Description Create by json config
// @Tags Job
// @Accept json
// @Produce json
// @Param Job body types.CreateJobRequest true "Job"
// @Success 200 {object} models.Job
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /jobs [post]
func (h *Handlers) CreateJob(ctx *gin.Context) {
	var json types.CreateJobRequest
	if err := ctx.ShouldBindBodyWith(&json, binding.JSON); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	switch json.Type {
	case job.PreviewBuildJob:
		var json types.CreatePreviewBuildJobRequest
		if err := ctx.ShouldBindBodyWith(&json, binding.JSON); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
			return
		}

		job, err := h.service.CreatePreviewBuildJob(ctx.Request.Context(), json)
		if err != nil {
			ctx.Error(err) // nolint: errcheck
			return
		}

		ctx.JSON(http.StatusOK, job)
	case job.BuildingTilesJob:
		var json types.CreateBuildingTilesJobRequest
		if err := ctx.ShouldBindBodyWith(&json, binding.JSON); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
			return
		}

		job, err := h.service.CreateBuildingTilesJob(ctx.Request.Context(), json)
		if err != nil {
			ctx.Error(err) // nolint: errcheck
			return
		}

		ctx.JSON(http.StatusOK, job)
	case job.PublishJob:
		var json types.CreatePublishJobRequest
		if err := ctx.ShouldBindBodyWith(&json, binding.JSON); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
			return
		}

		job, err := h.service.CreatePublishJob(ctx.Request.Context(), json)
		if err != nil {
			ctx.Error(err) // nolint: errcheck
			return
		}

		ctx.JSON(http.StatusOK, job)
	default:
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": "Unknow type"})
	}
}

// @Summary Get Job
// @Description Get Job by id
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Job
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /jobs/{id} [get]
func (h *Handlers) GetJob(ctx *gin.Context) {
	var params types.JobParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	job, err := h.service.GetJob(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// @Summary Get Jobs
// @Description Get Jobs
// @Tags Job
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Job
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /jobs [get]
func (h *Handlers) GetJobs(ctx *gin.Context) {
	var query types.GetJobsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	jobs, count, err := h.service.GetJobs(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, jobs)
}

// @Summary Cancel Job
// @Description Cancel a queued or running job by id
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Job
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /jobs/{id}/cancel [post]
func (h *Handlers) CancelJob(ctx *gin.Context) {
	var params types.JobParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	job, err := h.service.CancelJob(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// @Summary Stream Job
// @Description Stream job progress as server-sent events until a terminal state
// @Tags Job
// @Accept json
// @Produce text/event-stream
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /jobs/{id}/stream [get]
func (h *Handlers) StreamJob(ctx *gin.Context) {
	var params types.JobParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	ch, err := h.service.WatchJob(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	// Intermediate proxies must not buffer or cache the event stream.
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")
	ctx.Status(http.StatusOK)

	metrics.SSESubscriberGauge.Inc()
	defer metrics.SSESubscriberGauge.Dec()

	// The channel closes after the terminal event or when the client
	// goes away, whichever comes first.
	for msg := range ch {
		s, err := msg.Encode()
		if err != nil {
			continue
		}

		if _, err := io.WriteString(ctx.Writer, s); err != nil {
			return
		}

		ctx.Writer.Flush()
	}
}
