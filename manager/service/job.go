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

package service

import (
	"context"

	"github.com/mapstack/atlas/manager/job"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/types"
	"github.com/mapstack/atlas/pkg/sse"
)

func (s *service) CreatePreviewBuildJob(ctx context.Context, json types.CreatePreviewBuildJobRequest) (*models.Job, error) {
	return s.job.CreatePreviewBuild(ctx, json.Args)
}

func (s *service) CreateBuildingTilesJob(ctx context.Context, json types.CreateBuildingTilesJobRequest) (*models.Job, error) {
	return s.job.CreateBuildingTiles(ctx, json.Args)
}

func (s *service) CreatePublishJob(ctx context.Context, json types.CreatePublishJobRequest) (*models.Job, error) {
	return s.job.CreatePublish(ctx, json.Args)
}

func (s *service) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	return s.job.Tracker.Get(ctx, id)
}

func (s *service) GetJobs(ctx context.Context, q types.GetJobsQuery) ([]models.Job, int64, error) {
	var count int64
	var jobs []models.Job
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Job{
		ProjectID: q.ProjectID,
		Type:      q.Type,
		Status:    q.Status,
	}).Order("created_at desc, id desc").Find(&jobs).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return jobs, count, nil
}

// CancelJob requests cancellation of a queued or running job. Workers act
// on it between units of work, so the row flips to cancelled immediately
// while in-flight tiles still finish.
func (s *service) CancelJob(ctx context.Context, id uint) (*models.Job, error) {
	job, cancelled, err := s.job.Tracker.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	if !cancelled {
		return nil, NewStateConflictError("Cannot cancel job with status: %s", job.Status)
	}

	return job, nil
}

// WatchJob returns the live update stream of one job. The first message
// is a snapshot of the current row; a terminal snapshot ends the stream
// right after delivery.
func (s *service) WatchJob(ctx context.Context, id uint) (<-chan *sse.Message, error) {
	j, err := s.job.Tracker.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.broadcaster.Stream(ctx, job.Channel(j.ID), s.config.SSE.PingInterval, job.UpdateMessage(j)), nil
}
