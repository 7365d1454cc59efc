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

//go:generate mockgen -destination mocks/building_mock.go -source building.go -package mocks

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	internaljob "github.com/mapstack/atlas/internal/job"
	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/storage"
	"github.com/mapstack/atlas/manager/types"
	"github.com/mapstack/atlas/pkg/idgen"
	"github.com/mapstack/atlas/pkg/safe"
)

// BuildingTiles is an interface for building view tiles job.
type BuildingTiles interface {
	// CreateBuildingTiles enqueues a building tiles job and returns its record.
	CreateBuildingTiles(context.Context, types.BuildingTilesArgs) (*models.Job, error)
}

// buildingTiles is an implementation of BuildingTiles.
type buildingTiles struct {
	job     *internaljob.Job
	tracker *Tracker
	db      *gorm.DB
	storage *storage.Storage
	config  *config.JobConfig
}

// newBuildingTiles returns a new BuildingTiles.
func newBuildingTiles(job *internaljob.Job, tracker *Tracker, gdb *gorm.DB, storage *storage.Storage, cfg *config.JobConfig) (*buildingTiles, error) {
	return &buildingTiles{
		job:     job,
		tracker: tracker,
		db:      gdb,
		storage: storage,
		config:  cfg,
	}, nil
}

// CreateBuildingTiles creates the job record and sends the building tiles
// task to the queue.
func (b *buildingTiles) CreateBuildingTiles(ctx context.Context, args types.BuildingTilesArgs) (*models.Job, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, config.SpanBuildingTiles, trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(config.AttributeProjectID.Int(int(args.ProjectID)))
	span.SetAttributes(config.AttributeBuildingID.Int(int(args.BuildingID)))
	if args.BuildID != "" {
		span.SetAttributes(config.AttributeBuildID.String(args.BuildID))
	}
	defer span.End()

	taskID := fmt.Sprintf("task_%s", uuid.New().String())
	job := &models.Job{
		TaskID:     taskID,
		Type:       internaljob.BuildingTilesJob,
		ProjectID:  args.ProjectID,
		VersionID:  args.VersionID,
		BuildingID: args.BuildingID,
		CreatedBy:  args.CreatedBy,
	}
	if err := b.tracker.Create(ctx, job); err != nil {
		return nil, err
	}

	return enqueue(ctx, b.job, b.tracker, job, internaljob.BuildingTilesRequest{
		JobID:      job.ID,
		ProjectID:  args.ProjectID,
		VersionID:  args.VersionID,
		BuildingID: args.BuildingID,
		BuildID:    args.BuildID,
	})
}

// run is the machinery task func of the building tiles job.
func (b *buildingTiles) run(ctx context.Context, data string) (string, error) {
	req := internaljob.BuildingTilesRequest{}
	if err := internaljob.UnmarshalRequest(data, &req); err != nil {
		logger.Errorf("building tiles unmarshal request err: %s, request body: %s", err.Error(), data)
		return "", err
	}

	if err := validator.New().Struct(req); err != nil {
		logger.Errorf("building tiles request %#v validate failed: %s", req, err.Error())
		return "", err
	}

	log := logger.WithJob(req.JobID, internaljob.BuildingTilesJob)
	log.Infof("run building tiles for project %d building %d", req.ProjectID, req.BuildingID)

	var (
		resp *internaljob.BuildingTilesResponse
		err  error
	)
	if perr := safe.Call(func() {
		resp, err = b.process(ctx, req, log)
	}); perr != nil {
		err = perr
	}

	if err != nil {
		log.Errorf("building tiles failed: %s", err.Error())
		if _, ferr := b.tracker.Fail(ctx, req.JobID, err.Error()); ferr != nil {
			log.Errorf("mark job failed error: %s", ferr.Error())
		}
		return "", err
	}

	if resp == nil {
		return "", nil
	}

	return internaljob.MarshalResponse(resp)
}

// process tiles every active view of the building that carries a source
// asset. Every returned error becomes the job failure reason.
func (b *buildingTiles) process(ctx context.Context, req internaljob.BuildingTilesRequest, log *logger.SugaredLoggerOnWith) (*internaljob.BuildingTilesResponse, error) {
	if _, err := b.tracker.Start(ctx, req.JobID); err != nil {
		return nil, err
	}

	if err := setProgress(ctx, b.tracker, req.JobID, 5, "Finding building views..."); err != nil {
		return nil, err
	}

	var project models.Project
	if err := b.db.WithContext(ctx).Where("is_active = ?", true).First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Project not found")
		}
		return nil, err
	}

	var building models.Building
	if err := b.db.WithContext(ctx).Where("project_id = ?", req.ProjectID).First(&building, req.BuildingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Building not found")
		}
		return nil, err
	}

	// An explicit build id appends the view tiles to that build, otherwise
	// the tiles start a fresh one.
	buildID := req.BuildID
	if buildID == "" {
		buildID = idgen.BuildID()
	}

	var views []models.BuildingView
	if err := b.db.WithContext(ctx).
		Where("building_id = ? AND is_active = ? AND asset_path <> ''", req.BuildingID, true).
		Order("view_type, sort_order").
		Find(&views).Error; err != nil {
		return nil, err
	}

	if len(views) == 0 {
		if err := addLog(ctx, b.tracker, req.JobID, models.JobLogLevelWarn, "No views with assets found"); err != nil {
			return nil, err
		}

		if _, err := b.tracker.Complete(ctx, req.JobID, models.JSONMap{"views_processed": 0}); err != nil {
			return nil, err
		}

		return &internaljob.BuildingTilesResponse{BuildID: buildID}, nil
	}

	if err := addLog(ctx, b.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Found %d view(s) to process", len(views))); err != nil {
		return nil, err
	}

	viewsMeta := models.JSONMap{}
	totalTiles := 0
	total := len(views)

	for i := range views {
		view := &views[i]

		if b.tracker.Cancelled(ctx, req.JobID) {
			log.Info("job cancelled, stopping before next view")
			return nil, nil
		}

		base := 10 + i*80/total
		window := 80 / total
		if err := setProgress(ctx, b.tracker, req.JobID, base, fmt.Sprintf("Processing view: %s (%d/%d)...", view.Ref, i+1, total)); err != nil {
			return nil, err
		}

		prefix := b.storage.BuildingViewTilePrefix(project.Slug, buildID, building.Ref, view.Ref)
		set, err := generateTiles(ctx, b.storage, b.config, view.AssetPath, prefix, func(uploaded, count int) {
			if uploaded%uploadProgressStep != 0 && uploaded != count {
				return
			}

			percent := clampPercent(base, window, uploaded, count)
			b.tracker.UpdateProgress(ctx, req.JobID, percent, fmt.Sprintf("Uploading tiles for %s... (%d/%d)", view.Ref, uploaded, count)) // nolint: errcheck
		})
		if err != nil {
			if err := addLog(ctx, b.tracker, req.JobID, models.JobLogLevelError, fmt.Sprintf("Failed to generate tiles for %s: %v", view.Ref, err)); err != nil {
				return nil, err
			}
			continue
		}

		// The generated raster defines the coordinate frame of views
		// authored without one.
		if view.ViewBox == "" {
			view.ViewBox = fmt.Sprintf("0 0 %d %d", set.Pyramid.Width, set.Pyramid.Height)
		}
		view.TilesGenerated = true
		if err := b.db.WithContext(ctx).Save(view).Error; err != nil {
			return nil, err
		}

		viewsMeta[view.Ref] = models.JSONMap{
			"tiles_path": prefix,
			"view_type":  view.ViewType,
			"view_ref":   view.Ref,
			"width":      set.Pyramid.Width,
			"height":     set.Pyramid.Height,
			"levels":     set.Pyramid.Levels,
			"tile_count": set.Uploaded,
			"tile_size":  set.Pyramid.TileSize,
			"format":     set.Pyramid.Format,
			"view_box":   view.ViewBox,
		}
		totalTiles += set.Uploaded

		if err := addLog(ctx, b.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Generated %d tiles for view: %s", set.Uploaded, view.Ref)); err != nil {
			return nil, err
		}
	}

	if err := setProgress(ctx, b.tracker, req.JobID, 95, "Finalizing..."); err != nil {
		return nil, err
	}

	result := models.JSONMap{
		"build_id":         buildID,
		"building_ref":     building.Ref,
		"views_processed":  len(viewsMeta),
		"total_tile_count": totalTiles,
		"views":            viewsMeta,
		"built_at":         time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := b.tracker.Complete(ctx, req.JobID, result); err != nil {
		return nil, err
	}

	return &internaljob.BuildingTilesResponse{
		BuildID:        buildID,
		ViewsProcessed: len(viewsMeta),
		TilesGenerated: totalTiles,
	}, nil
}
