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

//go:generate mockgen -destination mocks/preview_mock.go -source preview.go -package mocks

package job

import (
	"context"
	"fmt"
	"time"

	machineryv1tasks "github.com/RichardKnop/machinery/v1/tasks"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	internaljob "github.com/mapstack/atlas/internal/job"
	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/release"
	"github.com/mapstack/atlas/manager/storage"
	"github.com/mapstack/atlas/manager/types"
	"github.com/mapstack/atlas/pkg/idgen"
	"github.com/mapstack/atlas/pkg/safe"
)

// PreviewBuild is an interface for preview build job.
type PreviewBuild interface {
	// CreatePreviewBuild enqueues a preview build job and returns its record.
	CreatePreviewBuild(context.Context, types.PreviewBuildArgs) (*models.Job, error)
}

// previewBuild is an implementation of PreviewBuild.
type previewBuild struct {
	job     *internaljob.Job
	tracker *Tracker
	db      *gorm.DB
	storage *storage.Storage
	builder *release.Builder
	config  *config.JobConfig
}

// newPreviewBuild returns a new PreviewBuild.
func newPreviewBuild(job *internaljob.Job, tracker *Tracker, gdb *gorm.DB, storage *storage.Storage, cfg *config.JobConfig) (*previewBuild, error) {
	return &previewBuild{
		job:     job,
		tracker: tracker,
		db:      gdb,
		storage: storage,
		builder: release.NewBuilder(storage),
		config:  cfg,
	}, nil
}

// CreatePreviewBuild creates the job record and sends the preview build task
// to the queue.
func (p *previewBuild) CreatePreviewBuild(ctx context.Context, args types.PreviewBuildArgs) (*models.Job, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, config.SpanPreviewBuild, trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(config.AttributeProjectID.Int(int(args.ProjectID)))
	span.SetAttributes(config.AttributeVersionID.Int(int(args.VersionID)))
	defer span.End()

	taskID := fmt.Sprintf("task_%s", uuid.New().String())
	job := &models.Job{
		TaskID:    taskID,
		Type:      internaljob.PreviewBuildJob,
		ProjectID: args.ProjectID,
		VersionID: args.VersionID,
		CreatedBy: args.CreatedBy,
	}
	if err := p.tracker.Create(ctx, job); err != nil {
		return nil, err
	}

	return enqueue(ctx, p.job, p.tracker, job, internaljob.PreviewBuildRequest{
		JobID:     job.ID,
		ProjectID: args.ProjectID,
		VersionID: args.VersionID,
	})
}

// run is the machinery task func of the preview build job.
func (p *previewBuild) run(ctx context.Context, data string) (string, error) {
	req := internaljob.PreviewBuildRequest{}
	if err := internaljob.UnmarshalRequest(data, &req); err != nil {
		logger.Errorf("preview build unmarshal request err: %s, request body: %s", err.Error(), data)
		return "", err
	}

	if err := validator.New().Struct(req); err != nil {
		logger.Errorf("preview build request %#v validate failed: %s", req, err.Error())
		return "", err
	}

	log := logger.WithJob(req.JobID, internaljob.PreviewBuildJob)
	log.Infof("run preview build for project %d version %d", req.ProjectID, req.VersionID)

	var (
		resp *internaljob.PreviewBuildResponse
		err  error
	)
	if perr := safe.Call(func() {
		resp, err = p.process(ctx, req, log)
	}); perr != nil {
		err = perr
	}

	if err != nil {
		log.Errorf("preview build failed: %s", err.Error())
		if _, ferr := p.tracker.Fail(ctx, req.JobID, err.Error()); ferr != nil {
			log.Errorf("mark job failed error: %s", ferr.Error())
		}
		return "", err
	}

	// A cancelled run completes without a response, the job row holds the
	// terminal state.
	if resp == nil {
		return "", nil
	}

	return internaljob.MarshalResponse(resp)
}

// process drives the build end to end. Every returned error becomes the job
// failure reason.
func (p *previewBuild) process(ctx context.Context, req internaljob.PreviewBuildRequest, log *logger.SugaredLoggerOnWith) (*internaljob.PreviewBuildResponse, error) {
	job, err := p.tracker.Start(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 2, "Validating version..."); err != nil {
		return nil, err
	}

	project, version, err := getProjectVersion(ctx, p.db, req.ProjectID, req.VersionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Project or version not found")
		}
		return nil, err
	}

	if version.Status != models.VersionStatusDraft {
		return nil, errors.Errorf("Cannot build version with status: %s", version.Status)
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 5, "Finding base map assets..."); err != nil {
		return nil, err
	}

	var assets []models.Asset
	if err := p.db.WithContext(ctx).Where(models.Asset{ProjectID: req.ProjectID, AssetType: models.AssetTypeBaseMap}).Order("level").Find(&assets).Error; err != nil {
		return nil, err
	}

	if len(assets) == 0 {
		if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelWarn, "No base map assets found, skipping tile generation"); err != nil {
			return nil, err
		}
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 8, "Generating build ID..."); err != nil {
		return nil, err
	}

	buildID := idgen.BuildID()
	buildPath := p.storage.BuildPrefix(project.Slug, buildID)
	if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Build ID: %s", buildID)); err != nil {
		return nil, err
	}

	// Ordered level names double as the insertion order of the tile
	// metadata, the first tiled level backs the manifest when no project
	// level exists.
	var levels []string
	var failedLevels []string
	tiles := make(map[string]*release.TileMeta, len(assets))
	totalTiles, tilesFailed := 0, 0

	if len(assets) > 0 {
		total := len(assets)
		if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Found %d base map(s) to process", total)); err != nil {
			return nil, err
		}

		for i, asset := range assets {
			if p.tracker.Cancelled(ctx, req.JobID) {
				log.Info("job cancelled, stopping before next base map")
				return nil, nil
			}

			level := asset.Level
			if level == "" {
				level = models.SourceLevelProject
			}

			base := 10 + i*60/total
			window := 60 / total
			if err := setProgress(ctx, p.tracker, req.JobID, base, fmt.Sprintf("Processing base map: %s (%d/%d)...", level, i+1, total)); err != nil {
				return nil, err
			}

			prefix := p.storage.BuildLevelTilePrefix(project.Slug, buildID, level)
			set, err := generateTiles(ctx, p.storage, p.config, asset.StoragePath, prefix, func(uploaded, count int) {
				if uploaded%uploadProgressStep != 0 {
					return
				}

				// Progress write errors surface on the next milestone.
				percent := clampPercent(base, window, uploaded, count)
				p.tracker.UpdateProgress(ctx, req.JobID, percent, fmt.Sprintf("Uploading tiles for %s... (%d/%d)", level, uploaded, count)) // nolint: errcheck
			})
			if err != nil {
				failedLevels = append(failedLevels, level)
				if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelError, fmt.Sprintf("Failed to generate tiles for %s: %v", level, err)); err != nil {
					return nil, err
				}
				continue
			}

			levels = append(levels, level)
			tiles[level] = tileMeta(set, prefix, level)
			totalTiles += set.Uploaded
			tilesFailed += set.Failed
			if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Generated %d tiles for level: %s", set.Uploaded, level)); err != nil {
				return nil, err
			}
		}
	}

	if p.tracker.Cancelled(ctx, req.JobID) {
		log.Info("job cancelled, stopping before manifest build")
		return nil, nil
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 75, "Generating build manifest..."); err != nil {
		return nil, err
	}

	var overlays []models.Overlay
	if err := p.db.WithContext(ctx).Where(models.Overlay{VersionID: req.VersionID}).Order("sort_order, ref").Find(&overlays).Error; err != nil {
		return nil, err
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 85, "Uploading manifest..."); err != nil {
		return nil, err
	}

	manifest, manifestKey, err := p.builder.BuildPreview(ctx, project, overlays, primaryTiles(tiles, levels), buildID, job.CreatedBy)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build manifest")
	}

	previewURL := p.storage.PublicURL(manifestKey)
	if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Preview URL: %s", previewURL)); err != nil {
		return nil, err
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 95, "Finalizing..."); err != nil {
		return nil, err
	}

	metadata, err := tilesMetadataMap(tiles)
	if err != nil {
		return nil, err
	}

	result := models.JSONMap{
		"build_id":      buildID,
		"build_path":    buildPath,
		"preview_url":   previewURL,
		"overlay_count": len(manifest.Overlays),
		"checksum":      manifest.Checksum,
		"tiles": models.JSONMap{
			"levels":      levels,
			"total_count": totalTiles,
			"metadata":    metadata,
		},
		"built_at": time.Now().UTC().Format(time.RFC3339),
	}
	if tilesFailed > 0 {
		result["tiles_failed"] = tilesFailed
	}
	if len(failedLevels) > 0 {
		result["failed_levels"] = failedLevels
	}

	if _, err := p.tracker.Complete(ctx, req.JobID, result); err != nil {
		return nil, err
	}

	return &internaljob.PreviewBuildResponse{
		BuildID:        buildID,
		ManifestPath:   manifestKey,
		TilesGenerated: totalTiles,
		TilesFailed:    tilesFailed,
	}, nil
}

// primaryTiles picks the metadata backing the preview manifest: the project
// level when tiled, otherwise the first tiled level.
func primaryTiles(tiles map[string]*release.TileMeta, levels []string) *release.TileMeta {
	if meta, ok := tiles[models.SourceLevelProject]; ok {
		return meta
	}

	if len(levels) > 0 {
		return tiles[levels[0]]
	}

	return nil
}

// getProjectVersion loads the owning active project and the version of a
// run. gorm.ErrRecordNotFound passes through untouched so callers translate
// it to the job failure reason.
func getProjectVersion(ctx context.Context, db *gorm.DB, projectID, versionID uint) (*models.Project, *models.Version, error) {
	var project models.Project
	if err := db.WithContext(ctx).Where("is_active = ?", true).First(&project, projectID).Error; err != nil {
		return nil, nil, err
	}

	var version models.Version
	if err := db.WithContext(ctx).Where("project_id = ?", projectID).First(&version, versionID).Error; err != nil {
		return nil, nil, err
	}

	return &project, &version, nil
}

// enqueue sends the marshaled request to the global queue under the job's
// task id. Enqueue failures fail the job row in place.
func enqueue(ctx context.Context, j *internaljob.Job, tracker *Tracker, job *models.Job, req any) (*models.Job, error) {
	log := logger.WithJob(job.ID, job.Type)

	args, err := internaljob.MarshalRequest(req)
	if err != nil {
		log.Errorf("marshal request: %v, error: %v", req, err)
		if _, ferr := tracker.Fail(ctx, job.ID, fmt.Sprintf("enqueue: %s", err.Error())); ferr != nil {
			log.Errorf("mark job failed error: %s", ferr.Error())
		}
		return nil, err
	}

	task := &machineryv1tasks.Signature{
		UUID:       job.TaskID,
		Name:       job.Type,
		RoutingKey: j.Queue.String(),
		Args:       args,
	}

	log.Infof("create %s task in queue %v, task: %#v", job.Type, j.Queue, task)
	if _, err := j.Server.SendTaskWithContext(ctx, task); err != nil {
		log.Errorf("create %s task in queue %v failed: %v", job.Type, j.Queue, err)
		if _, ferr := tracker.Fail(ctx, job.ID, fmt.Sprintf("enqueue: %s", err.Error())); ferr != nil {
			log.Errorf("mark job failed error: %s", ferr.Error())
		}
		return nil, err
	}

	return tracker.Get(ctx, job.ID)
}
