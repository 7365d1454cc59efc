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

//go:generate mockgen -destination mocks/publish_mock.go -source publish.go -package mocks

package job

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	internaljob "github.com/mapstack/atlas/internal/job"
	"github.com/mapstack/atlas/manager/cache"
	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/metrics"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/release"
	"github.com/mapstack/atlas/manager/storage"
	"github.com/mapstack/atlas/manager/types"
	"github.com/mapstack/atlas/pkg/idgen"
	"github.com/mapstack/atlas/pkg/safe"
	"github.com/mapstack/atlas/pkg/structure"
	"github.com/mapstack/atlas/pkg/transfer"
)

// PublishValidation is the publish readiness report of a version.
type PublishValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Publish is an interface for publish job.
type Publish interface {
	// CreatePublish enqueues a publish job and returns its record.
	CreatePublish(context.Context, types.PublishArgs) (*models.Job, error)

	// ValidateForPublish reports whether the version can be published.
	ValidateForPublish(ctx context.Context, projectID, versionID uint) (*PublishValidation, error)
}

// publish is an implementation of Publish.
type publish struct {
	job     *internaljob.Job
	tracker *Tracker
	db      *gorm.DB
	cache   *cache.Cache
	storage *storage.Storage
	builder *release.Builder
	config  *config.JobConfig
}

// newPublish returns a new Publish.
func newPublish(job *internaljob.Job, tracker *Tracker, gdb *gorm.DB, cache *cache.Cache, storage *storage.Storage, cfg *config.JobConfig) (*publish, error) {
	return &publish{
		job:     job,
		tracker: tracker,
		db:      gdb,
		cache:   cache,
		storage: storage,
		builder: release.NewBuilder(storage),
		config:  cfg,
	}, nil
}

// CreatePublish creates the job record and sends the publish task to the
// queue.
func (p *publish) CreatePublish(ctx context.Context, args types.PublishArgs) (*models.Job, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, config.SpanPublish, trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(config.AttributeProjectID.Int(int(args.ProjectID)))
	span.SetAttributes(config.AttributeVersionID.Int(int(args.VersionID)))
	if args.BuildID != "" {
		span.SetAttributes(config.AttributeBuildID.String(args.BuildID))
	}
	defer span.End()

	taskID := fmt.Sprintf("task_%s", uuid.New().String())
	job := &models.Job{
		TaskID:    taskID,
		Type:      internaljob.PublishJob,
		ProjectID: args.ProjectID,
		VersionID: args.VersionID,
		CreatedBy: args.PublishedBy,
	}
	if err := p.tracker.Create(ctx, job); err != nil {
		return nil, err
	}

	return enqueue(ctx, p.job, p.tracker, job, internaljob.PublishRequest{
		JobID:       job.ID,
		ProjectID:   args.ProjectID,
		VersionID:   args.VersionID,
		BuildID:     args.BuildID,
		PublishedBy: args.PublishedBy,
	})
}

// ValidateForPublish collects the blocking errors and advisory warnings of
// publishing the version right now.
func (p *publish) ValidateForPublish(ctx context.Context, projectID, versionID uint) (*PublishValidation, error) {
	validation := &PublishValidation{}

	project, version, err := getProjectVersion(ctx, p.db, projectID, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			validation.Errors = append(validation.Errors, "Project or version not found")
			return validation, nil
		}
		return nil, err
	}

	if version.Status != models.VersionStatusDraft {
		validation.Errors = append(validation.Errors, "Only draft versions can be published")
	}

	if project.DefaultViewBox == "" {
		validation.Warnings = append(validation.Warnings, "No configuration defined, will use defaults")
	}

	var overlayCount int64
	if err := p.db.WithContext(ctx).Model(&models.Overlay{}).Where("version_id = ?", versionID).Count(&overlayCount).Error; err != nil {
		return nil, err
	}
	if overlayCount == 0 {
		validation.Warnings = append(validation.Warnings, "No overlays defined")
	}

	var buildCount int64
	if err := p.db.WithContext(ctx).Model(&models.Job{}).Where(models.Job{
		ProjectID: projectID,
		VersionID: versionID,
		Type:      internaljob.PreviewBuildJob,
		Status:    models.JobStatusCompleted,
	}).Count(&buildCount).Error; err != nil {
		return nil, err
	}
	if buildCount == 0 {
		validation.Warnings = append(validation.Warnings, "No build found - consider running build first to generate tiles")
	}

	validation.Valid = len(validation.Errors) == 0
	return validation, nil
}

// run is the machinery task func of the publish job.
func (p *publish) run(ctx context.Context, data string) (string, error) {
	req := internaljob.PublishRequest{}
	if err := internaljob.UnmarshalRequest(data, &req); err != nil {
		logger.Errorf("publish unmarshal request err: %s, request body: %s", err.Error(), data)
		return "", err
	}

	if err := validator.New().Struct(req); err != nil {
		logger.Errorf("publish request %#v validate failed: %s", req, err.Error())
		return "", err
	}

	log := logger.WithJob(req.JobID, internaljob.PublishJob)
	log.Infof("run publish for project %d version %d", req.ProjectID, req.VersionID)

	var (
		resp *internaljob.PublishResponse
		err  error
	)
	if perr := safe.Call(func() {
		resp, err = p.process(ctx, req, log)
	}); perr != nil {
		err = perr
	}

	if err != nil {
		log.Errorf("publish failed: %s", err.Error())
		if _, ferr := p.tracker.Fail(ctx, req.JobID, err.Error()); ferr != nil {
			log.Errorf("mark job failed error: %s", ferr.Error())
		}
		return "", err
	}

	if resp == nil {
		return "", nil
	}

	return internaljob.MarshalResponse(resp)
}

// process promotes a finished build into an immutable release. All object
// writes land before the first database write, a crash mid-way leaves the
// version draft and the release folder orphaned but unreferenced.
func (p *publish) process(ctx context.Context, req internaljob.PublishRequest, log *logger.SugaredLoggerOnWith) (*internaljob.PublishResponse, error) {
	if _, err := p.tracker.Start(ctx, req.JobID); err != nil {
		return nil, err
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 5, "Validating version..."); err != nil {
		return nil, err
	}

	validation, err := p.ValidateForPublish(ctx, req.ProjectID, req.VersionID)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		return nil, errors.New("Validation failed: " + strings.Join(validation.Errors, ", "))
	}
	for _, warning := range validation.Warnings {
		if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelWarn, fmt.Sprintf("Warning: %s", warning)); err != nil {
			return nil, err
		}
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 8, "Finding build artifacts..."); err != nil {
		return nil, err
	}

	project, version, err := getProjectVersion(ctx, p.db, req.ProjectID, req.VersionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Project or version not found")
		}
		return nil, err
	}

	buildID, buildPath, tiles, err := p.findBuild(ctx, req, project, log)
	if err != nil {
		return nil, err
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 10, "Generating release ID..."); err != nil {
		return nil, err
	}

	releaseID := idgen.ReleaseID()
	if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Release ID: %s", releaseID)); err != nil {
		return nil, err
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 20, "Copying tiles to release folder..."); err != nil {
		return nil, err
	}

	tilesCopied, tilesFailed := p.copyTiles(ctx, req.JobID, project.Slug, buildID, buildPath, releaseID)

	if err := setProgress(ctx, p.tracker, req.JobID, 60, "Generating release manifest..."); err != nil {
		return nil, err
	}

	var overlays []models.Overlay
	if err := p.db.WithContext(ctx).Where(models.Overlay{VersionID: req.VersionID}).Order("sort_order, ref").Find(&overlays).Error; err != nil {
		return nil, err
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 80, "Uploading release manifest..."); err != nil {
		return nil, err
	}

	manifest, manifestKey, err := p.builder.BuildAll(ctx, project, overlays, tiles, releaseID, req.PublishedBy)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build release manifest")
	}

	releaseURL := p.storage.PublicURL(manifestKey)
	if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Release URL: %s", releaseURL)); err != nil {
		return nil, err
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 90, "Updating database..."); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	version.Status = models.VersionStatusPublished
	version.ReleaseID = releaseID
	version.ReleaseURL = releaseURL
	version.PublishedAt = &now
	version.PublishedBy = req.PublishedBy
	if err := p.db.WithContext(ctx).Save(version).Error; err != nil {
		return nil, err
	}

	project.CurrentReleaseID = releaseID
	if err := p.db.WithContext(ctx).Save(project).Error; err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Delete(ctx, cache.MakeProjectCacheKey(project.ID)); err != nil {
			log.Warnf("invalidate project cache: %s", err.Error())
		}
	}

	if err := setProgress(ctx, p.tracker, req.JobID, 95, "Finalizing..."); err != nil {
		return nil, err
	}
	metrics.PublishCount.Inc()

	result := models.JSONMap{
		"release_id":    releaseID,
		"release_url":   releaseURL,
		"manifest_path": manifestKey,
		"overlay_count": len(manifest.Overlays),
		"checksum":      manifest.Checksum,
		"build_id":      buildID,
		"tiles_copied":  tilesCopied,
		"zones":         len(manifest.Zones),
		"published_at":  now.Format(time.RFC3339),
	}
	if tilesFailed > 0 {
		result["tiles_failed"] = tilesFailed
	}

	if _, err := p.tracker.Complete(ctx, req.JobID, result); err != nil {
		return nil, err
	}

	return &internaljob.PublishResponse{
		ReleaseID:     releaseID,
		ManifestPath:  manifestKey,
		ObjectsCopied: tilesCopied,
		ZoneCount:     len(manifest.Zones),
	}, nil
}

// findBuild resolves the build to publish. An explicit build id wins,
// otherwise the latest completed preview build of the version is used. No
// build at all is allowed, the release then carries manifests only.
func (p *publish) findBuild(ctx context.Context, req internaljob.PublishRequest, project *models.Project, log *logger.SugaredLoggerOnWith) (string, string, map[string]*release.TileMeta, error) {
	if req.BuildID != "" {
		buildPath := p.storage.BuildPrefix(project.Slug, req.BuildID)
		if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Using specified build: %s", req.BuildID)); err != nil {
			return "", "", nil, err
		}

		return req.BuildID, buildPath, nil, nil
	}

	var build models.Job
	err := p.db.WithContext(ctx).Where(models.Job{
		ProjectID: req.ProjectID,
		VersionID: req.VersionID,
		Type:      internaljob.PreviewBuildJob,
		Status:    models.JobStatusCompleted,
	}).Order("completed_at desc").First(&build).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelWarn, "No build found"); err != nil {
				return "", "", nil, err
			}

			return "", "", nil, nil
		}
		return "", "", nil, err
	}

	buildID, _ := build.Result["build_id"].(string)
	buildPath, _ := build.Result["build_path"].(string)
	tiles := buildTilesMetadata(build.Result)
	if err := addLog(ctx, p.tracker, req.JobID, models.JobLogLevelInfo, fmt.Sprintf("Using latest build: %s", buildID)); err != nil {
		return "", "", nil, err
	}

	return buildID, buildPath, tiles, nil
}

// copyTiles copies the build tile tree under the release prefix. Copy
// trouble degrades the release to manifests only, it never fails the job.
func (p *publish) copyTiles(ctx context.Context, jobID uint, slug, buildID, buildPath, releaseID string) (int, int) {
	warn := func(err error) {
		addLog(ctx, p.tracker, jobID, models.JobLogLevelWarn, fmt.Sprintf("Tile copy warning: %v", err)) // nolint: errcheck
	}

	if buildPath == "" {
		addLog(ctx, p.tracker, jobID, models.JobLogLevelWarn, "No tiles to copy") // nolint: errcheck
		return 0, 0
	}

	srcPrefix := p.storage.BuildTilePrefix(slug, buildID)
	destPrefix := p.storage.ReleaseTilePrefix(slug, releaseID)
	objects, err := p.storage.List(ctx, srcPrefix)
	if err != nil {
		warn(err)
		return 0, 0
	}

	if len(objects) == 0 {
		addLog(ctx, p.tracker, jobID, models.JobLogLevelWarn, "No tiles in build folder") // nolint: errcheck
		return 0, 0
	}

	items := make([]transfer.Item, 0, len(objects))
	for _, object := range objects {
		items = append(items, transfer.Item{
			SourceKey: object.Key,
			DestKey:   path.Join(destPrefix, strings.TrimPrefix(object.Key, srcPrefix+"/")),
		})
	}

	total := len(items)
	result, err := p.storage.Transfer(p.config.TransferConcurrency).Run(ctx, transfer.ModeCopy, items, func(completed int) {
		if completed%copyProgressStep != 0 && completed != total {
			return
		}

		percent := 20 + completed*40/total
		if percent > 60 {
			percent = 60
		}
		p.tracker.UpdateProgress(ctx, jobID, percent, fmt.Sprintf("Copying tiles... (%d/%d)", completed, total)) // nolint: errcheck
	})
	if result != nil {
		metrics.TransferCount.WithLabelValues(string(transfer.ModeCopy)).Add(float64(result.Completed()))
		metrics.TransferFailureCount.WithLabelValues(string(transfer.ModeCopy)).Add(float64(len(result.Failed())))
	}
	if err != nil {
		warn(err)
	}
	if result == nil {
		return 0, 0
	}

	copied, failed := result.Completed(), len(result.Failed())
	if failed > 0 {
		addLog(ctx, p.tracker, jobID, models.JobLogLevelWarn, fmt.Sprintf("Tile copy warning: %d tiles failed to copy", failed)) // nolint: errcheck
	}

	addLog(ctx, p.tracker, jobID, models.JobLogLevelInfo, fmt.Sprintf("Copied %d tiles from build", copied)) // nolint: errcheck
	return copied, failed
}

// buildTilesMetadata rebuilds the per-level tile metadata embedded in a
// completed build job result.
func buildTilesMetadata(result models.JSONMap) map[string]*release.TileMeta {
	tilesRaw, ok := result["tiles"].(map[string]any)
	if !ok {
		return nil
	}

	metadataRaw, ok := tilesRaw["metadata"].(map[string]any)
	if !ok {
		return nil
	}

	tiles := map[string]*release.TileMeta{}
	for level, raw := range metadataRaw {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		meta := &release.TileMeta{}
		if err := structure.FromMap(m, meta); err != nil {
			continue
		}

		tiles[level] = meta
	}

	if len(tiles) == 0 {
		return nil
	}

	return tiles
}
