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

package job

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	internaljob "github.com/mapstack/atlas/internal/job"
	"github.com/mapstack/atlas/manager/models"
)

func newTestBuildingTiles(env *jobTestEnv) *buildingTiles {
	return &buildingTiles{
		tracker: env.tracker,
		db:      env.db,
		storage: env.storage,
		config:  env.config,
	}
}

func seedBuilding(t *testing.T, env *jobTestEnv, projectID uint) *models.Building {
	t.Helper()

	building := &models.Building{
		ProjectID: projectID,
		Ref:       "tower-a",
		IsActive:  true,
	}
	require.NoError(t, env.db.Create(building).Error)
	return building
}

func TestBuildingTiles_process(t *testing.T) {
	assert := assert.New(t)
	env := newJobTestEnv(t)
	ctx := context.Background()

	project := seedProject(t, env.db)
	version := seedVersion(t, env.db, project.ID, models.VersionStatusDraft)
	building := seedBuilding(t, env, project.ID)
	require.NoError(t, env.db.Create(&models.BuildingView{
		BuildingID: building.ID,
		Ref:        "floor-2",
		ViewType:   "floor",
		SortOrder:  2,
		IsActive:   true,
		AssetPath:  "uploads/tower/f2.png",
	}).Error)
	require.NoError(t, env.db.Create(&models.BuildingView{
		BuildingID: building.ID,
		Ref:        "facade",
		ViewType:   "facade",
		ViewBox:    "5 5 200 100",
		SortOrder:  1,
		IsActive:   true,
		AssetPath:  "uploads/tower/facade.png",
	}).Error)

	env.serveImage(t, "uploads/tower/f2.png", 64, 64)
	env.serveImage(t, "uploads/tower/facade.png", 64, 64)
	env.allowUploads()

	job := seedTrackedJob(t, env.tracker, internaljob.BuildingTilesJob, project.ID, version.ID, building.ID)
	b := newTestBuildingTiles(env)
	resp, err := b.process(ctx, internaljob.BuildingTilesRequest{
		JobID:      job.ID,
		ProjectID:  project.ID,
		VersionID:  version.ID,
		BuildingID: building.ID,
		BuildID:    "bld_fixed",
	}, logger.WithJob(job.ID, internaljob.BuildingTilesJob))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal("bld_fixed", resp.BuildID)
	assert.Equal(2, resp.ViewsProcessed)
	assert.Equal(2, resp.TilesGenerated)

	keys := env.uploadedKeys()
	assert.Len(keys, 2)
	assert.Contains(keys, "maps/campus/builds/bld_fixed/tiles/buildings/tower-a/facade/0/0_0.png")
	assert.Contains(keys, "maps/campus/builds/bld_fixed/tiles/buildings/tower-a/floor-2/0/0_0.png")

	// A view authored without a view box inherits the raster frame, an
	// authored one is preserved.
	var floor models.BuildingView
	require.NoError(t, env.db.Where("ref = ?", "floor-2").First(&floor).Error)
	assert.Equal("0 0 64 64", floor.ViewBox)
	assert.True(floor.TilesGenerated)

	var facade models.BuildingView
	require.NoError(t, env.db.Where("ref = ?", "facade").First(&facade).Error)
	assert.Equal("5 5 200 100", facade.ViewBox)
	assert.True(facade.TilesGenerated)

	stored, err := env.tracker.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(models.JobStatusCompleted, stored.Status)
	assert.Equal("bld_fixed", stored.Result["build_id"])
	assert.Equal("tower-a", stored.Result["building_ref"])
	assert.Equal(float64(2), stored.Result["views_processed"])
	assert.Equal(float64(2), stored.Result["total_tile_count"])

	views, ok := stored.Result["views"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, views, "facade")
	require.Contains(t, views, "floor-2")
	facadeMeta, ok := views["facade"].(map[string]any)
	require.True(t, ok)
	assert.Equal("5 5 200 100", facadeMeta["view_box"])
	assert.Equal("facade", facadeMeta["view_type"])
	assert.Equal("maps/campus/builds/bld_fixed/tiles/buildings/tower-a/facade", facadeMeta["tiles_path"])

	messages := logMessages(stored)
	assert.Contains(messages, "Found 2 view(s) to process")
	assert.Contains(messages, "Generated 1 tiles for view: facade")
	assert.Contains(messages, "Generated 1 tiles for view: floor-2")
}

func TestBuildingTiles_process_noViews(t *testing.T) {
	assert := assert.New(t)
	env := newJobTestEnv(t)
	ctx := context.Background()

	project := seedProject(t, env.db)
	version := seedVersion(t, env.db, project.ID, models.VersionStatusDraft)
	building := seedBuilding(t, env, project.ID)

	// Inactive views and views without a source asset are not tiled.
	require.NoError(t, env.db.Create(&models.BuildingView{
		BuildingID: building.ID,
		Ref:        "retired",
		ViewType:   "floor",
		IsActive:   false,
		AssetPath:  "uploads/tower/retired.png",
	}).Error)
	require.NoError(t, env.db.Create(&models.BuildingView{
		BuildingID: building.ID,
		Ref:        "pending",
		ViewType:   "floor",
		IsActive:   true,
	}).Error)

	job := seedTrackedJob(t, env.tracker, internaljob.BuildingTilesJob, project.ID, version.ID, building.ID)
	b := newTestBuildingTiles(env)
	resp, err := b.process(ctx, internaljob.BuildingTilesRequest{
		JobID:      job.ID,
		ProjectID:  project.ID,
		VersionID:  version.ID,
		BuildingID: building.ID,
	}, logger.WithJob(job.ID, internaljob.BuildingTilesJob))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(resp.BuildID)
	assert.Equal(0, resp.ViewsProcessed)
	assert.Equal(0, resp.TilesGenerated)

	stored, err := env.tracker.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(models.JobStatusCompleted, stored.Status)
	assert.Equal(float64(0), stored.Result["views_processed"])
	assert.Contains(logMessages(stored), "No views with assets found")
}

func TestBuildingTiles_process_buildingNotFound(t *testing.T) {
	assert := assert.New(t)
	env := newJobTestEnv(t)
	ctx := context.Background()

	project := seedProject(t, env.db)
	version := seedVersion(t, env.db, project.ID, models.VersionStatusDraft)

	job := seedTrackedJob(t, env.tracker, internaljob.BuildingTilesJob, project.ID, version.ID, 77)
	b := newTestBuildingTiles(env)
	resp, err := b.process(ctx, internaljob.BuildingTilesRequest{
		JobID:      job.ID,
		ProjectID:  project.ID,
		VersionID:  version.ID,
		BuildingID: 77,
	}, logger.WithJob(job.ID, internaljob.BuildingTilesJob))
	require.Error(t, err)
	assert.Nil(resp)
	assert.Equal("Building not found", err.Error())
}

func TestBuildingTiles_process_viewFailure(t *testing.T) {
	assert := assert.New(t)
	env := newJobTestEnv(t)
	ctx := context.Background()

	project := seedProject(t, env.db)
	version := seedVersion(t, env.db, project.ID, models.VersionStatusDraft)
	building := seedBuilding(t, env, project.ID)
	require.NoError(t, env.db.Create(&models.BuildingView{
		BuildingID: building.ID,
		Ref:        "floor-1",
		ViewType:   "floor",
		SortOrder:  1,
		IsActive:   true,
		AssetPath:  "uploads/tower/f1.png",
	}).Error)
	require.NoError(t, env.db.Create(&models.BuildingView{
		BuildingID: building.ID,
		Ref:        "floor-2",
		ViewType:   "floor",
		SortOrder:  2,
		IsActive:   true,
		AssetPath:  "uploads/tower/f2.png",
	}).Error)

	env.store.EXPECT().GetObject(gomock.Any(), testBucket, "uploads/tower/f1.png").Return(nil, errors.New("object missing"))
	env.serveImage(t, "uploads/tower/f2.png", 64, 64)
	env.allowUploads()

	job := seedTrackedJob(t, env.tracker, internaljob.BuildingTilesJob, project.ID, version.ID, building.ID)
	b := newTestBuildingTiles(env)
	resp, err := b.process(ctx, internaljob.BuildingTilesRequest{
		JobID:      job.ID,
		ProjectID:  project.ID,
		VersionID:  version.ID,
		BuildingID: building.ID,
		BuildID:    "bld_fixed",
	}, logger.WithJob(job.ID, internaljob.BuildingTilesJob))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(1, resp.ViewsProcessed)
	assert.Equal(1, resp.TilesGenerated)

	var failed models.BuildingView
	require.NoError(t, env.db.Where("ref = ?", "floor-1").First(&failed).Error)
	assert.False(failed.TilesGenerated)

	stored, err := env.tracker.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(models.JobStatusCompleted, stored.Status)
	views, ok := stored.Result["views"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(views, "floor-1")
	assert.Contains(views, "floor-2")
	assert.Contains(logMessages(stored), "Failed to generate tiles for floor-1: object missing")
}
