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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/mapstack/atlas/manager/cache"
	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/job"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/storage"
	"github.com/mapstack/atlas/manager/types"
	"github.com/mapstack/atlas/pkg/sse"
)

// Service is the interface of the rest surface.
type Service interface {
	CreatePreviewBuildJob(ctx context.Context, json types.CreatePreviewBuildJobRequest) (*models.Job, error)
	CreateBuildingTilesJob(ctx context.Context, json types.CreateBuildingTilesJobRequest) (*models.Job, error)
	CreatePublishJob(ctx context.Context, json types.CreatePublishJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id uint) (*models.Job, error)
	GetJobs(ctx context.Context, q types.GetJobsQuery) ([]models.Job, int64, error)
	CancelJob(ctx context.Context, id uint) (*models.Job, error)
	WatchJob(ctx context.Context, id uint) (<-chan *sse.Message, error)

	CreateProject(ctx context.Context, json types.CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id uint) (*models.Project, error)
	GetProjects(ctx context.Context, q types.GetProjectsQuery) ([]models.Project, int64, error)
	UpdateProject(ctx context.Context, id uint, json types.UpdateProjectRequest) (*models.Project, error)

	CreateVersion(ctx context.Context, projectID uint, json types.CreateVersionRequest) (*models.Version, error)
	GetVersion(ctx context.Context, id uint) (*models.Version, error)
	GetVersions(ctx context.Context, projectID uint, q types.GetVersionsQuery) ([]models.Version, int64, error)
	ValidateVersionForPublish(ctx context.Context, id uint) (*job.PublishValidation, error)

	CreateOverlay(ctx context.Context, versionID uint, json types.CreateOverlayRequest) (*models.Overlay, error)
	BulkUpsertOverlays(ctx context.Context, versionID uint, json types.BulkUpsertOverlaysRequest) (*types.BulkUpsertOverlaysResponse, error)
	UpdateOverlay(ctx context.Context, id uint, json types.UpdateOverlayRequest) (*models.Overlay, error)
	DestroyOverlay(ctx context.Context, id uint) error
	GetOverlays(ctx context.Context, versionID uint, q types.GetOverlaysQuery) ([]models.Overlay, int64, error)

	CreateBuilding(ctx context.Context, projectID uint, json types.CreateBuildingRequest) (*models.Building, error)
	GetBuilding(ctx context.Context, id uint) (*models.Building, error)
	UpdateBuilding(ctx context.Context, id uint, json types.UpdateBuildingRequest) (*models.Building, error)
	GetBuildings(ctx context.Context, projectID uint, q types.GetBuildingsQuery) ([]models.Building, int64, error)
	CreateBuildingView(ctx context.Context, buildingID uint, json types.CreateBuildingViewRequest) (*models.BuildingView, error)
	GetBuildingViews(ctx context.Context, buildingID uint, q types.GetBuildingViewsQuery) ([]models.BuildingView, int64, error)

	CreateUploadURL(ctx context.Context, projectID uint, json types.CreateUploadURLRequest) (*types.UploadURLResponse, error)
	ConfirmAsset(ctx context.Context, projectID uint, json types.ConfirmAssetRequest) (*models.Asset, error)
	GetAsset(ctx context.Context, id uint) (*models.Asset, error)
	GetAssets(ctx context.Context, projectID uint, q types.GetAssetsQuery) ([]models.Asset, int64, error)
	GetAssetDownloadURL(ctx context.Context, id uint) (*types.AssetDownloadResponse, error)
	DestroyAsset(ctx context.Context, id uint) error

	GetReleases(ctx context.Context, projectID uint) (*types.GetReleasesResponse, error)
	GetCurrentRelease(ctx context.Context, projectID uint) (*types.CurrentReleaseResponse, error)
	GetReleaseManifest(ctx context.Context, projectID uint, releaseID string) (models.JSONMap, error)
}

type service struct {
	config      *config.Config
	db          *gorm.DB
	cache       *cache.Cache
	job         *job.Job
	storage     *storage.Storage
	broadcaster *sse.Broadcaster
}

// New returns a new Service.
func New(cfg *config.Config, gdb *gorm.DB, cache *cache.Cache, job *job.Job, storage *storage.Storage, broadcaster *sse.Broadcaster) Service {
	return &service{
		config:      cfg,
		db:          gdb,
		cache:       cache,
		job:         job,
		storage:     storage,
		broadcaster: broadcaster,
	}
}
