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
	"encoding/json"

	"gorm.io/gorm"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/manager/cache"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/types"
	"github.com/mapstack/atlas/pkg/objectstorage"

	cachev8 "github.com/go-redis/cache/v8"
)

func (s *service) GetReleases(ctx context.Context, projectID uint) (*types.GetReleasesResponse, error) {
	project := models.Project{}
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&project, projectID).Error; err != nil {
		return nil, err
	}

	var versions []models.Version
	if err := s.db.WithContext(ctx).Where(&models.Version{
		ProjectID: project.ID,
		Status:    models.VersionStatusPublished,
	}).Where("release_id <> ''").Order("published_at desc").Find(&versions).Error; err != nil {
		return nil, err
	}

	releases := make([]types.ReleaseInfo, 0, len(versions))
	for _, v := range versions {
		releases = append(releases, types.ReleaseInfo{
			VersionNumber: v.VersionNumber,
			ReleaseID:     v.ReleaseID,
			ReleaseURL:    v.ReleaseURL,
			PublishedAt:   v.PublishedAt,
			PublishedBy:   v.PublishedBy,
			IsCurrent:     v.ReleaseID == project.CurrentReleaseID,
		})
	}

	return &types.GetReleasesResponse{
		ProjectSlug:      project.Slug,
		CurrentReleaseID: project.CurrentReleaseID,
		Releases:         releases,
		Total:            len(releases),
	}, nil
}

// GetCurrentRelease resolves the release the project currently serves and
// signs a short-lived manifest url for it.
func (s *service) GetCurrentRelease(ctx context.Context, projectID uint) (*types.CurrentReleaseResponse, error) {
	project := models.Project{}
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&project, projectID).Error; err != nil {
		return nil, err
	}

	if project.CurrentReleaseID == "" {
		return nil, gorm.ErrRecordNotFound
	}

	version := models.Version{}
	if err := s.db.WithContext(ctx).Where(&models.Version{
		ProjectID: project.ID,
		ReleaseID: project.CurrentReleaseID,
	}).First(&version).Error; err != nil {
		return nil, err
	}

	manifestPath := s.storage.ReleaseManifest(project.Slug, version.ReleaseID)
	manifestURL, err := s.storage.SignURL(ctx, manifestPath, objectstorage.MethodGet)
	if err != nil {
		return nil, err
	}

	return &types.CurrentReleaseResponse{
		ReleaseInfo: types.ReleaseInfo{
			VersionNumber: version.VersionNumber,
			ReleaseID:     version.ReleaseID,
			ReleaseURL:    version.ReleaseURL,
			PublishedAt:   version.PublishedAt,
			PublishedBy:   version.PublishedBy,
			IsCurrent:     true,
		},
		ManifestPath: manifestPath,
		ManifestURL:  manifestURL,
	}, nil
}

// GetReleaseManifest proxies the manifest of one release out of object
// storage. Releases are immutable, so the parsed document caches well.
func (s *service) GetReleaseManifest(ctx context.Context, projectID uint, releaseID string) (models.JSONMap, error) {
	project := models.Project{}
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&project, projectID).Error; err != nil {
		return nil, err
	}

	version := models.Version{}
	if err := s.db.WithContext(ctx).Where(&models.Version{
		ProjectID: project.ID,
		ReleaseID: releaseID,
	}).First(&version).Error; err != nil {
		return nil, err
	}

	var manifest models.JSONMap
	cacheKey := cache.MakeReleaseCacheKey(releaseID)
	if s.cache != nil {
		if err := s.cache.Get(ctx, cacheKey, &manifest); err == nil {
			return manifest, nil
		}
	}

	data, err := s.storage.Get(ctx, s.storage.ReleaseManifest(project.Slug, releaseID))
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(&cachev8.Item{
			Ctx:   ctx,
			Key:   cacheKey,
			Value: &manifest,
			TTL:   s.cache.TTL,
		}); err != nil {
			logger.Warnf("cache release manifest %s: %s", releaseID, err.Error())
		}
	}

	return manifest, nil
}
