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

	"gorm.io/gorm"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/manager/cache"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/types"

	cachev8 "github.com/go-redis/cache/v8"
)

// CreateProject creates the project together with its initial draft
// version, the way every project starts its life.
func (s *service) CreateProject(ctx context.Context, json types.CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		Slug:              json.Slug,
		Name:              json.Name,
		BIO:               json.BIO,
		IsActive:          true,
		DefaultViewBox:    json.DefaultViewBox,
		ZoomMin:           json.ZoomMin,
		ZoomMax:           json.ZoomMax,
		ZoomDefault:       json.ZoomDefault,
		DefaultLocale:     json.DefaultLocale,
		SupportedLocales:  json.SupportedLocales,
		StatusStyles:      json.StatusStyles,
		InteractionStyles: json.InteractionStyles,
		CreatedBy:         json.CreatedBy,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		return tx.Create(&models.Version{
			ProjectID:     project.ID,
			VersionNumber: 1,
			Status:        models.VersionStatusDraft,
		}).Error
	}); err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *service) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	cacheKey := cache.MakeProjectCacheKey(id)
	if s.cache != nil {
		if err := s.cache.Get(ctx, cacheKey, &project); err == nil {
			return &project, nil
		}
	}

	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(&cachev8.Item{
			Ctx:   ctx,
			Key:   cacheKey,
			Value: &project,
			TTL:   s.cache.TTL,
		}); err != nil {
			logger.Warnf("cache project %d: %s", id, err.Error())
		}
	}

	return &project, nil
}

func (s *service) GetProjects(ctx context.Context, q types.GetProjectsQuery) ([]models.Project, int64, error) {
	var count int64
	var projects []models.Project
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Project{
		Slug: q.Slug,
		Name: q.Name,
	}).Order("created_at desc, id desc").Find(&projects).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return projects, count, nil
}

func (s *service) UpdateProject(ctx context.Context, id uint, json types.UpdateProjectRequest) (*models.Project, error) {
	project := models.Project{}
	if err := s.db.WithContext(ctx).First(&project, id).Updates(models.Project{
		Name:              json.Name,
		BIO:               json.BIO,
		DefaultViewBox:    json.DefaultViewBox,
		ZoomMin:           json.ZoomMin,
		ZoomMax:           json.ZoomMax,
		ZoomDefault:       json.ZoomDefault,
		DefaultLocale:     json.DefaultLocale,
		SupportedLocales:  json.SupportedLocales,
		StatusStyles:      json.StatusStyles,
		InteractionStyles: json.InteractionStyles,
	}).Error; err != nil {
		return nil, err
	}

	// Struct updates skip zero values, deactivation needs an explicit
	// column write.
	if json.IsActive != nil {
		if err := s.db.WithContext(ctx).Model(&project).Update("is_active", *json.IsActive).Error; err != nil {
			return nil, err
		}
	}

	s.invalidateProjectCache(ctx, id)
	return &project, nil
}

func (s *service) invalidateProjectCache(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.MakeProjectCacheKey(id)); err != nil {
		logger.Warnf("invalidate project cache %d: %s", id, err.Error())
	}
}

// editableProject loads an active project and checks that a draft version
// is open, the gate shared by all project-level mutations.
func (s *service) editableProject(ctx context.Context, id uint) (*models.Project, error) {
	project := models.Project{}
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&project, id).Error; err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Version{}).Where(&models.Version{
		ProjectID: project.ID,
		Status:    models.VersionStatusDraft,
	}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, NewStateConflictError("Project %s has no draft version open for editing", project.Slug)
	}

	return &project, nil
}
