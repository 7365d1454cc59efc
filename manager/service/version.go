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

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mapstack/atlas/manager/job"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/types"
)

// CreateVersion opens the next version of a project. Only one draft may
// exist at a time; overlays of the base version are cloned into the new
// draft so editing starts from the published state instead of empty.
func (s *service) CreateVersion(ctx context.Context, projectID uint, json types.CreateVersionRequest) (*models.Version, error) {
	project := models.Project{}
	if err := s.db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		return nil, err
	}

	draft := models.Version{}
	err := s.db.WithContext(ctx).Where(&models.Version{
		ProjectID: project.ID,
		Status:    models.VersionStatusDraft,
	}).First(&draft).Error
	if err == nil {
		return nil, NewStateConflictError(
			"Cannot create new version: draft version %d already exists. Publish or delete the existing draft first.", draft.VersionNumber)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var baseOverlays []models.Overlay
	if json.BaseVersion > 0 {
		base := models.Version{}
		if err := s.db.WithContext(ctx).Where(&models.Version{
			ProjectID:     project.ID,
			VersionNumber: json.BaseVersion,
		}).First(&base).Error; err != nil {
			return nil, err
		}

		if err := s.db.WithContext(ctx).Where(&models.Overlay{VersionID: base.ID}).Find(&baseOverlays).Error; err != nil {
			return nil, err
		}
	}

	var maxNumber int
	if err := s.db.WithContext(ctx).Model(&models.Version{}).Where("project_id = ?", project.ID).
		Select("COALESCE(MAX(version_number), 0)").Scan(&maxNumber).Error; err != nil {
		return nil, err
	}

	version := models.Version{
		ProjectID:     project.ID,
		VersionNumber: maxNumber + 1,
		Name:          json.Name,
		Status:        models.VersionStatusDraft,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&version).Error; err != nil {
			return err
		}

		for i := range baseOverlays {
			overlay := baseOverlays[i]
			overlay.BaseModel = models.BaseModel{}
			overlay.VersionID = version.ID
			if err := tx.Create(&overlay).Error; err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return &version, nil
}

func (s *service) GetVersion(ctx context.Context, id uint) (*models.Version, error) {
	version := models.Version{}
	if err := s.db.WithContext(ctx).First(&version, id).Error; err != nil {
		return nil, err
	}

	return &version, nil
}

func (s *service) GetVersions(ctx context.Context, projectID uint, q types.GetVersionsQuery) ([]models.Version, int64, error) {
	if err := s.db.WithContext(ctx).First(&models.Project{}, projectID).Error; err != nil {
		return nil, 0, err
	}

	var count int64
	var versions []models.Version
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Version{
		ProjectID: projectID,
		Status:    q.Status,
	}).Order("version_number desc").Find(&versions).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return versions, count, nil
}

// ValidateVersionForPublish runs the publish preflight checks without
// enqueueing anything.
func (s *service) ValidateVersionForPublish(ctx context.Context, id uint) (*job.PublishValidation, error) {
	version := models.Version{}
	if err := s.db.WithContext(ctx).First(&version, id).Error; err != nil {
		return nil, err
	}

	return s.job.ValidateForPublish(ctx, version.ProjectID, version.ID)
}
