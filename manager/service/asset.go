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
	"fmt"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/types"
	"github.com/mapstack/atlas/pkg/objectstorage"
)

// CreateUploadURL hands the client a presigned PUT url for a direct
// upload. Nothing is recorded yet, the asset row appears on confirm.
func (s *service) CreateUploadURL(ctx context.Context, projectID uint, json types.CreateUploadURLRequest) (*types.UploadURLResponse, error) {
	project, err := s.editableProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	// A random prefix keeps repeated uploads of the same filename from
	// overwriting each other.
	uid := uuid.New()
	uniqueFilename := fmt.Sprintf("%x_%s", uid[:6], json.Filename)
	storagePath := s.storage.UploadKey(project.Slug, json.AssetType, uniqueFilename)

	uploadURL, err := s.storage.SignURL(ctx, storagePath, objectstorage.MethodPut)
	if err != nil {
		return nil, err
	}

	return &types.UploadURLResponse{
		UploadURL:        uploadURL,
		StoragePath:      storagePath,
		ExpiresInSeconds: int(s.config.Storage.SignExpire.Seconds()),
	}, nil
}

// ConfirmAsset records an upload the client finished. Each
// (project, level, asset type) slot holds one asset, confirming into an
// occupied slot replaces the previous file.
func (s *service) ConfirmAsset(ctx context.Context, projectID uint, json types.ConfirmAssetRequest) (*models.Asset, error) {
	project, err := s.editableProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.Exists(ctx, json.StoragePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewStateConflictError("Upload confirmation failed: no object at %s", json.StoragePath)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(json.Filename))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	asset := models.Asset{
		ProjectID:        project.ID,
		AssetType:        json.AssetType,
		Level:            json.Level,
		Filename:         json.Filename,
		MimeType:         mimeType,
		FileSize:         json.FileSize,
		StoragePath:      json.StoragePath,
		Width:            metadataInt(json.Metadata, "width"),
		Height:           metadataInt(json.Metadata, "height"),
		ProcessingStatus: models.ProcessingStatusCompleted,
	}

	existing := models.Asset{}
	err = s.db.WithContext(ctx).Where(&models.Asset{
		ProjectID: project.ID,
		AssetType: json.AssetType,
	}).Where("level = ?", json.Level).First(&existing).Error
	switch {
	case err == nil:
		if derr := s.storage.Delete(ctx, existing.StoragePath); derr != nil {
			logger.Warnf("delete replaced asset object %s: %s", existing.StoragePath, derr.Error())
		}

		asset.BaseModel = existing.BaseModel
		if err := s.db.WithContext(ctx).Save(&asset).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &asset, nil
}

func (s *service) GetAsset(ctx context.Context, id uint) (*models.Asset, error) {
	asset := models.Asset{}
	if err := s.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, err
	}

	return &asset, nil
}

func (s *service) GetAssets(ctx context.Context, projectID uint, q types.GetAssetsQuery) ([]models.Asset, int64, error) {
	if err := s.db.WithContext(ctx).First(&models.Project{}, projectID).Error; err != nil {
		return nil, 0, err
	}

	var count int64
	var assets []models.Asset
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Asset{
		ProjectID: projectID,
		AssetType: q.AssetType,
		Level:     q.Level,
	}).Order("created_at desc, id desc").Find(&assets).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return assets, count, nil
}

func (s *service) GetAssetDownloadURL(ctx context.Context, id uint) (*types.AssetDownloadResponse, error) {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	downloadURL, err := s.storage.SignURL(ctx, asset.StoragePath, objectstorage.MethodGet)
	if err != nil {
		return nil, err
	}

	return &types.AssetDownloadResponse{
		DownloadURL:      downloadURL,
		ExpiresInSeconds: int(s.config.Storage.SignExpire.Seconds()),
	}, nil
}

func (s *service) DestroyAsset(ctx context.Context, id uint) error {
	asset := models.Asset{}
	if err := s.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		return err
	}

	if _, err := s.editableProject(ctx, asset.ProjectID); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, asset.StoragePath); err != nil {
		logger.Warnf("delete asset object %s: %s", asset.StoragePath, err.Error())
	}

	return s.db.WithContext(ctx).Unscoped().Delete(&models.Asset{}, id).Error
}

// metadataInt reads an integer out of client-sent JSON metadata, where
// numbers arrive as float64.
func metadataInt(metadata map[string]any, key string) int {
	if metadata == nil {
		return 0
	}

	switch v := metadata[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
