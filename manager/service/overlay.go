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

	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/types"
)

// draftVersion loads the version and rejects edits outside draft status.
func (s *service) draftVersion(ctx context.Context, id uint) (*models.Version, error) {
	version := models.Version{}
	if err := s.db.WithContext(ctx).First(&version, id).Error; err != nil {
		return nil, err
	}

	if version.Status != models.VersionStatusDraft {
		return nil, NewStateConflictError("Cannot modify overlays of a %s version", version.Status)
	}

	return &version, nil
}

func (s *service) CreateOverlay(ctx context.Context, versionID uint, json types.CreateOverlayRequest) (*models.Overlay, error) {
	version, err := s.draftVersion(ctx, versionID)
	if err != nil {
		return nil, err
	}

	overlay := overlayFromRequest(version.ID, json)
	if err := s.db.WithContext(ctx).Create(overlay).Error; err != nil {
		return nil, err
	}

	return overlay, nil
}

// BulkUpsertOverlays creates or updates overlays in one request, matching
// existing rows by (version, overlay_type, ref). Per-item failures are
// collected instead of aborting the batch.
func (s *service) BulkUpsertOverlays(ctx context.Context, versionID uint, json types.BulkUpsertOverlaysRequest) (*types.BulkUpsertOverlaysResponse, error) {
	version, err := s.draftVersion(ctx, versionID)
	if err != nil {
		return nil, err
	}

	resp := types.BulkUpsertOverlaysResponse{Errors: []types.BulkUpsertError{}}
	for i, item := range json.Overlays {
		existing := models.Overlay{}
		err := s.db.WithContext(ctx).Where(&models.Overlay{
			VersionID:   version.ID,
			OverlayType: item.OverlayType,
			Ref:         item.Ref,
		}).First(&existing).Error

		switch {
		case err == nil:
			update := overlayFromRequest(version.ID, item)
			update.BaseModel = existing.BaseModel
			if err := s.db.WithContext(ctx).Save(update).Error; err != nil {
				resp.Errors = append(resp.Errors, types.BulkUpsertError{Index: i, Ref: item.Ref, Error: err.Error()})
				continue
			}
			resp.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.db.WithContext(ctx).Create(overlayFromRequest(version.ID, item)).Error; err != nil {
				resp.Errors = append(resp.Errors, types.BulkUpsertError{Index: i, Ref: item.Ref, Error: err.Error()})
				continue
			}
			resp.Created++
		default:
			resp.Errors = append(resp.Errors, types.BulkUpsertError{Index: i, Ref: item.Ref, Error: err.Error()})
		}
	}

	return &resp, nil
}

func (s *service) UpdateOverlay(ctx context.Context, id uint, json types.UpdateOverlayRequest) (*models.Overlay, error) {
	overlay := models.Overlay{}
	if err := s.db.WithContext(ctx).First(&overlay, id).Error; err != nil {
		return nil, err
	}

	if _, err := s.draftVersion(ctx, overlay.VersionID); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&overlay).Updates(models.Overlay{
		Geometry:      json.Geometry,
		ViewBox:       json.ViewBox,
		Label:         json.Label,
		LabelPosition: toJSONArray(json.LabelPosition),
		Status:        json.Status,
		Props:         json.Props,
		StyleOverride: json.StyleOverride,
	}).Error; err != nil {
		return nil, err
	}

	// Struct updates skip zero values, so the fields where zero is
	// meaningful need explicit column writes.
	if json.SortOrder != nil {
		if err := s.db.WithContext(ctx).Model(&overlay).Update("sort_order", *json.SortOrder).Error; err != nil {
			return nil, err
		}
	}

	if json.IsVisible != nil {
		if err := s.db.WithContext(ctx).Model(&overlay).Update("is_visible", *json.IsVisible).Error; err != nil {
			return nil, err
		}
	}

	return &overlay, nil
}

func (s *service) DestroyOverlay(ctx context.Context, id uint) error {
	overlay := models.Overlay{}
	if err := s.db.WithContext(ctx).First(&overlay, id).Error; err != nil {
		return err
	}

	if _, err := s.draftVersion(ctx, overlay.VersionID); err != nil {
		return err
	}

	// A soft delete would keep the (overlay_type, ref) slot occupied,
	// blocking a later recreate under the unique index.
	if err := s.db.WithContext(ctx).Unscoped().Delete(&models.Overlay{}, id).Error; err != nil {
		return err
	}

	return nil
}

func (s *service) GetOverlays(ctx context.Context, versionID uint, q types.GetOverlaysQuery) ([]models.Overlay, int64, error) {
	if err := s.db.WithContext(ctx).First(&models.Version{}, versionID).Error; err != nil {
		return nil, 0, err
	}

	var count int64
	var overlays []models.Overlay
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Overlay{
		VersionID:   versionID,
		OverlayType: q.OverlayType,
		Level:       q.Level,
		Status:      q.Status,
	}).Order("sort_order, ref").Find(&overlays).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return overlays, count, nil
}

func overlayFromRequest(versionID uint, json types.CreateOverlayRequest) *models.Overlay {
	status := json.Status
	if status == "" {
		status = models.OverlayStatusAvailable
	}

	visible := true
	if json.IsVisible != nil {
		visible = *json.IsVisible
	}

	return &models.Overlay{
		VersionID:     versionID,
		OverlayType:   json.OverlayType,
		Ref:           json.Ref,
		Level:         json.Level,
		Geometry:      json.Geometry,
		ViewBox:       json.ViewBox,
		Label:         json.Label,
		LabelPosition: toJSONArray(json.LabelPosition),
		Status:        status,
		Props:         json.Props,
		StyleOverride: json.StyleOverride,
		SortOrder:     json.SortOrder,
		IsVisible:     visible,
	}
}

func toJSONArray(values []float64) models.JSONArray {
	if values == nil {
		return nil
	}

	arr := make(models.JSONArray, 0, len(values))
	for _, v := range values {
		arr = append(arr, v)
	}

	return arr
}
