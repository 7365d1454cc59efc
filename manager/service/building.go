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

	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/types"
)

func (s *service) CreateBuilding(ctx context.Context, projectID uint, json types.CreateBuildingRequest) (*models.Building, error) {
	project, err := s.editableProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	floorsStart := 1
	if json.FloorsStart != nil {
		floorsStart = *json.FloorsStart
	}

	building := models.Building{
		ProjectID:   project.ID,
		Ref:         json.Ref,
		Name:        json.Name,
		FloorsCount: json.FloorsCount,
		FloorsStart: floorsStart,
		SkipFloors:  toIntJSONArray(json.SkipFloors),
		Metadata:    json.Metadata,
		SortOrder:   json.SortOrder,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(&building).Error; err != nil {
		return nil, err
	}

	return &building, nil
}

func (s *service) GetBuilding(ctx context.Context, id uint) (*models.Building, error) {
	building := models.Building{}
	if err := s.db.WithContext(ctx).First(&building, id).Error; err != nil {
		return nil, err
	}

	return &building, nil
}

func (s *service) UpdateBuilding(ctx context.Context, id uint, json types.UpdateBuildingRequest) (*models.Building, error) {
	building := models.Building{}
	if err := s.db.WithContext(ctx).First(&building, id).Error; err != nil {
		return nil, err
	}

	if _, err := s.editableProject(ctx, building.ProjectID); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&building).Updates(models.Building{
		Name:        json.Name,
		FloorsCount: json.FloorsCount,
		SkipFloors:  toIntJSONArray(json.SkipFloors),
		Metadata:    json.Metadata,
	}).Error; err != nil {
		return nil, err
	}

	// Struct updates skip zero values, so the fields where zero is
	// meaningful need explicit column writes.
	if json.FloorsStart != nil {
		if err := s.db.WithContext(ctx).Model(&building).Update("floors_start", *json.FloorsStart).Error; err != nil {
			return nil, err
		}
	}

	if json.SortOrder != nil {
		if err := s.db.WithContext(ctx).Model(&building).Update("sort_order", *json.SortOrder).Error; err != nil {
			return nil, err
		}
	}

	if json.IsActive != nil {
		if err := s.db.WithContext(ctx).Model(&building).Update("is_active", *json.IsActive).Error; err != nil {
			return nil, err
		}
	}

	return &building, nil
}

func (s *service) GetBuildings(ctx context.Context, projectID uint, q types.GetBuildingsQuery) ([]models.Building, int64, error) {
	if err := s.db.WithContext(ctx).First(&models.Project{}, projectID).Error; err != nil {
		return nil, 0, err
	}

	var count int64
	var buildings []models.Building
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Building{
		ProjectID: projectID,
	}).Order("sort_order, ref").Find(&buildings).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return buildings, count, nil
}

func (s *service) CreateBuildingView(ctx context.Context, buildingID uint, json types.CreateBuildingViewRequest) (*models.BuildingView, error) {
	building := models.Building{}
	if err := s.db.WithContext(ctx).First(&building, buildingID).Error; err != nil {
		return nil, err
	}

	if _, err := s.editableProject(ctx, building.ProjectID); err != nil {
		return nil, err
	}

	view := models.BuildingView{
		BuildingID:  building.ID,
		Ref:         json.Ref,
		ViewType:    json.ViewType,
		Label:       json.Label,
		Angle:       json.Angle,
		FloorNumber: json.FloorNumber,
		ViewBox:     json.ViewBox,
		AssetPath:   json.AssetPath,
		SortOrder:   json.SortOrder,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(&view).Error; err != nil {
		return nil, err
	}

	return &view, nil
}

func (s *service) GetBuildingViews(ctx context.Context, buildingID uint, q types.GetBuildingViewsQuery) ([]models.BuildingView, int64, error) {
	if err := s.db.WithContext(ctx).First(&models.Building{}, buildingID).Error; err != nil {
		return nil, 0, err
	}

	var count int64
	var views []models.BuildingView
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.BuildingView{
		BuildingID: buildingID,
		ViewType:   q.ViewType,
	}).Order("view_type, sort_order").Find(&views).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return views, count, nil
}

func toIntJSONArray(values []int) models.JSONArray {
	if values == nil {
		return nil
	}

	arr := make(models.JSONArray, 0, len(values))
	for _, v := range values {
		arr = append(arr, v)
	}

	return arr
}
