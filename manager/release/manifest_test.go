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

package release

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mapstack/atlas/manager/models"
)

func TestChecksum_Deterministic(t *testing.T) {
	overlays := []Overlay{
		{
			Ref:         "unit-102",
			OverlayType: models.OverlayTypeUnit,
			Geometry:    models.JSONMap{"type": "path", "d": "M10,10 L20,20 Z"},
			Label:       models.JSONMap{"en": "Unit 102"},
			Layer:       "zone-a",
			SortOrder:   2,
		},
		{
			Ref:           "unit-101",
			OverlayType:   models.OverlayTypeUnit,
			Geometry:      models.JSONMap{"type": "path", "d": "M0,0 L10,10 Z"},
			LabelPosition: models.JSONArray{12.5, 40.0},
			Props:         models.JSONMap{"bedrooms": 2},
			Layer:         "zone-a",
			SortOrder:     1,
		},
		{
			Ref:         "zone-a",
			OverlayType: models.OverlayTypeZone,
			Geometry:    models.JSONMap{"type": "path", "d": "M0,0 L100,100 Z"},
			Layer:       "zone-a",
		},
	}
	reversed := []Overlay{overlays[2], overlays[1], overlays[0]}

	assert := assert.New(t)

	checksum, err := Checksum(overlays)
	assert.NoError(err)
	assert.True(strings.HasPrefix(checksum, "sha256:"))

	reversedChecksum, err := Checksum(reversed)
	assert.NoError(err)
	assert.Equal(checksum, reversedChecksum)

	changed := make([]Overlay, len(overlays))
	copy(changed, overlays)
	changed[0].SortOrder = 9
	changedChecksum, err := Checksum(changed)
	assert.NoError(err)
	assert.NotEqual(checksum, changedChecksum)
}

func TestChecksum_Empty(t *testing.T) {
	assert := assert.New(t)

	checksum, err := Checksum(nil)
	assert.NoError(err)
	assert.True(strings.HasPrefix(checksum, "sha256:"))

	emptyChecksum, err := Checksum([]Overlay{})
	assert.NoError(err)
	assert.Equal(checksum, emptyChecksum)
}

func TestZoneLevels(t *testing.T) {
	tests := []struct {
		name     string
		overlays []models.Overlay
		expect   []string
	}{
		{
			name:   "no overlays",
			expect: nil,
		},
		{
			name: "zone overlays carry no content level",
			overlays: []models.Overlay{
				{Ref: "zone-a", OverlayType: models.OverlayTypeZone, Level: "zone-a"},
				{Ref: "zone-b", OverlayType: models.OverlayTypeZone, Level: "zone-b"},
			},
			expect: nil,
		},
		{
			name: "distinct sorted levels",
			overlays: []models.Overlay{
				{Ref: "unit-3", OverlayType: models.OverlayTypeUnit, Level: "zone-b"},
				{Ref: "unit-1", OverlayType: models.OverlayTypeUnit, Level: "zone-a"},
				{Ref: "unit-2", OverlayType: models.OverlayTypeUnit, Level: "zone-a"},
				{Ref: "zone-a", OverlayType: models.OverlayTypeZone, Level: "zone-a"},
			},
			expect: []string{"zone-a", "zone-b"},
		},
		{
			name: "project and empty levels excluded",
			overlays: []models.Overlay{
				{Ref: "landmark", OverlayType: models.OverlayTypeLabel, Level: models.SourceLevelProject},
				{Ref: "legend", OverlayType: models.OverlayTypeLabel},
				{Ref: "unit-1", OverlayType: models.OverlayTypeUnit, Level: "zone-a"},
			},
			expect: []string{"zone-a"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, ZoneLevels(tc.overlays))
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	project := &models.Project{
		Slug:             "marina-bay",
		DefaultViewBox:   "0 0 8192 8192",
		ZoomMin:          0.25,
		ZoomMax:          6,
		ZoomDefault:      1,
		DefaultLocale:    "en",
		SupportedLocales: models.Array{"en", "ar"},
		StatusStyles:     models.JSONMap{"available": map[string]any{"fill": "#00FF00"}},
	}
	overlays := []models.Overlay{
		{Ref: "zone-b", OverlayType: models.OverlayTypeZone, Level: "zone-b", Geometry: models.JSONMap{"type": "path"}, SortOrder: 2},
		{Ref: "zone-a", OverlayType: models.OverlayTypeZone, Level: "zone-a", Geometry: models.JSONMap{"type": "path"}, Label: models.JSONMap{"en": "Zone A"}, SortOrder: 1},
		{Ref: "unit-102", OverlayType: models.OverlayTypeUnit, Level: "zone-a", Geometry: models.JSONMap{"type": "path"}, ViewBox: "0 0 1024 768", SortOrder: 2},
		{Ref: "unit-101", OverlayType: models.OverlayTypeUnit, Level: "zone-a", Geometry: models.JSONMap{"type": "path"}, SortOrder: 1},
		{Ref: "unit-201", OverlayType: models.OverlayTypeUnit, Level: "zone-b", Geometry: models.JSONMap{"type": "path"}, SortOrder: 1},
		{Ref: "legend", OverlayType: models.OverlayTypeLabel, Geometry: models.JSONMap{"type": "text"}, SortOrder: 3},
	}

	tests := []struct {
		name   string
		level  string
		tiles  *TileMeta
		expect func(t *testing.T, manifest *Manifest)
	}{
		{
			name:  "project level keeps zone and project-scoped overlays",
			level: models.SourceLevelProject,
			tiles: &TileMeta{Format: "jpeg", TileSize: 256, Overlap: 1, Levels: 5, Width: 4096, Height: 4096},
			expect: func(t *testing.T, manifest *Manifest) {
				assert := assert.New(t)
				assert.Equal(ManifestVersion, manifest.Version)
				assert.Equal("rel_20250813094215_1f0a9c3e", manifest.ReleaseID)
				assert.Equal("marina-bay", manifest.ProjectSlug)
				assert.Equal("editor@example.com", manifest.PublishedBy)
				assert.False(manifest.PublishedAt.IsZero())
				assert.Equal("0 0 8192 8192", manifest.Config.DefaultViewBox)
				assert.Equal(Zoom{Min: 0.25, Max: 6, Default: 1}, manifest.Config.DefaultZoom)
				assert.Equal([]string{"en", "ar"}, manifest.Config.SupportedLocales)
				assert.Equal(models.JSONMap{"available": map[string]any{"fill": "#00FF00"}}, manifest.Config.StatusStyles)
				assert.Equal(DefaultInteractionStyles, manifest.Config.InteractionStyles)
				assert.Equal(&TileConfig{BaseURL: "tiles/project", Format: "jpeg", TileSize: 256, Overlap: 1, Levels: 5, Width: 4096, Height: 4096}, manifest.Tiles)
				assert.Len(manifest.Overlays, 3)
				assert.Equal("zone-a", manifest.Overlays[0].Ref)
				assert.Equal("zone-b", manifest.Overlays[1].Ref)
				assert.Equal("legend", manifest.Overlays[2].Ref)
				assert.True(strings.HasPrefix(manifest.Checksum, "sha256:"))
			},
		},
		{
			name:  "zone level filters overlays and inherits authored view box",
			level: "zone-a",
			expect: func(t *testing.T, manifest *Manifest) {
				assert := assert.New(t)
				assert.Equal("0 0 1024 768", manifest.Config.DefaultViewBox)
				assert.Nil(manifest.Tiles)
				assert.Len(manifest.Overlays, 2)
				assert.Equal("unit-101", manifest.Overlays[0].Ref)
				assert.Equal("unit-102", manifest.Overlays[1].Ref)
				assert.Equal("zone-a", manifest.Overlays[0].Layer)
				assert.Equal(models.JSONMap{}, manifest.Overlays[0].Props)
			},
		},
		{
			name:  "zone level without authored view box keeps project frame",
			level: "zone-b",
			expect: func(t *testing.T, manifest *Manifest) {
				assert := assert.New(t)
				assert.Equal("0 0 8192 8192", manifest.Config.DefaultViewBox)
				assert.Len(manifest.Overlays, 1)
				assert.Equal("unit-201", manifest.Overlays[0].Ref)
			},
		},
		{
			name:  "unknown level yields empty but valid manifest",
			level: "zone-z",
			expect: func(t *testing.T, manifest *Manifest) {
				assert := assert.New(t)
				assert.NotNil(manifest.Overlays)
				assert.Len(manifest.Overlays, 0)
				assert.True(strings.HasPrefix(manifest.Checksum, "sha256:"))
			},
		},
	}

	builder := NewBuilder(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			manifest, err := builder.Build(project, overlays, tc.tiles, tc.level, "rel_20250813094215_1f0a9c3e", "editor@example.com")
			assert.NoError(t, err)
			tc.expect(t, manifest)
		})
	}
}

func TestBuilder_Build_Defaults(t *testing.T) {
	builder := NewBuilder(nil)
	manifest, err := builder.Build(&models.Project{Slug: "bare"}, nil, &TileMeta{}, models.SourceLevelProject, "rel_1", "editor@example.com")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(DefaultViewBox, manifest.Config.DefaultViewBox)
	assert.Equal(Zoom{Min: DefaultZoomMin, Max: DefaultZoomMax, Default: DefaultZoomDefault}, manifest.Config.DefaultZoom)
	assert.Equal(DefaultLocale, manifest.Config.DefaultLocale)
	assert.Equal([]string{DefaultLocale}, manifest.Config.SupportedLocales)
	assert.Equal(DefaultStatusStyles, manifest.Config.StatusStyles)
	assert.Equal(DefaultInteractionStyles, manifest.Config.InteractionStyles)
	assert.Equal(&TileConfig{BaseURL: "tiles/project", Format: "jpeg", TileSize: 256, Overlap: 0, Levels: 1, Width: DefaultTileWidth, Height: DefaultTileHeight}, manifest.Tiles)
	assert.NotNil(manifest.Overlays)
	assert.Len(manifest.Overlays, 0)
	assert.True(strings.HasPrefix(manifest.Checksum, "sha256:"))
}
