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
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/pkg/digest"
	"github.com/mapstack/atlas/pkg/structure"
	"github.com/mapstack/atlas/pkg/tiler"
)

// ManifestVersion is the release.json schema version. Viewers refuse
// manifests with a version they do not understand, so bump it only with a
// coordinated viewer rollout.
const ManifestVersion = 3

const (
	DefaultViewBox     = "0 0 4096 4096"
	DefaultZoomMin     = 0.5
	DefaultZoomMax     = 4.0
	DefaultZoomDefault = 1.0
	DefaultLocale      = "en"

	DefaultTileWidth  = 4096
	DefaultTileHeight = 4096
)

// DefaultStatusStyles is the built-in overlay styling per status, used when
// a project defines no status styles of its own. Treated as read-only.
var DefaultStatusStyles = models.JSONMap{
	models.OverlayStatusAvailable: map[string]any{
		"fill":        "rgba(75, 156, 85, 0.50)",
		"fillOpacity": 0.7,
		"stroke":      "#FFFFFF",
		"strokeWidth": 1,
		"solid":       "#4B9C55",
	},
	models.OverlayStatusReserved: map[string]any{
		"fill":        "rgba(255, 193, 7, 0.60)",
		"fillOpacity": 0.6,
		"stroke":      "#FFFFFF",
		"strokeWidth": 1,
		"solid":       "#FFC107",
	},
	models.OverlayStatusSold: map[string]any{
		"fill":        "rgba(170, 70, 55, 0.60)",
		"fillOpacity": 0.5,
		"stroke":      "#FFFFFF",
		"strokeWidth": 1,
		"solid":       "#AA4637",
	},
	models.OverlayStatusHidden: map[string]any{
		"fill":        "rgba(158, 158, 158, 0.30)",
		"fillOpacity": 0.3,
		"stroke":      "#FFFFFF",
		"strokeWidth": 1,
		"solid":       "#9E9E9E",
	},
	models.OverlayStatusUnreleased: map[string]any{
		"fill":        "transparent",
		"fillOpacity": 0,
		"stroke":      "transparent",
		"strokeWidth": 0,
		"solid":       "#616161",
	},
}

// DefaultInteractionStyles is the built-in hover/active styling, used when a
// project defines no interaction styles of its own. Treated as read-only.
var DefaultInteractionStyles = models.JSONMap{
	"hover": map[string]any{
		"fill":        "rgba(218, 165, 32, 0.3)",
		"stroke":      "#F1DA9E",
		"strokeWidth": 2,
	},
	"active": map[string]any{
		"fill":        "rgba(63, 82, 119, 0.4)",
		"stroke":      "#3F5277",
		"strokeWidth": 2,
	},
}

// Manifest is the release.json artifact consumed by public viewers. Once a
// release is published the manifest is immutable; other services resolve it
// directly by its storage path.
type Manifest struct {
	Version     int                `json:"version"`
	ReleaseID   string             `json:"release_id"`
	ProjectSlug string             `json:"project_slug"`
	PublishedAt time.Time          `json:"published_at"`
	PublishedBy string             `json:"published_by"`
	Config      Config             `json:"config"`
	Tiles       *TileConfig        `json:"tiles,omitempty"`
	Overlays    []Overlay          `json:"overlays"`
	Zones       []ZoneManifestInfo `json:"zones,omitempty"`
	Checksum    string             `json:"checksum"`
}

// Config is the viewer configuration block of a manifest.
type Config struct {
	DefaultViewBox    string         `json:"default_view_box"`
	DefaultZoom       Zoom           `json:"default_zoom"`
	DefaultLocale     string         `json:"default_locale"`
	SupportedLocales  []string       `json:"supported_locales"`
	StatusStyles      models.JSONMap `json:"status_styles"`
	InteractionStyles models.JSONMap `json:"interaction_styles"`
}

type Zoom struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// TileConfig describes the tile pyramid backing a manifest. BaseURL is
// relative to the manifest location.
type TileConfig struct {
	BaseURL  string `json:"base_url"`
	Format   string `json:"format"`
	TileSize int    `json:"tile_size"`
	Overlap  int    `json:"overlap"`
	Levels   int    `json:"levels"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Overlay is one renderable overlay entry of a manifest. Layer carries the
// source level the overlay was authored on.
type Overlay struct {
	Ref           string           `json:"ref"`
	OverlayType   string           `json:"overlay_type"`
	Geometry      models.JSONMap   `json:"geometry"`
	Label         models.JSONMap   `json:"label"`
	LabelPosition models.JSONArray `json:"label_position"`
	Props         models.JSONMap   `json:"props"`
	Layer         string           `json:"layer"`
	SortOrder     int              `json:"sort_order"`
}

// ZoneManifestInfo points from a project manifest to one zone sub-manifest.
// ManifestPath is relative to the release directory.
type ZoneManifestInfo struct {
	ZoneRef      string         `json:"zone_ref"`
	Level        string         `json:"level"`
	ManifestPath string         `json:"manifest_path"`
	Label        models.JSONMap `json:"label"`
}

// TileMeta is the tile pyramid description a build job records per level.
// The json tags match the build result payload so it can round-trip through
// job results.
type TileMeta struct {
	TilesPath string `json:"tiles_path,omitempty"`
	Level     string `json:"level,omitempty"`
	Format    string `json:"format"`
	TileSize  int    `json:"tile_size"`
	Overlap   int    `json:"overlap"`
	Levels    int    `json:"levels"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	TileCount int    `json:"tile_count,omitempty"`
}

// Checksum returns the canonical "sha256:<hex>" digest of an overlay list.
// Entries are sorted and re-serialized with sorted keys first, so two lists
// holding the same overlays always hash identically regardless of the order
// the database returned them in.
func Checksum(overlays []Overlay) (string, error) {
	sorted := make([]Overlay, len(overlays))
	copy(sorted, overlays)
	sortOverlays(sorted)

	entries := make([]map[string]any, 0, len(sorted))
	for _, overlay := range sorted {
		entry, err := structure.ToMap(overlay)
		if err != nil {
			return "", err
		}

		entries = append(entries, entry)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}

	return digest.FromBytes(data).String(), nil
}

// ZoneLevels returns the sorted distinct source levels that have non-zone
// content, skipping the project sentinel level. Each returned level gets its
// own sub-manifest during publish.
func ZoneLevels(overlays []models.Overlay) []string {
	seen := map[string]struct{}{}
	var levels []string
	for _, overlay := range overlays {
		if overlay.OverlayType == models.OverlayTypeZone {
			continue
		}

		if overlay.Level == "" || overlay.Level == models.SourceLevelProject {
			continue
		}

		if _, ok := seen[overlay.Level]; ok {
			continue
		}

		seen[overlay.Level] = struct{}{}
		levels = append(levels, overlay.Level)
	}

	sort.Strings(levels)
	return levels
}

// filterByLevel selects the overlays belonging to one manifest, sorted by the
// manifest sort keys. The project manifest carries the zone overlays plus the
// overlays authored outside any zone; a zone manifest carries the overlays
// authored on that level, excluding the zone overlays themselves. Sorting here
// keeps the view box override scan independent of the order rows were fetched
// in.
func filterByLevel(overlays []models.Overlay, level string) []models.Overlay {
	var filtered []models.Overlay
	for _, overlay := range overlays {
		if level == models.SourceLevelProject {
			if overlay.OverlayType == models.OverlayTypeZone ||
				overlay.Level == "" || overlay.Level == models.SourceLevelProject {
				filtered = append(filtered, overlay)
			}

			continue
		}

		if overlay.Level == level && overlay.OverlayType != models.OverlayTypeZone {
			filtered = append(filtered, overlay)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].SortOrder != filtered[j].SortOrder {
			return filtered[i].SortOrder < filtered[j].SortOrder
		}

		if filtered[i].Ref != filtered[j].Ref {
			return filtered[i].Ref < filtered[j].Ref
		}

		return filtered[i].OverlayType < filtered[j].OverlayType
	})

	return filtered
}

func releaseOverlays(overlays []models.Overlay) []Overlay {
	entries := make([]Overlay, 0, len(overlays))
	for _, overlay := range overlays {
		props := overlay.Props
		if props == nil {
			props = models.JSONMap{}
		}

		entries = append(entries, Overlay{
			Ref:           overlay.Ref,
			OverlayType:   overlay.OverlayType,
			Geometry:      overlay.Geometry,
			Label:         overlay.Label,
			LabelPosition: overlay.LabelPosition,
			Props:         props,
			Layer:         overlay.Level,
			SortOrder:     overlay.SortOrder,
		})
	}

	sortOverlays(entries)
	return entries
}

// sortOverlays orders entries by (sort_order, ref, overlay_type). Ref alone
// is not unique because the same ref may exist with different overlay types.
func sortOverlays(overlays []Overlay) {
	sort.Slice(overlays, func(i, j int) bool {
		if overlays[i].SortOrder != overlays[j].SortOrder {
			return overlays[i].SortOrder < overlays[j].SortOrder
		}

		if overlays[i].Ref != overlays[j].Ref {
			return overlays[i].Ref < overlays[j].Ref
		}

		return overlays[i].OverlayType < overlays[j].OverlayType
	})
}

func configFor(project *models.Project) Config {
	cfg := Config{
		DefaultViewBox: project.DefaultViewBox,
		DefaultZoom: Zoom{
			Min:     project.ZoomMin,
			Max:     project.ZoomMax,
			Default: project.ZoomDefault,
		},
		DefaultLocale:     project.DefaultLocale,
		SupportedLocales:  []string(project.SupportedLocales),
		StatusStyles:      project.StatusStyles,
		InteractionStyles: project.InteractionStyles,
	}

	if cfg.DefaultViewBox == "" {
		cfg.DefaultViewBox = DefaultViewBox
	}
	if cfg.DefaultZoom.Min == 0 {
		cfg.DefaultZoom.Min = DefaultZoomMin
	}
	if cfg.DefaultZoom.Max == 0 {
		cfg.DefaultZoom.Max = DefaultZoomMax
	}
	if cfg.DefaultZoom.Default == 0 {
		cfg.DefaultZoom.Default = DefaultZoomDefault
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}
	if len(cfg.SupportedLocales) == 0 {
		cfg.SupportedLocales = []string{DefaultLocale}
	}
	if len(cfg.StatusStyles) == 0 {
		cfg.StatusStyles = DefaultStatusStyles
	}
	if len(cfg.InteractionStyles) == 0 {
		cfg.InteractionStyles = DefaultInteractionStyles
	}

	return cfg
}

func tileConfigFor(tiles *TileMeta, level string) *TileConfig {
	if tiles == nil {
		return nil
	}

	cfg := &TileConfig{
		BaseURL:  fmt.Sprintf("tiles/%s", level),
		Format:   tiles.Format,
		TileSize: tiles.TileSize,
		Overlap:  tiles.Overlap,
		Levels:   tiles.Levels,
		Width:    tiles.Width,
		Height:   tiles.Height,
	}

	if cfg.Format == "" {
		cfg.Format = tiler.FormatJPEG
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = tiler.DefaultTileSize
	}
	if cfg.Levels <= 0 {
		cfg.Levels = 1
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultTileWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultTileHeight
	}

	return cfg
}
