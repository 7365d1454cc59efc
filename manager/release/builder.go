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
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/storage"
	"github.com/mapstack/atlas/pkg/retry"
)

const (
	manifestContentType = "application/json"

	uploadInitBackoff = 0.5
	uploadMaxBackoff  = 2.0
	uploadAttempts    = 3
)

// Builder assembles release manifests and writes them to object storage.
type Builder struct {
	storage *storage.Storage
}

func NewBuilder(storage *storage.Storage) *Builder {
	return &Builder{storage: storage}
}

// Build assembles the manifest for one level. The project manifest (level
// "project") carries the zone overlays and the overlays authored outside any
// zone; a zone manifest carries that zone's overlays and inherits the view box
// the overlays were authored in, so the viewer renders them in the correct
// coordinate frame.
func (b *Builder) Build(project *models.Project, overlays []models.Overlay, tiles *TileMeta, level, releaseID, publishedBy string) (*Manifest, error) {
	cfg := configFor(project)
	filtered := filterByLevel(overlays, level)

	if level != models.SourceLevelProject {
		for _, overlay := range filtered {
			if overlay.ViewBox != "" {
				cfg.DefaultViewBox = overlay.ViewBox
				break
			}
		}
	}

	entries := releaseOverlays(filtered)
	checksum, err := Checksum(entries)
	if err != nil {
		return nil, errors.Wrap(err, "checksum overlays")
	}

	return &Manifest{
		Version:     ManifestVersion,
		ReleaseID:   releaseID,
		ProjectSlug: project.Slug,
		PublishedAt: time.Now().UTC(),
		PublishedBy: publishedBy,
		Config:      cfg,
		Tiles:       tileConfigFor(tiles, level),
		Overlays:    entries,
		Checksum:    checksum,
	}, nil
}

// BuildAll builds and uploads the complete manifest set for a release in two
// passes: every zone sub-manifest first, then the project manifest patched
// with references to them. Zone manifests must exist in storage before the
// project manifest points at them. Returns the project manifest and its
// object key.
func (b *Builder) BuildAll(ctx context.Context, project *models.Project, overlays []models.Overlay, tiles map[string]*TileMeta, releaseID, publishedBy string) (*Manifest, string, error) {
	log := logger.WithReleaseID(releaseID)

	zoneLevels := ZoneLevels(overlays)
	zones := make([]ZoneManifestInfo, 0, len(zoneLevels))
	for _, level := range zoneLevels {
		manifest, err := b.Build(project, overlays, tiles[level], level, releaseID, publishedBy)
		if err != nil {
			return nil, "", err
		}

		key := b.storage.ZoneManifest(project.Slug, releaseID, level)
		if err := b.upload(ctx, key, manifest); err != nil {
			return nil, "", err
		}

		log.Infof("uploaded zone manifest %s with %d overlays", key, len(manifest.Overlays))
		zones = append(zones, zoneManifestInfo(overlays, level))
	}

	manifest, err := b.Build(project, overlays, primaryTileMeta(tiles), models.SourceLevelProject, releaseID, publishedBy)
	if err != nil {
		return nil, "", err
	}

	if len(zones) > 0 {
		manifest.Zones = zones
	}

	key := b.storage.ReleaseManifest(project.Slug, releaseID)
	if err := b.upload(ctx, key, manifest); err != nil {
		return nil, "", err
	}

	log.Infof("uploaded release manifest %s with %d overlays and %d zones", key, len(manifest.Overlays), len(zones))
	return manifest, key, nil
}

// BuildPreview builds and uploads the single manifest of a draft build. Zone
// sub-manifests are a publish concern, a preview carries every overlay of the
// version in one flat document so the viewer can render the whole draft.
func (b *Builder) BuildPreview(ctx context.Context, project *models.Project, overlays []models.Overlay, tiles *TileMeta, buildID, createdBy string) (*Manifest, string, error) {
	entries := releaseOverlays(overlays)
	checksum, err := Checksum(entries)
	if err != nil {
		return nil, "", errors.Wrap(err, "checksum overlays")
	}

	manifest := &Manifest{
		Version:     ManifestVersion,
		ReleaseID:   buildID,
		ProjectSlug: project.Slug,
		PublishedAt: time.Now().UTC(),
		PublishedBy: createdBy,
		Config:      configFor(project),
		Tiles:       tileConfigFor(tiles, models.SourceLevelProject),
		Overlays:    entries,
		Checksum:    checksum,
	}

	key := b.storage.BuildManifest(project.Slug, buildID)
	if err := b.upload(ctx, key, manifest); err != nil {
		return nil, "", err
	}

	logger.WithBuildID(buildID).Infof("uploaded build manifest %s with %d overlays", key, len(manifest.Overlays))
	return manifest, key, nil
}

func (b *Builder) upload(ctx context.Context, key string, manifest *Manifest) error {
	data, err := json.Marshal(manifest)
	if err != nil {
		return errors.Wrapf(err, "marshal manifest %s", key)
	}

	if _, _, err := retry.Run(ctx, uploadInitBackoff, uploadMaxBackoff, uploadAttempts, func() (any, bool, error) {
		return nil, false, b.storage.Put(ctx, key, manifestContentType, data)
	}); err != nil {
		return errors.Wrapf(err, "upload manifest %s", key)
	}

	return nil
}

// zoneManifestInfo builds the parent's reference to one zone sub-manifest.
// The zone overlay whose ref equals the level contributes the display label.
func zoneManifestInfo(overlays []models.Overlay, level string) ZoneManifestInfo {
	info := ZoneManifestInfo{
		ZoneRef:      level,
		Level:        level,
		ManifestPath: fmt.Sprintf("zones/%s.json", level),
	}

	for _, overlay := range overlays {
		if overlay.OverlayType == models.OverlayTypeZone && overlay.Ref == level {
			info.Label = overlay.Label
			break
		}
	}

	return info
}

// primaryTileMeta picks the tile metadata for the project manifest: the
// project level when tiled, otherwise the first level in sorted order.
func primaryTileMeta(tiles map[string]*TileMeta) *TileMeta {
	if len(tiles) == 0 {
		return nil
	}

	if meta, ok := tiles[models.SourceLevelProject]; ok {
		return meta
	}

	levels := make([]string, 0, len(tiles))
	for level := range tiles {
		levels = append(levels, level)
	}

	sort.Strings(levels)
	return tiles[levels[0]]
}
