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

package job

import (
	"bytes"
	"context"
	"image"

	// Source rasters arrive as png, jpeg or webp uploads.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/metrics"
	"github.com/mapstack/atlas/manager/models"
	"github.com/mapstack/atlas/manager/release"
	"github.com/mapstack/atlas/manager/storage"
	"github.com/mapstack/atlas/pkg/structure"
	"github.com/mapstack/atlas/pkg/tiler"
	"github.com/mapstack/atlas/pkg/transfer"
)

const (
	// uploadProgressStep is the uploaded tile count between progress writes.
	uploadProgressStep = 50

	// copyProgressStep is the copied object count between progress writes.
	copyProgressStep = 100

	// uploadProgressShare caps the upload phase inside one unit's progress
	// window, the remainder absorbs bookkeeping.
	uploadProgressShare = 0.8
)

// clampPercent maps the transferred share of one unit of work into its
// progress window [base, base+window].
func clampPercent(base, window, done, total int) int {
	if total <= 0 {
		return base
	}

	percent := base + int(float64(done)/float64(total)*float64(window)*uploadProgressShare)
	if percent > base+window {
		percent = base + window
	}

	return percent
}

// tileSet is the upload outcome of one tiled source image.
type tileSet struct {
	Pyramid  *tiler.Pyramid
	Uploaded int
	Failed   int
}

// generateTiles downloads the source object at sourceKey, slices it into a
// tile pyramid and uploads every tile under destPrefix. onUploaded reports
// the cumulative uploaded count against the pyramid total. A failed tile
// upload is counted and the batch carries on.
func generateTiles(ctx context.Context, store *storage.Storage, cfg *config.JobConfig, sourceKey, destPrefix string, onUploaded func(uploaded, total int)) (*tileSet, error) {
	data, err := store.Get(ctx, sourceKey)
	if err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var items []transfer.Item
	pyramid, err := tiler.Generate(ctx, src, tiler.Options{
		TileSize: cfg.Tiler.TileSize,
		Overlap:  cfg.Tiler.Overlap,
		Format:   cfg.Tiler.Format,
		Quality:  cfg.Tiler.Quality,
	}, func(tile tiler.Tile) error {
		items = append(items, transfer.Item{
			Data:        tile.Data,
			ContentType: "image/" + tile.Format,
			DestKey:     store.TileKey(destPrefix, tile.Level, tile.X, tile.Y, tile.Format),
		})
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	metrics.TileCount.Add(float64(pyramid.TileCount))

	result, err := store.Transfer(cfg.TransferConcurrency).Run(ctx, transfer.ModeUpload, items, func(completed int) {
		if onUploaded != nil {
			onUploaded(completed, pyramid.TileCount)
		}
	})
	if result != nil {
		metrics.TransferCount.WithLabelValues(string(transfer.ModeUpload)).Add(float64(result.Completed()))
		metrics.TransferFailureCount.WithLabelValues(string(transfer.ModeUpload)).Add(float64(len(result.Failed())))
	}
	if err != nil {
		return nil, err
	}

	return &tileSet{
		Pyramid:  pyramid,
		Uploaded: result.Completed(),
		Failed:   len(result.Failed()),
	}, nil
}

// tileMeta converts an uploaded tile set into the manifest tile metadata of
// one level.
func tileMeta(ts *tileSet, tilesPath, level string) *release.TileMeta {
	return &release.TileMeta{
		TilesPath: tilesPath,
		Level:     level,
		Format:    ts.Pyramid.Format,
		TileSize:  ts.Pyramid.TileSize,
		Overlap:   ts.Pyramid.Overlap,
		Levels:    ts.Pyramid.Levels,
		Width:     ts.Pyramid.Width,
		Height:    ts.Pyramid.Height,
		TileCount: ts.Uploaded,
	}
}

// tilesMetadataMap renders per-level tile metadata into the job result
// shape.
func tilesMetadataMap(tiles map[string]*release.TileMeta) (models.JSONMap, error) {
	metadata := models.JSONMap{}
	for level, meta := range tiles {
		m, err := structure.ToMap(meta)
		if err != nil {
			return nil, err
		}

		metadata[level] = m
	}

	return metadata, nil
}
