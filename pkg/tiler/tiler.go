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

// Package tiler turns one raster image into a multi-resolution pyramid of
// fixed-size tiles. Levels count from the smallest: level 0 is the first
// level whose longer side fits in a single tile, the last level is full
// resolution.
package tiler

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"

	DefaultTileSize = 256
	DefaultOverlap  = 1
	DefaultQuality  = 85
)

// Options controls tile addressing and encoding. Overlap is recorded for
// renderers but does not widen the crop grid.
type Options struct {
	TileSize int
	Overlap  int
	Format   string
	Quality  int
}

func (o Options) withDefaults() Options {
	if o.TileSize <= 0 {
		o.TileSize = DefaultTileSize
	}
	if o.Overlap < 0 {
		o.Overlap = DefaultOverlap
	}
	if o.Format == "" {
		o.Format = FormatJPEG
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	return o
}

// Tile is one cell of the pyramid with its encoded payload.
type Tile struct {
	Level  int
	X      int
	Y      int
	Width  int
	Height int
	Format string
	Data   []byte
}

// Pyramid describes a generated tile batch.
type Pyramid struct {
	Width     int
	Height    int
	TileSize  int
	Overlap   int
	Format    string
	Levels    int
	TileCount int
}

// Levels returns the number of pyramid levels for an image: one plus the
// number of times max(width, height) must be halved to reach tileSize or
// less.
func Levels(width, height, tileSize int) int {
	longer := width
	if height > longer {
		longer = height
	}

	levels := 1
	for longer > tileSize {
		longer /= 2
		levels++
	}
	return levels
}

// TileCount returns the total number of tiles across all levels.
func TileCount(width, height, tileSize int) int {
	levels := Levels(width, height, tileSize)

	var count int
	for level := 0; level < levels; level++ {
		levelW, levelH := levelDims(width, height, levels, level)
		count += ceilDiv(levelW, tileSize) * ceilDiv(levelH, tileSize)
	}
	return count
}

// levelDims returns the pixel dimensions of a level. Level dimensions use
// integer halving of the source dimensions, clamped to at least one pixel.
func levelDims(width, height, levels, level int) (int, int) {
	scale := 1 << uint(levels-level-1)

	levelW := width / scale
	if levelW < 1 {
		levelW = 1
	}
	levelH := height / scale
	if levelH < 1 {
		levelH = 1
	}
	return levelW, levelH
}

// Generate resamples src once per level and emits every tile of the grid.
// Tiles on the last row/column are clipped to the level bounds, never
// padded. emit receives each encoded tile; a non-nil return aborts the run.
// progress, when set, is called after each completed level with the
// cumulative percent across levels.
func Generate(ctx context.Context, src image.Image, opts Options, emit func(Tile) error, progress func(percent int)) (*Pyramid, error) {
	opts = opts.withDefaults()
	if opts.Format != FormatPNG && opts.Format != FormatJPEG {
		return nil, errors.Errorf("unsupported tile format %q", opts.Format)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, errors.New("source image is empty")
	}

	levels := Levels(width, height, opts.TileSize)
	pyramid := &Pyramid{
		Width:    width,
		Height:   height,
		TileSize: opts.TileSize,
		Overlap:  opts.Overlap,
		Format:   opts.Format,
		Levels:   levels,
	}

	for level := 0; level < levels; level++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		levelW, levelH := levelDims(width, height, levels, level)
		levelImg := resample(src, levelW, levelH)

		cols := ceilDiv(levelW, opts.TileSize)
		rows := ceilDiv(levelH, opts.TileSize)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				rect := image.Rect(
					x*opts.TileSize,
					y*opts.TileSize,
					minInt((x+1)*opts.TileSize, levelW),
					minInt((y+1)*opts.TileSize, levelH),
				)

				data, err := encode(levelImg.SubImage(rect), opts)
				if err != nil {
					return nil, errors.Wrapf(err, "encode tile %d/%d_%d", level, x, y)
				}

				pyramid.TileCount++
				if emit != nil {
					if err := emit(Tile{
						Level:  level,
						X:      x,
						Y:      y,
						Width:  rect.Dx(),
						Height: rect.Dy(),
						Format: opts.Format,
						Data:   data,
					}); err != nil {
						return nil, err
					}
				}
			}
		}

		if progress != nil {
			progress((level + 1) * 100 / levels)
		}
	}

	return pyramid, nil
}

// resample scales src to the exact level dimensions. The full-resolution
// level is copied without filtering.
func resample(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	bounds := src.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		draw.Copy(dst, image.Point{}, src, bounds, draw.Src, nil)
		return dst
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}

func encode(img image.Image, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	switch opts.Format {
	case FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	case FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: opts.Quality}); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unsupported tile format %q", opts.Format)
	}
	return buf.Bytes(), nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
