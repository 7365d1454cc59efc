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

package tiler

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tileSize int
		expect   int
	}{
		{
			name:     "single tile image",
			width:    256,
			height:   256,
			tileSize: 256,
			expect:   1,
		},
		{
			name:     "one pixel over",
			width:    257,
			height:   100,
			tileSize: 256,
			expect:   2,
		},
		{
			name:     "4096 square",
			width:    4096,
			height:   4096,
			tileSize: 256,
			expect:   5,
		},
		{
			name:     "odd dimensions",
			width:    4095,
			height:   2000,
			tileSize: 256,
			expect:   5,
		},
		{
			name:     "longer side wins",
			width:    100,
			height:   8192,
			tileSize: 256,
			expect:   6,
		},
		{
			name:     "tiny image",
			width:    1,
			height:   1,
			tileSize: 256,
			expect:   1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Levels(tc.width, tc.height, tc.tileSize))
		})
	}
}

func TestTileCount(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tileSize int
		expect   int
	}{
		{
			name:     "4096 square has 341 tiles",
			width:    4096,
			height:   4096,
			tileSize: 256,
			expect:   1 + 4 + 16 + 64 + 256,
		},
		{
			name:     "small image has one tile",
			width:    100,
			height:   50,
			tileSize: 256,
			expect:   1,
		},
		{
			name:     "clipped grid",
			width:    300,
			height:   200,
			tileSize: 256,
			expect:   1 + 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, TileCount(tc.width, tc.height, tc.tileSize))
		})
	}
}

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 251), G: uint8(y % 241), B: 64, A: 255})
		}
	}
	return img
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		opts   Options
		expect func(t *testing.T, pyramid *Pyramid, tiles []Tile)
	}{
		{
			name:   "three level pyramid",
			width:  1024,
			height: 1024,
			opts:   Options{TileSize: 256},
			expect: func(t *testing.T, pyramid *Pyramid, tiles []Tile) {
				assert := assert.New(t)
				assert.Equal(3, pyramid.Levels)
				assert.Equal(1+4+16, pyramid.TileCount)
				assert.Equal(len(tiles), pyramid.TileCount)

				// Level 0 collapses to a single full tile.
				assert.Equal(0, tiles[0].Level)
				assert.Equal(256, tiles[0].Width)
				assert.Equal(256, tiles[0].Height)
			},
		},
		{
			name:   "degenerate image yields one tile",
			width:  100,
			height: 50,
			opts:   Options{TileSize: 256},
			expect: func(t *testing.T, pyramid *Pyramid, tiles []Tile) {
				assert := assert.New(t)
				assert.Equal(1, pyramid.Levels)
				assert.Equal(1, pyramid.TileCount)
				assert.Equal(100, tiles[0].Width)
				assert.Equal(50, tiles[0].Height)
			},
		},
		{
			name:   "edge tiles are clipped",
			width:  300,
			height: 200,
			opts:   Options{TileSize: 256},
			expect: func(t *testing.T, pyramid *Pyramid, tiles []Tile) {
				assert := assert.New(t)
				assert.Equal(2, pyramid.Levels)
				assert.Equal(3, pyramid.TileCount)

				// Level 1 is the full resolution with a clipped second column.
				last := tiles[len(tiles)-1]
				assert.Equal(1, last.Level)
				assert.Equal(1, last.X)
				assert.Equal(0, last.Y)
				assert.Equal(44, last.Width)
				assert.Equal(200, last.Height)
			},
		},
		{
			name:   "defaults produce jpeg tiles",
			width:  64,
			height: 64,
			opts:   Options{},
			expect: func(t *testing.T, pyramid *Pyramid, tiles []Tile) {
				assert := assert.New(t)
				assert.Equal(FormatJPEG, pyramid.Format)
				assert.Equal(DefaultTileSize, pyramid.TileSize)
				assert.Equal(FormatJPEG, tiles[0].Format)
				assert.True(bytes.HasPrefix(tiles[0].Data, []byte{0xff, 0xd8}))
			},
		},
		{
			name:   "png tiles decode to their clipped size",
			width:  300,
			height: 300,
			opts:   Options{TileSize: 256, Format: FormatPNG},
			expect: func(t *testing.T, pyramid *Pyramid, tiles []Tile) {
				assert := assert.New(t)
				last := tiles[len(tiles)-1]
				img, err := png.Decode(bytes.NewReader(last.Data))
				assert.NoError(err)
				assert.Equal(44, img.Bounds().Dx())
				assert.Equal(44, img.Bounds().Dy())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var tiles []Tile
			pyramid, err := Generate(context.Background(), testImage(tc.width, tc.height), tc.opts, func(tile Tile) error {
				tiles = append(tiles, tile)
				return nil
			}, nil)
			require.NoError(t, err)
			tc.expect(t, pyramid, tiles)
		})
	}
}

func TestGenerate_Progress(t *testing.T) {
	var percents []int
	_, err := Generate(context.Background(), testImage(1024, 1024), Options{TileSize: 256}, nil, func(percent int) {
		percents = append(percents, percent)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{33, 66, 100}, percents)
}

func TestGenerate_EmitError(t *testing.T) {
	wantErr := errors.New("tile sink full")
	_, err := Generate(context.Background(), testImage(64, 64), Options{}, func(Tile) error {
		return wantErr
	}, nil)
	assert.ErrorIs(t, err, wantErr)
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, testImage(64, 64), Options{}, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	_, err := Generate(context.Background(), testImage(64, 64), Options{Format: "webp"}, nil, nil)
	assert.Error(t, err)
}
