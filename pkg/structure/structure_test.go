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

package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMap(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		expect func(*testing.T, map[string]any, error)
	}{
		{
			name: "flattens struct by json tags",
			v: struct {
				Level     string `json:"level"`
				TileCount int    `json:"tile_count"`
			}{
				Level:     "zone-a",
				TileCount: 341,
			},
			expect: func(t *testing.T, m map[string]any, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(map[string]any{
					"level":      "zone-a",
					"tile_count": float64(341),
				}, m)
			},
		},
		{
			name: "rejects non-object value",
			v:    "tiles",
			expect: func(t *testing.T, m map[string]any, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "json: cannot unmarshal string into Go value of type map[string]interface {}")
			},
		},
		{
			name: "nil flattens to nil map",
			v:    nil,
			expect: func(t *testing.T, m map[string]any, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(map[string]any(nil), m)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ToMap(tc.v)
			tc.expect(t, m, err)
		})
	}
}

func TestFromMap(t *testing.T) {
	type tileMeta struct {
		Level     string `json:"level"`
		TileCount int    `json:"tile_count"`
	}

	tests := []struct {
		name   string
		m      map[string]any
		seed   tileMeta
		expect func(*testing.T, *tileMeta, error)
	}{
		{
			name: "fills struct from map",
			m: map[string]any{
				"level":      "project",
				"tile_count": float64(2),
			},
			expect: func(t *testing.T, out *tileMeta, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(&tileMeta{Level: "project", TileCount: 2}, out)
			},
		},
		{
			name: "nil map leaves out untouched",
			m:    nil,
			seed: tileMeta{Level: "zone-b", TileCount: 7},
			expect: func(t *testing.T, out *tileMeta, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(&tileMeta{Level: "zone-b", TileCount: 7}, out)
			},
		},
		{
			name: "mismatched field type fails",
			m: map[string]any{
				"tile_count": "many",
			},
			expect: func(t *testing.T, out *tileMeta, err error) {
				assert := assert.New(t)
				assert.Error(err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := tc.seed
			err := FromMap(tc.m, &out)
			tc.expect(t, &out, err)
		})
	}
}
