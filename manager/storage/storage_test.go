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

package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/pkg/digest"
	"github.com/mapstack/atlas/pkg/objectstorage"
	"github.com/mapstack/atlas/pkg/objectstorage/mocks"
)

func TestLayout_Keys(t *testing.T) {
	layout := NewLayout("mp")

	tests := []struct {
		name   string
		key    string
		expect string
	}{
		{
			name:   "upload key",
			key:    layout.UploadKey("marina-bay", "base_map", "3f1c9a2b7d0e_site.png"),
			expect: "mp/marina-bay/uploads/base_map/3f1c9a2b7d0e_site.png",
		},
		{
			name:   "build prefix",
			key:    layout.BuildPrefix("marina-bay", "bld_20250813094215_9b31d2aa"),
			expect: "mp/marina-bay/builds/bld_20250813094215_9b31d2aa",
		},
		{
			name:   "build tile prefix",
			key:    layout.BuildTilePrefix("marina-bay", "bld_1"),
			expect: "mp/marina-bay/builds/bld_1/tiles",
		},
		{
			name:   "build level tile prefix",
			key:    layout.BuildLevelTilePrefix("marina-bay", "bld_1", "project"),
			expect: "mp/marina-bay/builds/bld_1/tiles/project",
		},
		{
			name:   "building view tile prefix",
			key:    layout.BuildingViewTilePrefix("marina-bay", "bld_1", "tower-a", "elevation-north"),
			expect: "mp/marina-bay/builds/bld_1/tiles/buildings/tower-a/elevation-north",
		},
		{
			name:   "tile key",
			key:    layout.TileKey("mp/marina-bay/builds/bld_1/tiles/project", 4, 17, 3, "jpeg"),
			expect: "mp/marina-bay/builds/bld_1/tiles/project/4/17_3.jpeg",
		},
		{
			name:   "build manifest",
			key:    layout.BuildManifest("marina-bay", "bld_1"),
			expect: "mp/marina-bay/builds/bld_1/release.json",
		},
		{
			name:   "release prefix",
			key:    layout.ReleasePrefix("marina-bay", "rel_20250813094215_1f0a9c3e"),
			expect: "mp/marina-bay/releases/rel_20250813094215_1f0a9c3e",
		},
		{
			name:   "release tile prefix",
			key:    layout.ReleaseTilePrefix("marina-bay", "rel_1"),
			expect: "mp/marina-bay/releases/rel_1/tiles",
		},
		{
			name:   "release manifest",
			key:    layout.ReleaseManifest("marina-bay", "rel_1"),
			expect: "mp/marina-bay/releases/rel_1/release.json",
		},
		{
			name:   "zone manifest",
			key:    layout.ZoneManifest("marina-bay", "rel_1", "zone-a"),
			expect: "mp/marina-bay/releases/rel_1/zones/zone-a.json",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, tc.key)
		})
	}
}

func TestStorage_Put(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockObjectStorage(ctl)
	s := New(store, "atlas", &config.StorageConfig{RootPrefix: "mp"})

	payload := []byte(`{"version":3}`)
	store.EXPECT().
		PutObject(context.Background(), "atlas", "mp/marina-bay/releases/rel_1/release.json", digest.SHA256FromBytes(payload), "application/json", gomock.Any()).
		Return(nil).
		Times(1)

	assert := assert.New(t)
	assert.NoError(s.Put(context.Background(), s.ReleaseManifest("marina-bay", "rel_1"), "application/json", payload))
}

func TestStorage_List(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockObjectStorage(ctl)
	s := New(store, "atlas", &config.StorageConfig{RootPrefix: "mp"})

	fullPage := make([]*objectstorage.ObjectMetadata, listPageSize)
	for i := range fullPage {
		fullPage[i] = &objectstorage.ObjectMetadata{Key: fmt.Sprintf("mp/marina-bay/builds/bld_1/tiles/%d", i)}
	}
	lastPage := []*objectstorage.ObjectMetadata{
		{Key: "mp/marina-bay/builds/bld_1/tiles/last"},
	}

	gomock.InOrder(
		store.EXPECT().
			ListObjectMetadatas(context.Background(), "atlas", "mp/marina-bay/builds/bld_1/tiles/", "", listPageSize).
			Return(fullPage, nil).
			Times(1),
		store.EXPECT().
			ListObjectMetadatas(context.Background(), "atlas", "mp/marina-bay/builds/bld_1/tiles/", fullPage[len(fullPage)-1].Key, listPageSize).
			Return(lastPage, nil).
			Times(1),
	)

	metadatas, err := s.List(context.Background(), s.BuildTilePrefix("marina-bay", "bld_1"))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(metadatas, int(listPageSize)+1)
}

func TestStorage_PublicURL(t *testing.T) {
	s := New(nil, "atlas", &config.StorageConfig{RootPrefix: "mp", PublicURL: "https://cdn.example.com/"})

	assert := assert.New(t)
	assert.Equal("https://cdn.example.com/mp/marina-bay/releases/rel_1/release.json", s.PublicURL(s.ReleaseManifest("marina-bay", "rel_1")))

	unset := New(nil, "atlas", &config.StorageConfig{RootPrefix: "mp"})
	assert.Empty(unset.PublicURL("mp/marina-bay/release.json"))
}
