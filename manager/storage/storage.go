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
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/pkg/digest"
	"github.com/mapstack/atlas/pkg/objectstorage"
	"github.com/mapstack/atlas/pkg/transfer"
)

// listPageSize is the page size of list requests.
const listPageSize int64 = 1000

// Layout computes the object keys of the storage contract. Published
// manifests embed these keys, their shape never changes.
type Layout struct {
	root string
}

func NewLayout(rootPrefix string) Layout {
	return Layout{root: rootPrefix}
}

// UploadKey is the key of an uploaded source asset.
func (l Layout) UploadKey(slug, assetType, filename string) string {
	return path.Join(l.root, slug, "uploads", assetType, filename)
}

// BuildPrefix is the key prefix of one preview build.
func (l Layout) BuildPrefix(slug, buildID string) string {
	return path.Join(l.root, slug, "builds", buildID)
}

// BuildTilePrefix is the tile key prefix of one preview build.
func (l Layout) BuildTilePrefix(slug, buildID string) string {
	return path.Join(l.BuildPrefix(slug, buildID), "tiles")
}

// BuildLevelTilePrefix is the tile key prefix of one named map level.
func (l Layout) BuildLevelTilePrefix(slug, buildID, level string) string {
	return path.Join(l.BuildTilePrefix(slug, buildID), level)
}

// BuildingViewTilePrefix is the tile key prefix of one building view.
func (l Layout) BuildingViewTilePrefix(slug, buildID, buildingRef, viewRef string) string {
	return path.Join(l.BuildTilePrefix(slug, buildID), "buildings", buildingRef, viewRef)
}

// TileKey is the key of a single tile below a tile prefix. The file
// extension repeats the encoded format name, viewers join it from the
// manifest the same way.
func (l Layout) TileKey(prefix string, level, x, y int, format string) string {
	return path.Join(prefix, fmt.Sprintf("%d", level), fmt.Sprintf("%d_%d.%s", x, y, format))
}

// BuildManifest is the preview manifest key of one build.
func (l Layout) BuildManifest(slug, buildID string) string {
	return path.Join(l.BuildPrefix(slug, buildID), "release.json")
}

// ReleasePrefix is the key prefix of one release.
func (l Layout) ReleasePrefix(slug, releaseID string) string {
	return path.Join(l.root, slug, "releases", releaseID)
}

// ReleaseTilePrefix is the tile key prefix of one release.
func (l Layout) ReleaseTilePrefix(slug, releaseID string) string {
	return path.Join(l.ReleasePrefix(slug, releaseID), "tiles")
}

// ReleaseManifest is the manifest key of one release.
func (l Layout) ReleaseManifest(slug, releaseID string) string {
	return path.Join(l.ReleasePrefix(slug, releaseID), "release.json")
}

// ZoneManifest is the zone manifest key of one release level.
func (l Layout) ZoneManifest(slug, releaseID, level string) string {
	return path.Join(l.ReleasePrefix(slug, releaseID), "zones", level+".json")
}

// Storage binds the layout and the configured bucket to the object
// storage provider.
type Storage struct {
	Layout
	store      objectstorage.ObjectStorage
	bucketName string
	publicURL  string
	signExpire time.Duration
}

func New(store objectstorage.ObjectStorage, bucketName string, cfg *config.StorageConfig) *Storage {
	return &Storage{
		Layout:     NewLayout(cfg.RootPrefix),
		store:      store,
		bucketName: bucketName,
		publicURL:  strings.TrimSuffix(cfg.PublicURL, "/"),
		signExpire: cfg.SignExpire,
	}
}

// Bucket returns the bucket name every key lives in.
func (s *Storage) Bucket() string {
	return s.bucketName
}

// Transfer returns a batch transfer engine bound to the bucket.
func (s *Storage) Transfer(concurrency int) *transfer.Engine {
	return transfer.New(s.store, s.bucketName, concurrency)
}

// EnsureBucket creates the configured bucket when missing.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exist, err := s.store.IsBucketExist(ctx, s.bucketName)
	if err != nil {
		return err
	}

	if exist {
		return nil
	}

	return s.store.CreateBucket(ctx, s.bucketName)
}

// Put writes data at key with its sha256 digest attached.
func (s *Storage) Put(ctx context.Context, key, contentType string, data []byte) error {
	return s.store.PutObject(ctx, s.bucketName, key, digest.SHA256FromBytes(data), contentType, bytes.NewReader(data))
}

// Get reads the object at key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.store.GetObject(ctx, s.bucketName, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// Copy duplicates the object at sourceKey to destKey inside the bucket.
func (s *Storage) Copy(ctx context.Context, sourceKey, destKey string) error {
	return s.store.CopyObject(ctx, s.bucketName, sourceKey, destKey)
}

// Delete removes the object at key.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.store.DeleteObject(ctx, s.bucketName, key)
}

// Exists reports whether an object exists at key.
func (s *Storage) Exists(ctx context.Context, key string) (bool, error) {
	return s.store.IsObjectExist(ctx, s.bucketName, key)
}

// List returns the metadata of every object below prefix, following
// list markers across pages.
func (s *Storage) List(ctx context.Context, prefix string) ([]*objectstorage.ObjectMetadata, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var (
		metadatas []*objectstorage.ObjectMetadata
		marker    string
	)
	for {
		page, err := s.store.ListObjectMetadatas(ctx, s.bucketName, prefix, marker, listPageSize)
		if err != nil {
			return nil, err
		}
		metadatas = append(metadatas, page...)

		if int64(len(page)) < listPageSize {
			break
		}
		marker = page[len(page)-1].Key
	}

	return metadatas, nil
}

// SignURL returns a presigned url for key with the configured ttl.
func (s *Storage) SignURL(ctx context.Context, key string, method objectstorage.Method) (string, error) {
	return s.store.GetSignURL(ctx, s.bucketName, key, method, s.signExpire)
}

// PublicURL joins key onto the configured public base url. Empty when
// no public url is configured.
func (s *Storage) PublicURL(key string) string {
	if s.publicURL == "" {
		return ""
	}

	return s.publicURL + "/" + key
}
