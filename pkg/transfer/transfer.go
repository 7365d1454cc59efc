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

// Package transfer moves batches of objects into object storage with bounded
// concurrency. Items are independent: one failed item never aborts the batch,
// callers inspect the result and decide.
package transfer

import (
	"bytes"
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mapstack/atlas/pkg/digest"
	"github.com/mapstack/atlas/pkg/objectstorage"
	"github.com/mapstack/atlas/pkg/safe"
)

// Mode is the transfer operation mode.
type Mode string

const (
	// ModeCopy copies existing objects between keys inside the bucket.
	ModeCopy Mode = "copy"

	// ModeUpload uploads in-memory payloads.
	ModeUpload Mode = "upload"
)

const (
	// DefaultConcurrency is the default count of transfer workers.
	DefaultConcurrency = 20
)

// Item is one object to transfer. Copy mode reads SourceKey, upload mode
// reads Data. DestKey is always required.
type Item struct {
	// SourceKey is the object key to copy from.
	SourceKey string

	// Data is the payload to upload.
	Data []byte

	// Digest is the payload digest, computed from Data when empty.
	Digest string

	// ContentType is Content-Type of the destination object.
	ContentType string

	// DestKey is the destination object key.
	DestKey string
}

// FailedItem pairs a failed item with its error.
type FailedItem struct {
	Item Item
	Err  error
}

// Result accumulates transfer outcomes across workers.
type Result struct {
	mu        sync.Mutex
	completed int
	failed    []FailedItem
}

// Completed returns the count of transferred items.
func (r *Result) Completed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

// Failed returns the failed items.
func (r *Result) Failed() []FailedItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// Engine transfers object batches into one bucket.
type Engine struct {
	storage     objectstorage.ObjectStorage
	bucketName  string
	concurrency int
}

// New engine instance.
func New(storage objectstorage.ObjectStorage, bucketName string, concurrency int) *Engine {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Engine{
		storage:     storage,
		bucketName:  bucketName,
		concurrency: concurrency,
	}
}

// Run transfers all items. onItem, when set, is called after every
// successful item with the cumulative completed count, strictly increasing.
// A cancelled context stops scheduling remaining items and is returned as
// the run error; already started items finish on their own.
func (e *Engine) Run(ctx context.Context, mode Mode, items []Item, onItem func(completed int)) (*Result, error) {
	if mode != ModeCopy && mode != ModeUpload {
		return nil, errors.Errorf("unknown transfer mode %s", mode)
	}

	result := &Result{}
	eg := errgroup.Group{}
	eg.SetLimit(e.concurrency)
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			break
		}

		item := item
		eg.Go(func() error {
			var terr error
			if perr := safe.Call(func() {
				terr = e.transferItem(ctx, mode, item)
			}); perr != nil {
				terr = perr
			}

			result.mu.Lock()
			defer result.mu.Unlock()
			if terr != nil {
				result.failed = append(result.failed, FailedItem{Item: item, Err: terr})
				return nil
			}

			result.completed++
			if onItem != nil {
				onItem(result.completed)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return result, err
	}

	return result, ctx.Err()
}

func (e *Engine) transferItem(ctx context.Context, mode Mode, item Item) error {
	if item.DestKey == "" {
		return errors.New("transfer item missing destination key")
	}

	switch mode {
	case ModeCopy:
		if item.SourceKey == "" {
			return errors.New("transfer item missing source key")
		}

		return e.storage.CopyObject(ctx, e.bucketName, item.SourceKey, item.DestKey)
	case ModeUpload:
		if item.Data == nil {
			return errors.New("transfer item missing payload")
		}

		d := item.Digest
		if d == "" {
			d = digest.SHA256FromBytes(item.Data)
		}

		return e.storage.PutObject(ctx, e.bucketName, item.DestKey, d, item.ContentType, bytes.NewReader(item.Data))
	}

	return errors.Errorf("unknown transfer mode %s", mode)
}
