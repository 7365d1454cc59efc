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

package transfer

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapstack/atlas/pkg/objectstorage/mocks"
)

func TestEngine_RunUpload(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	storage := mocks.NewMockObjectStorage(ctl)
	storage.EXPECT().PutObject(gomock.Any(), "atlas", gomock.Any(), gomock.Any(), "application/json", gomock.Any()).Return(nil).Times(5)

	var items []Item
	for i := 0; i < 5; i++ {
		items = append(items, Item{
			Data:        []byte(fmt.Sprintf("{\"n\":%d}", i)),
			ContentType: "application/json",
			DestKey:     fmt.Sprintf("mp/demo/releases/rel_1/%d.json", i),
		})
	}

	var mu sync.Mutex
	var counts []int
	result, err := New(storage, "atlas", 2).Run(context.Background(), ModeUpload, items, func(completed int) {
		mu.Lock()
		defer mu.Unlock()
		counts = append(counts, completed)
	})
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(5, result.Completed())
	assert.Empty(result.Failed())
	assert.Len(counts, 5)
	assert.True(sort.IntsAreSorted(counts))
	assert.Equal(5, counts[len(counts)-1])
}

func TestEngine_RunCopy(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	storage := mocks.NewMockObjectStorage(ctl)
	storage.EXPECT().CopyObject(gomock.Any(), "atlas", "mp/demo/builds/bld_1/release.json", "mp/demo/releases/rel_1/release.json").Return(nil).Times(1)

	result, err := New(storage, "atlas", 0).Run(context.Background(), ModeCopy, []Item{
		{
			SourceKey: "mp/demo/builds/bld_1/release.json",
			DestKey:   "mp/demo/releases/rel_1/release.json",
		},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Completed())
}

func TestEngine_PartialFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	storage := mocks.NewMockObjectStorage(ctl)
	storage.EXPECT().CopyObject(gomock.Any(), "atlas", "tiles/2.png", gomock.Any()).Return(errors.New("no such key")).Times(1)
	storage.EXPECT().CopyObject(gomock.Any(), "atlas", gomock.Any(), gomock.Any()).Return(nil).Times(4)

	var items []Item
	for i := 0; i < 5; i++ {
		items = append(items, Item{
			SourceKey: fmt.Sprintf("tiles/%d.png", i),
			DestKey:   fmt.Sprintf("release/tiles/%d.png", i),
		})
	}

	result, err := New(storage, "atlas", 3).Run(context.Background(), ModeCopy, items, nil)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(4, result.Completed())
	assert.Len(result.Failed(), 1)
	assert.Equal("tiles/2.png", result.Failed()[0].Item.SourceKey)
	assert.EqualError(result.Failed()[0].Err, "no such key")
}

func TestEngine_InvalidItems(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	storage := mocks.NewMockObjectStorage(ctl)

	tests := []struct {
		name string
		mode Mode
		item Item
	}{
		{
			name: "copy without source key",
			mode: ModeCopy,
			item: Item{DestKey: "dst"},
		},
		{
			name: "upload without payload",
			mode: ModeUpload,
			item: Item{DestKey: "dst"},
		},
		{
			name: "missing destination key",
			mode: ModeUpload,
			item: Item{Data: []byte("x")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := New(storage, "atlas", 1).Run(context.Background(), tc.mode, []Item{tc.item}, nil)
			require.NoError(t, err)
			assert.Equal(t, 0, result.Completed())
			assert.Len(t, result.Failed(), 1)
		})
	}
}

func TestEngine_UnknownMode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := New(mocks.NewMockObjectStorage(ctl), "atlas", 1).Run(context.Background(), Mode("sync"), nil, nil)
	assert.Error(t, err)
}

func TestEngine_CancelledContext(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	storage := mocks.NewMockObjectStorage(ctl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(storage, "atlas", 1).Run(ctx, ModeCopy, []Item{
		{SourceKey: "a", DestKey: "b"},
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Completed())
}
