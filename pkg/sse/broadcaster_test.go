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

package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_PublishSubscribe(t *testing.T) {
	assert := assert.New(t)
	b := NewBroadcaster()

	assert.Equal(0, b.Publish("job:1", NewMessage("job_update", nil)))

	s1 := b.Subscribe("job:1")
	s2 := b.Subscribe("job:1")
	assert.Equal(2, b.Subscribers("job:1"))

	assert.Equal(2, b.Publish("job:1", NewMessage("job_update", map[string]any{"progress": 1})))

	ctx := context.Background()
	m1, err := s1.Next(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal("job_update", m1.Event)

	m2, err := s2.Next(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal("job_update", m2.Event)

	b.Unsubscribe("job:1", s1)
	assert.Equal(1, b.Publish("job:1", NewMessage("job_update", nil)))

	b.Unsubscribe("job:1", s2)
	assert.Equal(0, b.Subscribers("job:1"))
	assert.Equal(0, b.Publish("job:1", NewMessage("job_update", nil)))
}

func TestSubscriber_NextTimeout(t *testing.T) {
	assert := assert.New(t)
	b := NewBroadcaster()
	sub := b.Subscribe("job:2")
	defer b.Unsubscribe("job:2", sub)

	_, err := sub.Next(context.Background(), 10*time.Millisecond)
	assert.ErrorIs(err, ErrWaitTimeout)
}

func TestSubscriber_NextContextCancel(t *testing.T) {
	assert := assert.New(t)
	b := NewBroadcaster()
	sub := b.Subscribe("job:3")
	defer b.Unsubscribe("job:3", sub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sub.Next(ctx, time.Second)
	assert.ErrorIs(err, context.Canceled)
}

func TestSubscriber_QueueOrder(t *testing.T) {
	assert := assert.New(t)
	b := NewBroadcaster()
	sub := b.Subscribe("job:4")
	defer b.Unsubscribe("job:4", sub)

	for i := 0; i < 5; i++ {
		b.Publish("job:4", &Message{Event: "job_update", Data: i})
	}

	for i := 0; i < 5; i++ {
		msg, err := sub.Next(context.Background(), time.Second)
		require.NoError(t, err)
		assert.Equal(i, msg.Data)
	}
}

func TestBroadcaster_StreamTerminalInitial(t *testing.T) {
	assert := assert.New(t)
	b := NewBroadcaster()

	out := b.Stream(context.Background(), "job:5", time.Second, NewMessage("completed", map[string]any{"status": "completed"}))

	msg, ok := <-out
	require.True(t, ok)
	assert.Equal("completed", msg.Event)

	_, ok = <-out
	assert.False(ok)
	assert.Equal(0, b.Subscribers("job:5"))
}

func TestBroadcaster_StreamTerminalPublished(t *testing.T) {
	assert := assert.New(t)
	b := NewBroadcaster()

	out := b.Stream(context.Background(), "job:6", time.Second, NewMessage("job_update", map[string]any{"status": "running"}))

	msg := <-out
	assert.Equal("job_update", msg.Event)

	// The stream goroutine is subscribed before Stream returns, so this
	// publish is always delivered.
	require.Equal(t, 1, b.Publish("job:6", NewMessage("job_update", map[string]any{"progress": 50})))
	msg = <-out
	assert.Equal("job_update", msg.Event)

	b.Publish("job:6", NewMessage("failed", map[string]any{"status": "failed"}))
	msg = <-out
	assert.Equal("failed", msg.Event)

	_, ok := <-out
	assert.False(ok)
	assert.Equal(0, b.Subscribers("job:6"))
}

func TestBroadcaster_StreamPingOnIdle(t *testing.T) {
	assert := assert.New(t)
	b := NewBroadcaster()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := b.Stream(ctx, "job:7", 10*time.Millisecond, nil)

	msg := <-out
	assert.Equal(PingEvent, msg.Event)

	cancel()
	for range out {
	}
	assert.Equal(0, b.Subscribers("job:7"))
}

func TestBroadcaster_StreamContextCancel(t *testing.T) {
	assert := assert.New(t)
	b := NewBroadcaster()

	ctx, cancel := context.WithCancel(context.Background())
	out := b.Stream(ctx, "job:8", time.Minute, nil)
	cancel()

	_, ok := <-out
	assert.False(ok)

	// Unsubscribe runs as the stream goroutine exits.
	assert.Eventually(func() bool { return b.Subscribers("job:8") == 0 }, time.Second, 10*time.Millisecond)
}
