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
	"sync"
	"time"

	"github.com/pkg/errors"

	logger "github.com/mapstack/atlas/internal/atlaslog"
)

// ErrWaitTimeout is returned by Subscriber.Next when no message arrived
// within the wait window. Streams translate it into a keep-alive ping.
var ErrWaitTimeout = errors.New("subscriber wait timed out")

// Terminal event names end a stream after delivery.
var terminalEvents = map[string]struct{}{
	"completed": {},
	"failed":    {},
	"cancelled": {},
}

// IsTerminalEvent reports whether the event name ends a stream.
func IsTerminalEvent(event string) bool {
	_, ok := terminalEvents[event]
	return ok
}

// Subscriber owns a private unbounded message queue filled by Publish.
type Subscriber struct {
	mu    sync.Mutex
	queue []*Message
	wake  chan struct{}
}

func newSubscriber() *Subscriber {
	return &Subscriber{
		wake: make(chan struct{}, 1),
	}
}

func (s *Subscriber) push(msg *Message) {
	s.mu.Lock()
	s.queue = append(s.queue, msg)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Subscriber) pop() (*Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil, false
	}

	msg := s.queue[0]
	s.queue = s.queue[1:]
	return msg, true
}

// Next returns the next queued message, blocking up to timeout. It returns
// ErrWaitTimeout when the window elapses and the context error when ctx is
// done.
func (s *Subscriber) Next(ctx context.Context, timeout time.Duration) (*Message, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		if msg, ok := s.pop(); ok {
			return msg, nil
		}

		select {
		case <-s.wake:
		case <-timer.C:
			return nil, ErrWaitTimeout
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Broadcaster is an in-process publish/subscribe hub keyed by channel name.
// Channel membership is guarded by one mutex; delivery to an individual
// subscriber queue happens outside it.
type Broadcaster struct {
	mu       sync.Mutex
	channels map[string]map[*Subscriber]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		channels: map[string]map[*Subscriber]struct{}{},
	}
}

// Subscribe registers a new subscriber on channel.
func (b *Broadcaster) Subscribe(channel string) *Subscriber {
	sub := newSubscriber()

	b.mu.Lock()
	defer b.mu.Unlock()
	subs, ok := b.channels[channel]
	if !ok {
		subs = map[*Subscriber]struct{}{}
		b.channels[channel] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

// Unsubscribe removes sub from channel. Channels left without subscribers
// are deleted.
func (b *Broadcaster) Unsubscribe(channel string, sub *Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs, ok := b.channels[channel]
	if !ok {
		return
	}

	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.channels, channel)
	}
}

// Publish delivers msg to every subscriber of channel and returns the
// number of queues it was delivered to.
func (b *Broadcaster) Publish(channel string, msg *Message) int {
	b.mu.Lock()
	snapshot := make([]*Subscriber, 0, len(b.channels[channel]))
	for sub := range b.channels[channel] {
		snapshot = append(snapshot, sub)
	}
	b.mu.Unlock()

	for _, sub := range snapshot {
		sub.push(msg)
	}

	return len(snapshot)
}

// Subscribers returns the current subscriber count of channel.
func (b *Broadcaster) Subscribers(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.channels[channel])
}

// Stream subscribes to channel and returns a sequence of messages: the
// initial message first when given, then published messages as they arrive,
// with a keep-alive ping whenever pingInterval elapses without traffic. The
// sequence ends after a message with a terminal event name, or when ctx is
// done. The subscription is always released when the sequence ends.
func (b *Broadcaster) Stream(ctx context.Context, channel string, pingInterval time.Duration, initial *Message) <-chan *Message {
	sub := b.Subscribe(channel)
	out := make(chan *Message)

	go func() {
		defer close(out)
		defer b.Unsubscribe(channel, sub)

		if initial != nil {
			if !emit(ctx, out, initial) {
				return
			}
			if IsTerminalEvent(initial.Event) {
				return
			}
		}

		for {
			msg, err := sub.Next(ctx, pingInterval)
			if err != nil {
				if errors.Is(err, ErrWaitTimeout) {
					if !emit(ctx, out, PingMessage()) {
						return
					}
					continue
				}

				logger.SSELogger.Debugf("stream on %s closed: %s", channel, err.Error())
				return
			}

			if !emit(ctx, out, msg) {
				return
			}
			if IsTerminalEvent(msg.Event) {
				return
			}
		}
	}()

	return out
}

func emit(ctx context.Context, out chan<- *Message, msg *Message) bool {
	select {
	case out <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}
