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
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultEvent is the implicit event name of a message without an event
// line. Encoding omits the event line for it.
const DefaultEvent = "message"

// PingEvent is the keep-alive event name.
const PingEvent = "ping"

// Message is one server-sent event.
type Message struct {
	ID    string
	Event string
	Data  any
}

// NewMessage returns a message carrying data under the given event name.
func NewMessage(event string, data any) *Message {
	return &Message{Event: event, Data: data}
}

// PingMessage returns the keep-alive message, encoded as
// "event: ping" with an empty JSON object payload.
func PingMessage() *Message {
	return &Message{Event: PingEvent, Data: map[string]any{}}
}

// Encode renders the message in SSE wire framing. The framing is a wire
// contract consumed byte-for-byte by external clients:
//
//	id: <opaque>\n      (only when ID is set)
//	event: <name>\n     (omitted for the default "message" event)
//	data: <json>\n
//	\n
func (m *Message) Encode() (string, error) {
	data, err := json.Marshal(m.Data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if m.ID != "" {
		fmt.Fprintf(&sb, "id: %s\n", m.ID)
	}
	if m.Event != "" && m.Event != DefaultEvent {
		fmt.Fprintf(&sb, "event: %s\n", m.Event)
	}
	fmt.Fprintf(&sb, "data: %s\n\n", data)
	return sb.String(), nil
}
