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

package idgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// ReleaseIDPrefix is the prefix of release id.
	ReleaseIDPrefix = "rel"

	// BuildIDPrefix is the prefix of build id.
	BuildIDPrefix = "bld"

	// timestampLayout is the timestamp segment layout of generated ids.
	timestampLayout = "20060102150405"
)

// ReleaseID generates a release id, e.g. rel_20250813094215_1f0a9c3e.
// Release ids are embedded in permanent storage paths and must never repeat.
func ReleaseID() string {
	return newID(ReleaseIDPrefix)
}

// BuildID generates a build id, e.g. bld_20250813094215_9b31d2aa.
func BuildID() string {
	return newID(BuildIDPrefix)
}

func newID(prefix string) string {
	ts := time.Now().UTC().Format(timestampLayout)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s_%s", prefix, ts, suffix)
}
