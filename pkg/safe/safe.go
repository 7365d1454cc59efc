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

package safe

import (
	"runtime/debug"

	"github.com/pkg/errors"

	logger "github.com/mapstack/atlas/internal/atlaslog"
)

// Call runs f and converts a panic into an error carrying the recovered
// value.
func Call(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("recovered from panic: %v", r)
			logger.Errorf("recovered from panic %v: %s", r, debug.Stack())
		}
	}()

	f()

	return
}
