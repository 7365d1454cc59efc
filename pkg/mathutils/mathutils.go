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

package mathutils

import (
	"math"
	"math/rand"
	"time"
)

// RandBackoffSeconds returns a randomized exponential backoff duration for
// the given attempt. The base grows by factor per attempt, capped at
// maxBackoff, and the result is jittered into [base/2, base).
func RandBackoffSeconds(initBackoff, maxBackoff, factor float64, attempt int) time.Duration {
	if initBackoff <= 0 {
		initBackoff = 1
	}
	if maxBackoff < initBackoff {
		maxBackoff = initBackoff
	}

	base := initBackoff * math.Pow(factor, float64(attempt))
	if base > maxBackoff {
		base = maxBackoff
	}

	jittered := base/2 + rand.Float64()*(base/2)
	return time.Duration(jittered * float64(time.Second))
}
