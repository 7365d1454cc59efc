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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/mapstack/atlas/version"
)

func TestServe(t *testing.T) {
	Serve()

	assert := assert.New(t)
	assert.Equal(float64(1), testutil.ToFloat64(VersionGauge.WithLabelValues(
		version.Major, version.Minor, version.GitVersion, version.GitCommit,
		version.Platform, version.BuildTime, version.GoVersion)))
}
