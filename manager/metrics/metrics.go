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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mapstack/atlas/version"
)

const (
	// Namespace is the prometheus namespace of all atlas metrics.
	Namespace = "atlas"

	// ManagerMetricsName is the subsystem of manager metrics.
	ManagerMetricsName = "manager"
)

// Variables declared for metrics.
var (
	JobCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: ManagerMetricsName,
		Name:      "job_total",
		Help:      "Counter of the number of the created jobs.",
	}, []string{"type"})

	JobStateCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: ManagerMetricsName,
		Name:      "job_state_total",
		Help:      "Counter of the number of job state transitions.",
	}, []string{"type", "state"})

	JobDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  Namespace,
		Subsystem:  ManagerMetricsName,
		Name:       "job_duration_milliseconds",
		Help:       "Summary of the time each job ran from start to a terminal state.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
	}, []string{"type"})

	TileCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: ManagerMetricsName,
		Name:      "generated_tile_total",
		Help:      "Counter of the number of the generated tiles.",
	})

	TransferCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: ManagerMetricsName,
		Name:      "transfer_total",
		Help:      "Counter of the number of the transferred objects.",
	}, []string{"mode"})

	TransferFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: ManagerMetricsName,
		Name:      "transfer_failure_total",
		Help:      "Counter of the number of failed of the transferred objects.",
	}, []string{"mode"})

	PublishCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: ManagerMetricsName,
		Name:      "publish_total",
		Help:      "Counter of the number of the published releases.",
	})

	SSESubscriberGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: ManagerMetricsName,
		Name:      "sse_subscriber_total",
		Help:      "Gauge of the number of the connected event stream subscribers.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: ManagerMetricsName,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

// Serve records the running version. The metrics endpoint itself is mounted
// on the REST router.
func Serve() {
	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
}
