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

package job

import (
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	internaljob "github.com/mapstack/atlas/internal/job"
	"github.com/mapstack/atlas/manager/cache"
	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/storage"
	"github.com/mapstack/atlas/pkg/sse"
)

// WorkerConsumerTag is the machinery consumer tag of the embedded worker.
const WorkerConsumerTag = "atlas_worker"

// tracer is a global tracer for job.
var tracer = otel.Tracer("manager")

// Job is an implementation of job.
type Job struct {
	*internaljob.Job
	Tracker *Tracker
	PreviewBuild
	BuildingTiles
	Publish

	workerConcurrency int
}

// New returns a new Job.
func New(cfg *config.Config, gdb *gorm.DB, cache *cache.Cache, storage *storage.Storage, broadcaster *sse.Broadcaster) (*Job, error) {
	j, err := internaljob.New(&internaljob.Config{
		Addrs:      cfg.Database.Redis.Addrs,
		MasterName: cfg.Database.Redis.MasterName,
		Username:   cfg.Database.Redis.Username,
		Password:   cfg.Database.Redis.Password,
		BrokerDB:   cfg.Database.Redis.BrokerDB,
		BackendDB:  cfg.Database.Redis.BackendDB,
	}, internaljob.GlobalQueue)
	if err != nil {
		return nil, err
	}

	tracker := NewTracker(gdb, broadcaster)

	previewBuild, err := newPreviewBuild(j, tracker, gdb, storage, cfg.Job)
	if err != nil {
		return nil, err
	}

	buildingTiles, err := newBuildingTiles(j, tracker, gdb, storage, cfg.Job)
	if err != nil {
		return nil, err
	}

	publish, err := newPublish(j, tracker, gdb, cache, storage, cfg.Job)
	if err != nil {
		return nil, err
	}

	namedJobFuncs := map[string]any{
		internaljob.PreviewBuildJob:  previewBuild.run,
		internaljob.BuildingTilesJob: buildingTiles.run,
		internaljob.PublishJob:       publish.run,
	}

	if err := j.RegisterJob(namedJobFuncs); err != nil {
		logger.Errorf("register job funcs to %s queue error: %s", j.Queue, err.Error())
		return nil, err
	}

	return &Job{
		Job:               j,
		Tracker:           tracker,
		PreviewBuild:      previewBuild,
		BuildingTiles:     buildingTiles,
		Publish:           publish,
		workerConcurrency: cfg.Job.WorkerConcurrency,
	}, nil
}

// Serve launches the machinery worker pool consuming the global queue.
func (j *Job) Serve() {
	go func() {
		logger.Infof("ready to launch %d worker(s) on %s queue", j.workerConcurrency, j.Queue)
		if err := j.LaunchWorker(WorkerConsumerTag, j.workerConcurrency); err != nil {
			logger.Fatalf("%s queue worker error: %s", j.Queue, err.Error())
		}
	}()
}

// Stop quits the worker pool.
func (j *Job) Stop() {
	if j.Worker != nil {
		j.Worker.Quit()
	}
}
