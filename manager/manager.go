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

package manager

import (
	"context"
	"net/http"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/manager/cache"
	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/database"
	"github.com/mapstack/atlas/manager/job"
	"github.com/mapstack/atlas/manager/metrics"
	"github.com/mapstack/atlas/manager/router"
	"github.com/mapstack/atlas/manager/service"
	"github.com/mapstack/atlas/manager/storage"
	"github.com/mapstack/atlas/pkg/objectstorage"
	"github.com/mapstack/atlas/pkg/sse"
)

type Server struct {
	// Server configuration
	config *config.Config

	// REST server
	restServer *http.Server

	// Async job worker
	job *job.Job
}

func New(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize cache
	cache := cache.New(cfg, db.RDB)

	// Initialize object storage
	store, err := objectstorage.New(cfg.ObjectStorage.Name, cfg.ObjectStorage.Region, cfg.ObjectStorage.Endpoint, cfg.ObjectStorage.AccessKey, cfg.ObjectStorage.SecretKey)
	if err != nil {
		return nil, err
	}
	storage := storage.New(store, cfg.ObjectStorage.Bucket, cfg.Storage)
	if err := storage.EnsureBucket(context.Background()); err != nil {
		return nil, err
	}

	// Initialize event broadcaster
	broadcaster := sse.NewBroadcaster()

	// Initialize job
	job, err := job.New(cfg, db.DB, cache, storage, broadcaster)
	if err != nil {
		return nil, err
	}

	// Initialize REST server
	restService := service.New(cfg, db.DB, cache, job, storage, broadcaster)
	router, err := router.Init(cfg, restService)
	if err != nil {
		return nil, err
	}
	restServer := &http.Server{
		Addr:    cfg.Server.REST.Addr,
		Handler: router,
	}

	return &Server{
		config:     cfg,
		restServer: restServer,
		job:        job,
	}, nil
}

func (s *Server) Serve() error {
	// Record version info
	metrics.Serve()

	// Started job worker
	s.job.Serve()

	// Started REST server
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if err == http.ErrServerClosed {
			return nil
		}
		logger.Errorf("rest server closed unexpect: %+v", err)
		return err
	}

	return nil
}

func (s *Server) Stop() {
	// Stop REST server
	if err := s.restServer.Shutdown(context.Background()); err != nil {
		logger.Errorf("rest server failed to stop: %+v", err)
	}
	logger.Info("rest server closed under request")

	// Stop job worker
	s.job.Stop()
	logger.Info("job worker closed under request")
}
