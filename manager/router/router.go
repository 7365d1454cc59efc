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

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/handlers"
	"github.com/mapstack/atlas/manager/middlewares"
	"github.com/mapstack/atlas/manager/service"
)

const (
	PrometheusSubsystemName = "atlas_manager"
	OtelServiceName         = "atlas-manager"
)

func Init(cfg *config.Config, service service.Service) (*gin.Engine, error) {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service)

	// Prometheus metrics.
	if cfg.Metrics.Enable {
		p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
		// URL removes query string.
		// Prometheus metrics need to reduce label,
		// refer to https://prometheus.io/docs/practices/instrumentation/#do-not-overuse-labels.
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			return c.Request.URL.Path
		}
		p.Use(r)
	}

	// Opentelemetry
	if cfg.Options.Telemetry.Jaeger != "" {
		r.Use(otelgin.Middleware(OtelServiceName))
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(gin.Recovery())
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Editor view.
	if cfg.Server.PublicPath != "" {
		r.Use(static.Serve("/", static.LocalFile(cfg.Server.PublicPath, true)))
	}

	// Router
	apiv1 := r.Group("/api/v1")

	// Project
	pj := apiv1.Group("/projects")
	pj.POST("", h.CreateProject)
	pj.PATCH(":id", h.UpdateProject)
	pj.GET(":id", h.GetProject)
	pj.GET("", h.GetProjects)
	pj.POST(":id/versions", h.CreateVersion)
	pj.GET(":id/versions", h.GetVersions)
	pj.POST(":id/buildings", h.CreateBuilding)
	pj.GET(":id/buildings", h.GetBuildings)
	pj.POST(":id/assets/upload-url", h.CreateUploadURL)
	pj.POST(":id/assets", h.ConfirmAsset)
	pj.GET(":id/assets", h.GetAssets)
	pj.GET(":id/releases", h.GetReleases)
	pj.GET(":id/releases/:release_id", h.GetRelease)

	// Version
	v := apiv1.Group("/versions")
	v.GET(":id", h.GetVersion)
	v.GET(":id/publish/validate", h.ValidateVersionPublish)
	v.POST(":id/overlays", h.CreateOverlay)
	v.POST(":id/overlays/bulk", h.BulkUpsertOverlays)
	v.GET(":id/overlays", h.GetOverlays)

	// Overlay
	o := apiv1.Group("/overlays")
	o.PATCH(":id", h.UpdateOverlay)
	o.DELETE(":id", h.DestroyOverlay)

	// Building
	b := apiv1.Group("/buildings")
	b.GET(":id", h.GetBuilding)
	b.PATCH(":id", h.UpdateBuilding)
	b.POST(":id/views", h.CreateBuildingView)
	b.GET(":id/views", h.GetBuildingViews)

	// Asset
	a := apiv1.Group("/assets")
	a.GET(":id", h.GetAsset)
	a.GET(":id/download", h.DownloadAsset)
	a.DELETE(":id", h.DestroyAsset)

	// Job
	job := apiv1.Group("/jobs")
	job.POST("", h.CreateJob)
	job.GET(":id", h.GetJob)
	job.GET("", h.GetJobs)
	job.POST(":id/cancel", h.CancelJob)
	job.GET(":id/stream", h.StreamJob)

	// Health Check
	r.GET("/healthy", h.GetHealth)

	// Swagger
	apiSeagger := ginSwagger.URL("/swagger/doc.json")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, apiSeagger))

	// Fallback to editor view.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/")
	})

	return r, nil
}
