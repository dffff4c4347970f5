// Copyright 2025 Prospekt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prospekt/leadrank/leads"
)

// API holds dependencies for the HTTP handlers.
type API struct {
	service *leads.Service
	logger  *slog.Logger
}

// NewAPI creates the handler structure around a lead discovery service.
func NewAPI(service *leads.Service, logger *slog.Logger) *API {
	return &API{
		service: service,
		logger:  logger.With("component", "api"),
	}
}

// SetupRoutes registers all routes on the router.
func SetupRoutes(router *gin.Engine, service *leads.Service, logger *slog.Logger) {
	handler := NewAPI(service, logger)

	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware(logger))

	router.GET("/health", handler.HealthCheckHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.POST("/leads/search", handler.SearchLeadsHandler)
		apiRoutes.POST("/search/similar", handler.SearchSimilarHandler)
	}
}

// HealthCheckHandler reports service liveness.
func (a *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
