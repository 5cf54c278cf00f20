package main

import (
	"github.com/gin-gonic/gin"
	"solene-digital.backend/internal/domain/contract"
	domainerrors "solene-digital.backend/internal/domain/errors"
	"solene-digital.backend/internal/interfaces/http/handlers"
	"solene-digital.backend/internal/interfaces/http/middleware"
	"solene-digital.backend/internal/interfaces/http/response"
	"solene-digital.backend/pkg/metrics"
)

type routeDeps struct {
	contactHandler *handlers.ContactHandler
	contentHandler *handlers.ContentHandler
	healthHandler  *handlers.HealthHandler
	spaHandler     *handlers.SPAHandler
	idempotency    gin.HandlerFunc
	metrics        *metrics.Metrics
}

func newRouter(allowedOrigins []string, d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.Metrics(d.metrics))

	applyCORSMiddleware(r, allowedOrigins)
	registerHealthRoute(r, d.healthHandler)
	registerMetricsRoute(r, d.metrics)
	registerAPIRoutes(r, d)
	registerFallback(r, d.spaHandler)
	return r
}

func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	r.Use(middleware.CORS(allowedOrigins))
}

func registerHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	if h == nil {
		h = handlers.NewHealthHandler(serviceName, version)
	}
	r.GET("/health", h.Health)
}

func registerMetricsRoute(r *gin.Engine, m *metrics.Metrics) {
	if m == nil {
		return
	}
	r.GET("/metrics", gin.WrapH(m.Handler()))
}

// registerAPIRoutes mounts every contract endpoint at its declared method
// and path.
func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	idempotency := d.idempotency
	if idempotency == nil {
		idempotency = func(c *gin.Context) { c.Next() }
	}

	r.Handle(contract.CreateContact.Method, contract.CreateContact.Path, idempotency, d.contactHandler.CreateContact)
	r.Handle(contract.ListServices.Method, contract.ListServices.Path, d.contentHandler.ListServices)
	r.Handle(contract.ListTeam.Method, contract.ListTeam.Path, d.contentHandler.ListTeamMembers)
}

func registerFallback(r *gin.Engine, spa *handlers.SPAHandler) {
	if spa == nil {
		r.NoRoute(func(c *gin.Context) {
			response.Error(c, domainerrors.NotFound("not found"))
		})
		return
	}
	r.NoRoute(spa.Serve)
}
