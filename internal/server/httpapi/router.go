package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/emogo-app/emogo/internal/logging"
	"github.com/emogo-app/emogo/internal/server/config"
)

// NewRouter assembles the gin engine with the shared middleware chain and
// the record routes.
func NewRouter(cfg *config.Config, h *RecordHandler, log logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.GET("/", h.Index)
	r.GET("/health", h.Health)

	authed := r.Group("/")
	authed.Use(Auth(cfg.AuthToken))
	{
		authed.POST("/records", h.UpsertRecord)
		authed.POST("/records/batch", h.BatchUpsert)
		authed.POST("/records/sync", h.Sync)
		authed.GET("/records", h.List)
		authed.GET("/records/:id/video", h.Video)
		authed.GET("/export", h.Export)
		authed.GET("/export/videos", h.Videos)
		authed.GET("/export/download/:id", h.Download)
	}

	return r
}
