package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/urbansathi/backend/internal/config"
	"github.com/urbansathi/backend/internal/db"
	"github.com/urbansathi/backend/internal/http/handlers"
	"github.com/urbansathi/backend/internal/http/middleware"
	"github.com/urbansathi/backend/internal/service"
	"github.com/urbansathi/backend/internal/storage"

	_ "github.com/urbansathi/backend/docs"
)

func Router(cfg config.Config, store *db.Store, svc *service.ComplaintService, uploader storage.Uploader, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:          store,
		Service:        svc,
		Uploader:       uploader,
		Validator:      validator.New(),
		Logger:         logger,
		MaxUploadBytes: cfg.MaxUploadSizeMB << 20,
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/complaints/", h.ComplaintsList)
	r.GET("/workers/", h.WorkersList)

	authed := r.Group("")
	authed.Use(middleware.Auth(cfg.JWTSecret, store))
	{
		authed.POST("/complaints/", h.CreateComplaint)
		authed.GET("/complaints/me", h.MyComplaints)
		authed.POST("/complaints/:id/vote", h.CastVote)
		authed.POST("/complaints/:id/feedback", h.SubmitFeedback)
		authed.GET("/my-votes", h.MyVotes)
		authed.GET("/users/me", h.Me)
		authed.POST("/upload/", h.Upload)
	}

	admin := r.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.PATCH("/complaints/:id/status", h.UpdateComplaintStatus)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
