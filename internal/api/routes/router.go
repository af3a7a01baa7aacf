package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/api/handlers"
	"github.com/linskybing/support-tracker/internal/api/middleware"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/pkg/response"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/support-tracker/docs"
)

// NewRouter builds the engine with middleware and every API route.
func NewRouter(svc *application.Services, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(config.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterRoutes(r, handlers.New(svc, config.WatchInterval), svc.Auth)
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, authSvc *application.AuthService) {
	authMiddleware := middleware.NewAuth()

	api := r.Group("/api")
	api.Use(middleware.Session(authSvc))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", authMiddleware.Authenticated(), h.Auth.Logout)
			auth.GET("/me", h.Auth.Me)
		}

		tickets := api.Group("/tickets")
		{
			tickets.GET("", authMiddleware.Authenticated(), h.Ticket.List)
			tickets.POST("", authMiddleware.Client(), h.Ticket.Create)
			tickets.GET("/:id", authMiddleware.Authenticated(), h.Ticket.Get)
			tickets.PATCH("/:id", authMiddleware.Admin(), h.Ticket.Update)
			tickets.POST("/:id/reply", authMiddleware.Admin(), h.Ticket.Reply)
			tickets.GET("/:id/history", authMiddleware.Admin(), h.Ticket.History)
			tickets.GET("/:id/attachments", authMiddleware.Authenticated(), h.Attachment.List)
			tickets.POST("/:id/attachments", authMiddleware.Authenticated(), h.Attachment.Upload)
			tickets.GET("/:id/attachments/:attachmentId", authMiddleware.Authenticated(), h.Attachment.Download)
			tickets.GET("/:id/watch", authMiddleware.Authenticated(), h.Watch.Watch)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", authMiddleware.Authenticated(), h.Tag.List)
			tags.POST("", authMiddleware.Admin(), h.Tag.Create)
			tags.PUT("/:id", authMiddleware.Admin(), h.Tag.Update)
			tags.DELETE("/:id", authMiddleware.Admin(), h.Tag.Delete)
		}

		statuses := api.Group("/statuses")
		{
			statuses.GET("", authMiddleware.Authenticated(), h.Status.List)
			statuses.POST("", authMiddleware.Admin(), h.Status.Create)
			statuses.PUT("/:id", authMiddleware.Admin(), h.Status.Update)
			statuses.DELETE("/:id", authMiddleware.Admin(), h.Status.Delete)
		}
	}
}
