package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amal-dz/amal/internal/common"
	"github.com/amal-dz/amal/internal/config"
	"github.com/amal-dz/amal/internal/httpapi/handlers"
	"github.com/amal-dz/amal/internal/httpapi/middleware"
	"github.com/amal-dz/amal/internal/store/redisstore"
)

func NewRouter(db *gorm.DB, cfg config.Config, rds *redisstore.Store) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.Use(middleware.RequestID())

	h := handlers.NewHandler(db, cfg, rds)

	r.GET("/", func(c *gin.Context) {
		common.OK(c, gin.H{"name": "amal", "description": "support chat backend"})
	})

	r.POST("/chat", h.Chat)
	r.GET("/conversations/:id", h.GetConversation)
	r.GET("/health", h.Health)

	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/forgot-password", h.ForgotPassword)
	r.POST("/auth/reset-password", h.ResetPassword)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/logout", h.Logout)

	authGroup := r.Group("/")
	authGroup.Use(middleware.AuthRequired(cfg.JWTSecret))
	authGroup.GET("/auth/me", h.Me)

	return r
}
