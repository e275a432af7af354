package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/controllers"
	"github.com/viplat/gamehub-api/middlewares"
	"github.com/viplat/gamehub-api/stores"
)

func AuthRoutes(server *gin.Engine, users stores.UserStore, cfg config.AuthConfig, dev bool) {
	auth := server.Group("/api/auth")
	auth.POST("/register", controllers.Register(users, cfg, dev))
	auth.POST("/login", controllers.Login(users, cfg, dev))
	auth.GET("/me", middlewares.RequireAuth(cfg), controllers.Me(users, dev))
}
