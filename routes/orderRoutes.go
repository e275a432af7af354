package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/controllers"
	"github.com/viplat/gamehub-api/middlewares"
)

func OrderRoutes(server *gin.Engine, authCfg config.AuthConfig, dev bool) {
	server.POST("/api/orders", middlewares.RequireAuth(authCfg), controllers.CreateOrder(dev))
}
