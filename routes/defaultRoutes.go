package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/api/health", controllers.HealthCheck())
	server.NoRoute(controllers.NotFoundHandler())
}
