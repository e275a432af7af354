package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/controllers"
	"github.com/viplat/gamehub-api/stores"
)

func SeedRoutes(server *gin.Engine, games stores.GameStore, blogs stores.BlogStore, dev bool) {
	server.POST("/api/seed", controllers.Seed(games, blogs, dev))
}
