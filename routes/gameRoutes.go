package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/controllers"
	"github.com/viplat/gamehub-api/stores"
)

func GameRoutes(server *gin.Engine, games stores.GameStore, dev bool) {
	server.GET("/api/games", controllers.GetGames(games, dev))
	server.GET("/api/games/:id", controllers.GetGame(games, dev))
	server.GET("/api/search/games", controllers.SearchGames(games, dev))
}
