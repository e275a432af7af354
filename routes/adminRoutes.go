package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/controllers"
	"github.com/viplat/gamehub-api/middlewares"
	"github.com/viplat/gamehub-api/services"
	"github.com/viplat/gamehub-api/stores"
)

type AdminDeps struct {
	Users    stores.UserStore
	Games    stores.GameStore
	Contacts stores.ContactStore
	Carts    *services.CartService
	Uploader controllers.GalleryUploader
}

func AdminRoutes(server *gin.Engine, deps AdminDeps, cfg *config.Config) {
	dev := cfg.Server.Dev
	admin := server.Group("/api/admin",
		middlewares.RequireAuth(cfg.Auth),
		middlewares.RequireAdmin(deps.Users))

	admin.POST("/games", controllers.CreateGame(deps.Games, dev))
	admin.PUT("/games/:id", controllers.UpdateGame(deps.Games, dev))
	admin.DELETE("/games/:id", controllers.DeleteGame(deps.Games, deps.Carts, dev))
	admin.POST("/games/:id/images", controllers.UploadGameImages(deps.Games, deps.Uploader, cfg.Storage, dev))
	admin.GET("/users", controllers.GetUsers(deps.Users, dev))
	admin.PUT("/users/:userId/toggle-admin", controllers.ToggleAdmin(deps.Users, dev))
	admin.GET("/stats", controllers.GetStats(deps.Users, deps.Games, deps.Contacts, dev))
}
