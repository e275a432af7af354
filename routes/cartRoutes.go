package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/controllers"
	"github.com/viplat/gamehub-api/middlewares"
	"github.com/viplat/gamehub-api/services"
)

func CartRoutes(server *gin.Engine, carts *services.CartService, authCfg config.AuthConfig, dev bool) {
	cart := server.Group("/api/cart", middlewares.RequireAuth(authCfg))
	cart.GET("", controllers.GetCart(carts, dev))
	cart.POST("/add", controllers.AddToCart(carts, dev))
	cart.DELETE("/remove/:itemId", controllers.RemoveCartItem(carts, dev))
	cart.DELETE("/clear", controllers.ClearCart(carts, dev))
}
