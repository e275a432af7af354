package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/controllers"
	"github.com/viplat/gamehub-api/middlewares"
	"github.com/viplat/gamehub-api/webpay"
)

func PaymentRoutes(server *gin.Engine, client webpay.Client, authCfg config.AuthConfig, dev bool) {
	payments := server.Group("/api/payments")
	payments.POST("/create", middlewares.RequireAuth(authCfg), controllers.CreatePayment(client, dev))
	payments.POST("/commit", controllers.CommitPayment(client, dev))
	payments.POST("/status", controllers.PaymentStatus(client, dev))
}
