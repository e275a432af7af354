package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/initializers"
	"github.com/viplat/gamehub-api/routes"
	"github.com/viplat/gamehub-api/services"
	"github.com/viplat/gamehub-api/stores"
	"github.com/viplat/gamehub-api/utils"
	"github.com/viplat/gamehub-api/webpay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := initializers.ConnectToDB(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal(err)
	}

	users := stores.NewUserStore(db)
	games := stores.NewGameStore(db)
	blogs := stores.NewBlogStore(db)
	contacts := stores.NewContactStore(db)
	carts := services.NewCartService(games, stores.NewCartStore(db))
	payments := webpay.NewClient(cfg.Webpay)
	mailer := utils.NewMailer(cfg.Mail)

	if !cfg.Server.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-auth-token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	dev := cfg.Server.Dev
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, users, cfg.Auth, dev)
	routes.GameRoutes(server, games, dev)
	routes.CartRoutes(server, carts, cfg.Auth, dev)
	routes.OrderRoutes(server, cfg.Auth, dev)
	routes.PaymentRoutes(server, payments, cfg.Auth, dev)
	routes.BlogRoutes(server, blogs, contacts, mailer, dev)
	routes.SeedRoutes(server, games, blogs, dev)
	adminDeps := routes.AdminDeps{
		Users:    users,
		Games:    games,
		Contacts: contacts,
		Carts:    carts,
	}
	if cfg.Storage.S3Bucket != "" {
		uploader, err := initializers.NewS3Uploader(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		adminDeps.Uploader = uploader
	}
	routes.AdminRoutes(server, adminDeps, cfg)

	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
