package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/stores"
)

func sampleGames() []models.Game {
	return []models.Game{
		{
			Title:       "The Legend of Zelda: Breath of the Wild",
			Price:       49990,
			Image:       "https://assets.nintendo.com/image/upload/ncom/software/switch/70010000000025/zelda-botw.jpg",
			Platform:    "Nintendo Switch",
			Genre:       "Aventura",
			Developer:   "Nintendo",
			Description: "Explora el vasto mundo de Hyrule en esta épica aventura.",
			Stock:       15,
			Category:    "juegos",
		},
		{
			Title:       "PlayStation 5 Consola",
			Price:       599990,
			Image:       "https://gmedia.playstation.com/is/image/SIEPDC/ps5-product-thumbnail-01.png",
			Platform:    "PlayStation",
			Genre:       "Consola",
			Developer:   "Sony",
			Description: "Consola de nueva generación con SSD ultrarrápido.",
			Stock:       8,
			Category:    "consolas",
		},
		{
			Title:       "Xbox Series X",
			Price:       549990,
			Image:       "https://compass-ssl.xbox.com/assets/b9/0a/xbox-series-x.jpg",
			Platform:    "Xbox",
			Genre:       "Consola",
			Developer:   "Microsoft",
			Description: "La consola más potente de Microsoft.",
			Stock:       12,
			Category:    "consolas",
		},
		{
			Title:       "Audífonos Gaming Logitech G733",
			Price:       89990,
			Image:       "https://resource.logitechg.com/content/dam/gaming/en/products/g733/g733-gallery-1.png",
			Platform:    "Multiplataforma",
			Genre:       "Accesorio",
			Developer:   "Logitech",
			Description: "Audífonos inalámbricos con iluminación RGB LIGHTSYNC.",
			Stock:       25,
			Category:    "accesorios",
		},
		{
			Title:       "Super Mario Bros. Wonder",
			Price:       54990,
			Image:       "https://assets.nintendo.com/image/upload/ncom/software/switch/70010000063709/mario-wonder.jpg",
			Platform:    "Nintendo Switch",
			Genre:       "Plataformas",
			Developer:   "Nintendo",
			Description: "Nueva aventura 2D de Mario con efectos Wonder.",
			Stock:       10,
			Category:    "juegos",
			OnSale:      true,
			SalePrice:   44990,
		},
		{
			Title:       "Cyberpunk 2077: Phantom Liberty",
			Price:       39990,
			Image:       "https://image.api.playstation.com/vulcan/ap/rnd/202111/3013/cyberpunk-pl.png",
			Platform:    "PlayStation 5",
			Genre:       "RPG",
			Developer:   "CD Projekt Red",
			Description: "RPG de mundo abierto en Night City con expansión.",
			Stock:       20,
			Category:    "juegos",
			OnSale:      true,
			SalePrice:   29990,
		},
	}
}

func sampleBlogs() []models.Blog {
	return []models.Blog{
		{
			Title:    "Los 10 mejores juegos de 2024",
			Content:  "Repasamos los juegos más destacados del año: Zelda: Tears of the Kingdom, Baldur's Gate 3, Spider-Man 2 y más...",
			Author:   "Equipo GameHub",
			Image:    "https://assets.nintendo.com/image/upload/ncom/software/switch/70010000000025/zelda-botw.jpg",
			Category: "reseña",
		},
		{
			Title:    "Guía: Cómo armar tu setup gaming ideal",
			Content:  "Todo lo que necesitas saber para crear el espacio gaming perfecto: monitores, sillas, iluminación RGB y periféricos...",
			Author:   "Equipo GameHub",
			Image:    "https://resource.logitechg.com/content/dam/gaming/en/products/g733/g733-gallery-1.png",
			Category: "guia",
		},
	}
}

// Seed wipes and repopulates the catalog and blog collections. Destructive;
// exists for development and demos.
func Seed(games stores.GameStore, blogs stores.BlogStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		seedGames := sampleGames()
		seedBlogs := sampleBlogs()

		if err := games.ReplaceAll(ctx.Request.Context(), seedGames); err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to seed games", err))
			return
		}
		if err := blogs.ReplaceAll(ctx.Request.Context(), seedBlogs); err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to seed blogs", err))
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":    "database seeded successfully",
			"gamesAdded": len(seedGames),
			"blogsAdded": len(seedBlogs),
		})
	}
}
