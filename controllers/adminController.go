package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	appconfig "github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/services"
	"github.com/viplat/gamehub-api/stores"
	"gorm.io/datatypes"
)

const lowStockThreshold = 5

// gameColumns maps update-request JSON keys onto database columns. Keys
// outside this map are dropped.
var gameColumns = map[string]string{
	"title":       "title",
	"price":       "price",
	"image":       "image",
	"platform":    "platform",
	"genre":       "genre",
	"developer":   "developer",
	"description": "description",
	"stock":       "stock",
	"category":    "category",
	"onSale":      "on_sale",
	"salePrice":   "sale_price",
	"gallery":     "gallery",
}

func CreateGame(games stores.GameStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var game models.Game
		if err := ctx.ShouldBindJSON(&game); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("title and price are required", err))
			return
		}

		if err := games.Create(ctx.Request.Context(), &game); err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to create game", err))
			return
		}

		ctx.JSON(http.StatusCreated, game)
	}
}

func UpdateGame(games stores.GameStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		var body map[string]any
		if err := ctx.ShouldBindJSON(&body); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("invalid request body", err))
			return
		}

		updates := make(map[string]any, len(body))
		for key, value := range body {
			column, ok := gameColumns[key]
			if !ok {
				continue
			}
			if column == "gallery" {
				raw, err := json.Marshal(value)
				if err != nil {
					respondWithAppError(ctx, dev, apperror.NewBadRequest("invalid gallery value", err))
					return
				}
				updates[column] = datatypes.JSON(raw)
				continue
			}
			updates[column] = value
		}
		if len(updates) == 0 {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("no updatable fields in request body", nil))
			return
		}

		game, err := games.Update(ctx.Request.Context(), id, updates)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				respondWithAppError(ctx, dev, apperror.NewNotFound("game not found", nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to update game", err))
			return
		}

		ctx.JSON(http.StatusOK, game)
	}
}

// DeleteGame removes a catalog entry and cascades into every cart that
// referenced it. The cart lines go first: cart_items.game_id carries a foreign
// key, so deleting the game while lines still reference it would be rejected.
func DeleteGame(games stores.GameStore, carts *services.CartService, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		if _, err := games.Get(ctx.Request.Context(), id); err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				respondWithAppError(ctx, dev, apperror.NewNotFound("game not found", nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch game", err))
			return
		}

		if err := carts.RemoveGameEverywhere(ctx.Request.Context(), id); err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		if err := games.Delete(ctx.Request.Context(), id); err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				respondWithAppError(ctx, dev, apperror.NewNotFound("game not found", nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to delete game", err))
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "game deleted successfully"})
	}
}

// GalleryUploader is the slice of the S3 upload manager the image endpoint
// depends on; main wires the real client, tests substitute a fake.
type GalleryUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// UploadGameImages pushes multipart files to S3 and appends the resulting
// URLs to the game's gallery.
func UploadGameImages(games stores.GameStore, uploader GalleryUploader, storage appconfig.StorageConfig, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if uploader == nil || storage.S3Bucket == "" {
			respondWithAppError(ctx, dev, apperror.NewInternal("image storage is not configured", nil))
			return
		}

		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		game, err := games.Get(ctx.Request.Context(), id)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				respondWithAppError(ctx, dev, apperror.NewNotFound("game not found", nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch game", err))
			return
		}

		form, err := ctx.MultipartForm()
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("invalid form data", err))
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("no files uploaded", nil))
			return
		}

		var uploadedURLs []string
		var failedUploads []string
		for _, file := range files {
			f, openErr := file.Open()
			if openErr != nil {
				log.Printf("error opening file %s: %v", file.Filename, openErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			key := fmt.Sprintf("games/%d-%s-%s", game.ID, time.Now().Format("20060102150405"), file.Filename)
			result, uploadErr := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
				Bucket:      aws.String(storage.S3Bucket),
				Key:         aws.String(key),
				Body:        f,
				ACL:         "public-read",
				ContentType: aws.String(file.Header.Get("Content-Type")),
			})
			f.Close()

			if uploadErr != nil {
				log.Printf("error uploading file %s: %v", file.Filename, uploadErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}
			uploadedURLs = append(uploadedURLs, result.Location)
		}

		if len(uploadedURLs) > 0 {
			var gallery []string
			if len(game.Gallery) > 0 {
				if err := json.Unmarshal(game.Gallery, &gallery); err != nil {
					log.Printf("resetting unreadable gallery for game %d: %v", game.ID, err)
					gallery = nil
				}
			}
			gallery = append(gallery, uploadedURLs...)

			raw, err := json.Marshal(gallery)
			if err != nil {
				respondWithAppError(ctx, dev, apperror.NewInternal("failed to encode gallery", err))
				return
			}
			if _, err := games.Update(ctx.Request.Context(), game.ID, map[string]any{"gallery": datatypes.JSON(raw)}); err != nil {
				respondWithAppError(ctx, dev, apperror.NewInternal("failed to save gallery", err))
				return
			}
		}

		response := gin.H{
			"message": "files processed",
			"urls":    uploadedURLs,
		}
		if len(failedUploads) > 0 {
			response["failed"] = failedUploads
		}
		ctx.JSON(http.StatusOK, response)
	}
}

// GetUsers lists accounts for the admin screen; the credential hash never
// serializes.
func GetUsers(users stores.UserStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		list, err := users.List(ctx.Request.Context())
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch users", err))
			return
		}

		ctx.JSON(http.StatusOK, list)
	}
}

func ToggleAdmin(users stores.UserStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := parseIDParam(ctx, "userId")
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		user, err := users.ToggleAdmin(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				respondWithAppError(ctx, dev, apperror.NewNotFound("user not found", nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to toggle admin flag", err))
			return
		}

		message := "user is no longer an administrator"
		if user.IsAdmin {
			message = "user is now an administrator"
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": message,
			"user":    user.Info(),
		})
	}
}

// GetStats aggregates the dashboard counters, recent signups and the
// low-stock list.
func GetStats(users stores.UserStore, games stores.GameStore, contacts stores.ContactStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx := ctx.Request.Context()

		totalUsers, err := users.Count(reqCtx)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch stats", err))
			return
		}
		totalGames, err := games.Count(reqCtx)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch stats", err))
			return
		}
		totalContacts, err := contacts.Count(reqCtx)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch stats", err))
			return
		}
		recentUsers, err := users.Recent(reqCtx, 5)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch stats", err))
			return
		}
		lowStockGames, err := games.LowStock(reqCtx, lowStockThreshold)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch stats", err))
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"totalUsers":    totalUsers,
			"totalGames":    totalGames,
			"totalContacts": totalContacts,
			"recentUsers":   recentUsers,
			"lowStockGames": lowStockGames,
			"updatedAt":     time.Now().UTC(),
		})
	}
}
