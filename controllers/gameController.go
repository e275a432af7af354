package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/stores"
)

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, apperror.NewBadRequest("invalid "+name, err)
	}
	return uint(id), nil
}

// GetGames lists the catalog, optionally filtered by category, platform and
// the on-sale flag.
func GetGames(games stores.GameStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		filter := models.GameFilter{
			Category: ctx.Query("category"),
			Platform: ctx.Query("platform"),
			OnSale:   ctx.Query("onSale") == "true",
		}

		list, err := games.List(ctx.Request.Context(), filter)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch games", err))
			return
		}

		ctx.JSON(http.StatusOK, list)
	}
}

func GetGame(games stores.GameStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
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

		ctx.JSON(http.StatusOK, game)
	}
}

// SearchGames answers substring search. A blank query short-circuits to an
// empty list without touching the store.
func SearchGames(games stores.GameStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		query := strings.TrimSpace(ctx.Query("q"))
		if query == "" {
			ctx.JSON(http.StatusOK, []models.Game{})
			return
		}

		results, err := games.Search(ctx.Request.Context(), query)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("search failed", err))
			return
		}
		if results == nil {
			results = []models.Game{}
		}

		ctx.JSON(http.StatusOK, results)
	}
}
