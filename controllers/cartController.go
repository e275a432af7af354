package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/middlewares"
	"github.com/viplat/gamehub-api/services"
)

type addToCartInput struct {
	GameID uint `json:"productId" binding:"required"`
}

func currentUserID(ctx *gin.Context, dev bool) (uint, bool) {
	claims, exists := middlewares.CurrentClaims(ctx)
	if !exists {
		respondWithAppError(ctx, dev, apperror.NewUnauthorized("user not found in context", nil))
		return 0, false
	}
	return claims.UserID, true
}

func GetCart(carts *services.CartService, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := currentUserID(ctx, dev)
		if !ok {
			return
		}

		cart, err := carts.Get(ctx.Request.Context(), userID)
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		ctx.JSON(http.StatusOK, cart)
	}
}

func AddToCart(carts *services.CartService, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := currentUserID(ctx, dev)
		if !ok {
			return
		}

		var input addToCartInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("productId is required", err))
			return
		}

		cart, err := carts.AddItem(ctx.Request.Context(), userID, input.GameID)
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "game added to cart",
			"cart":    cart,
		})
	}
}

func RemoveCartItem(carts *services.CartService, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := currentUserID(ctx, dev)
		if !ok {
			return
		}

		itemID, err := parseIDParam(ctx, "itemId")
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		cart, err := carts.RemoveItem(ctx.Request.Context(), userID, itemID)
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "item removed from cart",
			"cart":    cart,
		})
	}
}

func ClearCart(carts *services.CartService, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := currentUserID(ctx, dev)
		if !ok {
			return
		}

		if err := carts.Clear(ctx.Request.Context(), userID); err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
