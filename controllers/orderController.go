package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/services"
)

// CreateOrder runs the checkout workflow. The receipt is ephemeral: it lives
// only in this response, and clients are expected to clear their cart and
// start the payment flow afterwards.
func CreateOrder(dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var orderInfo models.OrderRequest
		if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("invalid request body", err))
			return
		}

		receipt, err := services.BuildOrder(orderInfo)
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":  "order created successfully",
			"orderId":  receipt.OrderID,
			"total":    receipt.Total,
			"items":    receipt.Items,
			"customer": receipt.Customer,
			"address":  receipt.Address,
			"date":     receipt.Date,
			"status":   receipt.Status,
		})
	}
}
