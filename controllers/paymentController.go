package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/webpay"
)

type createPaymentInput struct {
	Amount    float64 `json:"amount"`
	BuyOrder  string  `json:"buyOrder"`
	SessionID string  `json:"sessionId"`
	ReturnURL string  `json:"returnUrl"`
}

type paymentTokenInput struct {
	Token string `json:"token"`
}

// CreatePayment starts a Webpay transaction. The amount must coerce to a
// positive integer before the gateway is ever contacted.
func CreatePayment(client webpay.Client, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input createPaymentInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("invalid request body", err))
			return
		}

		amount := int(input.Amount)
		if amount <= 0 {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("amount must be a positive integer", nil))
			return
		}
		if input.BuyOrder == "" || input.ReturnURL == "" {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("buyOrder and returnUrl are required", nil))
			return
		}

		sessionID := input.SessionID
		if sessionID == "" {
			sessionID = fmt.Sprintf("sess_%d", time.Now().UnixMilli())
		}

		created, err := client.Create(ctx.Request.Context(), input.BuyOrder, sessionID, amount, input.ReturnURL)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewGateway("failed to create payment transaction", err))
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success": true,
			"token":   created.Token,
			"url":     created.URL,
			"message": "payment transaction created successfully",
		})
	}
}

// CommitPayment finalizes a transaction after the user returns from the
// gateway. Approval is derived from a zero response code.
func CommitPayment(client webpay.Client, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input paymentTokenInput
		if err := ctx.ShouldBindJSON(&input); err != nil || input.Token == "" {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("transaction token is required", err))
			return
		}

		committed, err := client.Commit(ctx.Request.Context(), input.Token)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewGateway("failed to commit payment transaction", err))
			return
		}

		description := "transaction rejected"
		if committed.Approved() {
			description = "transaction approved"
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success":              committed.Approved(),
			"response_code":        committed.ResponseCode,
			"response_description": description,
			"buy_order":            committed.BuyOrder,
			"amount":               committed.Amount,
			"authorization_code":   committed.AuthorizationCode,
			"payment_type_code":    committed.PaymentTypeCode,
			"transaction_date":     committed.TransactionDate,
		})
	}
}

// PaymentStatus relays the gateway's view of a transaction verbatim.
func PaymentStatus(client webpay.Client, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input paymentTokenInput
		if err := ctx.ShouldBindJSON(&input); err != nil || input.Token == "" {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("transaction token is required", err))
			return
		}

		status, err := client.Status(ctx.Request.Context(), input.Token)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewGateway("failed to fetch transaction status", err))
			return
		}

		ctx.JSON(http.StatusOK, status)
	}
}
