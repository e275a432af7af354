package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func HealthCheck() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"status":    "online",
			"service":   "GameHub Backend",
			"version":   "1.0.0",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// NotFoundHandler answers every unmatched route with a structured 404.
func NotFoundHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sendJSONResponse(ctx, http.StatusNotFound, gin.H{
			"error":     "endpoint not found",
			"path":      ctx.Request.URL.Path,
			"method":    ctx.Request.Method,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
