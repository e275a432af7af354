package controllers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

// respondWithAppError maps any error onto the taxonomy and writes the JSON
// body. Underlying causes are logged; they reach the client only in dev mode.
func respondWithAppError(ctx *gin.Context, dev bool, err error) {
	appErr := apperror.From(err)
	if appErr.Err != nil {
		log.Printf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, appErr)
	}

	body := gin.H{"error": appErr.Message}
	if dev && appErr.Err != nil {
		body["details"] = appErr.Err.Error()
	}
	ctx.JSON(appErr.StatusCode(), body)
}
