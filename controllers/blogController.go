package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/stores"
)

func GetBlogs(blogs stores.BlogStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		list, err := blogs.List(ctx.Request.Context())
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch blogs", err))
			return
		}

		ctx.JSON(http.StatusOK, list)
	}
}

func GetBlog(blogs stores.BlogStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := parseIDParam(ctx, "id")
		if err != nil {
			respondWithAppError(ctx, dev, err)
			return
		}

		blog, err := blogs.Get(ctx.Request.Context(), id)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				respondWithAppError(ctx, dev, apperror.NewNotFound("blog not found", nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch blog", err))
			return
		}

		ctx.JSON(http.StatusOK, blog)
	}
}
