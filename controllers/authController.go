package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/middlewares"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/stores"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 10

	msgInvalidInput       = "name, email and password are required"
	msgEmailTaken         = "email is already registered"
	msgInvalidCredentials = "invalid email or password"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Register handles user registration and hands back a token right away so the
// client can log the user in without a second round trip.
func Register(users stores.UserStore, authCfg config.AuthConfig, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var signUpData models.RegisterData
		if err := ctx.ShouldBindJSON(&signUpData); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest(msgInvalidInput, err))
			return
		}

		if _, err := users.FindByEmail(ctx.Request.Context(), signUpData.Email); err == nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest(msgEmailTaken, nil))
			return
		} else if !errors.Is(err, stores.ErrNotFound) {
			respondWithAppError(ctx, dev, apperror.NewInternal("registration failed", err))
			return
		}

		hashedPassword, err := hashPassword(signUpData.Password)
		if err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to hash password", err))
			return
		}

		user := models.User{
			Name:     signUpData.Name,
			Email:    signUpData.Email,
			Password: hashedPassword,
			Rut:      signUpData.Rut,
			Address:  signUpData.Address,
			IsAdmin:  false,
		}
		if err := users.Create(ctx.Request.Context(), &user); err != nil {
			if errors.Is(err, stores.ErrDuplicate) {
				respondWithAppError(ctx, dev, apperror.NewBadRequest(msgEmailTaken, nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("registration failed", err))
			return
		}

		token, err := middlewares.GenerateToken(authCfg, user)
		if err != nil {
			log.Println("token generation error:", err)
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to generate token", err))
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message": "user registered successfully",
			"token":   token,
			"user":    user.Info(),
		})
	}
}

// Login handles user authentication.
func Login(users stores.UserStore, authCfg config.AuthConfig, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("email and password are required", err))
			return
		}

		user, err := users.FindByEmail(ctx.Request.Context(), loginData.Email)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				respondWithAppError(ctx, dev, apperror.NewBadRequest(msgInvalidCredentials, nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("login failed", err))
			return
		}

		if err := comparePasswords(user.Password, loginData.Password); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest(msgInvalidCredentials, nil))
			return
		}

		token, err := middlewares.GenerateToken(authCfg, *user)
		if err != nil {
			log.Println("token generation error:", err)
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to generate token", err))
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"token": token,
			"user":  user.Info(),
		})
	}
}

// Me returns the authenticated user's profile, credential hash excluded.
func Me(users stores.UserStore, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, exists := middlewares.CurrentClaims(ctx)
		if !exists {
			respondWithAppError(ctx, dev, apperror.NewUnauthorized("user not found in context", nil))
			return
		}

		user, err := users.FindByID(ctx.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, stores.ErrNotFound) {
				respondWithAppError(ctx, dev, apperror.NewNotFound("user not found", nil))
				return
			}
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to fetch profile", err))
			return
		}

		ctx.JSON(http.StatusOK, user)
	}
}
