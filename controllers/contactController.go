package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/stores"
	"github.com/viplat/gamehub-api/utils"
)

// CreateContact stores a contact message and, when the mailer is configured,
// notifies the shop inbox. Notification failures never fail the request.
func CreateContact(contacts stores.ContactStore, mailer *utils.Mailer, dev bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var contact models.Contact
		if err := ctx.ShouldBindJSON(&contact); err != nil {
			respondWithAppError(ctx, dev, apperror.NewBadRequest("all fields are required", err))
			return
		}
		contact.Read = false

		if err := contacts.Create(ctx.Request.Context(), &contact); err != nil {
			respondWithAppError(ctx, dev, apperror.NewInternal("failed to save message", err))
			return
		}

		if mailer.Enabled() {
			go func(c models.Contact) {
				if err := mailer.SendContactNotification(c); err != nil {
					log.Println("contact notification error:", err)
				}
			}(contact)
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message":   "message sent successfully",
			"contactId": contact.ID,
		})
	}
}
