package router

import (
	"kind_contact_server/internal/handler"
	"kind_contact_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterContactRoutes registers the contact CRUD surface behind JWT auth.
func RegisterContactRoutes(r *gin.Engine) {
	contacts := r.Group("/contacts", middleware.JWTAuth())

	contacts.GET("", handler.ListContactsHandler)
	contacts.POST("", handler.CreateContactHandler)
	contacts.GET("/:id", handler.GetContactHandler)
	contacts.PUT("/:id", handler.UpdateContactHandler)
	contacts.POST("/:id/add-note", handler.AddNoteHandler)
	contacts.POST("/:id/archive", handler.ArchiveContactHandler)

	contacts.POST("/:id/phones", handler.AddPhoneHandler)
	contacts.DELETE("/:id/phones/:phoneId", handler.RemovePhoneHandler)
	contacts.PUT("/:id/phones/:phoneId/ordinal", handler.ReorderPhoneHandler)

	contacts.POST("/:id/emails", handler.AddEmailHandler)
	contacts.DELETE("/:id/emails/:emailId", handler.RemoveEmailHandler)
	contacts.PUT("/:id/emails/:emailId/ordinal", handler.ReorderEmailHandler)

	contacts.POST("/:id/addresses", handler.AddAddressHandler)
	contacts.DELETE("/:id/addresses/:addressId", handler.RemoveAddressHandler)
	contacts.PUT("/:id/addresses/:addressId/ordinal", handler.ReorderAddressHandler)
}
