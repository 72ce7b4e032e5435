// Package handler adapts HTTP requests onto the service layer. Handlers
// bind and validate input, call the service, and render the response
// shapes the frontend consumes.
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"kind_contact_server/internal/dto/request"
	"kind_contact_server/internal/service"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter. A malformed id renders a 400
// and returns ok=false.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return 0, false
	}
	return uint(id), true
}

// ListContactsHandler handles GET /contacts.
func ListContactsHandler(c *gin.Context) {
	contacts, err := service.Svc.Contact.ListContacts()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// GetContactHandler handles GET /contacts/:id.
func GetContactHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := service.Svc.Contact.GetContactDetail(id)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateContactHandler handles POST /contacts.
func CreateContactHandler(c *gin.Context) {
	var req request.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	id, err := service.Svc.Contact.CreateContact(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// UpdateContactHandler handles PUT /contacts/:id.
func UpdateContactHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Contact.UpdateContact(id, req); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": fmt.Sprintf("/contacts/%d", id)})
}

// AddNoteHandler handles POST /contacts/:id/add-note.
func AddNoteHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Contact.AddNote(id, req); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ArchiveContactHandler handles POST /contacts/:id/archive.
func ArchiveContactHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := service.Svc.Contact.ArchiveContact(id); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ==================== Phones ====================

// AddPhoneHandler handles POST /contacts/:id/phones.
func AddPhoneHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.AddPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	id, err := service.Svc.Contact.AddPhone(contactID, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// RemovePhoneHandler handles DELETE /contacts/:id/phones/:phoneId.
func RemovePhoneHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	phoneID, ok := pathID(c, "phoneId")
	if !ok {
		return
	}
	if err := service.Svc.Contact.RemovePhone(contactID, phoneID); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderPhoneHandler handles PUT /contacts/:id/phones/:phoneId/ordinal.
func ReorderPhoneHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	phoneID, ok := pathID(c, "phoneId")
	if !ok {
		return
	}
	var req request.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Contact.ReorderPhone(contactID, phoneID, req.Ordinal); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ==================== Emails ====================

// AddEmailHandler handles POST /contacts/:id/emails.
func AddEmailHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.AddEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	id, err := service.Svc.Contact.AddEmail(contactID, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// RemoveEmailHandler handles DELETE /contacts/:id/emails/:emailId.
func RemoveEmailHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	emailID, ok := pathID(c, "emailId")
	if !ok {
		return
	}
	if err := service.Svc.Contact.RemoveEmail(contactID, emailID); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderEmailHandler handles PUT /contacts/:id/emails/:emailId/ordinal.
func ReorderEmailHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	emailID, ok := pathID(c, "emailId")
	if !ok {
		return
	}
	var req request.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Contact.ReorderEmail(contactID, emailID, req.Ordinal); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ==================== Addresses ====================

// AddAddressHandler handles POST /contacts/:id/addresses.
func AddAddressHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	id, err := service.Svc.Contact.AddAddress(contactID, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// RemoveAddressHandler handles DELETE /contacts/:id/addresses/:addressId.
func RemoveAddressHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}
	if err := service.Svc.Contact.RemoveAddress(contactID, addressID); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderAddressHandler handles PUT /contacts/:id/addresses/:addressId/ordinal.
func ReorderAddressHandler(c *gin.Context) {
	contactID, ok := pathID(c, "id")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}
	var req request.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Contact.ReorderAddress(contactID, addressID, req.Ordinal); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
