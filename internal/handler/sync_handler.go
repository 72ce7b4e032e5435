package handler

import (
	"net/http"

	"kind_contact_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SyncContactsHandler handles POST /sync-contacts. The run inherits the
// request context, so a dropped connection cancels the remainder of the
// batch between contacts.
func SyncContactsHandler(c *gin.Context) {
	report, err := service.Svc.Sync.SyncContacts(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"runId":           report.RunID,
		"updatedContacts": report.UpdatedContacts,
		"report":          report.Report,
	})
}
