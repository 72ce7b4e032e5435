package respond

// Sync report actions.
const (
	SyncActionCreated = "created"
	SyncActionUpdated = "updated"
	SyncActionError   = "error"
)

// SyncReportEntry is the per-contact outcome of a reconciliation run, in
// the order contacts were processed (local listing order).
type SyncReportEntry struct {
	ContactID uint   `json:"contactId"`
	Name      string `json:"name"`
	Action    string `json:"action"`
	// ResourceName is the remote directory identifier the contact was
	// created as or matched against; empty on error.
	ResourceName string `json:"resourceName,omitempty"`
	// Error holds the per-contact failure message when Action is "error".
	Error string `json:"error,omitempty"`
}

// SyncReportRespond is the body of POST /sync-contacts. UpdatedContacts
// keeps the flat display-name contract: every contact successfully
// created or updated, in processing order.
type SyncReportRespond struct {
	RunID           string            `json:"runId"`
	UpdatedContacts []string          `json:"updatedContacts"`
	Report          []SyncReportEntry `json:"report"`
}
