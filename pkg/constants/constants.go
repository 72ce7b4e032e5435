package constants

import "time"

// Cache keys and lifetimes for the contact list read-through cache.
const (
	ContactListCacheKey = "contact:list"
	CacheTTL            = 10 * time.Minute
)

// Per-subscriber send buffer on the sync progress feed. A subscriber that
// falls this far behind loses events instead of blocking the broadcast.
const SyncEventBuffer = 256

// Default per-call timeout for remote directory requests.
const DirectoryCallTimeout = 15 * time.Second
