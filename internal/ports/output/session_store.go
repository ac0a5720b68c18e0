package output

import "bbq-enquiry/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for persisting conversation contexts.
// One context is stored per session identifier and overwritten whole on
// every turn. Implementations must be thread-safe for concurrent access;
// per-session turn serialization is the caller's responsibility.
type SessionStore interface {
	// GetSession retrieves a context by session identifier.
	// Returns the context if found and not expired, or nil if the session
	// does not exist or has expired. Implementations should perform lazy
	// cleanup of expired contexts.
	// Returns an error only if there is a storage access failure.
	GetSession(sessionID string) (*domain.SessionContext, error)

	// UpdateSession creates or updates a context (full overwrite).
	// The context's UpdatedAt should be set to the current time.
	// Returns an error if the context cannot be stored.
	UpdateSession(context *domain.SessionContext) error

	// DeleteSession removes a context by session identifier.
	// This operation is idempotent - deleting a non-existent session
	// should not return an error. Used on the forced-reset failure path.
	DeleteSession(sessionID string) error
}
