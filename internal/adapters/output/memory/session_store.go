package memory

import (
	"sync"
	"time"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory session storage.
// Uses sync.Map for thread-safe concurrent access to conversation contexts.
// Contexts idle longer than the configured timeout are dropped lazily on read.
type MemorySessionStore struct {
	sessions sync.Map
	timeout  time.Duration
}

// NewMemorySessionStore creates a new in-memory session store.
// timeout: idle duration after which a stored context expires
func NewMemorySessionStore(timeout time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		timeout: timeout,
	}
}

// GetTimeout returns the configured idle timeout
func (m *MemorySessionStore) GetTimeout() time.Duration {
	return m.timeout
}

// GetSession retrieves a context by session identifier.
// Returns nil if the session does not exist or has expired; expired
// contexts are deleted (lazy cleanup).
func (m *MemorySessionStore) GetSession(sessionID string) (*domain.SessionContext, error) {
	value, exists := m.sessions.Load(sessionID)
	if !exists {
		return nil, nil
	}

	context, ok := value.(*domain.SessionContext)
	if !ok {
		// If data is malformed, delete and return nil
		m.sessions.Delete(sessionID)
		return nil, nil
	}

	if context.Expired(m.timeout) {
		m.sessions.Delete(sessionID)
		return nil, nil
	}

	// Hand out a copy so callers never alias the stored context
	clone := context.Clone()
	return &clone, nil
}

// UpdateSession creates or updates a context (full overwrite).
// UpdatedAt is set to the current time before storing.
func (m *MemorySessionStore) UpdateSession(context *domain.SessionContext) error {
	stored := context.Clone()
	stored.UpdatedAt = time.Now()
	m.sessions.Store(stored.SessionID, &stored)
	return nil
}

// DeleteSession removes a context by session identifier.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(sessionID string) error {
	m.sessions.Delete(sessionID)
	return nil
}
