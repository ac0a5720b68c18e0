package memory

import (
	"sync"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"
)

// Compile-time check to ensure MemoryAnalysisStore implements AnalysisStore interface
var _ output.AnalysisStore = (*MemoryAnalysisStore)(nil)

// MemoryAnalysisStore struct - Output adapter for in-memory post-call
// analysis storage, keyed by session identifier
type MemoryAnalysisStore struct {
	mu       sync.RWMutex
	analyses map[string]*domain.CallAnalysis
	order    []string
}

// NewMemoryAnalysisStore func - Creates new in-memory analysis store
func NewMemoryAnalysisStore() *MemoryAnalysisStore {
	return &MemoryAnalysisStore{
		analyses: make(map[string]*domain.CallAnalysis),
	}
}

// SaveAnalysis stores an analysis, overwriting any previous one for the
// same session
func (m *MemoryAnalysisStore) SaveAnalysis(analysis *domain.CallAnalysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.analyses[analysis.SessionID]; !exists {
		m.order = append(m.order, analysis.SessionID)
	}
	stored := *analysis
	m.analyses[analysis.SessionID] = &stored
	return nil
}

// GetAnalysis returns the analysis for a session, nil if absent
func (m *MemoryAnalysisStore) GetAnalysis(sessionID string) (*domain.CallAnalysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	analysis, ok := m.analyses[sessionID]
	if !ok {
		return nil, nil
	}
	result := *analysis
	return &result, nil
}

// ListAnalyses returns all stored analyses in insertion order
func (m *MemoryAnalysisStore) ListAnalyses() ([]domain.CallAnalysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.CallAnalysis, 0, len(m.order))
	for _, sessionID := range m.order {
		result = append(result, *m.analyses[sessionID])
	}
	return result, nil
}
