package output

import "bbq-enquiry/internal/domain"

// AnalysisStore interface - Output port
// Defines what the application needs for storing post-call analyses
type AnalysisStore interface {
	// SaveAnalysis stores an analysis keyed by its session identifier,
	// overwriting any previous analysis for the same session
	SaveAnalysis(analysis *domain.CallAnalysis) error

	// GetAnalysis returns the analysis for a session, nil if absent
	GetAnalysis(sessionID string) (*domain.CallAnalysis, error)

	// ListAnalyses returns all stored analyses
	ListAnalyses() ([]domain.CallAnalysis, error)
}
