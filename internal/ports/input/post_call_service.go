package input

import "bbq-enquiry/internal/domain"

// PostCallService interface - Input port (use case)
// Defines what the application can do with post-call analytics
type PostCallService interface {
	StoreAnalysis(analysis domain.CallAnalysis) error
	GetAnalysis(sessionID string) (*domain.CallAnalysis, error)
	ListAnalyses(filter domain.AnalysisFilter) ([]domain.CallAnalysis, error)
	Metrics() (*domain.CallMetrics, error)
	PendingActions() ([]string, error)
	// Export writes all analyses to a timestamped JSON file under dir and
	// returns the file name
	Export(dir string) (string, error)
}
