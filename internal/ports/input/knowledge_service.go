package input

import "bbq-enquiry/internal/domain"

// KnowledgeService interface - Input port (use case)
// Defines the read-only enquiry surface over the knowledge base
type KnowledgeService interface {
	ListCities() ([]string, error)
	GetOutletsByCity(city string) ([]string, error)
	ListAllOutlets() ([]string, error)
	GetOutletInfo(outletID string) (*domain.OutletRecord, error)
	GetOutletMenu(outletID string) ([]string, error)
	// GetOutletFaqs returns FAQ entries, filtered when query is non-empty
	GetOutletFaqs(outletID, query string) ([]string, error)
	Search(query string) (map[string]domain.SearchResult, error)
}
