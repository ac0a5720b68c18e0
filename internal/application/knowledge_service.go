package application

import (
	"strings"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// KnowledgeService struct - Application service for the read-only enquiry
// surface over the knowledge base
type KnowledgeService struct {
	knowledge output.KnowledgeStore
}

// NewKnowledgeService func - Creates new knowledge service
func NewKnowledgeService(knowledge output.KnowledgeStore) *KnowledgeService {
	return &KnowledgeService{
		knowledge: knowledge,
	}
}

// ListCities func - Use case: list configured city names
func (s *KnowledgeService) ListCities() ([]string, error) {
	cities, err := s.knowledge.ListCities()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return cities, nil
}

// GetOutletsByCity func - Use case: list outlet display names for a city
func (s *KnowledgeService) GetOutletsByCity(city string) ([]string, error) {
	return s.knowledge.ListOutlets(strings.ToLower(strings.TrimSpace(city)))
}

// ListAllOutlets func - Use case: list every canonical outlet identifier
// known to the knowledge base
func (s *KnowledgeService) ListAllOutlets() ([]string, error) {
	names, err := s.knowledge.ListOutletNames()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return names, nil
}

// GetOutletInfo func - Use case: fetch the full record for an outlet
func (s *KnowledgeService) GetOutletInfo(outletID string) (*domain.OutletRecord, error) {
	record, err := s.knowledge.GetOutlet(outletID)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrOutletNotFound
	}
	return record, nil
}

// GetOutletMenu func - Use case: fetch the menu lines for an outlet
func (s *KnowledgeService) GetOutletMenu(outletID string) ([]string, error) {
	return s.knowledge.GetMenu(outletID)
}

// GetOutletFaqs func - Use case: fetch FAQ entries for an outlet,
// filtered case-insensitively when query is non-empty
func (s *KnowledgeService) GetOutletFaqs(outletID, query string) ([]string, error) {
	faqs, err := s.knowledge.GetFaqs(outletID)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if query == "" {
		return faqs, nil
	}

	needle := strings.ToLower(query)
	var matched []string
	for _, faq := range faqs {
		if strings.Contains(strings.ToLower(faq), needle) {
			matched = append(matched, faq)
		}
	}
	return matched, nil
}

// Search func - Use case: free-text search across every outlet's menu
// lines and FAQ entries
func (s *KnowledgeService) Search(query string) (map[string]domain.SearchResult, error) {
	results, err := s.knowledge.Search(query)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return results, nil
}
