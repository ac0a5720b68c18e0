package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure Store implements KnowledgeStore interface
var _ output.KnowledgeStore = (*Store)(nil)

// seedFile is the on-disk shape of the knowledge seed document
type seedFile struct {
	Outlets []domain.OutletRecord `json:"outlets"`
}

// Store struct - Output adapter for the static knowledge base. The city to
// outlet-list mapping comes from configuration; per-outlet records (menu,
// FAQs, address, contact, hours) come from a JSON seed produced by the
// ingestion step. Everything is loaded once at construction and immutable
// afterwards, so the store is safe for concurrent reads without locking.
type Store struct {
	cities        []string
	outletsByCity map[string][]string
	records       map[string]*domain.OutletRecord
}

// NewStore builds a knowledge store from the configured city list and an
// optional seed file. City names are normalized to lower case; record keys
// stay canonical ("<chain> - <City>").
func NewStore(cities []string, outletsByCity map[string][]string, seedPath string) (*Store, error) {
	store := &Store{
		cities:        make([]string, 0, len(cities)),
		outletsByCity: make(map[string][]string, len(outletsByCity)),
		records:       make(map[string]*domain.OutletRecord),
	}

	for _, city := range cities {
		store.cities = append(store.cities, strings.ToLower(city))
	}
	for city, outlets := range outletsByCity {
		store.outletsByCity[strings.ToLower(city)] = outlets
	}

	if seedPath != "" {
		if err := store.loadSeed(seedPath); err != nil {
			return nil, err
		}
	}

	logrus.Infof("Knowledge base loaded: %d cities, %d outlet records", len(store.cities), len(store.records))
	return store, nil
}

func (s *Store) loadSeed(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read knowledge seed %s: %w", path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(payload, &seed); err != nil {
		return fmt.Errorf("failed to parse knowledge seed %s: %w", path, err)
	}

	for i := range seed.Outlets {
		record := seed.Outlets[i]
		if record.Name == "" {
			logrus.Warnf("Skipping unnamed outlet record in %s", path)
			continue
		}
		s.records[record.Name] = &record
	}
	return nil
}

// ListCities returns the configured city names in configuration order
func (s *Store) ListCities() ([]string, error) {
	cities := make([]string, len(s.cities))
	copy(cities, s.cities)
	return cities, nil
}

// ListOutletNames returns every canonical outlet identifier, sorted
func (s *Store) ListOutletNames() ([]string, error) {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ListOutlets returns outlet display names for a city, empty if unknown
func (s *Store) ListOutlets(city string) ([]string, error) {
	outlets := s.outletsByCity[city]
	result := make([]string, len(outlets))
	copy(result, outlets)
	return result, nil
}

// GetOutlet returns the record for a canonical outlet identifier, nil if absent
func (s *Store) GetOutlet(outletID string) (*domain.OutletRecord, error) {
	record, ok := s.records[outletID]
	if !ok {
		return nil, nil
	}
	result := *record
	return &result, nil
}

// GetMenu returns the ordered menu lines for an outlet, empty if absent
func (s *Store) GetMenu(outletID string) ([]string, error) {
	record, ok := s.records[outletID]
	if !ok {
		return nil, nil
	}
	menu := make([]string, len(record.Menu))
	copy(menu, record.Menu)
	return menu, nil
}

// GetFaqs returns the ordered FAQ entries for an outlet, empty if absent
func (s *Store) GetFaqs(outletID string) ([]string, error) {
	record, ok := s.records[outletID]
	if !ok {
		return nil, nil
	}
	faqs := make([]string, len(record.Faqs))
	copy(faqs, record.Faqs)
	return faqs, nil
}

// Search matches query case-insensitively against every outlet's menu lines
// and FAQ entries
func (s *Store) Search(query string) (map[string]domain.SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	results := make(map[string]domain.SearchResult)
	if needle == "" {
		return results, nil
	}

	for name, record := range s.records {
		var hit domain.SearchResult
		for _, line := range record.Menu {
			if strings.Contains(strings.ToLower(line), needle) {
				hit.Menu = append(hit.Menu, line)
			}
		}
		for _, faq := range record.Faqs {
			if strings.Contains(strings.ToLower(faq), needle) {
				hit.Faqs = append(hit.Faqs, faq)
			}
		}
		if len(hit.Menu) > 0 || len(hit.Faqs) > 0 {
			results[name] = hit
		}
	}
	return results, nil
}
