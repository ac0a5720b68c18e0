package application

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// PostCallService struct - Application service for post-call analytics:
// storage, filtered listing, metric aggregation and export
type PostCallService struct {
	analyses output.AnalysisStore
}

// NewPostCallService func - Creates new post-call service
func NewPostCallService(analyses output.AnalysisStore) *PostCallService {
	return &PostCallService{
		analyses: analyses,
	}
}

// StoreAnalysis func - Use case: store one call analysis
func (s *PostCallService) StoreAnalysis(analysis domain.CallAnalysis) error {
	if analysis.SessionID == "" {
		return domain.ErrInvalidRequest
	}
	if err := s.analyses.SaveAnalysis(&analysis); err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// GetAnalysis func - Use case: fetch the analysis for one session
func (s *PostCallService) GetAnalysis(sessionID string) (*domain.CallAnalysis, error) {
	analysis, err := s.analyses.GetAnalysis(sessionID)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if analysis == nil {
		return nil, domain.ErrAnalysisNotFound
	}
	return analysis, nil
}

// ListAnalyses func - Use case: list analyses with optional filters
func (s *PostCallService) ListAnalyses(filter domain.AnalysisFilter) ([]domain.CallAnalysis, error) {
	all, err := s.analyses.ListAnalyses()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	filtered := make([]domain.CallAnalysis, 0, len(all))
	for _, analysis := range all {
		if filter.StartDate != nil && analysis.StartTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && analysis.EndTime.After(*filter.EndDate) {
			continue
		}
		if filter.MinSatisfaction != nil {
			if analysis.UserSatisfaction == nil || *analysis.UserSatisfaction < *filter.MinSatisfaction {
				continue
			}
		}
		filtered = append(filtered, analysis)
	}
	return filtered, nil
}

// Metrics func - Use case: aggregate metrics over all stored analyses
func (s *PostCallService) Metrics() (*domain.CallMetrics, error) {
	all, err := s.analyses.ListAnalyses()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	metrics := &domain.CallMetrics{TotalCalls: len(all)}
	if len(all) == 0 {
		return metrics, nil
	}

	var totalSatisfaction, totalFulfilled, totalErrors int
	var totalDuration float64
	for _, analysis := range all {
		if analysis.UserSatisfaction != nil {
			totalSatisfaction += *analysis.UserSatisfaction
		}
		if analysis.IntentFulfilled {
			totalFulfilled++
		}
		totalDuration += analysis.Duration
		totalErrors += analysis.ErrorCount
	}

	total := float64(len(all))
	metrics.AverageSatisfaction = float64(totalSatisfaction) / total
	metrics.IntentFulfillmentRate = float64(totalFulfilled) / total
	metrics.AverageDuration = totalDuration / total
	metrics.ErrorRate = float64(totalErrors) / total
	return metrics, nil
}

// PendingActions func - Use case: de-duplicated union of pending actions
func (s *PostCallService) PendingActions() ([]string, error) {
	all, err := s.analyses.ListAnalyses()
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	seen := make(map[string]struct{})
	actions := make([]string, 0)
	for _, analysis := range all {
		for _, action := range analysis.PendingActions {
			if _, ok := seen[action]; ok {
				continue
			}
			seen[action] = struct{}{}
			actions = append(actions, action)
		}
	}
	return actions, nil
}

// Export func - Use case: dump all analyses to a timestamped JSON file
func (s *PostCallService) Export(dir string) (string, error) {
	all, err := s.analyses.ListAnalyses()
	if err != nil {
		logrus.Errorln(err)
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	byID := make(map[string]domain.CallAnalysis, len(all))
	for _, analysis := range all {
		byID[analysis.SessionID] = analysis
	}

	payload, err := json.MarshalIndent(byID, "", "  ")
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("call_analyses_%s.json", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	logrus.Infof("Exported %d call analyses to %s", len(all), filename)
	return filename, nil
}
