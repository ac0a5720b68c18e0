package application

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bbq-enquiry/internal/domain"
)

func intPtr(v int) *int { return &v }

func sampleAnalysis(sessionID string, satisfaction *int, fulfilled bool) domain.CallAnalysis {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return domain.CallAnalysis{
		SessionID:        sessionID,
		StartTime:        start,
		EndTime:          start.Add(3 * time.Minute),
		Duration:         180,
		UserSatisfaction: satisfaction,
		IntentFulfilled:  fulfilled,
		ErrorCount:       1,
		ResolutionStatus: "resolved",
	}
}

// TestStoreAnalysisRejectsEmptySessionID tests input validation
func TestStoreAnalysisRejectsEmptySessionID(t *testing.T) {
	service := NewPostCallService(&mockAnalysisStore{})

	err := service.StoreAnalysis(domain.CallAnalysis{})
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got %v", err)
	}
}

// TestStoreAndGetAnalysis tests the round trip through the store
func TestStoreAndGetAnalysis(t *testing.T) {
	service := NewPostCallService(&mockAnalysisStore{})

	if err := service.StoreAnalysis(sampleAnalysis("s1", intPtr(4), true)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	analysis, err := service.GetAnalysis("s1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if analysis.SessionID != "s1" || *analysis.UserSatisfaction != 4 {
		t.Errorf("Unexpected analysis: %+v", analysis)
	}
}

// TestGetAnalysisUnknownSession tests the not-found error
func TestGetAnalysisUnknownSession(t *testing.T) {
	service := NewPostCallService(&mockAnalysisStore{})

	_, err := service.GetAnalysis("nope")
	if !errors.Is(err, domain.ErrAnalysisNotFound) {
		t.Errorf("Expected ErrAnalysisNotFound, got %v", err)
	}
}

// TestListAnalysesFilters tests date and satisfaction filtering
func TestListAnalysesFilters(t *testing.T) {
	service := NewPostCallService(&mockAnalysisStore{})

	early := sampleAnalysis("early", intPtr(2), false)
	early.StartTime = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	early.EndTime = early.StartTime.Add(2 * time.Minute)
	late := sampleAnalysis("late", intPtr(5), true)

	if err := service.StoreAnalysis(early); err != nil {
		t.Fatal(err)
	}
	if err := service.StoreAnalysis(late); err != nil {
		t.Fatal(err)
	}

	cutoff := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	got, err := service.ListAnalyses(domain.AnalysisFilter{StartDate: &cutoff})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != "late" {
		t.Errorf("Expected only the late analysis, got %+v", got)
	}

	got, err = service.ListAnalyses(domain.AnalysisFilter{MinSatisfaction: intPtr(4)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != "late" {
		t.Errorf("Expected only the satisfied analysis, got %+v", got)
	}

	// An analysis with no satisfaction score never passes the filter
	unscored := sampleAnalysis("unscored", nil, true)
	if err := service.StoreAnalysis(unscored); err != nil {
		t.Fatal(err)
	}
	got, err = service.ListAnalyses(domain.AnalysisFilter{MinSatisfaction: intPtr(1)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, analysis := range got {
		if analysis.SessionID == "unscored" {
			t.Error("Expected the unscored analysis to be filtered out")
		}
	}
}

// TestMetricsAggregation tests the metric math over a small fixed set
func TestMetricsAggregation(t *testing.T) {
	service := NewPostCallService(&mockAnalysisStore{})

	a := sampleAnalysis("a", intPtr(4), true)
	a.Duration = 100
	a.ErrorCount = 0
	b := sampleAnalysis("b", intPtr(2), false)
	b.Duration = 200
	b.ErrorCount = 2

	if err := service.StoreAnalysis(a); err != nil {
		t.Fatal(err)
	}
	if err := service.StoreAnalysis(b); err != nil {
		t.Fatal(err)
	}

	metrics, err := service.Metrics()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if metrics.TotalCalls != 2 {
		t.Errorf("Expected 2 total calls, got %d", metrics.TotalCalls)
	}
	if metrics.AverageSatisfaction != 3 {
		t.Errorf("Expected average satisfaction 3, got %f", metrics.AverageSatisfaction)
	}
	if metrics.IntentFulfillmentRate != 0.5 {
		t.Errorf("Expected fulfillment rate 0.5, got %f", metrics.IntentFulfillmentRate)
	}
	if metrics.AverageDuration != 150 {
		t.Errorf("Expected average duration 150, got %f", metrics.AverageDuration)
	}
	if metrics.ErrorRate != 1 {
		t.Errorf("Expected error rate 1, got %f", metrics.ErrorRate)
	}
}

// TestMetricsEmptyStore tests that an empty store yields zeroed metrics
// without dividing by zero
func TestMetricsEmptyStore(t *testing.T) {
	service := NewPostCallService(&mockAnalysisStore{})

	metrics, err := service.Metrics()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if metrics.TotalCalls != 0 || metrics.AverageSatisfaction != 0 {
		t.Errorf("Expected zeroed metrics, got %+v", metrics)
	}
}

// TestPendingActionsDeduplicated tests the de-duplicated union in insertion
// order
func TestPendingActionsDeduplicated(t *testing.T) {
	service := NewPostCallService(&mockAnalysisStore{})

	a := sampleAnalysis("a", nil, true)
	a.PendingActions = []string{"callback", "send menu"}
	b := sampleAnalysis("b", nil, true)
	b.PendingActions = []string{"send menu", "escalate"}

	if err := service.StoreAnalysis(a); err != nil {
		t.Fatal(err)
	}
	if err := service.StoreAnalysis(b); err != nil {
		t.Fatal(err)
	}

	actions, err := service.PendingActions()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []string{"callback", "send menu", "escalate"}
	if len(actions) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, actions)
	}
	for i := range expected {
		if actions[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, actions)
			break
		}
	}
}

// TestExportWritesTimestampedFile tests the export format and location
func TestExportWritesTimestampedFile(t *testing.T) {
	service := NewPostCallService(&mockAnalysisStore{})
	if err := service.StoreAnalysis(sampleAnalysis("s1", intPtr(5), true)); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	filename, err := service.Export(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(filename, "call_analyses_") || !strings.HasSuffix(filename, ".json") {
		t.Errorf("Unexpected export filename: %q", filename)
	}

	payload, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}

	var exported map[string]domain.CallAnalysis
	if err := json.Unmarshal(payload, &exported); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if _, ok := exported["s1"]; !ok {
		t.Errorf("Expected session s1 in export, got %v", exported)
	}
}
