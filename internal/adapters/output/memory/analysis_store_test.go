package memory

import (
	"testing"
	"time"

	"bbq-enquiry/internal/domain"
)

// TestSaveAndGetAnalysis tests the round trip and the nil miss
func TestSaveAndGetAnalysis(t *testing.T) {
	store := NewMemoryAnalysisStore()

	analysis := &domain.CallAnalysis{
		SessionID: "s1",
		StartTime: time.Now(),
		EndTime:   time.Now(),
		Duration:  120,
	}
	if err := store.SaveAnalysis(analysis); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := store.GetAnalysis("s1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got == nil || got.Duration != 120 {
		t.Errorf("Unexpected analysis: %+v", got)
	}

	missing, err := store.GetAnalysis("nope")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for an unknown session, got %+v", missing)
	}
}

// TestSaveAnalysisOverwritesSameSession tests that saving twice keeps one
// entry and the latest content
func TestSaveAnalysisOverwritesSameSession(t *testing.T) {
	store := NewMemoryAnalysisStore()

	first := &domain.CallAnalysis{SessionID: "s1", Duration: 100}
	second := &domain.CallAnalysis{SessionID: "s1", Duration: 200}
	if err := store.SaveAnalysis(first); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveAnalysis(second); err != nil {
		t.Fatal(err)
	}

	all, err := store.ListAnalyses()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 analysis, got %d", len(all))
	}
	if all[0].Duration != 200 {
		t.Errorf("Expected the latest analysis, got %+v", all[0])
	}
}

// TestListAnalysesInsertionOrder tests that listing preserves first-seen order
func TestListAnalysesInsertionOrder(t *testing.T) {
	store := NewMemoryAnalysisStore()
	for _, id := range []string{"a", "b", "c"} {
		if err := store.SaveAnalysis(&domain.CallAnalysis{SessionID: id}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.ListAnalyses()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, id := range []string{"a", "b", "c"} {
		if all[i].SessionID != id {
			t.Errorf("Expected %s at index %d, got %s", id, i, all[i].SessionID)
		}
	}
}
