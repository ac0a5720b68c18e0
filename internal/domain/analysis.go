package domain

import "time"

// FlowStep - One entry of the recorded conversation flow in a call analysis
type FlowStep struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

// CallAnalysis - Post-call record for one finished session
type CallAnalysis struct {
	SessionID        string     `json:"session_id"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          time.Time  `json:"end_time"`
	Duration         float64    `json:"duration"`
	UserSatisfaction *int       `json:"user_satisfaction,omitempty"`
	IntentFulfilled  bool       `json:"intent_fulfilled"`
	ConversationFlow []FlowStep `json:"conversation_flow"`
	ErrorCount       int        `json:"error_count"`
	ResolutionStatus string     `json:"resolution_status"`
	PendingActions   []string   `json:"pending_actions,omitempty"`
}

// AnalysisFilter - Optional filters for listing call analyses
type AnalysisFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	MinSatisfaction *int
}

// CallMetrics - Aggregates computed over all stored call analyses
type CallMetrics struct {
	TotalCalls            int     `json:"total_calls"`
	AverageSatisfaction   float64 `json:"average_satisfaction"`
	IntentFulfillmentRate float64 `json:"intent_fulfillment_rate"`
	AverageDuration       float64 `json:"average_duration"`
	ErrorRate             float64 `json:"error_rate"`
}
