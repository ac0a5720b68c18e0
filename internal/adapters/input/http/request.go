package http

import "time"

type (
	// ChatRequest struct - HTTP turn request DTO.
	// CurrentState is an optional hint; invalid values are ignored downstream.
	ChatRequest struct {
		SessionID    string  `json:"session_id" validate:"required" form:"session_id"`
		Message      string  `json:"message" form:"message"`
		CurrentState *string `json:"current_state" validate:"omitempty" form:"current_state"`
	}

	// FlowStep struct - One conversation flow entry of a call analysis
	FlowStep struct {
		State   string `json:"state"`
		Message string `json:"message"`
	}

	// CallAnalysisRequest struct - HTTP request DTO for storing a call analysis
	CallAnalysisRequest struct {
		SessionID        string     `json:"session_id" validate:"required"`
		StartTime        time.Time  `json:"start_time" validate:"required"`
		EndTime          time.Time  `json:"end_time" validate:"required"`
		Duration         float64    `json:"duration" validate:"gte=0"`
		UserSatisfaction *int       `json:"user_satisfaction" validate:"omitempty,gte=0,lte=5"`
		IntentFulfilled  bool       `json:"intent_fulfilled"`
		ConversationFlow []FlowStep `json:"conversation_flow"`
		ErrorCount       int        `json:"error_count" validate:"gte=0"`
		ResolutionStatus string     `json:"resolution_status"`
		PendingActions   []string   `json:"pending_actions"`
	}

	// AnalysisQuery struct - HTTP query request DTO for listing analyses
	AnalysisQuery struct {
		StartDate       *string `json:"start_date,omitempty" form:"start_date" query:"start_date"`
		EndDate         *string `json:"end_date,omitempty" form:"end_date" query:"end_date"`
		MinSatisfaction *int    `json:"min_satisfaction,omitempty" form:"min_satisfaction" query:"min_satisfaction" validate:"omitempty,gte=0,lte=5"`
	}
)
