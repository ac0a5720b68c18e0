package http

import (
	"net/http"

	"bbq-enquiry/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Resource not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// TurnFailed response - the chat-specific failure message; the session
	// has been reset server-side
	TurnFailed = Status{Code: http.StatusInternalServerError, Message: []string{"Sorry, there was an error processing your request. Please try again."}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// ChatResponse struct - HTTP turn response DTO, shape fixed for the chat
// frontend: text reply, new state and a state-dependent choice set
type ChatResponse struct {
	Response string               `json:"response"`
	State    string               `json:"state"`
	Options  *domain.ReplyOptions `json:"options,omitempty"`
}
