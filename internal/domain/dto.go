package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// ChatRequest struct - Domain turn request DTO.
	// CurrentState is a caller hint, validated before use.
	ChatRequest struct {
		SessionID    string
		Message      string
		CurrentState string
	}

	// ChatReply struct - Domain turn response DTO
	ChatReply struct {
		Response string            `json:"response"`
		State    ConversationState `json:"state"`
		Options  *ReplyOptions     `json:"options,omitempty"`
	}

	// ReplyOptions struct - Structured choice set attached to a reply.
	// Which fields are populated depends on the conversation state.
	ReplyOptions struct {
		Cities        []string `json:"cities,omitempty"`
		Locations     []string `json:"locations,omitempty"`
		NextActions   []string `json:"next_actions,omitempty"`
		QueryTypes    []string `json:"query_types,omitempty"`
		BookingFields []string `json:"booking_fields,omitempty"`
		Confirmation  []string `json:"confirmation,omitempty"`
	}
)
