package http

import (
	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/input"
	"bbq-enquiry/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ChatHandler struct - Primary/Driving adapter for the conversation turn endpoint
type ChatHandler struct {
	service   input.ChatService
	validator validator.Validator
}

// NewChatHandler func - Creates new chat handler
func NewChatHandler(service input.ChatService) *ChatHandler {
	return &ChatHandler{
		service:   service,
		validator: validator.New(),
	}
}

// HandleChat func - Processes one conversation turn
// @Summary Conversation turn
// @Description Processes one user message for a session and returns the reply with selectable options
// @Tags Chatbot
// @Accept application/json
// @Produce json
// @param ChatRequest body ChatRequest true "ChatRequest"
// @Success 200 {object} ChatResponse
// @Router /api/chatbot/chat [post]
func (hdl *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var request ChatRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	// Convert HTTP request to domain request
	domainReq := domain.ChatRequest{
		SessionID: request.SessionID,
		Message:   request.Message,
	}
	if request.CurrentState != nil {
		domainReq.CurrentState = *request.CurrentState
	}

	reply, err := hdl.service.Chat(domainReq)
	if err != nil {
		logrus.Errorln(err)
		// The session was reset; the caller retries with a fresh conversation
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: TurnFailed})
	}

	return c.Status(fiber.StatusOK).JSON(ChatResponse{
		Response: reply.Response,
		State:    string(reply.State),
		Options:  reply.Options,
	})
}
