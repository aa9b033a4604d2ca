package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mitcampus/campus-companion/internal/api/metrics"
	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatOpeningResponse struct {
	Greeting       domain.ChatMessage `json:"greeting"`
	QuickQuestions []string           `json:"quickQuestions"`
}

type chatRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

type chatResponse struct {
	Reply  domain.ChatMessage `json:"reply"`
	Intent domain.Intent      `json:"intent"`
	Source string             `json:"source"`
}

// Open returns the assistant greeting and suggested questions.
//
// @Summary      Chat greeting
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  chatOpeningResponse
// @Router       /v1/chat [get]
func (h *ChatHandler) Open(c echo.Context) error {
	return c.JSON(http.StatusOK, chatOpeningResponse{
		Greeting:       h.service.Greeting(),
		QuickQuestions: h.service.QuickQuestions(),
	})
}

// Ask sends one message to the assistant.
//
// @Summary      Ask the assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/chat/messages [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reply, err := h.service.Ask(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	metrics.ChatRepliesTotal.WithLabelValues(string(reply.Intent), reply.Source).Inc()
	return c.JSON(http.StatusOK, chatResponse{Reply: reply.Message, Intent: reply.Intent, Source: reply.Source})
}
