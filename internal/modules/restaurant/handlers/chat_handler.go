package handlers

import (
	"errors"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/chat"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const invalidKeyHint = "Geçersiz veya kısıtlı Google AI Studio anahtarı. AI Studio’dan yeni bir anahtar oluşturup .env dosyasına ekleyin; application restrictions: None; API restrictions: Generative Language API (veya Don't restrict). Ardından backend'i yeniden başlatın."

type ChatHandler struct {
	engine *chat.Engine
}

func NewChatHandler(engine *chat.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// Chat godoc
// @Summary Ask the analytics assistant
// @Description Stateless chat turn. With userId the answer is grounded in that user's orders when possible.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body chat.ChatRequest true "Transcript and optional user id"
// @Success 200 {object} chat.Reply
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chat.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reply, err := h.engine.Reply(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(reply)
}

func (h *ChatHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chat.ErrMessagesRequired), errors.Is(err, chat.ErrEmptyUserMessage):
		metrics.CountFailure("bad_request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})

	case errors.Is(err, chat.ErrMissingCredential):
		metrics.CountFailure("missing_credential")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Missing GOOGLE_GENAI_API_KEY",
		})

	case llm.IsInvalidCredential(err):
		metrics.CountFailure("invalid_credential")
		log.Warn().Err(err).Msg("🔑 model rejected the API key")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":  "API_KEY_INVALID",
			"detail": invalidKeyHint,
		})

	default:
		metrics.CountFailure("internal")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
