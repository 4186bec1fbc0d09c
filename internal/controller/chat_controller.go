package controller

import (
	"errors"
	"strings"

	"support-chatbot-be/internal/constant"
	"support-chatbot-be/internal/dto"
	"support-chatbot-be/internal/pkg/logger"
	"support-chatbot-be/internal/pkg/serverutils"
	"support-chatbot-be/internal/service"
	"support-chatbot-be/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	PostChat(ctx *fiber.Ctx) error
	DeleteHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	logger  logger.ILogger
}

func NewChatController(service service.IChatService, log logger.ILogger) IChatController {
	return &chatController{
		service: service,
		logger:  log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("/", c.PostChat)
	h.Delete("/:session_id/history", c.DeleteHistory)
}

func (c *chatController) PostChat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}
	if strings.ContainsAny(req.SessionID, " /") {
		return serverutils.NewBadRequestError("session_id contains unsupported characters")
	}

	res, err := c.service.HandleMessage(ctx.UserContext(), &req)
	if err != nil {
		c.logger.Error(constant.ModuleChatController, "chat request failed", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		return serverutils.NewInternalError("failed to process message")
	}

	return ctx.Status(fiber.StatusOK).JSON(res)
}

func (c *chatController) DeleteHistory(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return serverutils.NewBadRequestError("session_id is required")
	}

	if err := c.service.ClearHistory(ctx.UserContext(), sessionID); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return serverutils.NewNotFoundError("session not found")
		}
		c.logger.Error(constant.ModuleChatController, "clear history failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return serverutils.NewInternalError("failed to clear history")
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
