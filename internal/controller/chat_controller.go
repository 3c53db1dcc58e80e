package controller

import (
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/serverutils"
	"ai-bankassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Message(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	AgentStatus(ctx *fiber.Ctx) error
	Escalations(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	// Demo chat works without a session, so no auth middleware here.
	h.Post("message", c.Message)
	h.Get("history/:conversationId", c.History)
	h.Get("agents/status", c.AgentStatus)
	h.Get("escalations", serverutils.JwtMiddleware, c.Escalations)
}

func (c *chatController) Message(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	userId := serverutils.UserID(ctx)
	username := serverutils.Username(ctx)

	res, err := c.chatService.ProcessMessage(ctx.Context(), userId, username, &req)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success process message", res)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res := c.chatService.History(ctx.Params("conversationId"))
	return serverutils.Success(ctx, "Success get conversation history", res)
}

func (c *chatController) AgentStatus(ctx *fiber.Ctx) error {
	res := c.chatService.AgentStatus()
	return serverutils.Success(ctx, "Success get agent status", res)
}

func (c *chatController) Escalations(ctx *fiber.Ctx) error {
	res, err := c.chatService.ListEscalations(ctx.Context())
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get escalations", res)
}
