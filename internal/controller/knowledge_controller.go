package controller

import (
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/serverutils"
	"ai-bankassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	AddDocument(ctx *fiber.Ctx) error
	ListDocuments(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Rebuild(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("documents", c.AddDocument)
	h.Get("documents", c.ListDocuments)
	h.Get("stats", c.Stats)
	h.Post("rebuild", c.Rebuild)
	h.Post("search", c.Search)
}

func (c *knowledgeController) AddDocument(ctx *fiber.Ctx) error {
	var req dto.AddDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.AddDocument(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return serverutils.Created(ctx, "Success add document", res)
}

func (c *knowledgeController) ListDocuments(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.ListDocuments(ctx.Context())
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get documents", res)
}

func (c *knowledgeController) Stats(ctx *fiber.Ctx) error {
	res := c.knowledgeService.Stats(ctx.Context())
	return serverutils.Success(ctx, "Success get knowledge stats", res)
}

func (c *knowledgeController) Rebuild(ctx *fiber.Ctx) error {
	if err := c.knowledgeService.Rebuild(ctx.Context()); err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success rebuild knowledge index", nil)
}

func (c *knowledgeController) Search(ctx *fiber.Ctx) error {
	var req dto.KnowledgeSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.knowledgeService.Search(ctx.Context(), &req)
	return serverutils.Success(ctx, "Success search knowledge", res)
}
