package controller

import (
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/serverutils"
	"ai-bankassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInvestmentController interface {
	RegisterRoutes(r fiber.Router)
	Products(ctx *fiber.Ctx) error
	Purchase(ctx *fiber.Ctx) error
	Holdings(ctx *fiber.Ctx) error
}

type investmentController struct {
	investmentService service.IInvestmentService
}

func NewInvestmentController(investmentService service.IInvestmentService) IInvestmentController {
	return &investmentController{
		investmentService: investmentService,
	}
}

func (c *investmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/investment/v1")
	h.Get("products", c.Products)
	h.Post("holdings", serverutils.JwtMiddleware, c.Purchase)
	h.Get("holdings", serverutils.JwtMiddleware, c.Holdings)
}

func (c *investmentController) Products(ctx *fiber.Ctx) error {
	res, err := c.investmentService.ListProducts(ctx.Context())
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get investment products", res)
}

func (c *investmentController) Purchase(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.PurchaseInvestmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.investmentService.Purchase(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.Created(ctx, "Success purchase investment", res)
}

func (c *investmentController) Holdings(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.investmentService.GetHoldings(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get holdings", res)
}
