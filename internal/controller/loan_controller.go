package controller

import (
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/serverutils"
	"ai-bankassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILoanController interface {
	RegisterRoutes(r fiber.Router)
	Products(ctx *fiber.Ctx) error
	Apply(ctx *fiber.Ctx) error
	Applications(ctx *fiber.Ctx) error
}

type loanController struct {
	loanService service.ILoanService
}

func NewLoanController(loanService service.ILoanService) ILoanController {
	return &loanController{
		loanService: loanService,
	}
}

func (c *loanController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/loan/v1")
	h.Get("products", c.Products)
	h.Post("applications", serverutils.JwtMiddleware, c.Apply)
	h.Get("applications", serverutils.JwtMiddleware, c.Applications)
}

func (c *loanController) Products(ctx *fiber.Ctx) error {
	res, err := c.loanService.ListProducts(ctx.Context())
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get loan products", res)
}

func (c *loanController) Apply(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.LoanApplicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.loanService.Apply(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.Created(ctx, "Success submit loan application", res)
}

func (c *loanController) Applications(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.loanService.GetApplications(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get loan applications", res)
}
