package controller

import (
	"strconv"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/serverutils"
	"ai-bankassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAccountController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Deposit(ctx *fiber.Ctx) error
	Withdraw(ctx *fiber.Ctx) error
	Transfer(ctx *fiber.Ctx) error
	Transactions(ctx *fiber.Ctx) error
}

type accountController struct {
	accountService service.IAccountService
}

func NewAccountController(accountService service.IAccountService) IAccountController {
	return &accountController{
		accountService: accountService,
	}
}

func (c *accountController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/account/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":number", c.Show)
	h.Post(":number/deposit", c.Deposit)
	h.Post(":number/withdraw", c.Withdraw)
	h.Post(":number/transfer", c.Transfer)
	h.Get(":number/transactions", c.Transactions)
}

func (c *accountController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.CreateAccountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.accountService.CreateAccount(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.Created(ctx, "Success create account", res)
}

func (c *accountController) List(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.accountService.GetAccounts(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get accounts", res)
}

func (c *accountController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)
	number := ctx.Params("number")

	res, err := c.accountService.GetAccount(ctx.Context(), userId, number)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get account", res)
}

func (c *accountController) Deposit(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)
	number := ctx.Params("number")

	var req dto.DepositRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.accountService.Deposit(ctx.Context(), userId, number, &req)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success deposit", res)
}

func (c *accountController) Withdraw(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)
	number := ctx.Params("number")

	var req dto.WithdrawRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.accountService.Withdraw(ctx.Context(), userId, number, &req)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success withdraw", res)
}

func (c *accountController) Transfer(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)
	number := ctx.Params("number")

	var req dto.TransferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.accountService.Transfer(ctx.Context(), userId, number, &req)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success transfer", res)
}

func (c *accountController) Transactions(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)
	number := ctx.Params("number")

	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	res, err := c.accountService.GetTransactions(ctx.Context(), userId, number, limit)
	if err != nil {
		return err
	}

	return serverutils.Success(ctx, "Success get transactions", res)
}
