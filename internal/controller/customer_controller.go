package controller

import (
	"airline-support-be/internal/dto"
	"airline-support-be/internal/pkg/serverutils"
	"airline-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
	Input(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
}

type customerController struct {
	orchestratorService service.IOrchestratorService
}

func NewCustomerController(orchestratorService service.IOrchestratorService) ICustomerController {
	return &customerController{
		orchestratorService: orchestratorService,
	}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customer/v1")
	h.Post("query", c.Query)
	h.Post("input", c.Input)
	h.Get("session/:id", c.Session)
}

func (c *customerController) Query(ctx *fiber.Ctx) error {
	var req dto.CustomerQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orchestratorService.ProcessQuery(ctx.Context(), req.Query, req.SessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process query", res))
}

func (c *customerController) Input(ctx *fiber.Ctx) error {
	var req dto.CustomerInputRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orchestratorService.ProvideInput(ctx.Context(), req.SessionId, req.Input)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process input", res))
}

func (c *customerController) Session(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	res, err := c.orchestratorService.GetSession(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}
