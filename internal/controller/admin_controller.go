package controller

import (
	"strconv"

	"airline-support-be/internal/dto"
	"airline-support-be/internal/pkg/serverutils"
	"airline-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService  service.IAdminService
	policyService service.IPolicyService
}

func NewAdminController(adminService service.IAdminService, policyService service.IPolicyService) IAdminController {
	return &adminController{
		adminService:  adminService,
		policyService: policyService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Get("request-types", c.ListRequestTypes)
	h.Get("request-types/:id", c.GetRequestType)
	h.Post("request-types", c.CreateRequestType)
	h.Put("request-types/:id", c.UpdateRequestType)
	h.Delete("request-types/:id", c.DeleteRequestType)

	h.Get("policies", c.ListPolicies)
	h.Post("policies", c.UpsertPolicy)

	h.Get("logs", c.GetLogs)
}

func (c *adminController) ListRequestTypes(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListRequestTypes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list request types", res))
}

func (c *adminController) GetRequestType(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return serverutils.BadRequestError("Invalid request type id")
	}

	res, err := c.adminService.GetRequestType(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show request type", res))
}

func (c *adminController) CreateRequestType(ctx *fiber.Ctx) error {
	var req dto.CreateRequestTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateRequestType(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create request type", res))
}

func (c *adminController) UpdateRequestType(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return serverutils.BadRequestError("Invalid request type id")
	}

	var req dto.UpdateRequestTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateRequestType(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update request type", res))
}

func (c *adminController) DeleteRequestType(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return serverutils.BadRequestError("Invalid request type id")
	}

	if err := c.adminService.DeactivateRequestType(ctx.Context(), uint(id)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Request type deactivated successfully", nil))
}

func (c *adminController) ListPolicies(ctx *fiber.Ctx) error {
	res, err := c.policyService.ListPolicies(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list policies", res))
}

func (c *adminController) UpsertPolicy(ctx *fiber.Ctx) error {
	var req dto.UpsertPolicyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.policyService.UpsertPolicy(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success upsert policy", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.adminService.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list logs", logs))
}
