package controller

import (
	"errors"

	"agri-solve-be/internal/dto"
	"agri-solve-be/internal/pkg/serverutils"
	"agri-solve-be/internal/service"
	"agri-solve-be/pkg/ai"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IScanController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Focus(ctx *fiber.Ctx) error
	ClearFocus(ctx *fiber.Ctx) error
}

type scanController struct {
	service service.IScanService
}

func NewScanController(service service.IScanService) IScanController {
	return &scanController{service: service}
}

func (c *scanController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scans")

	// Analysis works without an account; history requires one.
	h.Post("/analyze", serverutils.OptionalJwtMiddleware, c.Analyze)

	h.Get("/", serverutils.JwtMiddleware, c.History)
	h.Get("/:id", serverutils.JwtMiddleware, c.Get)
	h.Delete("/focus", serverutils.JwtMiddleware, c.ClearFocus)
	h.Put("/:id/focus", serverutils.JwtMiddleware, c.Focus)
}

func (c *scanController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeScanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	var userId *uuid.UUID
	if raw, ok := ctx.Locals("user_id").(string); ok {
		if parsed, err := uuid.Parse(raw); err == nil {
			userId = &parsed
		}
	}

	res, err := c.service.Analyze(ctx.Context(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrRateLimited):
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(serverutils.ErrorResponse(429, "Too many requests, please try again in a moment."))
		case errors.Is(err, ai.ErrQuotaExhausted):
			return ctx.Status(fiber.StatusPaymentRequired).
				JSON(serverutils.ErrorResponse(402, "AI service credits exhausted, please try again later."))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Analysis complete", res))
}

func (c *scanController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History(ctx.Context(), currentUserId(ctx),
		ctx.QueryInt("limit", 0), ctx.QueryInt("offset", 0))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Scan history", res))
}

func (c *scanController) Get(ctx *fiber.Ctx) error {
	scanId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid scan ID"))
	}

	res, err := c.service.Get(ctx.Context(), currentUserId(ctx), scanId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Scan details", res))
}

func (c *scanController) Focus(ctx *fiber.Ctx) error {
	if err := c.service.Focus(ctx.Context(), currentUserId(ctx), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Scan focused", nil))
}

func (c *scanController) ClearFocus(ctx *fiber.Ctx) error {
	if err := c.service.Focus(ctx.Context(), currentUserId(ctx), ""); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Focus cleared", nil))
}
