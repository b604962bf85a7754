package controller

import (
	"agri-solve-be/internal/pkg/serverutils"
	"agri-solve-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	CropStats(ctx *fiber.Ctx) error
}

type statsController struct {
	service service.IStatsService
}

func NewStatsController(service service.IStatsService) IStatsController {
	return &statsController{service: service}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats")

	// Aggregate counts only, nothing user-owned, so no auth required.
	h.Get("/crops", c.CropStats)
}

func (c *statsController) CropStats(ctx *fiber.Ctx) error {
	res, err := c.service.CropStats(ctx.Context(), ctx.Query("crop"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Crop disease stats", res))
}
