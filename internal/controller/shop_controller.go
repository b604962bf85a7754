package controller

import (
	"strconv"

	"agri-solve-be/internal/dto"
	"agri-solve-be/internal/pkg/serverutils"
	"agri-solve-be/internal/service"
	"agri-solve-be/pkg/geo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IShopController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Nearby(ctx *fiber.Ctx) error
}

type shopController struct {
	service        service.IShopService
	sessionService service.ISessionService
}

func NewShopController(shopService service.IShopService, sessionService service.ISessionService) IShopController {
	return &shopController{
		service:        shopService,
		sessionService: sessionService,
	}
}

func (c *shopController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/shops")
	h.Get("/", c.List)
	h.Get("/nearby", serverutils.OptionalJwtMiddleware, c.Nearby)
}

// List returns the full directory, or only shops stocking a product when
// the "product" query param is given.
func (c *shopController) List(ctx *fiber.Ctx) error {
	var res *dto.ShopListResponse
	var err error
	if product := ctx.Query("product"); product != "" {
		res, err = c.service.Stocking(ctx.Context(), product)
	} else {
		res, err = c.service.List(ctx.Context())
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Shops", res))
}

// Nearby ranks shops by distance. The origin comes from lat/lng query
// params, falling back to the signed-in session's stored location. With no
// origin at all the list comes back unranked.
func (c *shopController) Nearby(ctx *fiber.Ctx) error {
	origin := parseOrigin(ctx)

	if origin == nil {
		if raw, ok := ctx.Locals("user_id").(string); ok {
			if userId, err := uuid.Parse(raw); err == nil {
				if session, found := c.sessionService.Get(userId); found {
					origin, _ = session.CurrentLocation()
				}
			}
		}
	}

	res, err := c.service.Nearby(ctx.Context(), origin)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Nearby shops", res))
}

func parseOrigin(ctx *fiber.Ctx) *geo.Point {
	latStr := ctx.Query("lat")
	lngStr := ctx.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}

	return &geo.Point{Latitude: lat, Longitude: lng}
}
