package service

import (
	"context"
	"encoding/json"
	"time"

	"agri-solve-be/internal/dto"
	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/pkg/logger"
	"agri-solve-be/internal/repository/specification"
	"agri-solve-be/internal/repository/unitofwork"
	"agri-solve-be/pkg/geo"

	"github.com/redis/go-redis/v9"
)

const (
	shopCacheKey = "shops:all"
	shopCacheTTL = 10 * time.Minute
)

type IShopService interface {
	// List returns all shops ordered by rating, best first.
	List(ctx context.Context) (*dto.ShopListResponse, error)

	// Stocking returns shops carrying the given product in either stock
	// list, best rated first.
	Stocking(ctx context.Context, product string) (*dto.ShopListResponse, error)

	// Nearby ranks shops by distance from the given origin. A nil origin
	// returns the list unranked with no distances.
	Nearby(ctx context.Context, origin *geo.Point) (*dto.ShopListResponse, error)

	// WarmCache pre-populates the shop cache, called once at boot.
	WarmCache(ctx context.Context)
}

type shopService struct {
	uowFactory unitofwork.RepositoryFactory
	redis      *redis.Client
	log        logger.ILogger
}

func NewShopService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client, log logger.ILogger) IShopService {
	return &shopService{
		uowFactory: uowFactory,
		redis:      redisClient,
		log:        log,
	}
}

// loadShops serves from Redis when possible and falls back to the database.
// Shop data changes rarely (seeder/admin only), so a short TTL is enough.
func (s *shopService) loadShops(ctx context.Context) ([]*entity.Shop, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, shopCacheKey).Bytes()
		if err == nil {
			var shops []*entity.Shop
			if err := json.Unmarshal(cached, &shops); err == nil {
				return shops, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	shops, err := uow.ShopRepository().FindAll(ctx, specification.RatingDesc{})
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(shops); err == nil {
			if err := s.redis.Set(ctx, shopCacheKey, data, shopCacheTTL).Err(); err != nil {
				s.log.Warn("shop", "failed to cache shop list", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return shops, nil
}

func (s *shopService) WarmCache(ctx context.Context) {
	if _, err := s.loadShops(ctx); err != nil {
		s.log.Warn("shop", "cache warmup failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *shopService) List(ctx context.Context) (*dto.ShopListResponse, error) {
	shops, err := s.loadShops(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ShopResponse, len(shops))
	for i, shop := range shops {
		responses[i] = toShopResponse(shop, nil)
	}

	return &dto.ShopListResponse{Shops: responses, Total: len(responses)}, nil
}

// Stocking queries the database directly; the cached snapshot only covers
// the unfiltered list.
func (s *shopService) Stocking(ctx context.Context, product string) (*dto.ShopListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	shops, err := uow.ShopRepository().FindAll(ctx,
		specification.StocksProduct{Product: product},
		specification.RatingDesc{},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ShopResponse, len(shops))
	for i, shop := range shops {
		responses[i] = toShopResponse(shop, nil)
	}

	return &dto.ShopListResponse{Shops: responses, Total: len(responses)}, nil
}

func (s *shopService) Nearby(ctx context.Context, origin *geo.Point) (*dto.ShopListResponse, error) {
	shops, err := s.loadShops(ctx)
	if err != nil {
		return nil, err
	}

	ranked := geo.RankByDistance(shops, origin)

	responses := make([]dto.ShopResponse, len(ranked))
	for i, r := range ranked {
		responses[i] = toShopResponse(r.Item, r.Distance)
	}

	return &dto.ShopListResponse{Shops: responses, Total: len(responses)}, nil
}

func toShopResponse(shop *entity.Shop, distanceKm *float64) dto.ShopResponse {
	address := ""
	if shop.Address != nil {
		address = *shop.Address
	}
	phone := ""
	if shop.Phone != nil {
		phone = *shop.Phone
	}

	return dto.ShopResponse{
		Id:                 shop.Id,
		Name:               shop.Name,
		Address:            address,
		Latitude:           shop.Latitude,
		Longitude:          shop.Longitude,
		Phone:              phone,
		PesticideStockList: shop.PesticideStockList,
		OrganicProducts:    shop.OrganicProducts,
		Rating:             shop.Rating,
		DistanceKm:         distanceKm,
	}
}
