package service

import (
	"context"
	"testing"

	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/repository/specification"
	"agri-solve-be/pkg/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShopRepo struct {
	shops     []*entity.Shop
	findErr   error
	findAlls  int
	lastSpecs []specification.Specification
}

func (r *fakeShopRepo) Create(ctx context.Context, shop *entity.Shop) error { return nil }

func (r *fakeShopRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error) {
	if len(r.shops) == 0 {
		return nil, nil
	}
	return r.shops[0], nil
}

func (r *fakeShopRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error) {
	r.findAlls++
	r.lastSpecs = specs
	return r.shops, r.findErr
}

func newShopFixture(shops []*entity.Shop) (IShopService, *fakeShopRepo) {
	repo := &fakeShopRepo{shops: shops}
	uow := &fakeUnitOfWork{shopRepo: repo}
	// nil redis client: loadShops goes straight to the repository
	svc := NewShopService(&fakeUowFactory{uow: uow}, nil, nopLogger{})
	return svc, repo
}

func testShop(name string, lat, lng float64) *entity.Shop {
	return &entity.Shop{
		Id:        uuid.New(),
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
	}
}

func TestShopListNoDistances(t *testing.T) {
	svc, _ := newShopFixture([]*entity.Shop{
		testShop("A", 10, 10),
		testShop("B", 11, 11),
	})

	res, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Total)
	for _, shop := range res.Shops {
		assert.Nil(t, shop.DistanceKm)
	}
}

func TestShopStockingFiltersByProduct(t *testing.T) {
	svc, repo := newShopFixture([]*entity.Shop{
		testShop("A", 10, 10),
	})

	res, err := svc.Stocking(context.Background(), "Neem Oil")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	require.Len(t, repo.lastSpecs, 2)
	assert.Equal(t, specification.StocksProduct{Product: "Neem Oil"}, repo.lastSpecs[0])
	assert.Equal(t, specification.RatingDesc{}, repo.lastSpecs[1])
}

func TestShopNearbyRanksByDistance(t *testing.T) {
	svc, _ := newShopFixture([]*entity.Shop{
		testShop("far", 10.01, 10.01),
		testShop("near", 10, 10),
	})

	res, err := svc.Nearby(context.Background(), &geo.Point{Latitude: 10, Longitude: 10})
	require.NoError(t, err)

	require.Equal(t, 2, res.Total)
	assert.Equal(t, "near", res.Shops[0].Name)
	assert.Equal(t, "far", res.Shops[1].Name)

	require.NotNil(t, res.Shops[0].DistanceKm)
	assert.InDelta(t, 0, *res.Shops[0].DistanceKm, 0.0001)
	require.NotNil(t, res.Shops[1].DistanceKm)
	assert.Greater(t, *res.Shops[1].DistanceKm, 0.0)
}

func TestShopNearbyNilOriginKeepsOrder(t *testing.T) {
	svc, _ := newShopFixture([]*entity.Shop{
		testShop("first", 11, 11),
		testShop("second", 10, 10),
	})

	res, err := svc.Nearby(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, 2, res.Total)
	assert.Equal(t, "first", res.Shops[0].Name)
	assert.Equal(t, "second", res.Shops[1].Name)
	assert.Nil(t, res.Shops[0].DistanceKm)
	assert.Nil(t, res.Shops[1].DistanceKm)
}
