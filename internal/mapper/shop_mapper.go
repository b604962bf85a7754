package mapper

import (
	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/model"
)

type ShopMapper struct{}

func NewShopMapper() *ShopMapper {
	return &ShopMapper{}
}

func (m *ShopMapper) ToEntity(s *model.Shop) *entity.Shop {
	if s == nil {
		return nil
	}
	return &entity.Shop{
		Id:                 s.Id,
		Name:               s.Name,
		Address:            s.Address,
		Latitude:           s.Latitude,
		Longitude:          s.Longitude,
		Phone:              s.Phone,
		PesticideStockList: s.PesticideStockList,
		OrganicProducts:    s.OrganicProducts,
		Rating:             s.Rating,
		CreatedAt:          s.CreatedAt,
	}
}

func (m *ShopMapper) ToModel(s *entity.Shop) *model.Shop {
	if s == nil {
		return nil
	}
	return &model.Shop{
		Id:                 s.Id,
		Name:               s.Name,
		Address:            s.Address,
		Latitude:           s.Latitude,
		Longitude:          s.Longitude,
		Phone:              s.Phone,
		PesticideStockList: s.PesticideStockList,
		OrganicProducts:    s.OrganicProducts,
		Rating:             s.Rating,
		CreatedAt:          s.CreatedAt,
	}
}

func (m *ShopMapper) ToEntities(shops []*model.Shop) []*entity.Shop {
	entities := make([]*entity.Shop, len(shops))
	for i, s := range shops {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
