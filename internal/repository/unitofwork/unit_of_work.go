package unitofwork

import (
	"context"

	"agri-solve-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ScanRepository() contract.ScanRepository
	ShopRepository() contract.ShopRepository
	CropStatRepository() contract.CropStatRepository
}
