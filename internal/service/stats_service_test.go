package service

import (
	"context"
	"testing"
	"time"

	"agri-solve-be/internal/constant"
	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCropStatRepo struct {
	stats     []*entity.CropDiseaseStat
	lastSpecs []specification.Specification
}

func (r *fakeCropStatRepo) RecordScan(ctx context.Context, cropType, diagnosis string, seenAt time.Time) error {
	return nil
}

func (r *fakeCropStatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CropDiseaseStat, error) {
	r.lastSpecs = specs
	return r.stats, nil
}

func newStatsFixture(stats []*entity.CropDiseaseStat) (IStatsService, *fakeCropStatRepo) {
	repo := &fakeCropStatRepo{stats: stats}
	uow := &fakeUnitOfWork{cropStatRepo: repo}
	return NewStatsService(&fakeUowFactory{uow: uow}), repo
}

func TestCropStatsListsAllCrops(t *testing.T) {
	svc, repo := newStatsFixture([]*entity.CropDiseaseStat{
		{Id: uuid.New(), CropType: constant.CropRice, Diagnosis: "Leaf Blast", ScanCount: 12},
		{Id: uuid.New(), CropType: constant.CropTomato, Diagnosis: "Early Blight", ScanCount: 5},
	})

	res, err := svc.CropStats(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "Leaf Blast", res.Stats[0].Diagnosis)
	assert.Equal(t, int64(12), res.Stats[0].ScanCount)

	// Most scanned first, no crop filter.
	require.Len(t, repo.lastSpecs, 1)
	assert.Equal(t, specification.OrderBy{Field: "scan_count", Desc: true}, repo.lastSpecs[0])
}

func TestCropStatsFiltersByCrop(t *testing.T) {
	svc, repo := newStatsFixture(nil)

	_, err := svc.CropStats(context.Background(), constant.CropWheat)
	require.NoError(t, err)

	require.Len(t, repo.lastSpecs, 2)
	assert.Equal(t, specification.ByCropType{CropType: constant.CropWheat}, repo.lastSpecs[1])
}

func TestCropStatsRejectsUnknownCrop(t *testing.T) {
	svc, repo := newStatsFixture(nil)

	_, err := svc.CropStats(context.Background(), "banana")
	require.Error(t, err)
	assert.Empty(t, repo.lastSpecs)
}
