package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPlace struct {
	name string
	at   Point
}

func (p testPlace) Location() Point {
	return p.at
}

func TestRankByDistanceSortsAscending(t *testing.T) {
	far := testPlace{name: "far", at: Point{Latitude: 10.01, Longitude: 10.01}}
	near := testPlace{name: "near", at: Point{Latitude: 10, Longitude: 10}}
	origin := &Point{Latitude: 10, Longitude: 10}

	ranked := RankByDistance([]testPlace{far, near}, origin)

	require.Len(t, ranked, 2)
	assert.Equal(t, "near", ranked[0].Item.name)
	assert.Equal(t, "far", ranked[1].Item.name)

	require.NotNil(t, ranked[0].Distance)
	assert.InDelta(t, 0, *ranked[0].Distance, 0.0001)
	require.NotNil(t, ranked[1].Distance)
	assert.Greater(t, *ranked[1].Distance, 0.0)
}

func TestRankByDistanceNilOriginKeepsOrder(t *testing.T) {
	places := []testPlace{
		{name: "b", at: Point{Latitude: 20, Longitude: 20}},
		{name: "a", at: Point{Latitude: 10, Longitude: 10}},
	}

	ranked := RankByDistance(places, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].Item.name)
	assert.Equal(t, "a", ranked[1].Item.name)
	assert.Nil(t, ranked[0].Distance)
	assert.Nil(t, ranked[1].Distance)
}

func TestRankByDistanceTieKeepsInputOrder(t *testing.T) {
	first := testPlace{name: "first", at: Point{Latitude: 10, Longitude: 10.01}}
	second := testPlace{name: "second", at: Point{Latitude: 10, Longitude: 9.99}}
	origin := &Point{Latitude: 10, Longitude: 10}

	ranked := RankByDistance([]testPlace{first, second}, origin)

	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Item.name)
	assert.Equal(t, "second", ranked[1].Item.name)
}

func TestRankByDistanceDoesNotMutateInput(t *testing.T) {
	places := []testPlace{
		{name: "far", at: Point{Latitude: 11, Longitude: 11}},
		{name: "near", at: Point{Latitude: 10, Longitude: 10}},
	}
	origin := &Point{Latitude: 10, Longitude: 10}

	RankByDistance(places, origin)

	assert.Equal(t, "far", places[0].name)
	assert.Equal(t, "near", places[1].name)
}

func TestRankByDistanceEmpty(t *testing.T) {
	ranked := RankByDistance([]testPlace{}, &Point{Latitude: 1, Longitude: 1})
	assert.Empty(t, ranked)
}
