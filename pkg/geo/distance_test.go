package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name      string
		a         Point
		b         Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point is zero",
			a:         Point{Latitude: 10, Longitude: 10},
			b:         Point{Latitude: 10, Longitude: 10},
			wantKm:    0,
			tolerance: 0.0001,
		},
		{
			name:      "delhi to mumbai",
			a:         Point{Latitude: 28.6139, Longitude: 77.2090},
			b:         Point{Latitude: 19.0760, Longitude: 72.8777},
			wantKm:    1153,
			tolerance: 10,
		},
		{
			name:      "one degree of latitude at the equator",
			a:         Point{Latitude: 0, Longitude: 0},
			b:         Point{Latitude: 1, Longitude: 0},
			wantKm:    111.19,
			tolerance: 0.5,
		},
		{
			name:      "across the antimeridian",
			a:         Point{Latitude: 0, Longitude: 179.5},
			b:         Point{Latitude: 0, Longitude: -179.5},
			wantKm:    111.19,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Point{Latitude: 29.6857, Longitude: 76.9905}
	b := Point{Latitude: 30.9010, Longitude: 75.8573}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistancePropagatesNaN(t *testing.T) {
	a := Point{Latitude: math.NaN(), Longitude: 0}
	b := Point{Latitude: 0, Longitude: 0}

	assert.True(t, math.IsNaN(Distance(a, b)))
}
