package geo

import "sort"

// Locatable is anything that carries a coordinate, e.g. a shop record.
type Locatable interface {
	Location() Point
}

// Ranked pairs an item with its computed distance from the user.
// Distance is nil when no user coordinate was available.
type Ranked[T Locatable] struct {
	Item     T
	Distance *float64
}

// RankByDistance annotates every item with its haversine distance from the
// given origin and returns a new slice sorted ascending by that distance.
// Ties keep their input order (stable sort). When origin is nil the items are
// returned in their given order with no distance attached. The input slice is
// never mutated.
func RankByDistance[T Locatable](items []T, origin *Point) []Ranked[T] {
	ranked := make([]Ranked[T], len(items))
	for i, item := range items {
		ranked[i] = Ranked[T]{Item: item}
		if origin != nil {
			d := Distance(*origin, item.Location())
			ranked[i].Distance = &d
		}
	}

	if origin != nil {
		sort.SliceStable(ranked, func(i, j int) bool {
			return *ranked[i].Distance < *ranked[j].Distance
		})
	}

	return ranked
}
