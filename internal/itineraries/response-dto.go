package itineraries

import "github.com/google/uuid"

// listing entry returned when ?simplified is set
type SimplifiedItinerary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Cover   *string   `json:"cover"`
	Popular bool      `json:"popular"`
}

func ToSimplified(items []Itinerary) []SimplifiedItinerary {
	out := make([]SimplifiedItinerary, 0, len(items))
	for _, it := range items {
		out = append(out, SimplifiedItinerary{
			ID:      it.ID,
			Name:    it.Name,
			Cover:   it.Cover,
			Popular: it.Popular,
		})
	}
	return out
}

// ToFull fills nil child collections so they serialize as []
func ToFull(it *Itinerary) *Itinerary {
	if it.Media == nil {
		it.Media = []Media{}
	}
	if it.Details != nil && it.Details.Optional == nil {
		it.Details.Optional = []Optional{}
	}
	return it
}
