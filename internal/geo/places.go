package geo

// Place is a monitored point of interest with a circular safe zone.
// The set is fixed configuration data, loaded once at startup.
type Place struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	RadiusM float64 `json:"radius_m"`
}

type Index struct {
	places []Place
	byID   map[int]Place
}

// NewIndex builds an index over the given places. The slice must be
// non-empty: the first entry doubles as the fallback for unknown ids.
func NewIndex(places []Place) *Index {
	byID := make(map[int]Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}
	return &Index{places: places, byID: byID}
}

// ByID returns the place with the given id. Unknown ids resolve to the
// first entry in the table; lookups never fail. Callers that need a hard
// rejection on unknown ids use Contains first.
func (i *Index) ByID(id int) Place {
	if p, ok := i.byID[id]; ok {
		return p
	}
	return i.places[0]
}

func (i *Index) Contains(id int) bool {
	_, ok := i.byID[id]
	return ok
}

func (i *Index) All() []Place {
	out := make([]Place, len(i.places))
	copy(out, i.places)
	return out
}

// IndianTouristPlaces is the seed set of monitored landmarks.
func IndianTouristPlaces() []Place {
	return []Place{
		{ID: 1, Name: "Taj Mahal, Agra", Lat: 27.1751, Lng: 78.0421, RadiusM: 500},
		{ID: 2, Name: "Red Fort, Delhi", Lat: 28.6562, Lng: 77.2410, RadiusM: 400},
		{ID: 3, Name: "Gateway of India, Mumbai", Lat: 18.9220, Lng: 72.8347, RadiusM: 300},
		{ID: 4, Name: "Hawa Mahal, Jaipur", Lat: 26.9239, Lng: 75.8267, RadiusM: 300},
		{ID: 5, Name: "Golden Temple, Amritsar", Lat: 31.6200, Lng: 74.8765, RadiusM: 400},
		{ID: 6, Name: "India Gate, New Delhi", Lat: 28.6129, Lng: 77.2295, RadiusM: 400},
		{ID: 7, Name: "Mysore Palace, Mysore", Lat: 12.3051, Lng: 76.6551, RadiusM: 400},
	}
}
