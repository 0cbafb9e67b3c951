package places

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"seoulmap/app"
)

//go:embed catalog.json
var catalogJSON []byte

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate is finite and within range.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Place is a single catalogued point of interest with bilingual text.
// Places are seeded from the embedded catalog and never mutated at runtime.
type Place struct {
	ID       string            `json:"id"`
	Name     map[string]string `json:"name"`
	Category string            `json:"category"`
	Coordinate
	Address string            `json:"address"`
	Summary map[string]string `json:"summary"`
}

// categoryKeys is the closed category set, in display order. "all" is the
// sentinel that matches every place and is not a real category.
var categoryKeys = []string{
	"all", "traditional", "landmark", "digital", "river",
	"park", "bridge", "shopping", "stadium", "subway",
}

var catalog []*Place
var byID map[string]*Place

// Load parses and validates the embedded catalog. The catalog is compiled-in
// data, so a validation failure is a build defect and panics.
func Load() {
	var ps []*Place
	if err := json.Unmarshal(catalogJSON, &ps); err != nil {
		panic("places: failed to parse catalog.json: " + err.Error())
	}
	ids := map[string]*Place{}
	for _, p := range ps {
		if err := validate(p); err != nil {
			panic("places: invalid catalog entry: " + err.Error())
		}
		if _, ok := ids[p.ID]; ok {
			panic("places: duplicate catalog id " + p.ID)
		}
		ids[p.ID] = p
	}
	catalog = ps
	byID = ids
	app.Log("places", "Loaded %d places in %d categories", len(catalog), len(categoryKeys)-1)
}

func validate(p *Place) error {
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if !ValidCategory(p.Category) || p.Category == "all" {
		return fmt.Errorf("%s: bad category %q", p.ID, p.Category)
	}
	if !p.Coordinate.Valid() {
		return fmt.Errorf("%s: bad coordinate %v,%v", p.ID, p.Lat, p.Lng)
	}
	for _, code := range []string{"ko", "en"} {
		if p.Name[code] == "" {
			return fmt.Errorf("%s: missing %s name", p.ID, code)
		}
		if p.Summary[code] == "" {
			return fmt.Errorf("%s: missing %s summary", p.ID, code)
		}
	}
	return nil
}

// Catalog returns all places in insertion order.
func Catalog() []*Place {
	return catalog
}

// Get returns the place with the given id, or nil.
func Get(id string) *Place {
	return byID[id]
}

// Categories returns the closed category key set including the "all" sentinel.
func Categories() []string {
	return categoryKeys
}

// ValidCategory reports whether key is in the closed category set.
func ValidCategory(key string) bool {
	for _, k := range categoryKeys {
		if k == key {
			return true
		}
	}
	return false
}
