package maploader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/avito-tech/dogwalk-server/internal/loot"
	"github.com/avito-tech/dogwalk-server/internal/model"
)

// ErrCatalogNotFound is returned when the configured catalog file is
// missing; unlike the snapshot file, this is always fatal — there is no
// game without a map catalog (spec §6, "--config-file <path>" required).
var ErrCatalogNotFound = errors.New("maploader: catalog file not found")

// Catalog is the parsed result of the map JSON file: every map ready for
// the registry, plus the shared loot-generator configuration.
type Catalog struct {
	Maps          []*model.Map
	LootGenerator loot.Config
}

type roadJSON struct {
	X0 int  `json:"x0"`
	Y0 int  `json:"y0"`
	X1 *int `json:"x1"`
	Y1 *int `json:"y1"`
}

type buildingJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type officeJSON struct {
	ID      string `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	OffsetX int    `json:"offsetX"`
	OffsetY int    `json:"offsetY"`
}

type lootTypeJSON struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type mapJSON struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	DogSpeed        *float64       `json:"dogSpeed"`
	BagCapacity     *int           `json:"bagCapacity"`
	Roads           []roadJSON     `json:"roads"`
	Buildings       []buildingJSON `json:"buildings"`
	Offices         []officeJSON   `json:"offices"`
	LootTypes       []lootTypeJSON `json:"lootTypes"`
}

type lootGeneratorJSON struct {
	Period      float64 `json:"period"`
	Probability float64 `json:"probability"`
}

type catalogJSON struct {
	DefaultDogSpeed    float64           `json:"defaultDogSpeed"`
	DefaultBagCapacity int               `json:"defaultBagCapacity"`
	LootGeneratorConfig lootGeneratorJSON `json:"lootGeneratorConfig"`
	Maps               []mapJSON         `json:"maps"`
}

// Load reads and validates the map catalog at path (spec §6 Map JSON).
// Per-map dogSpeed/bagCapacity override the catalog-wide defaults when
// present — a feature the distilled spec is silent on but the original
// JSON loader implements (see SPEC_FULL.md §3).
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Catalog{}, ErrCatalogNotFound
		}
		return Catalog{}, fmt.Errorf("maploader: read %s: %w", path, err)
	}

	var raw catalogJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("maploader: parse %s: %w", path, err)
	}

	maps := make([]*model.Map, 0, len(raw.Maps))
	for _, mj := range raw.Maps {
		m, err := buildMap(mj, raw.DefaultDogSpeed, raw.DefaultBagCapacity)
		if err != nil {
			return Catalog{}, fmt.Errorf("maploader: map %q: %w", mj.ID, err)
		}
		maps = append(maps, m)
	}

	return Catalog{
		Maps: maps,
		LootGenerator: loot.Config{
			Period:      raw.LootGeneratorConfig.Period,
			Probability: raw.LootGeneratorConfig.Probability,
		},
	}, nil
}

func buildMap(mj mapJSON, defaultDogSpeed float64, defaultBagCapacity int) (*model.Map, error) {
	dogSpeed := defaultDogSpeed
	if mj.DogSpeed != nil {
		dogSpeed = *mj.DogSpeed
	}
	bagCapacity := defaultBagCapacity
	if mj.BagCapacity != nil {
		bagCapacity = *mj.BagCapacity
	}

	raw := model.Map{
		ID:          mj.ID,
		Name:        mj.Name,
		DogSpeed:    dogSpeed,
		BagCapacity: bagCapacity,
	}

	for _, rj := range mj.Roads {
		road := model.Road{Start: model.Point{X: float64(rj.X0), Y: float64(rj.Y0)}}
		switch {
		case rj.X1 != nil && rj.Y1 != nil:
			return nil, fmt.Errorf("road must specify exactly one of x1, y1")
		case rj.X1 != nil:
			road.End = model.Point{X: float64(*rj.X1), Y: float64(rj.Y0)}
		case rj.Y1 != nil:
			road.End = model.Point{X: float64(rj.X0), Y: float64(*rj.Y1)}
		default:
			return nil, fmt.Errorf("road must specify exactly one of x1, y1")
		}
		raw.Roads = append(raw.Roads, road)
	}

	for _, bj := range mj.Buildings {
		raw.Buildings = append(raw.Buildings, model.Building{
			Position: model.IntPoint{X: bj.X, Y: bj.Y},
			Width:    bj.W,
			Height:   bj.H,
		})
	}

	for _, oj := range mj.Offices {
		raw.Offices = append(raw.Offices, model.Office{
			ID:       oj.ID,
			Position: model.IntPoint{X: oj.X, Y: oj.Y},
			OffsetX:  oj.OffsetX,
			OffsetY:  oj.OffsetY,
		})
	}

	for _, lt := range mj.LootTypes {
		raw.LootTypes = append(raw.LootTypes, model.LootType{Name: lt.Name, Value: lt.Value})
	}

	return model.NewMap(raw)
}
