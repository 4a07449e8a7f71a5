package loot

import (
	"math"

	"github.com/avito-tech/dogwalk-server/internal/model"
)

// Config mirrors model.LootGeneratorConfig as the generator's own type;
// FromModel converts one into the other.
type Config struct {
	Period      float64 // seconds
	Probability float64 // in (0,1]
}

// FromModel adapts the map-catalog config into the generator's own type.
func FromModel(c model.LootGeneratorConfig) Config {
	return Config{Period: c.Period, Probability: c.Probability}
}

// CountToSpawn returns the number of new loot items that should appear
// this tick, per spec §4.2:
//
//	needed  = max(0, looterCount - lootCount)
//	pStep   = 1 - (1 - probability)^(dt/period)
//	spawned = floor(needed*pStep + random)
//
// random must return a uniform value in [0,1).
func (c Config) CountToSpawn(dt float64, lootCount, looterCount int, random func() float64) int {
	if c.Period <= 0 || c.Probability <= 0 {
		return 0
	}

	needed := looterCount - lootCount
	if needed < 0 {
		needed = 0
	}
	if needed == 0 {
		return 0
	}

	pStep := 1 - math.Pow(1-c.Probability, dt/c.Period)
	spawned := math.Floor(float64(needed)*pStep + random())
	if spawned < 0 {
		return 0
	}
	return int(spawned)
}

// Item is a freshly spawned loot instance, not yet assigned an id — the
// session owns id assignment so ids stay strictly increasing per-session.
type Item struct {
	TypeIndex int
	Position  model.Point
}

// Spawn produces n loot items with a random type index and a position
// sampled uniformly on a uniformly-chosen road's interior (spec §4.2).
func Spawn(n int, roads []model.Road, lootTypeCount int, random func() float64) []Item {
	if n <= 0 || len(roads) == 0 || lootTypeCount <= 0 {
		return nil
	}
	items := make([]Item, n)
	for i := 0; i < n; i++ {
		items[i] = Item{
			TypeIndex: int(random() * float64(lootTypeCount)) % lootTypeCount,
			Position:  model.RandomRoadPoint(roads, random),
		}
	}
	return items
}
