package gamesession

import (
	"testing"

	"github.com/avito-tech/dogwalk-server/internal/auth"
	"github.com/avito-tech/dogwalk-server/internal/model"
	"github.com/avito-tech/dogwalk-server/internal/motion"
)

func testSessionMap(t *testing.T) *model.Map {
	t.Helper()
	raw := model.Map{
		ID:   "map1",
		Name: "Town",
		Roads: []model.Road{
			{Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 10, Y: 0}},
		},
		Offices:     []model.Office{{ID: "office1", Position: model.IntPoint{X: 10, Y: 0}}},
		LootTypes:   []model.LootType{{Name: "key", Value: 5}},
		DogSpeed:    3.0,
		BagCapacity: 2,
	}
	m, err := model.NewMap(raw)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return m
}

func zeroRandom() float64 { return 0 }

// TestTick_GatherThenDepositSameTick covers spec §8 scenario 2: a loot item
// and an office both lie on the same tick's travelled segment, so pickup
// and deposit resolve within one Tick call.
func TestTick_GatherThenDepositSameTick(t *testing.T) {
	m := testSessionMap(t)
	s := New(m, Config{Random: zeroRandom})

	tok := auth.Token{1}
	p, err := s.Join(tok, "Rex")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	p.Position = model.Point{X: 0, Y: 0}
	p.Direction = motion.East
	p.Speed = motion.VectorFor(motion.East, m.DogSpeed)

	s.loot[0] = &LootInstance{ID: 0, TypeIndex: 0, Position: model.Point{X: 5, Y: 0}}
	s.nextLootID = 1

	// dt large enough to cross both the loot at x=5 and the office at x=10.
	s.Tick(10.0 / m.DogSpeed)

	got, _ := s.Get(tok)
	if len(got.Bag) != 0 {
		t.Errorf("expected bag emptied after deposit, got %d items", len(got.Bag))
	}
	if got.Score != 5 {
		t.Errorf("expected score 5 after deposit, got %d", got.Score)
	}
	if _, exists := s.loot[0]; exists {
		t.Error("expected loot item to be gathered off the map")
	}
}

// TestTick_RetirementSweep covers spec §8 scenario 3: a player idling past
// the retirement threshold is evicted and reported.
func TestTick_RetirementSweep(t *testing.T) {
	m := testSessionMap(t)
	s := New(m, Config{Random: zeroRandom, RetirementThreshold: 5})

	tok := auth.Token{2}
	p, err := s.Join(tok, "Idle")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	p.Score = 7
	p.PlayTime = 1

	retired := s.Tick(2)
	if len(retired) != 0 {
		t.Fatalf("expected no retirement yet, got %v", retired)
	}

	retired = s.Tick(3)
	if len(retired) != 1 {
		t.Fatalf("expected one retirement, got %d", len(retired))
	}
	if retired[0].Name != "Idle" || retired[0].Score != 7 {
		t.Errorf("unexpected retired record: %+v", retired[0])
	}
	if _, ok := s.Get(tok); ok {
		t.Error("expected retired player removed from session")
	}
}

// TestTick_BagOverflowOrdering covers spec §8 scenario 4: once the bag is
// full, further gather events along the same segment leave the loot on the
// map rather than silently dropping it.
func TestTick_BagOverflowOrdering(t *testing.T) {
	m := testSessionMap(t)
	s := New(m, Config{Random: zeroRandom}) // BagCapacity: 2

	tok := auth.Token{3}
	p, err := s.Join(tok, "Greedy")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	p.Position = model.Point{X: 0, Y: 0}
	p.Direction = motion.East
	p.Speed = motion.VectorFor(motion.East, m.DogSpeed)

	s.loot[0] = &LootInstance{ID: 0, TypeIndex: 0, Position: model.Point{X: 2, Y: 0}}
	s.loot[1] = &LootInstance{ID: 1, TypeIndex: 0, Position: model.Point{X: 4, Y: 0}}
	s.loot[2] = &LootInstance{ID: 2, TypeIndex: 0, Position: model.Point{X: 6, Y: 0}}
	s.nextLootID = 3

	// Travel from x=0 to x=9 this tick, passing all three loot items but
	// stopping short of the office at x=10.
	s.Tick(9.0 / m.DogSpeed)

	got, _ := s.Get(tok)
	if len(got.Bag) != 2 {
		t.Fatalf("expected bag capped at 2, got %d", len(got.Bag))
	}
	if _, exists := s.loot[2]; !exists {
		t.Error("expected the third loot item to remain on the map once the bag was full")
	}
	if _, exists := s.loot[0]; exists {
		t.Error("expected the first loot item to be gathered")
	}
}

func TestSession_JoinRejectsEmptyName(t *testing.T) {
	m := testSessionMap(t)
	s := New(m, Config{Random: zeroRandom})
	if _, err := s.Join(auth.Token{9}, ""); err != ErrInvalidName {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestSession_RestoreRoundTrip(t *testing.T) {
	m := testSessionMap(t)
	s := New(m, Config{Random: zeroRandom})

	tok := auth.Token{4}
	p, err := s.Join(tok, "Saved")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	p.Score = 12
	p.Bag = append(p.Bag, BagItem{LootID: 0, TypeIndex: 0})

	state := s.Snapshot()

	restored := Restore(m, Config{Random: zeroRandom}, state)
	got, ok := restored.Get(tok)
	if !ok {
		t.Fatal("expected restored player to be present")
	}
	if got.Score != 12 || len(got.Bag) != 1 {
		t.Errorf("restored player state mismatch: %+v", got)
	}
	if restored.NextPlayerID() != s.NextPlayerID() {
		t.Errorf("expected next player id preserved, got %d want %d", restored.NextPlayerID(), s.NextPlayerID())
	}
}
