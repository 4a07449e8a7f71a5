package model

import "testing"

func testMap(t *testing.T) Map {
	t.Helper()
	return Map{
		ID:   "map1",
		Name: "Town",
		Roads: []Road{
			{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}},
			{Start: Point{X: 10, Y: 0}, End: Point{X: 10, Y: 10}},
		},
		Offices:     []Office{{ID: "office1", Position: IntPoint{X: 10, Y: 0}}},
		LootTypes:   []LootType{{Name: "key", Value: 5}},
		DogSpeed:    3.0,
		BagCapacity: 3,
	}
}

func TestNewMap(t *testing.T) {
	m, err := NewMap(testMap(t))
	if err != nil {
		t.Fatalf("NewMap returned error: %v", err)
	}
	if m.Index() == nil {
		t.Fatal("expected road index to be built")
	}
	if !m.Index().AnyHorizontal(0) {
		t.Error("expected horizontal road at y=0")
	}
	if !m.Index().AnyVertical(10) {
		t.Error("expected vertical road at x=10")
	}
}

func TestNewMap_RejectsMissingID(t *testing.T) {
	raw := testMap(t)
	raw.ID = ""
	if _, err := NewMap(raw); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestNewMap_RejectsZeroSpeed(t *testing.T) {
	raw := testMap(t)
	raw.DogSpeed = 0
	if _, err := NewMap(raw); err == nil {
		t.Fatal("expected error for zero dog speed")
	}
}

func TestCanonicalStart(t *testing.T) {
	m, err := NewMap(testMap(t))
	if err != nil {
		t.Fatalf("NewMap returned error: %v", err)
	}
	start := m.CanonicalStart()
	if start.X != 0 || start.Y != 0 {
		t.Errorf("expected canonical start (0,0), got (%v,%v)", start.X, start.Y)
	}
}
