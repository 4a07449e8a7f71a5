package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avito-tech/dogwalk-server/internal/model"
	"github.com/avito-tech/dogwalk-server/internal/registry"
)

func testCatalog(t *testing.T) []*model.Map {
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
		BagCapacity: 3,
	}
	m, err := model.NewMap(raw)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return []*model.Map{m}
}

func TestSaveLoad_MissingFileIsNotAnError(t *testing.T) {
	g, err := registry.New(testCatalog(t), registry.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	if err := Load(path, g); err != nil {
		t.Fatalf("expected missing file to be a no-op, got %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	g, err := registry.New(testCatalog(t), registry.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	token, _, err := g.Join("map1", "Rex")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}

	path := filepath.Join(t.TempDir(), "state.json")
	if err := Save(path, g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored, err := registry.New(testCatalog(t), registry.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := Load(path, restored); err != nil {
		t.Fatalf("Load: %v", err)
	}

	player, m, err := restored.GetPlayer(token)
	if err != nil {
		t.Fatalf("GetPlayer after round trip: %v", err)
	}
	if player.Name != "Rex" || m.ID != "map1" {
		t.Errorf("unexpected restored player: %+v on map %+v", player, m)
	}
}

func TestLoad_RejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(`{"schemaVersion": 999, "maps": []}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	g, err := registry.New(testCatalog(t), registry.Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := Load(path, g); err == nil {
		t.Fatal("expected schema mismatch error")
	}
}
