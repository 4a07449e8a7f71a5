package maploader

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalog = `{
  "defaultDogSpeed": 3.0,
  "defaultBagCapacity": 3,
  "lootGeneratorConfig": {"period": 5, "probability": 0.5},
  "maps": [
    {
      "id": "map1",
      "name": "Town",
      "roads": [{"x0": 0, "y0": 0, "x1": 10}],
      "offices": [{"id": "office1", "x": 10, "y": 0}],
      "lootTypes": [{"name": "key", "value": 5}]
    },
    {
      "id": "map2",
      "name": "Fast Town",
      "dogSpeed": 6.0,
      "roads": [{"x0": 0, "y0": 0, "y1": 10}],
      "lootTypes": [{"value": 1}]
    }
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaultsAndOverrides(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Maps) != 2 {
		t.Fatalf("expected 2 maps, got %d", len(cat.Maps))
	}
	if cat.Maps[0].DogSpeed != 3.0 {
		t.Errorf("expected map1 to use default dog speed 3.0, got %v", cat.Maps[0].DogSpeed)
	}
	if cat.Maps[1].DogSpeed != 6.0 {
		t.Errorf("expected map2 to override dog speed to 6.0, got %v", cat.Maps[1].DogSpeed)
	}
	if cat.Maps[1].BagCapacity != 3 {
		t.Errorf("expected map2 to inherit default bag capacity 3, got %d", cat.Maps[1].BagCapacity)
	}
	if cat.LootGenerator.Period != 5 || cat.LootGenerator.Probability != 0.5 {
		t.Errorf("unexpected loot generator config: %+v", cat.LootGenerator)
	}
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != ErrCatalogNotFound {
		t.Errorf("expected ErrCatalogNotFound, got %v", err)
	}
}

func TestLoad_RejectsRoadWithoutEndpoint(t *testing.T) {
	const bad = `{"defaultDogSpeed":3,"defaultBagCapacity":3,"lootGeneratorConfig":{"period":5,"probability":0.5},
	  "maps":[{"id":"m","name":"M","roads":[{"x0":0,"y0":0}],"lootTypes":[{"value":1}]}]}`
	path := writeCatalog(t, bad)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for road missing both x1 and y1")
	}
}
