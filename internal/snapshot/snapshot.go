package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avito-tech/dogwalk-server/internal/auth"
	"github.com/avito-tech/dogwalk-server/internal/gamesession"
	"github.com/avito-tech/dogwalk-server/internal/registry"
)

// schemaVersion is bumped whenever the envelope shape changes in a way that
// would make an older file unreadable.
const schemaVersion = 1

// ErrSchemaMismatch is returned by Load when a file's SchemaVersion does not
// match what this build understands — treated as a malformed file (spec
// §4.6, "a malformed file is a fatal error").
var ErrSchemaMismatch = errors.New("snapshot: schema version mismatch")

// envelope is the on-disk shape of a saved game state.
type envelope struct {
	SchemaVersion int          `json:"schemaVersion"`
	Maps          []mapSection `json:"maps"`
}

type mapSection struct {
	MapID        string             `json:"mapId"`
	Players      []playerSection    `json:"players"`
	Loot         []lootSection      `json:"loot"`
	NextPlayerID int                `json:"nextPlayerId"`
	NextLootID   int                `json:"nextLootId"`
}

type playerSection struct {
	ID        int             `json:"id"`
	Token     auth.Token      `json:"token"`
	Name      string          `json:"name"`
	Position  pointSection    `json:"position"`
	Speed     vectorSection   `json:"speed"`
	Direction string          `json:"direction"`
	Bag       []bagItemSection `json:"bag"`
	Score     int             `json:"score"`
	PlayTime  float64         `json:"playTime"`
	IdleTime  float64         `json:"idleTime"`
}

type bagItemSection struct {
	LootID    int `json:"lootId"`
	TypeIndex int `json:"typeIndex"`
}

type lootSection struct {
	ID        int          `json:"id"`
	TypeIndex int          `json:"typeIndex"`
	Position  pointSection `json:"position"`
}

type pointSection struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type vectorSection struct {
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// Save writes the registry's entire live state to path, atomically: the
// encoded envelope is written to a temporary file in the same directory
// and then renamed over the destination, so a crash mid-write never leaves
// a torn file behind (spec §4.6).
func Save(path string, g *registry.Game) error {
	env := envelope{SchemaVersion: schemaVersion}
	for _, snap := range g.StateSnapshot() {
		env.Maps = append(env.Maps, toMapSection(snap))
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: marshal: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("snapshot: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("snapshot: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("snapshot: rename into place: %w", err)
	}
	return nil
}

// Load reads path and applies it to g. A missing file is not an error —
// the registry is simply left empty (spec §4.6, "a missing file on
// startup is not an error"). Any other failure, including a schema
// mismatch, is returned for the caller to treat as fatal.
func Load(path string, g *registry.Game) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("snapshot: read %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("snapshot: malformed file %s: %w", path, err)
	}
	if env.SchemaVersion != schemaVersion {
		return fmt.Errorf("%w: file has version %d, expected %d", ErrSchemaMismatch, env.SchemaVersion, schemaVersion)
	}

	snapshots := make([]registry.MapSnapshot, 0, len(env.Maps))
	for _, section := range env.Maps {
		snapshots = append(snapshots, fromMapSection(section))
	}
	g.Restore(snapshots)
	return nil
}

func toMapSection(snap registry.MapSnapshot) mapSection {
	section := mapSection{
		MapID:        snap.MapID,
		NextPlayerID: snap.State.NextPlayerID,
		NextLootID:   snap.State.NextLootID,
	}
	for _, p := range snap.State.Players {
		bag := make([]bagItemSection, 0, len(p.Bag))
		for _, item := range p.Bag {
			bag = append(bag, bagItemSection{LootID: item.LootID, TypeIndex: item.TypeIndex})
		}
		section.Players = append(section.Players, playerSection{
			ID:        p.ID,
			Token:     p.Token,
			Name:      p.Name,
			Position:  pointSection{X: p.Position.X, Y: p.Position.Y},
			Speed:     vectorSection{VX: p.Speed.VX, VY: p.Speed.VY},
			Direction: string(p.Direction),
			Bag:       bag,
			Score:     p.Score,
			PlayTime:  p.PlayTime,
			IdleTime:  p.IdleTime,
		})
	}
	for _, l := range snap.State.Loot {
		section.Loot = append(section.Loot, lootSection{
			ID:        l.ID,
			TypeIndex: l.TypeIndex,
			Position:  pointSection{X: l.Position.X, Y: l.Position.Y},
		})
	}
	return section
}

func fromMapSection(section mapSection) registry.MapSnapshot {
	state := gamesession.RestoreState{
		NextPlayerID: section.NextPlayerID,
		NextLootID:   section.NextLootID,
	}
	for _, p := range section.Players {
		bag := make([]gamesession.BagItem, 0, len(p.Bag))
		for _, item := range p.Bag {
			bag = append(bag, gamesession.BagItem{LootID: item.LootID, TypeIndex: item.TypeIndex})
		}
		state.Players = append(state.Players, gamesession.Player{
			ID:        p.ID,
			Token:     p.Token,
			Name:      p.Name,
			Position:  pointValue(p.Position),
			Speed:     vectorValue(p.Speed),
			Direction: directionValue(p.Direction),
			Bag:       bag,
			Score:     p.Score,
			PlayTime:  p.PlayTime,
			IdleTime:  p.IdleTime,
		})
	}
	for _, l := range section.Loot {
		state.Loot = append(state.Loot, gamesession.LootInstance{
			ID:        l.ID,
			TypeIndex: l.TypeIndex,
			Position:  pointValue(l.Position),
		})
	}
	return registry.MapSnapshot{MapID: section.MapID, State: state}
}
