package gamesession

import "github.com/avito-tech/dogwalk-server/internal/model"

// RestoreState is the subset of Session state a snapshot needs to rebuild a
// session exactly as it was (package snapshot owns the on-disk encoding;
// this package only owns what "exactly as it was" means).
type RestoreState struct {
	Players      []Player
	Loot         []LootInstance
	NextPlayerID int
	NextLootID   int
}

// Restore rebuilds a session from a previously captured RestoreState. It is
// the counterpart to New for snapshot loading (spec §4.4): unlike Join, it
// never rejects an empty name, since it is replaying state that was already
// validated when first created.
func Restore(m *model.Map, cfg Config, state RestoreState) *Session {
	s := New(m, cfg)

	for i := range state.Players {
		p := state.Players[i]
		player := p
		s.players[player.Token] = &player
		s.byID[player.ID] = &player
	}

	for i := range state.Loot {
		l := state.Loot[i]
		s.loot[l.ID] = &l
	}

	s.nextPlayerID = state.NextPlayerID
	s.nextLootID = state.NextLootID

	return s
}

// Snapshot captures the current state for persistence (spec §4.4).
func (s *Session) Snapshot() RestoreState {
	players := make([]Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, *p)
	}

	lootItems := make([]LootInstance, 0, len(s.loot))
	for _, l := range s.loot {
		lootItems = append(lootItems, *l)
	}

	return RestoreState{
		Players:      players,
		Loot:         lootItems,
		NextPlayerID: s.nextPlayerID,
		NextLootID:   s.nextLootID,
	}
}
