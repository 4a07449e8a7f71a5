package registry

import "github.com/avito-tech/dogwalk-server/internal/gamesession"

// MapSnapshot is one map's worth of session state, for package snapshot.
type MapSnapshot struct {
	MapID string
	State gamesession.RestoreState
}

// StateSnapshot returns a borrowed view of every live session suitable for
// serialization (spec §4.4 "state_snapshot"). It must be called from the
// strand so it cannot race a concurrent tick.
func (g *Game) StateSnapshot() []MapSnapshot {
	out := make([]MapSnapshot, 0, len(g.sessions))
	for mapID, session := range g.sessions {
		out = append(out, MapSnapshot{MapID: mapID, State: session.Snapshot()})
	}
	return out
}

// Restore rebuilds every session (and the global token index) from a
// previously captured snapshot. It must only be called before the registry
// serves any traffic (spec §4.6 load path).
func (g *Game) Restore(snapshots []MapSnapshot) {
	for _, snap := range snapshots {
		m, ok := g.mapByID[snap.MapID]
		if !ok {
			continue // map removed from the catalog since the snapshot was taken
		}
		session := gamesession.Restore(m, gamesession.Config{
			LootGenerator:       g.config.LootGenerator,
			RandomSpawn:         g.config.RandomSpawn,
			RetirementThreshold: g.config.RetirementThreshold,
			Random:              g.config.Random,
		}, snap.State)
		g.sessions[snap.MapID] = session

		for _, p := range snap.State.Players {
			g.tokenToMap[p.Token] = snap.MapID
		}
	}
}
