package registry

import (
	"errors"

	"github.com/avito-tech/dogwalk-server/internal/auth"
	"github.com/avito-tech/dogwalk-server/internal/gamesession"
	"github.com/avito-tech/dogwalk-server/internal/loot"
	"github.com/avito-tech/dogwalk-server/internal/model"
)

// ErrMapNotFound is returned by Join and MapByID for an unknown map id.
var ErrMapNotFound = errors.New("registry: map not found")

// ErrUnknownToken is returned by GetPlayer for a well-formed token with no
// matching player.
var ErrUnknownToken = errors.New("registry: unknown token")

// Config bundles the knobs shared by every session the registry creates.
type Config struct {
	LootGenerator       loot.Config
	RandomSpawn         bool
	RetirementThreshold float64
	Random              func() float64
}

// RetiredRecord pairs a retirement event with the map it happened on, for
// the score-persistence collaborator (spec §4.3 phase 6, §4.4).
type RetiredRecord struct {
	MapID string
	gamesession.RetiredPlayer
}

// Game owns the map catalog, the per-map sessions (created lazily on first
// join) and the global token → map index (spec §3 Game, §4.4).
type Game struct {
	config Config
	tokens *auth.Generator

	maps    []*model.Map
	mapByID map[string]*model.Map

	sessions   map[string]*gamesession.Session
	tokenToMap map[auth.Token]string
}

// New builds a registry over the given map catalog. The catalog order is
// preserved for GET /api/v1/maps. It fails only if the token generator
// cannot be seeded from the system CSPRNG.
func New(maps []*model.Map, cfg Config) (*Game, error) {
	tokens, err := auth.NewGenerator()
	if err != nil {
		return nil, err
	}

	mapByID := make(map[string]*model.Map, len(maps))
	for _, m := range maps {
		mapByID[m.ID] = m
	}
	return &Game{
		config:     cfg,
		tokens:     tokens,
		maps:       maps,
		mapByID:    mapByID,
		sessions:   make(map[string]*gamesession.Session),
		tokenToMap: make(map[auth.Token]string),
	}, nil
}

// Maps returns the catalog in load order.
func (g *Game) Maps() []*model.Map { return g.maps }

// MapByID looks up a single map by id.
func (g *Game) MapByID(id string) (*model.Map, bool) {
	m, ok := g.mapByID[id]
	return m, ok
}

// Join creates (or reuses) the session for mapID and adds a new player to
// it, returning a fresh bearer token and the player's session-local id
// (spec §4.4).
func (g *Game) Join(mapID, userName string) (auth.Token, int, error) {
	m, ok := g.mapByID[mapID]
	if !ok {
		return auth.Token{}, 0, ErrMapNotFound
	}

	session := g.sessionFor(m)

	token := g.tokens.Next()
	player, err := session.Join(token, userName)
	if err != nil {
		return auth.Token{}, 0, err
	}

	g.tokenToMap[token] = mapID
	return token, player.ID, nil
}

// GetPlayer resolves a bearer token to its player and the map it plays on.
func (g *Game) GetPlayer(token auth.Token) (*gamesession.Player, *model.Map, error) {
	mapID, ok := g.tokenToMap[token]
	if !ok {
		return nil, nil, ErrUnknownToken
	}
	session := g.sessions[mapID]
	player, ok := session.Get(token)
	if !ok {
		return nil, nil, ErrUnknownToken
	}
	return player, g.mapByID[mapID], nil
}

// SessionFor returns the live session for a map, for handlers that need
// more than a single player (players list, state snapshot).
func (g *Game) SessionFor(mapID string) (*gamesession.Session, bool) {
	s, ok := g.sessions[mapID]
	return s, ok
}

// Tick advances every live session by dt seconds and returns every player
// retired this round, across all sessions (spec §4.4 "tick").
func (g *Game) Tick(dt float64) []RetiredRecord {
	var retired []RetiredRecord
	for mapID, session := range g.sessions {
		for _, r := range session.Tick(dt) {
			retired = append(retired, RetiredRecord{MapID: mapID, RetiredPlayer: r})
			delete(g.tokenToMap, r.Token)
		}
	}
	return retired
}

// sessionFor returns the session for m, creating it (and its loot
// generator, seeded from the registry's shared config) on first use.
func (g *Game) sessionFor(m *model.Map) *gamesession.Session {
	if s, ok := g.sessions[m.ID]; ok {
		return s
	}
	s := gamesession.New(m, gamesession.Config{
		LootGenerator:       g.config.LootGenerator,
		RandomSpawn:         g.config.RandomSpawn,
		RetirementThreshold: g.config.RetirementThreshold,
		Random:              g.config.Random,
	})
	g.sessions[m.ID] = s
	return s
}
