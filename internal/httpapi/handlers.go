package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avito-tech/dogwalk-server/internal/auth"
	"github.com/avito-tech/dogwalk-server/internal/gamesession"
	"github.com/avito-tech/dogwalk-server/internal/motion"
	"github.com/avito-tech/dogwalk-server/internal/registry"
)

const maxRecordItems = 100

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	if err := requireJSONContentType(r); err != nil {
		respondError(w, err)
		return
	}

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errParse)
		return
	}

	var (
		token    auth.Token
		playerID int
		joinErr  error
	)
	err := s.withStrand(r, func() {
		token, playerID, joinErr = s.game.Join(req.MapID, req.UserName)
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if joinErr != nil {
		respondError(w, translateJoinError(joinErr))
		return
	}

	respondJSON(w, http.StatusOK, joinResponse{AuthToken: token.String(), PlayerID: playerID})
}

func translateJoinError(err error) error {
	switch {
	case errors.Is(err, registry.ErrMapNotFound):
		return errMapNotFound
	case errors.Is(err, gamesession.ErrInvalidName):
		return errInvalidName
	default:
		return errInternal
	}
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	token, err := s.authenticate(r)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make(map[string]playerSummary)
	var lookupErr error
	err = s.withStrand(r, func() {
		_, m, e := s.game.GetPlayer(token)
		if e != nil {
			lookupErr = e
			return
		}
		session, _ := s.game.SessionFor(m.ID)
		for _, p := range session.Players() {
			resp[strconv.Itoa(p.ID)] = playerSummary{Name: p.Name}
		}
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if lookupErr != nil {
		respondError(w, errUnknownToken)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	token, err := s.authenticate(r)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := stateResponse{Players: map[string]playerStateView{}, Loot: map[string]lootStateView{}}
	var lookupErr error
	err = s.withStrand(r, func() {
		_, m, e := s.game.GetPlayer(token)
		if e != nil {
			lookupErr = e
			return
		}
		session, _ := s.game.SessionFor(m.ID)

		for _, p := range session.Players() {
			bag := make([]bagItemView, 0, len(p.Bag))
			for _, item := range p.Bag {
				bag = append(bag, bagItemView{LootID: item.LootID, TypeIndex: item.TypeIndex})
			}
			resp.Players[strconv.Itoa(p.ID)] = playerStateView{
				Position:  [2]float64{p.Position.X, p.Position.Y},
				Speed:     [2]float64{p.Speed.VX, p.Speed.VY},
				Direction: string(p.Direction),
				Bag:       bag,
				Score:     p.Score,
			}
		}
		for _, l := range session.LootItems() {
			resp.Loot[strconv.Itoa(l.ID)] = lootStateView{
				TypeIndex: l.TypeIndex,
				Position:  [2]float64{l.Position.X, l.Position.Y},
			}
		}
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if lookupErr != nil {
		respondError(w, errUnknownToken)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	token, err := s.authenticate(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := requireJSONContentType(r); err != nil {
		respondError(w, err)
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errParse)
		return
	}

	dir, err := motion.DirectionFromCode(req.Move)
	if err != nil {
		respondError(w, errParse)
		return
	}

	var lookupErr error
	strandErr := s.withStrand(r, func() {
		_, m, e := s.game.GetPlayer(token)
		if e != nil {
			lookupErr = e
			return
		}
		session, _ := s.game.SessionFor(m.ID)
		session.SetDirection(token, dir)
	})
	if strandErr != nil {
		respondError(w, strandErr)
		return
	}
	if lookupErr != nil {
		respondError(w, errUnknownToken)
		return
	}

	respondJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	if !s.manualTickEnabled {
		respondError(w, errTickDisabled)
		return
	}
	if err := requireJSONContentType(r); err != nil {
		respondError(w, err)
		return
	}

	var req tickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errParse)
		return
	}

	err := s.withStrand(r, func() {
		for _, retired := range s.game.Tick(req.TimeDelta) {
			if s.scores != nil {
				s.scores.Record(retired.Name, retired.Score, retired.PlayTime)
			}
		}
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start := 0
	if v := query.Get("start"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			respondError(w, errParse)
			return
		}
		start = parsed
	}

	maxItems := maxRecordItems
	if v := query.Get("maxItems"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			respondError(w, errParse)
			return
		}
		maxItems = parsed
	}
	if maxItems > maxRecordItems {
		respondError(w, errRange)
		return
	}

	if s.records == nil {
		respondJSON(w, http.StatusOK, []ScoreRecord{})
		return
	}

	records, err := s.records.ListRecords(r.Context(), start, maxItems)
	if err != nil {
		respondError(w, fmt.Errorf("httpapi: list records: %w", errInternal))
		return
	}

	respondJSON(w, http.StatusOK, records)
}

func (s *Server) handleMaps(w http.ResponseWriter, r *http.Request) {
	maps := s.game.Maps()
	resp := make([]mapSummary, 0, len(maps))
	for _, m := range maps {
		resp = append(resp, mapSummary{ID: m.ID, Name: m.Name})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMapByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, ok := s.game.MapByID(id)
	if !ok {
		respondError(w, errMapNotFound)
		return
	}
	respondJSON(w, http.StatusOK, toMapDetail(m))
}

func requireJSONContentType(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if ct != "application/json" && ct != "application/json; charset=utf-8" {
		return errInvalidContentType
	}
	return nil
}
