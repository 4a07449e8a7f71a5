package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/avito-tech/dogwalk-server/internal/auth"
	"github.com/avito-tech/dogwalk-server/internal/registry"
	"github.com/avito-tech/dogwalk-server/internal/strand"
)

// ScoreSink is the score-persistence collaborator's write side (spec §6
// Database, §4.3 phase 6). Implementations must not block the strand.
type ScoreSink interface {
	Record(name string, score int, playTime float64)
}

// ScoreRecord is one scoreboard row, as returned by RecordsReader.
type ScoreRecord struct {
	Name     string  `json:"name"`
	Score    int     `json:"score"`
	PlayTime float64 `json:"playTime"`
}

// RecordsReader is the score-persistence collaborator's read side, backing
// GET /api/v1/game/records.
type RecordsReader interface {
	ListRecords(ctx context.Context, start, maxItems int) ([]ScoreRecord, error)
}

// routeEntry pairs a registered route's compiled path matcher with the
// route itself, so handleMethodNotAllowed can recover the methods a path
// actually accepts independent of the method that failed to match.
type routeEntry struct {
	path  *regexp.Regexp
	route *mux.Route
}

// Server implements the Authenticated API Surface over a registry.Game.
type Server struct {
	game    *registry.Game
	strand  *strand.Strand
	scores  ScoreSink
	records RecordsReader
	router  *mux.Router
	routes  []routeEntry

	manualTickEnabled bool
}

// New builds the router and wires every handler (spec §4.5's endpoint
// table). manualTickEnabled controls whether POST /api/v1/game/tick is
// served or rejected — it is enabled only when no internal ticker runs
// (spec §6 CLI, "--tick-period").
func New(game *registry.Game, st *strand.Strand, scores ScoreSink, records RecordsReader, manualTickEnabled bool) *Server {
	s := &Server{
		game:              game,
		strand:            st,
		scores:            scores,
		records:           records,
		router:            mux.NewRouter(),
		manualTickEnabled: manualTickEnabled,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()

	s.addRoute(api, "/game/join", s.handleJoin, http.MethodPost)
	s.addRoute(api, "/game/players", s.handlePlayers, http.MethodGet, http.MethodHead)
	s.addRoute(api, "/game/state", s.handleState, http.MethodGet, http.MethodHead)
	s.addRoute(api, "/game/player/action", s.handleAction, http.MethodPost)
	s.addRoute(api, "/game/tick", s.handleTick, http.MethodPost)
	s.addRoute(api, "/game/records", s.handleRecords, http.MethodGet)
	s.addRoute(api, "/maps", s.handleMaps, http.MethodGet, http.MethodHead)
	s.addRoute(api, "/maps/{id}", s.handleMapByID, http.MethodGet, http.MethodHead)

	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)
}

// addRoute registers handler on api and records its compiled path matcher
// and method set, so a later 405 on the same path can report exactly
// those methods (see handleMethodNotAllowed).
func (s *Server) addRoute(api *mux.Router, path string, handler http.HandlerFunc, methods ...string) {
	route := api.HandleFunc(path, handler).Methods(methods...)
	pathRegexp, err := route.GetPathRegexp()
	if err != nil {
		// Every path registered above is a literal template this package
		// controls; a compile failure here would be a programming error.
		panic(fmt.Sprintf("httpapi: route %q: %v", path, err))
	}
	s.routes = append(s.routes, routeEntry{path: regexp.MustCompile(pathRegexp), route: route})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleMethodNotAllowed reports the Allow header for the route that was
// actually hit, not a fixed method set. gorilla/mux does not expose the
// path-matched route on a method mismatch (match.Route is only populated
// on a full match), so this matches the request path against each
// route's own compiled path regexp directly, independent of method.
func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	for _, re := range s.routes {
		if !re.path.MatchString(r.URL.Path) {
			continue
		}
		if methods, err := re.route.GetMethods(); err == nil {
			w.Header().Set("Allow", strings.Join(methods, ", "))
		}
		break
	}
	respondError(w, newAPIError(http.StatusMethodNotAllowed, "invalidMethod", "method not allowed"))
}

// respondJSON writes data with the shared headers every endpoint shares
// (spec §4.5: "JSON content type, a Cache-Control: no-cache header").
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// errorEnvelope is the {code, message} shape of spec §7.
type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, err error) {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		log.Printf("httpapi: unhandled error: %v", err)
		apiErr = errInternal
	}
	respondJSON(w, apiErr.status, errorEnvelope{Code: apiErr.code, Message: apiErr.message})
}

// authenticate extracts and validates the format of the bearer token from
// the request (spec §4.5 auth rules). It does not look the token up;
// handlers resolve it to a player inside the strand.
func (s *Server) authenticate(r *http.Request) (auth.Token, error) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return auth.Token{}, errInvalidToken
	}
	token, err := auth.Parse(header[len(prefix):])
	if err != nil {
		return auth.Token{}, errInvalidToken
	}
	return token, nil
}

// withStrand posts fn through the server's strand with the server's
// default per-request timeout, so every handler that reads or writes
// session state observes a consistent snapshot between ticks (spec §5).
// The map catalog and records handlers do not go through the strand.
func (s *Server) withStrand(r *http.Request, fn func()) error {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	return s.strand.Go(ctx, fn)
}
