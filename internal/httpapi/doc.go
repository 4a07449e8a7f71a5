// Package httpapi implements the Authenticated API Surface (spec §4.5):
// the eight REST endpoints, bearer-token authentication, and the §7 error
// envelope. Routing follows the teacher's api/server.go shape — a
// gorilla/mux router, small per-group handler methods, shared
// respondJSON/respondError helpers — generalized from session-management
// endpoints to game-join/action/state endpoints.
//
// Every mutating handler posts its work through a strand.Strand so it
// never races the simulation ticker (spec §5); read-only handlers of
// session state (players, state) do the same, to observe a consistent
// snapshot between ticks. The map catalog and records handlers do not use
// the strand.
package httpapi
