// Package applog provides a structured request/response logging
// middleware (spec §1, out-of-scope collaborator: "Structured
// request/response logger"). Grounded on the compact, single-line log
// format the teacher's api/server.go prints from handleMove/handleBulkMove
// ("[MOVE] session=%s ... status=%s") — generalized here into one
// middleware that wraps every route instead of a per-handler Printf.
package applog
