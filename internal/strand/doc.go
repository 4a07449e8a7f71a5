// Package strand implements the single-writer serializer described in
// spec §5: a logical queue that guarantees strict sequential execution of
// every mutating game operation (join, action, tick, snapshot save/load),
// regardless of which HTTP-handler goroutine submits it.
//
// The shape is the teacher's transport/websocket.Hub.Run event loop — one
// goroutine draining a channel in a for/select — repurposed here from
// broadcasting game state to executing arbitrary posted work.
package strand
