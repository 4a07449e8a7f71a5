// Package ticker drives the simulation's fixed-rate tick (spec §5): a
// time.Ticker on its own goroutine posts tick(dt) calls through the
// strand, the same way the teacher's websocket.Client.writePump drives a
// ping on its own ticker alongside a select over a send channel.
package ticker
