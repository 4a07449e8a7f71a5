// Package auth implements the player bearer token: a 128-bit opaque value
// assembled from two independently seeded 64-bit generators and rendered
// as a 32-character lowercase hex string (spec §3, Player token).
package auth
