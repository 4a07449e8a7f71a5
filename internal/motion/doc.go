// Package motion implements the road-constrained movement model: given an
// avatar's current position, speed and direction, and the road network of
// its map, it computes where the avatar ends up after a time delta. It is
// pure with respect to everything except the values passed in.
package motion
