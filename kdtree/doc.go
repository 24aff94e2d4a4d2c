// Package kdtree provides a 2-D spatial index with nearest and k-nearest
// neighbour queries. Trees are built once, balanced by median splits along
// alternating axes, and are immutable (and therefore safe to share across
// goroutines) afterwards.
package kdtree
