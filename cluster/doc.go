// Package cluster groups page elements by spatial proximity: each element
// picks its nearest acceptable neighbour (in parallel, via a shared k-d
// tree), the resulting edge array is treated as an undirected graph, and
// its connected components become the clusters. A rectangle-coalescing
// variant merges elements whose axis-aligned bounds touch.
package cluster
