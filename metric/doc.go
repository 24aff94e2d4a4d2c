// Package metric provides the distance and similarity functions used by
// clustering and table-structure recovery: point-to-point distances and
// axis projections, color distance, signed angles, string edit distance,
// and nearest-index search. There is no point-to-line distance.
package metric
