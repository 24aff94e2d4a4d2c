// Package bezier provides cubic Bézier curve operations: De Casteljau
// subdivision, curve/line-segment intersection, and the closed-form cubic
// equation solver (Cardano and Viète) that backs the intersection search.
package bezier
