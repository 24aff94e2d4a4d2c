// Package hull computes convex hulls and bounding rectangles: the Graham
// scan convex hull, the minimum-area bounding rectangle via rotating
// calipers, and an oriented bounding box fit by linear regression.
package hull
