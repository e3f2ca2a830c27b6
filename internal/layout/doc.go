// Package layout turns Collatz trajectories into drawable geometry.
//
// Each trajectory becomes one polyline through a turtle walk: the walk
// starts at the origin heading straight up, advances a fixed branch length
// per value and turns by the even or odd angle depending on that value.
// [Draw] then attaches a palette color and an end-of-path label to every
// polyline, producing the [RenderItem] list a renderer consumes.
//
// Trajectories sharing a suffix are drawn as independent polylines; no
// branch merging takes place.
package layout
