// Package graph defines the validated knowledge-graph model for Knot:
// nodes, edges, adjacency, and the vector math shared by the layout and
// scene packages.
package graph
