// Package socialnet analyzes undirected friendship graphs loaded from edge
// lists, such as the SNAP ego-Facebook dump.
//
// What is in the box?
//
//	A small set of packages around one immutable Graph:
//		• core: Build a Graph from edges; neighbors, degrees, distribution
//		• bfs: breadth-first search with hooks, average shortest-path length, components
//		• similarity: Jaccard score, top-k similar nodes, globally most similar pair
//		• builder: synthetic graphs (star, path, cycle, complete, G(n,p))
//		• edgelist: SNAP/KONECT edge-list reader and writer, gzip aware
//		• report: degree histogram, JSON and styled text summaries
//
// The socialnet command in cmd/socialnet wires them together behind a cobra
// CLI with YAML/env configuration and zap logging.
//
// Quick start:
//
//	edges, _, err := edgelist.ReadFile("facebook_combined.txt")
//	g, err := core.Build(edges)
//	pl, err := bfs.AverageShortestPathLength(g, 0)
//	top, err := similarity.TopK(g, 0, 5)
//	best, err := similarity.MostSimilarPair(g, similarity.WithWorkers(8))
//
// A Graph has no mutators, so every analysis may run concurrently on the
// same instance.
package socialnet
