// Package dijkstra provides single-source shortest paths on a core.Graph
// with non-negative edge costs.
//
// Overview:
//
//   - Dijkstra expands nodes from a binary min-heap keyed by distance.
//   - Equal distances pop the higher NodeIndex first, so runs are
//     deterministic for a fixed insertion order.
//   - Two settlement modes are available via WithMode:
//     FinalizeOnPop (default) returns true shortest distances;
//     MarkOnDiscovery fixes a node on first sight and can overestimate.
//
// Key features:
//
//   - ReturnPath: record predecessors and rebuild paths with Result.PathTo.
//   - Visitor: stop the run early, e.g. once a target is settled.
//   - Context: cancel long runs; the partial Result is returned.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), plus an O(E) negative-cost pre-scan.
//   - Space: O(V + E) for FinalizeOnPop under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil, ErrStartNodeNotFound, ErrNegativeWeight, ErrBadMode.
//   - Result.PathTo: ErrNoPath, ErrPathNotRecorded.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithReturnPath[string]())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo(3)
package dijkstra
