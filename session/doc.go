// Package session owns one interactive run of the pathfinding tool: a Grid,
// its Start/End singletons, and the plumbing (logger, metrics, ID) around
// searches over it.
//
// The presentation layer talks only to a Session. It translates user input to
// Place/Erase (or the explicit SetStart/SetEnd/SetBarrier), asks for Run with a
// progress callback that redraws and pumps input, and calls Clear for a full reset.
//
// Invariants kept here, not in package grid or astar:
//
//   - At most one Start and one End cell exist at any time.
//   - Barriers are never placed on Start or End.
//   - Neighbor lists are refreshed right before every Run.
package session
