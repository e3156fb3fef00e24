// Package dc implements dynamic-controllability checking for STNUs via
// bucket elimination over a labeled distance graph (package ldg).
//
// Algorithm outline (ground: dc_checking/dc_be.py check_dc_bucket_elimination):
//  1. Build the LDG from a *tn.Network (package ldg).
//  2. Repeatedly find a ready vertex (no negative-weight incoming edge);
//     eliminate it by triangulating every in/out edge pair through it,
//     dropping every parallel edge per (source, target) that another
//     edge there dominates (edges with different labels can coexist).
//  3. If no ready vertex exists, the search instead returns a
//     semi-reducible negative cycle: the network is not controllable.
//  4. On failure, the cycle is expanded back to original constraints and a
//     human-readable Conflict is produced.
//
// Complexity: each elimination step is O(deg_in(v) * deg_out(v)) for
// triangulation; the full run is bounded by the usual bucket-elimination
// blowup, acceptable for the small-to-medium STNUs this checker targets.
//
// Concurrency: a Checker run is single-threaded and synchronous; the LDG
// it builds is owned exclusively by that run and mutated in place. Run the
// checker from a worker goroutine and abandon its result for caller-side
// timeouts.
package dc
