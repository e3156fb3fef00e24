// Package builder assembles deterministic fixture temporal networks from
// small, composable Constructor closures, the way a topology builder
// package assembles graphs from topology Constructors (builder/api.go's
// Constructor/BuildGraph pattern). There is no randomness here: random
// network generation for benchmarks is out of scope, so only the
// deterministic half of that pattern is carried over.
package builder
