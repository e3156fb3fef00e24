// Package viz provides a pluggable visualization hook for the elimination
// engine (package dc) plus a dense numeric snapshot of the labeled
// distance graph's current state. It introduces no rendering or plotting
// dependency: actual drawing is an out-of-scope external collaborator;
// this package only hands the caller a data snapshot.
package viz
