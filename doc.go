// Package stnudc checks dynamic controllability of Simple Temporal
// Networks with Uncertainty (STNUs) by bucket elimination over a labeled
// distance graph.
//
// Subpackages:
//
//	tn/      — event/constraint bookkeeping (the temporal network model)
//	ldg/     — labeled distance multigraph + TN-to-LDG normalization
//	dc/      — triangulation, elimination engine, conflict extraction, the
//	           public Checker facade
//	builder/ — deterministic fixture construction for test/demo networks
//	viz/     — pluggable visualization hook and dense distance snapshots
//	cmd/dcchecker/ — CLI entry point
package stnudc
