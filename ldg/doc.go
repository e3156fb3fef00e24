// Package ldg implements the Labeled Distance Graph: a normalized directed
// multigraph over tn.EventID, whose edges carry a signed integer weight and
// an optional upper/lower-case label naming the uncontrollable event the
// edge is "about".
//
// BuildLDG normalizes a *tn.Network into a fresh *Graph per the five
// construction rules in the STNU literature (one per constraint shape);
// every edge it produces, except the structural lower-case e'->e edge of a
// contingent link with lb > 0, carries Provenance back to the originating
// tn.Constraint and a bound tag, so later conflict extraction (package dc)
// can trace any triangulated edge back to user-level constraints.
//
// Storage mirrors a mirrored in/out adjacency-list discipline
// (map[from]map[to][]edge) but edges are looked up by pointer rather than
// by a separate string-ID catalog, since LDG edges are immutable value
// objects created once by BuildLDG or by triangulation (package dc) and
// never mutated afterward — only inserted or removed from the adjacency
// list as vertices are eliminated.
package ldg
