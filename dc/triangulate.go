// File: triangulate.go
// Role: Combine an incoming and outgoing edge across a pivot vertex into a
//       child edge (triangulation), the self-loop consistency check, and
//       tightest-parallel-edge dominance filtering.
// Ground: dc_checking/dc_be.py's triangulate/check_nc/tighter.

package dc

import "github.com/dcnet/stnudc/ldg"

// triangulate combines in (source -> pivot) and out (pivot -> target) into
// at most one child edge source -> target, per the label-algebra table:
//
//	in label | out label           | result
//	none     | none                | unlabeled, weight = w
//	none     | upper(l)             | upper(l), weight = w
//	none     | lower(l)             | unlabeled, weight = w
//	lower(li)| none                 | lower(li), weight = w
//	lower(li)| lower                | lower(li), weight = w
//	lower(li)| upper(lo), li != lo  | w>=0: lower(li); w<0: upper(lo)
//	lower(li)| upper(li) (same)     | no edge (harmless self-cancel)
//	upper    | any                  | forbidden -- invariant violation
//
// After forming the candidate, label stripping applies: a lower result
// with w < 0 strips to unlabeled; an upper result with w >= 0 strips to
// unlabeled (ground: triangulate()'s post-hoc labelType/label clearing).
func triangulate(in, out *ldg.Edge) *ldg.Edge {
	w := in.Weight + out.Weight

	var result *ldg.Edge
	switch in.LabelType {
	case ldg.LabelUpper:
		panicInvariant("triangulation encountered a negative incoming upper-case edge")

	case ldg.LabelLower:
		switch out.LabelType {
		case ldg.LabelUpper:
			if in.Label == out.Label {
				return nil // matched lower/upper pair about the same event: no edge
			}
			if w >= 0 {
				result = &ldg.Edge{LabelType: ldg.LabelLower, Label: in.Label, Weight: w}
			} else {
				result = &ldg.Edge{LabelType: ldg.LabelUpper, Label: out.Label, Weight: w}
			}
		default: // none or lower
			result = &ldg.Edge{LabelType: ldg.LabelLower, Label: in.Label, Weight: w}
		}

	case ldg.LabelNone:
		switch out.LabelType {
		case ldg.LabelUpper:
			result = &ldg.Edge{LabelType: ldg.LabelUpper, Label: out.Label, Weight: w}
		default: // none or lower
			result = &ldg.Edge{LabelType: ldg.LabelNone, Weight: w}
		}
	}

	if result == nil {
		return nil
	}

	// Label stripping: a tentative label that's no longer informative is
	// dropped rather than carried forward.
	if result.LabelType == ldg.LabelLower && result.Weight < 0 {
		result.LabelType = ldg.LabelNone
		result.Label = ""
	}
	if result.LabelType == ldg.LabelUpper && result.Weight >= 0 {
		result.LabelType = ldg.LabelNone
		result.Label = ""
	}

	result.From, result.To = in.From, out.To
	result.Provenance = ldg.Provenance{Parents: [2]*ldg.Edge{in, out}}
	return result
}

// checkSelfLoop tests whether in (source -> pivot) and out (pivot ->
// source) form a harmless non-negative loop, or a negative loop that
// cancels via the matched lower/upper rule. Returns true iff the loop is
// safe to discard; false means [in, out] witnesses a semi-reducible
// negative cycle.
func checkSelfLoop(in, out *ldg.Edge) bool {
	if in.Weight+out.Weight >= 0 {
		return true
	}
	return in.LabelType == ldg.LabelLower && out.LabelType == ldg.LabelUpper && in.Label == out.Label
}

// dominates reports whether a is at least as tight as b and compatible in
// label: a dominates b iff weight(a) <= weight(b) and either a is
// unlabeled, or a and b share the same (labelType, label).
func dominates(a, b *ldg.Edge) bool {
	if a.Weight > b.Weight {
		return false
	}
	if a.LabelType == ldg.LabelNone {
		return true
	}
	return a.LabelType == b.LabelType && a.Label == b.Label
}

// filterTightest reports whether candidate is worth inserting among
// existing parallel edges (source -> target), and which existing edges it
// dominates and should displace. Ground: filter_tightest_edges/tighter.
func filterTightest(existing []*ldg.Edge, candidate *ldg.Edge) (insert bool, displaced []*ldg.Edge) {
	for _, e := range existing {
		if dominates(e, candidate) {
			return false, nil
		}
	}
	for _, e := range existing {
		if dominates(candidate, e) {
			displaced = append(displaced, e)
		}
	}
	return true, displaced
}
