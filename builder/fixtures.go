// File: fixtures.go
// Role: The scenario-table fixtures used by the dc package's test suite,
//       one Constructor-composition per row.
// Ground: scenario table used by the dc package's controllability tests;
//         constraint numbering follows the table's own c1/c2/c3 naming so
//         conflict assertions can refer to names directly.

package builder

import "github.com/dcnet/stnudc/tn"

// ScenarioA: STC e1->e2 [2,5]; SCTC e3->e2 [4,7]. Controllable.
func ScenarioA() (*tn.Network, error) {
	return BuildNetwork("scenario-a",
		STC("c1", "e1", "e2", boundedInt64(2), boundedInt64(5)),
		SCTC("c2", "e3", "e2", 4, 7),
	)
}

// ScenarioB: STC e1->e2 [3,5]; SCTC e3->e2 [4,7]. Uncontrollable.
func ScenarioB() (*tn.Network, error) {
	return BuildNetwork("scenario-b",
		STC("c1", "e1", "e2", boundedInt64(3), boundedInt64(5)),
		SCTC("c2", "e3", "e2", 4, 7),
	)
}

// ScenarioC: SCTC e1->e2 [20,30]; STC e2->e3 [40,45]; STC e1->e3 [0,50].
// Uncontrollable.
func ScenarioC() (*tn.Network, error) {
	return BuildNetwork("scenario-c",
		SCTC("c1", "e1", "e2", 20, 30),
		STC("c2", "e2", "e3", boundedInt64(40), boundedInt64(45)),
		STC("c3", "e1", "e3", boundedInt64(0), boundedInt64(50)),
	)
}

// ScenarioD: SCTC e1->e3 [0,10]; STC e2->e3 [0,2]. Controllable.
func ScenarioD() (*tn.Network, error) {
	return BuildNetwork("scenario-d",
		SCTC("c1", "e1", "e3", 0, 10),
		STC("c2", "e2", "e3", boundedInt64(0), boundedInt64(2)),
	)
}

// ScenarioE: SCTC e1->e3 [0,10]; STC e2->e3 [1,2]. Uncontrollable.
func ScenarioE() (*tn.Network, error) {
	return BuildNetwork("scenario-e",
		SCTC("c1", "e1", "e3", 0, 10),
		STC("c2", "e2", "e3", boundedInt64(1), boundedInt64(2)),
	)
}

// ScenarioF: SCTC e1->e3 [0,10]; STC e2->e3 [0,2]; STC e1->e2 [0,8].
// Controllable.
func ScenarioF() (*tn.Network, error) {
	return BuildNetwork("scenario-f",
		SCTC("c1", "e1", "e3", 0, 10),
		STC("c2", "e2", "e3", boundedInt64(0), boundedInt64(2)),
		STC("c3", "e1", "e2", boundedInt64(0), boundedInt64(8)),
	)
}

// ScenarioG: SCTC e1->e3 [0,10]; STC e2->e3 [0,2]; SCTC e1->e2 [0,8].
// Uncontrollable: two contingent links share source e1.
func ScenarioG() (*tn.Network, error) {
	return BuildNetwork("scenario-g",
		SCTC("c1", "e1", "e3", 0, 10),
		STC("c2", "e2", "e3", boundedInt64(0), boundedInt64(2)),
		SCTC("c3", "e1", "e2", 0, 8),
	)
}
