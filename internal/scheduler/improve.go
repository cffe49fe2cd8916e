package scheduler

import (
	"github.com/KirkDiggler/speedmeet/internal/models"
)

// score ranks how badly a participant fits with a group: repeats is the number of
// group members already met, weight the total number of earlier meetings with them.
type score struct {
	repeats int
	weight  int
}

func (s score) less(o score) bool {
	if s.repeats != o.repeats {
		return s.repeats < o.repeats
	}
	return s.weight < o.weight
}

func (s score) add(o score) score {
	return score{repeats: s.repeats + o.repeats, weight: s.weight + o.weight}
}

func (s score) sub(o score) score {
	return score{repeats: s.repeats - o.repeats, weight: s.weight - o.weight}
}

// pairScore is what seating i next to j costs given the history
func pairScore(history *PairingHistory, i, j int) score {
	n := history.meetings(i, j)
	if n == 0 {
		return score{}
	}
	return score{repeats: 1, weight: n}
}

// greedyRound fills each table seat by seat with the least conflicting unseated
// participant. against[c] holds c's score with the members seated so far at the
// table being filled, so each seat costs one scan of the roster.
func greedyRound(roster []*models.Participant, capacities []int, history *PairingHistory) [][]int {
	seated := make([]bool, len(roster))
	against := make([]score, len(roster))
	seating := make([][]int, len(capacities))

	for t, capacity := range capacities {
		for c := range against {
			against[c] = score{}
		}
		members := make([]int, 0, capacity)

		for len(members) < capacity {
			best := -1
			for candidate := range roster {
				if seated[candidate] {
					continue
				}

				sc := against[candidate]
				if best == -1 || sc.less(against[best]) ||
					(sc == against[best] && roster[candidate].ID < roster[best].ID) {
					best = candidate
				}
			}

			seated[best] = true
			members = append(members, best)

			for c := range roster {
				if !seated[c] {
					against[c] = against[c].add(pairScore(history, c, best))
				}
			}
		}

		seating[t] = members
	}

	return seating
}

type swapMove struct {
	tableA, seatA int
	tableB, seatB int
	delta         score
}

// improveRound applies the best strictly improving swap between two tables until
// none remains, the pass limit is hit or the next pass would exceed the round's
// evaluation budget. Swaps keep every table's size.
//
// fit[p][t] is p's score against the members of table t other than p. A swap is
// priced from fit in constant time and fit is patched in one roster scan after it.
func (s *Scheduler) improveRound(roster []*models.Participant, seating [][]int, history *PairingHistory) {
	passCost := 0
	for ta := 0; ta < len(seating); ta++ {
		for tb := ta + 1; tb < len(seating); tb++ {
			passCost += len(seating[ta]) * len(seating[tb])
		}
	}
	if passCost == 0 {
		return
	}

	fit := make([][]score, len(roster))
	for p := range roster {
		fit[p] = make([]score, len(seating))
		for t, members := range seating {
			for _, m := range members {
				fit[p][t] = fit[p][t].add(pairScore(history, p, m))
			}
		}
	}

	evaluated := 0
	for pass := 0; pass < s.maxImprovePasses; pass++ {
		if evaluated+passCost > s.maxSwapEvaluations {
			return
		}
		evaluated += passCost

		var best swapMove
		found := false

		for ta := 0; ta < len(seating); ta++ {
			for tb := ta + 1; tb < len(seating); tb++ {
				for ia, a := range seating[ta] {
					for ib, b := range seating[tb] {
						ab := pairScore(history, a, b)
						before := fit[a][ta].add(fit[b][tb])
						after := fit[a][tb].sub(ab).add(fit[b][ta].sub(ab))

						delta := after.sub(before)
						if !delta.less(score{}) {
							continue
						}
						if !found || delta.less(best.delta) {
							best = swapMove{tableA: ta, seatA: ia, tableB: tb, seatB: ib, delta: delta}
							found = true
						}
					}
				}
			}
		}

		if !found {
			return
		}

		a := seating[best.tableA][best.seatA]
		b := seating[best.tableB][best.seatB]
		seating[best.tableA][best.seatA] = b
		seating[best.tableB][best.seatB] = a

		for p := range roster {
			pa := pairScore(history, p, a)
			pb := pairScore(history, p, b)
			fit[p][best.tableA] = fit[p][best.tableA].sub(pa).add(pb)
			fit[p][best.tableB] = fit[p][best.tableB].sub(pb).add(pa)
		}
	}
}
