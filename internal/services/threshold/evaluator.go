package threshold

import (
	"sort"

	"github.com/silverspringsaints/playtracker/internal/model"
)

// MinimumPlays is the participation target used to flag under-played players
const MinimumPlays = 8

// Evaluate compares per-player counters before and after a single recorded
// play and returns the milestone events that newly became true.
//
// It is pure and stateless: evaluating the same transition twice returns the
// same events and touches nothing. Individual events come first, in ascending
// player-id order, followed by the team event. Plays increment totals by
// exactly 1, so the individual milestone is precisely the transition from
// MinimumPlays-1 to MinimumPlays; a total jumping past the minimum is
// impossible and never fires.
func Evaluate(before, after map[model.PlayerID]model.PlayerCounters, active []model.PlayerID) []model.Event {
	ordered := append([]model.PlayerID(nil), active...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	var events []model.Event
	for _, id := range ordered {
		if before[id].Total == MinimumPlays-1 && after[id].Total == MinimumPlays {
			events = append(events, model.Event{
				Type:     model.EventPlayerReachedMinimum,
				PlayerID: id,
				Total:    after[id].Total,
			})
		}
	}

	// Edge-triggered: totals are monotonic, so "was false, now true" can only
	// happen once per session without any extra state.
	if allReached(after, active) && !allReached(before, active) {
		events = append(events, model.Event{
			Type: model.EventAllPlayersReachedMinimum,
		})
	}

	return events
}

// UnderMinimum returns the active players whose total is below the minimum,
// including players with no recorded plays.
func UnderMinimum(stats map[model.PlayerID]model.PlayerCounters, active []model.PlayerID) []model.PlayerID {
	var under []model.PlayerID
	for _, id := range active {
		if stats[id].Total < MinimumPlays {
			under = append(under, id)
		}
	}
	return under
}

// allReached checks the defined active set, not whatever counters happen to
// exist, so players with zero plays are correctly included.
func allReached(stats map[model.PlayerID]model.PlayerCounters, active []model.PlayerID) bool {
	for _, id := range active {
		if stats[id].Total < MinimumPlays {
			return false
		}
	}
	return true
}
