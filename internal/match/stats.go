package match

import (
	"sort"

	"github.com/juanedi/fifatum/internal/league"
)

// DefaultHistorySize caps the recent-match listings.
const DefaultHistorySize = 10

// DefaultRecentTeamCount caps the recent-team list.
const DefaultRecentTeamCount = 5

// byRecency returns a fresh slice ordered newest first. Equal timestamps
// fall back to match id ascending so output stays deterministic regardless
// of store iteration order.
func byRecency(matches []Match) []Match {
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// HistoryOf returns up to limit of the user's matches as wire DTOs, newest
// first. The input slice is never mutated.
func HistoryOf(matches []Match, userID uint, limit int, withDate bool) ([]MatchJSON, error) {
	sorted := byRecency(matches)
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	history := make([]MatchJSON, 0, len(sorted))
	for i := range sorted {
		// Participant check only; the wire shape keeps storage side order.
		if _, err := sorted[i].Project(userID); err != nil {
			return nil, err
		}
		history = append(history, sorted[i].APIJSON(withDate))
	}
	return history, nil
}

// VersusOf folds the user's matches into one aggregate per rival. Groups
// appear in the order each rival is first encountered in the input, so the
// grouping is an ordered-insertion map, not an unordered map re-sorted.
// The rival's display name is the one seen on that first encounter.
func VersusOf(matches []Match, userID uint) ([]VersusJSON, error) {
	aggregates := make([]VersusJSON, 0)
	index := make(map[uint]int) // rival user id -> position in aggregates

	for i := range matches {
		p, err := matches[i].Project(userID)
		if err != nil {
			return nil, err
		}

		pos, seen := index[p.Rival.User.ID]
		if !seen {
			pos = len(aggregates)
			index[p.Rival.User.ID] = pos
			aggregates = append(aggregates, VersusJSON{RivalName: p.Rival.User.Name})
		}

		agg := &aggregates[pos]
		switch {
		case p.Own.Goals > p.Rival.Goals:
			agg.Won++
		case p.Own.Goals == p.Rival.Goals:
			agg.Tied++
		default:
			agg.Lost++
		}
		agg.GoalsMade += p.Own.Goals
		agg.GoalsReceived += p.Rival.Goals
	}

	return aggregates, nil
}

// RecentTeamsOf returns the user's distinct fielded teams, most recently
// used first, capped at count. No padding when history is short.
func RecentTeamsOf(matches []Match, userID uint, count int) ([]league.TeamJSON, error) {
	sorted := byRecency(matches)

	teams := make([]league.TeamJSON, 0, count)
	seen := make(map[uint]bool)

	for i := range sorted {
		p, err := sorted[i].Project(userID)
		if err != nil {
			return nil, err
		}
		if seen[p.Own.Team.ID] {
			continue
		}
		seen[p.Own.Team.ID] = true
		teams = append(teams, p.Own.Team.APIJSON())
		if len(teams) == count {
			break
		}
	}
	return teams, nil
}
