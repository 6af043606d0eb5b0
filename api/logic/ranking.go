/* ranking.go
 * Contains the logic for turning completed matches into per player standings
 * Authors: Zachary Bower
 */

package logic

import (
	"slices"
	"strings"
)

// RankingEntry is the per player summary derived from completed matches
type RankingEntry struct {
	Player        string
	Wins          int
	Losses        int
	PointsFor     int
	PointsAgainst int
	Differential  int
}

// CalculateIndividualRanking reduces a set of matches into one RankingEntry per player.
// Preconditions: Receives a slice of matches, completed and pending matches may be mixed
// Postconditions: Returns one entry for every player named in any match, in order of first appearance.
// Only completed matches with valid scores count. The team with the strictly higher score credits a win
// to both members and a loss to both opponents. A draw credits no win or loss, only points.
func CalculateIndividualRanking(matches []Match) []RankingEntry {
	var entries []RankingEntry
	index := make(map[string]int)

	// Register every player first so that players with only pending matches still appear
	for _, m := range matches {
		for _, player := range []string{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]} {
			if player == "" {
				continue
			}
			if _, ok := index[player]; !ok {
				index[player] = len(entries)
				entries = append(entries, RankingEntry{Player: player})
			}
		}
	}

	for _, m := range matches {
		if !m.countable() {
			continue
		}
		score1, score2 := *m.Score1, *m.Score2

		credit := func(team Team, scored, conceded int) {
			for _, player := range team {
				e := &entries[index[player]]
				e.PointsFor += scored
				e.PointsAgainst += conceded
				e.Differential = e.PointsFor - e.PointsAgainst
				switch {
				case scored > conceded:
					e.Wins++
				case scored < conceded:
					e.Losses++
				}
			}
		}
		credit(m.Team1, score1, score2)
		credit(m.Team2, score2, score1)
	}

	return entries
}

// SortStandings orders ranking entries for display: most wins first, then best differential, then most
// points scored, then player name. The input slice is left untouched.
func SortStandings(entries []RankingEntry) []RankingEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b RankingEntry) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		if a.Differential != b.Differential {
			return b.Differential - a.Differential
		}
		if a.PointsFor != b.PointsFor {
			return b.PointsFor - a.PointsFor
		}
		return strings.Compare(a.Player, b.Player)
	})
	return sorted
}
