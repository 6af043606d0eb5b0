/* super8.go
 * Contains the match model and the fixture generator for the Super 8 doubles format
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"fmt"
)

// PlayersPerSuper8 is the number of players in a Super 8 group
const PlayersPerSuper8 = 4

var (
	// ErrInvalidParticipantCount is returned when the generator does not receive exactly four players
	ErrInvalidParticipantCount = errors.New("invalid participant count")
	// ErrInvalidParticipant is returned for empty or repeated player names
	ErrInvalidParticipant = errors.New("invalid participant")
)

// Team is an ordered pair of player names
type Team [2]string

// Has reports whether the player is one of the two team members
func (t Team) Has(player string) bool {
	return t[0] == player || t[1] == player
}

// Match is one fixture between two doubles teams. Scores are nil until reported and are only
// meaningful when Completed is true.
type Match struct {
	Number    int
	Team1     Team
	Team2     Team
	Score1    *int
	Score2    *int
	Completed bool
}

// SetScore records both scores and marks the match completed
func (m *Match) SetScore(score1, score2 int) {
	m.Score1 = &score1
	m.Score2 = &score2
	m.Completed = true
}

// countable reports whether the match should contribute to the standings. Anything that is not a
// completed match with two non-negative scores and two disjoint, fully populated teams is treated
// as not completed.
func (m Match) countable() bool {
	if !m.Completed || m.Score1 == nil || m.Score2 == nil {
		return false
	}
	if *m.Score1 < 0 || *m.Score2 < 0 {
		return false
	}
	for _, player := range []string{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]} {
		if player == "" {
			return false
		}
	}
	if m.Team1[0] == m.Team1[1] || m.Team2[0] == m.Team2[1] {
		return false
	}
	return !m.Team2.Has(m.Team1[0]) && !m.Team2.Has(m.Team1[1])
}

// GenerateMatches creates the three fixtures of a Super 8 group. Every way of splitting the four
// players into two teams of two is played exactly once.
// Preconditions: Receives exactly four distinct, non-empty player names
// Postconditions: Returns the matches in canonical order, with players[0] partnering players[1],
// players[2] and players[3] in turn, or an error if the input is invalid
func GenerateMatches(players []string) ([]Match, error) {
	if len(players) != PlayersPerSuper8 {
		return nil, fmt.Errorf("%w: super 8 needs %d players but got %d", ErrInvalidParticipantCount, PlayersPerSuper8, len(players))
	}

	seen := make(map[string]bool, len(players))
	for _, player := range players {
		if player == "" {
			return nil, fmt.Errorf("%w: empty player name", ErrInvalidParticipant)
		}
		if seen[player] {
			return nil, fmt.Errorf("%w: '%s' entered multiple times", ErrInvalidParticipant, player)
		}
		seen[player] = true
	}

	a, b, c, d := players[0], players[1], players[2], players[3]
	return []Match{
		{Number: 1, Team1: Team{a, b}, Team2: Team{c, d}},
		{Number: 2, Team1: Team{a, c}, Team2: Team{b, d}},
		{Number: 3, Team1: Team{a, d}, Team2: Team{b, c}},
	}, nil
}
