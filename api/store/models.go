/* models.go
 * This file contain the structs and helper functions that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"fmt"
	"super8-bot/api/logic"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration is a player signed up for a tournament
type Registration struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Tournament   string             `bson:"tournament,omitempty"`
	UserID       string             `bson:"userid,omitempty"`
	Username     string             `bson:"username,omitempty"`
	Player       string             `bson:"player,omitempty"`
	RegisteredAt time.Time          `bson:"registered_at,omitempty"`
}

// MatchRecord represents the way a match is stored in the DB. Scores are pointers so a missing score
// stays distinguishable from a zero score.
type MatchRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Tournament string             `bson:"tournament,omitempty"`
	MatchID    string             `bson:"match_id,omitempty"`
	Number     int                `bson:"number,omitempty"`
	Team1      []string           `bson:"team1,omitempty"`
	Team2      []string           `bson:"team2,omitempty"`
	Score1     *int               `bson:"score1,omitempty"`
	Score2     *int               `bson:"score2,omitempty"`
	Completed  bool               `bson:"completed"`
	UpdatedAt  time.Time          `bson:"updated_at,omitempty"`
}

// Leaderboard is the cached standings for a tournament
type Leaderboard struct {
	Tournament string             `bson:"tournament,omitempty"`
	UpdatedAt  time.Time          `bson:"updated_at,omitempty"`
	Entries    []LeaderboardEntry `bson:"entries"`
}

// LeaderboardEntry is one player's row on the leaderboard
type LeaderboardEntry struct {
	Player        string `bson:"player" json:"player"`
	Wins          int    `bson:"wins" json:"wins"`
	Losses        int    `bson:"losses" json:"losses"`
	PointsFor     int    `bson:"points_for" json:"points_for"`
	PointsAgainst int    `bson:"points_against" json:"points_against"`
	Differential  int    `bson:"differential" json:"differential"`
}

// Function to convert a stored match into the engine's Match type. Used when getting data from the db
// Preconditions: none
// Postconditions: Returns a logic.Match or error if a team does not hold exactly two players
func ToMatch(r MatchRecord) (logic.Match, error) {
	if len(r.Team1) != 2 || len(r.Team2) != 2 {
		return logic.Match{}, fmt.Errorf("match %s does not have two players per team", r.MatchID)
	}
	return logic.Match{
		Number:    r.Number,
		Team1:     logic.Team{r.Team1[0], r.Team1[1]},
		Team2:     logic.Team{r.Team2[0], r.Team2[1]},
		Score1:    r.Score1,
		Score2:    r.Score2,
		Completed: r.Completed,
	}, nil
}

// FromMatch builds the record to store for a generated match
func FromMatch(tournament string, matchID string, m logic.Match) MatchRecord {
	return MatchRecord{
		Tournament: tournament,
		MatchID:    matchID,
		Number:     m.Number,
		Team1:      []string{m.Team1[0], m.Team1[1]},
		Team2:      []string{m.Team2[0], m.Team2[1]},
		Score1:     m.Score1,
		Score2:     m.Score2,
		Completed:  m.Completed,
		UpdatedAt:  time.Now(),
	}
}

// ToMatches converts all stored matches. A record with a broken team layout is skipped rather than failing
// the whole set, since the ranking treats malformed matches as not played anyway.
func ToMatches(records []MatchRecord) []logic.Match {
	matches := make([]logic.Match, 0, len(records))
	for _, r := range records {
		m, err := ToMatch(r)
		if err != nil {
			continue
		}
		matches = append(matches, m)
	}
	return matches
}

// FromRankingEntries converts engine output into leaderboard rows, keeping the order given
func FromRankingEntries(entries []logic.RankingEntry) []LeaderboardEntry {
	rows := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, LeaderboardEntry{
			Player:        e.Player,
			Wins:          e.Wins,
			Losses:        e.Losses,
			PointsFor:     e.PointsFor,
			PointsAgainst: e.PointsAgainst,
			Differential:  e.Differential,
		})
	}
	return rows
}
