/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	RegisterParticipant(registration Registration) error
	GetParticipants() ([]Registration, error)
	RemoveParticipant(player string) error
	StoreMatches(matches []MatchRecord) error
	GetMatches() ([]MatchRecord, error)
	UpdateMatchScore(matchID string, score1 int, score2 int) error
	StoreLeaderboard(leaderboard Leaderboard) error
	FetchLeaderboardFromDB() ([]LeaderboardEntry, error)

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetTournament() string
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetTournament returns the tournament the store is scoped to
func (s *Store) GetTournament() string {
	return s.Tournament
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
