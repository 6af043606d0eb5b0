/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"strings"
	"super8-bot/api/store"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	mu sync.Mutex

	// Storage for mock data
	Registrations []store.Registration
	Matches       []store.MatchRecord
	Leaderboard   *store.Leaderboard

	// Error injection for testing error paths
	RegisterParticipantError    error
	GetParticipantsError        error
	RemoveParticipantError      error
	StoreMatchesError           error
	GetMatchesError             error
	UpdateMatchScoreError       error
	StoreLeaderboardError       error
	FetchLeaderboardFromDBError error

	// ReadDelay is slept after every read, widening the gap between a caller's read and its next write
	ReadDelay time.Duration

	// Store fields needed for compatibility
	Tournament string
	Database   interface{ Name() string }
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// NewMockStore creates a new MockStore with default values
func NewMockStore(tournament string) *MockStore {
	return &MockStore{
		Tournament: tournament,
		Database:   &mockDatabase{name: "test_db"},
	}
}

// RegisterParticipant mock implementation
func (m *MockStore) RegisterParticipant(registration store.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RegisterParticipantError != nil {
		return m.RegisterParticipantError
	}
	for _, r := range m.Registrations {
		if r.Player == registration.Player {
			return fmt.Errorf("'%s' is already registered", registration.Player)
		}
	}
	registration.Tournament = m.Tournament
	m.Registrations = append(m.Registrations, registration)
	return nil
}

// GetParticipants mock implementation
func (m *MockStore) GetParticipants() ([]store.Registration, error) {
	m.mu.Lock()
	if m.GetParticipantsError != nil {
		m.mu.Unlock()
		return nil, m.GetParticipantsError
	}
	registrations := append([]store.Registration(nil), m.Registrations...)
	delay := m.ReadDelay
	m.mu.Unlock()

	time.Sleep(delay)
	return registrations, nil
}

// RemoveParticipant mock implementation
func (m *MockStore) RemoveParticipant(player string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveParticipantError != nil {
		return m.RemoveParticipantError
	}
	for i, r := range m.Registrations {
		if r.Player == player {
			m.Registrations = append(m.Registrations[:i], m.Registrations[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// StoreMatches mock implementation
func (m *MockStore) StoreMatches(matches []store.MatchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreMatchesError != nil {
		return m.StoreMatchesError
	}
	if len(matches) == 0 {
		return fmt.Errorf("StoreMatches requires at least 1 match")
	}
	for _, existing := range m.Matches {
		if existing.Completed {
			return fmt.Errorf("%w: match %d", store.ErrMatchesCompleted, existing.Number)
		}
	}
	m.Matches = append([]store.MatchRecord(nil), matches...)
	return nil
}

// GetMatches mock implementation
func (m *MockStore) GetMatches() ([]store.MatchRecord, error) {
	m.mu.Lock()
	if m.GetMatchesError != nil {
		m.mu.Unlock()
		return nil, m.GetMatchesError
	}
	matches := append([]store.MatchRecord(nil), m.Matches...)
	delay := m.ReadDelay
	m.mu.Unlock()

	time.Sleep(delay)
	return matches, nil
}

// UpdateMatchScore mock implementation
func (m *MockStore) UpdateMatchScore(matchID string, score1 int, score2 int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateMatchScoreError != nil {
		return m.UpdateMatchScoreError
	}
	for i := range m.Matches {
		if m.Matches[i].MatchID == matchID {
			s1, s2 := score1, score2
			m.Matches[i].Score1 = &s1
			m.Matches[i].Score2 = &s2
			m.Matches[i].Completed = true
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// StoreLeaderboard mock implementation
func (m *MockStore) StoreLeaderboard(leaderboard store.Leaderboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreLeaderboardError != nil {
		return m.StoreLeaderboardError
	}
	if len(leaderboard.Entries) == 0 {
		return fmt.Errorf("leaderboard is empty")
	}
	m.Leaderboard = &leaderboard
	return nil
}

// FetchLeaderboardFromDB mock implementation
func (m *MockStore) FetchLeaderboardFromDB() ([]store.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchLeaderboardFromDBError != nil {
		return nil, m.FetchLeaderboardFromDBError
	}
	if m.Leaderboard == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.Leaderboard.Entries, nil
}

// Helper methods for setting up test scenarios

// SetPlayers registers the given players directly, bypassing the API checks
func (m *MockStore) SetPlayers(players ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Registrations = nil
	for _, p := range players {
		m.Registrations = append(m.Registrations, store.Registration{
			Tournament: m.Tournament,
			UserID:     "id-" + strings.ToLower(p),
			Username:   strings.ToLower(p),
			Player:     p,
		})
	}
}

// SetMatches replaces the stored matches
func (m *MockStore) SetMatches(matches []store.MatchRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Matches = matches
}

// Implement getter methods for StoreInterface
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return m.Database
}

func (m *MockStore) GetTournament() string {
	return m.Tournament
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}
