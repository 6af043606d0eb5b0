/* test_helpers.go
 * Contains test helper functions for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"super8-bot/api/logic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// NewMockStore creates a Store bound to the given collection for every purpose. Used with the
// mtest mock deployment, where one collection answers every call.
func NewMockStore(client *mongo.Client, db *mongo.Database, coll *mongo.Collection) *Store {
	s := &Store{
		Client:     client,
		Database:   db,
		Tournament: "test_tournament",
	}
	s.Collections.Registrations = coll
	s.Collections.Matches = coll
	s.Collections.Leaderboard = coll
	return s
}

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore("test_super8", mongoURI, "test_tournament")
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSampleMatches creates the stored form of a generated group for A, B, C and D.
func CreateSampleMatches() []MatchRecord {
	matches, _ := logic.GenerateMatches([]string{"A", "B", "C", "D"})
	records := make([]MatchRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, FromMatch("test_tournament", fmt.Sprintf("match-%d", m.Number), m))
	}
	return records
}

// CreateSampleRegistration creates sample Registration data for testing.
func CreateSampleRegistration(userID, username, player string) Registration {
	return Registration{
		UserID:       userID,
		Username:     username,
		Player:       player,
		RegisteredAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}
