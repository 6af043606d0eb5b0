/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into three files:
 * participants, matches and leaderboard. Each of these files contain methods for interacting with that
 * part of the database
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Tournament  string
	Collections struct {
		Registrations *mongo.Collection
		Matches       *mongo.Collection
		Leaderboard   *mongo.Collection
	}
}

// Function for initialising Store. Opens the db connection and binds the collections used by a tournament
// Preconditions: Receives strings containing the following: dbName, mongoURI and tournament
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string, tournament string) (*Store, error) {
	if tournament == "" {
		return nil, fmt.Errorf("tournament cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:     client,
		Database:   db,
		Tournament: tournament,
	}
	s.Collections.Registrations = db.Collection("registrations")
	s.Collections.Matches = db.Collection("matches")
	s.Collections.Leaderboard = db.Collection("leaderboard")

	if err := s.EnsureIndexes(); err != nil {
		return nil, err
	}
	return s, nil
}

// EnsureIndexes creates the unique indexes that back the one registration per player and one document per match
// rules. Creating an index that already exists is a no-op, so this runs on every start.
func (s *Store) EnsureIndexes() error {
	_, err := s.Collections.Registrations.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "tournament", Value: 1}, {Key: "player", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("tournament_player_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create registrations index: %w", err)
	}

	_, err = s.Collections.Matches.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "tournament", Value: 1}, {Key: "match_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("tournament_match_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create matches index: %w", err)
	}
	return nil
}
