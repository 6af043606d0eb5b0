/* participants.go
 * Contains the methods for interacting with the registrations collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// RegisterParticipant stores a registration for the store's tournament
// Preconditions: Receives Registration containing the player and the Discord user that registered them
// Postconditions: Inserts the registration, or returns an error if the player is already registered or the write fails
func (s *Store) RegisterParticipant(registration Registration) error {
	if registration.Player == "" {
		return fmt.Errorf("player name is required")
	}
	filter := bson.M{"tournament": s.Tournament, "player": registration.Player}

	// Attempt to find an existing document
	var existing Registration
	err := s.Collections.Registrations.FindOne(context.TODO(), filter).Decode(&existing)
	if err == nil {
		return fmt.Errorf("'%s' is already registered", registration.Player)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("lookup for existing registration failed: %w", err)
	}

	registration.Tournament = s.Tournament
	if registration.RegisteredAt.IsZero() {
		registration.RegisteredAt = time.Now()
	}

	zap.L().Info("registering participant",
		zap.String("tournament", s.Tournament),
		zap.String("player", registration.Player))
	if _, err := s.Collections.Registrations.InsertOne(context.TODO(), registration); err != nil {
		// Another registration for the same player won the race past the lookup above
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("'%s' is already registered", registration.Player)
		}
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	return nil
}

// GetParticipants does DB lookup and gets every registration for the tournament, earliest first.
// It returns slice of Registrations or an error if it occurs.
func (s *Store) GetParticipants() ([]Registration, error) {
	filter := bson.D{{Key: "tournament", Value: s.Tournament}}
	opts := options.Find().SetSort(bson.D{{Key: "registered_at", Value: 1}})

	cursor, err := s.Collections.Registrations.Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching registrations from db: %w", err)
	}

	// Unpack the cursor into a slice
	var results []Registration
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of registrations: %w", err)
	}
	return results, nil
}

// RemoveParticipant deletes a player's registration.
// It returns mongo.ErrNoDocuments if the player was not registered.
func (s *Store) RemoveParticipant(player string) error {
	res, err := s.Collections.Registrations.DeleteOne(context.TODO(), bson.M{"tournament": s.Tournament, "player": player})
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
