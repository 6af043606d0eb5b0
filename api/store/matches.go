/* matches.go
 * Contains the methods for interacting with the matches collection
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

// ErrMatchesCompleted is returned when the tournament's matches cannot be replaced because some already have a result
var ErrMatchesCompleted = errors.New("matches already completed")

// Function to store the generated matches of a tournament. Pending matches already stored for the tournament are
// replaced. If any stored match has a result, nothing is inserted and ErrMatchesCompleted is returned
// Preconditions: Receives slice of MatchRecord containing the data to be stored
// Postconditions: Replaces the tournament's matches in the db, returns error message if the operation was unsuccessful
func (s *Store) StoreMatches(matches []MatchRecord) error {
	if len(matches) == 0 {
		return fmt.Errorf("matches input has length 0, requires at least 1")
	}

	// Only matches without a result are cleared, so a score recorded concurrently is never thrown away
	filter := bson.M{"tournament": s.Tournament, "completed": bson.M{"$ne": true}}
	if _, err := s.Collections.Matches.DeleteMany(context.TODO(), filter); err != nil {
		return fmt.Errorf("failed to clear existing matches: %w", err)
	}

	remaining, err := s.Collections.Matches.CountDocuments(context.TODO(), bson.M{"tournament": s.Tournament})
	if err != nil {
		return fmt.Errorf("failed to count remaining matches: %w", err)
	}
	if remaining > 0 {
		return fmt.Errorf("%w: %d matches kept", ErrMatchesCompleted, remaining)
	}

	docs := make([]interface{}, 0, len(matches))
	for _, m := range matches {
		m.Tournament = s.Tournament
		docs = append(docs, m)
	}

	zap.L().Info("updating matches in db", zap.String("tournament", s.Tournament), zap.Int("count", len(docs)))
	if _, err := s.Collections.Matches.InsertMany(context.TODO(), docs); err != nil {
		return fmt.Errorf("failed to insert matches: %w", err)
	}
	return nil
}

// Function used to fetch the matches of a tournament from db
// Preconditions: Receives receiver pointer for Store which contains DB information such as database name, collection and tournament
// Postconditions: Returns the matches ordered by match number, or error message if the operation was unsuccessful
func (s *Store) GetMatches() ([]MatchRecord, error) {
	filter := bson.D{{Key: "tournament", Value: s.Tournament}}
	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})

	cursor, err := s.Collections.Matches.Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching matches from db: %w", err)
	}

	var results []MatchRecord
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of matches: %w", err)
	}
	return results, nil
}

// UpdateMatchScore records the result of a match and marks it completed.
// It returns mongo.ErrNoDocuments if no match in the tournament has the given ID.
func (s *Store) UpdateMatchScore(matchID string, score1 int, score2 int) error {
	filter := bson.M{"tournament": s.Tournament, "match_id": matchID}
	update := bson.M{
		"$set": bson.M{
			"score1":     score1,
			"score2":     score2,
			"completed":  true,
			"updated_at": time.Now(),
		},
	}

	res, err := s.Collections.Matches.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("failed to update match score: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	zap.L().Info("match score updated",
		zap.String("tournament", s.Tournament),
		zap.String("match_id", matchID),
		zap.Int("score1", score1),
		zap.Int("score2", score2))
	return nil
}
