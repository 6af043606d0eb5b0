/* webhooks.go
 * Contains the HTTP endpoints used by the scoring app and by anyone reading the standings
 * Authors: Zachary Bower
 */

package web

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"super8-bot/api/api"
	"super8-bot/api/store"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// secretHeader carries the shared secret the scoring app signs its webhooks with
const secretHeader = "X-Webhook-Secret"

// ScoreWebhookHandler HTTP endpoint that receives a finished match from the scoring app
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Records the score and refreshes the leaderboard, answering with a status code that tells the
// scoring app whether to retry
func (s *Server) ScoreWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, response{Status: "error", Error: "method not allowed"})
		return
	}
	if !s.authorized(r) {
		zap.L().Warn("rejected score webhook with a bad secret", zap.String("remote", r.RemoteAddr))
		writeJSON(w, http.StatusUnauthorized, response{Status: "error", Error: "unauthorized"})
		return
	}
	defer r.Body.Close()

	var event ScoreEvent
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&event); err != nil {
		zap.L().Warn("failed to decode webhook", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "invalid JSON body"})
		return
	}

	// Events for other tournaments are acknowledged so the sender does not retry them
	if event.Tournament != s.tournament {
		zap.L().Debug("ignoring webhook for other tournament", zap.String("tournament", event.Tournament))
		writeJSON(w, http.StatusOK, response{Status: "ignored"})
		return
	}
	if event.MatchID == "" || event.Score1 == nil || event.Score2 == nil {
		writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: "match_id, score1 and score2 are required"})
		return
	}

	zap.L().Info("score webhook",
		zap.String("tournament", event.Tournament),
		zap.String("match_id", event.MatchID),
		zap.Int("score1", *event.Score1),
		zap.Int("score2", *event.Score2))

	err := s.api.ReportScoreByID(event.MatchID, *event.Score1, *event.Score2)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, response{Status: "ok"})
	case errors.Is(err, api.ErrMatchNotFound):
		writeJSON(w, http.StatusNotFound, response{Status: "error", Error: err.Error()})
	case errors.Is(err, api.ErrInvalidScore):
		writeJSON(w, http.StatusBadRequest, response{Status: "error", Error: err.Error()})
	default:
		zap.L().Error("failed to record webhook score", zap.String("match_id", event.MatchID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{Status: "error", Error: "failed to record score"})
	}
}

// authorized reports whether the request carries the configured secret. Every request passes when no secret is set.
func (s *Server) authorized(r *http.Request) bool {
	if s.secret == "" {
		return true
	}
	got := r.Header.Get(secretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.secret)) == 1
}

// LeaderboardHandler returns the current standings as a JSON array
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, response{Status: "error", Error: "method not allowed"})
		return
	}

	entries, err := s.api.GetStandings()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeJSON(w, http.StatusOK, []store.LeaderboardEntry{})
			return
		}
		zap.L().Error("failed to get standings", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, response{Status: "error", Error: "failed to get standings"})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
