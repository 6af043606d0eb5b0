/* routes.go
 * Contains the construction of the server and its route table
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// NewServer creates a Server from the given configuration
func NewServer(cfg Config) *Server {
	tournament := cfg.Tournament
	if tournament == "" && cfg.API != nil && cfg.API.Store != nil {
		tournament = cfg.API.Store.GetTournament()
	}
	return &Server{
		api:        cfg.API,
		tournament: tournament,
		secret:     cfg.Secret,
	}
}

// routes binds handler methods that have access to s.api
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/webhooks/score", s.ScoreWebhookHandler)
	mux.HandleFunc("/leaderboard", s.LeaderboardHandler)
	return mux
}

// writeJSON is a helper function that writes a status code and JSON body
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("failed to write response", zap.Error(err))
	}
}
