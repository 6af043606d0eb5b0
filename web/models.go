/* models.go
 * Contains the configuration and request types for the web server
 * Authors: Zachary Bower
 */

package web

import (
	"super8-bot/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
	// Tournament is the name score webhooks must carry to be applied. Defaults to the API's tournament.
	Tournament string
	// Secret, when set, must be sent in the X-Webhook-Secret header of every score webhook
	Secret string
}

// Server is the HTTP server that handles webhook requests
type Server struct {
	api        *api.API
	tournament string
	secret     string
}

// ScoreEvent is the body the scoring app posts when a match finishes
type ScoreEvent struct {
	Tournament string `json:"tournament"`
	MatchID    string `json:"match_id"`
	Score1     *int   `json:"score1"`
	Score2     *int   `json:"score2"`
}

// response is the JSON body returned by every endpoint on failure or acknowledgement
type response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
