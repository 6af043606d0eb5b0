/* server_test.go
 * Contains unit tests for routes.go and models.go
 * Authors: Zachary Bower
 */

package web

import (
	"net/http"
	"net/http/httptest"
	"super8-bot/api/api"
	"testing"

	"github.com/stretchr/testify/assert"
)

// region Config tests

func TestConfig_DefaultValues(t *testing.T) {
	cfg := Config{
		Addr: ":8080",
		API:  nil,
	}

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Nil(t, cfg.API)
	assert.Empty(t, cfg.Tournament)
}

// endregion

// region NewServer tests

func TestNewServer_TournamentFromConfig(t *testing.T) {
	a := &api.API{Store: api.NewMockStore("summer_cup")}

	s := NewServer(Config{API: a, Tournament: "winter_cup"})

	assert.Equal(t, "winter_cup", s.tournament)
	assert.Same(t, a, s.api)
}

func TestNewServer_SecretFromConfig(t *testing.T) {
	s := NewServer(Config{Secret: "s3cret"})

	assert.Equal(t, "s3cret", s.secret)
}

func TestNewServer_TournamentFromStore(t *testing.T) {
	s := NewServer(Config{API: &api.API{Store: api.NewMockStore("summer_cup")}})

	assert.Equal(t, "summer_cup", s.tournament)
}

func TestNewServer_NilAPI(t *testing.T) {
	s := NewServer(Config{})

	assert.NotNil(t, s)
	assert.Nil(t, s.api)
	assert.Empty(t, s.tournament)
}

// endregion

// region routes tests

func TestRoutes_UnknownPath(t *testing.T) {
	s := NewServer(Config{API: &api.API{Store: api.NewMockStore("summer_cup")}})
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/predictions", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_Leaderboard(t *testing.T) {
	s := NewServer(Config{API: &api.API{Store: api.NewMockStore("summer_cup")}})
	rec := httptest.NewRecorder()

	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

// endregion

// Note: Start() function cannot be easily unit tested as it blocks on ListenAndServe
// Integration tests would be more appropriate for testing the full server startup
