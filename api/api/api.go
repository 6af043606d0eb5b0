/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, functions should
 * only be called from this file, not the sub packages for logic and store.
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"fmt"
	"strings"
	"super8-bot/api/logic"
	"super8-bot/api/shared"
	"super8-bot/api/store"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// API provides methods for interacting with the tournament data layer
type API struct {
	Store store.Interface

	// mu serialises the read-check-write operations. discordgo runs every message handler on its own goroutine.
	mu sync.Mutex
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, tournament string) (*API, error) {
	if dbName == "" || tournament == "" {
		return nil, fmt.Errorf("dbName and tournament are required")
	}

	s, err := store.NewStore(dbName, mongoURI, tournament)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store: s,
	}, nil
}

// RegisterPlayer signs a player up for the tournament.
// It receives the Discord user issuing the command and the player name, which defaults to the username when empty.
// It returns ErrTournamentFull once four players are registered, or an error if the name is taken or the write fails.
func (a *API) RegisterPlayer(user shared.User, player string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	player = cleanName(player)
	if player == "" {
		player = user.Username
	}
	if player == "" {
		return fmt.Errorf("a player name is required")
	}

	registrations, err := a.Store.GetParticipants()
	if err != nil {
		return err
	}
	for _, r := range registrations {
		if strings.EqualFold(r.Player, player) {
			return fmt.Errorf("'%s' is already registered", r.Player)
		}
	}
	if len(registrations) >= logic.PlayersPerSuper8 {
		return fmt.Errorf("%w: %d players already registered", ErrTournamentFull, len(registrations))
	}

	return a.Store.RegisterParticipant(store.Registration{
		UserID:       user.UserID,
		Username:     user.Username,
		Player:       player,
		RegisteredAt: time.Now(),
	})
}

// UnregisterPlayer removes a player from the tournament. Not allowed once matches have been generated,
// since the fixtures depend on the four registered players.
// A typed name may be abbreviated as long as it identifies one player. Without a name the caller's username must
// match a registered player exactly.
func (a *API) UnregisterPlayer(user shared.User, player string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	player = cleanName(player)
	typed := player != ""
	if !typed {
		player = user.Username
	}

	matches, err := a.Store.GetMatches()
	if err != nil {
		return err
	}
	if len(matches) > 0 {
		return fmt.Errorf("matches have already been generated, '%s' cannot leave", player)
	}

	registered, err := a.GetPlayers()
	if err != nil {
		return err
	}
	name, ok := logic.ResolvePlayerName(player, registered, typed)
	if !ok {
		return fmt.Errorf("'%s' is not registered", player)
	}
	return a.Store.RemoveParticipant(name)
}

// GetPlayers returns the registered player names in registration order
func (a *API) GetPlayers() ([]string, error) {
	registrations, err := a.Store.GetParticipants()
	if err != nil {
		return nil, err
	}
	players := make([]string, 0, len(registrations))
	for _, r := range registrations {
		players = append(players, r.Player)
	}
	return players, nil
}

// GenerateMatches creates the Super 8 fixtures for the registered players and stores them.
// Regenerating is allowed until the first result is reported.
// It returns the formatted fixture list, or an error if it occurs.
func (a *API) GenerateMatches() ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	existing, err := a.Store.GetMatches()
	if err != nil {
		return nil, err
	}
	for _, m := range existing {
		if m.Completed {
			return nil, fmt.Errorf("%w: fixtures can no longer be regenerated", ErrMatchesStarted)
		}
	}

	players, err := a.GetPlayers()
	if err != nil {
		return nil, err
	}

	matches, err := logic.GenerateMatches(players)
	if err != nil {
		return nil, err
	}

	tournament := a.Store.GetTournament()
	records := make([]store.MatchRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, store.FromMatch(tournament, uuid.NewString(), m))
	}

	if err := a.Store.StoreMatches(records); err != nil {
		if errors.Is(err, store.ErrMatchesCompleted) {
			return nil, fmt.Errorf("%w: fixtures can no longer be regenerated", ErrMatchesStarted)
		}
		return nil, err
	}
	zap.L().Info("matches generated", zap.String("tournament", tournament), zap.Strings("players", players))

	return formatMatches(records), nil
}

// GetMatches returns the fixtures of the tournament with their scores, formatted for display
func (a *API) GetMatches() ([]string, error) {
	records, err := a.Store.GetMatches()
	if err != nil {
		return nil, err
	}
	return formatMatches(records), nil
}

// ReportScore records the result of a match by its number in the fixture list, then refreshes the leaderboard.
func (a *API) ReportScore(number int, score1 int, score2 int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	records, err := a.Store.GetMatches()
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.Number == number {
			return a.reportScoreByID(r.MatchID, score1, score2)
		}
	}
	return fmt.Errorf("%w: no match number %d", ErrMatchNotFound, number)
}

// ReportScoreByID records the result of a match by its stored ID, then refreshes the leaderboard.
// Used by the scoring webhook.
func (a *API) ReportScoreByID(matchID string, score1 int, score2 int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reportScoreByID(matchID, score1, score2)
}

// reportScoreByID does the work of ReportScoreByID. Callers hold a.mu.
func (a *API) reportScoreByID(matchID string, score1 int, score2 int) error {
	if score1 < 0 || score2 < 0 {
		return fmt.Errorf("%w: scores must not be negative, got %d-%d", ErrInvalidScore, score1, score2)
	}

	err := a.Store.UpdateMatchScore(matchID, score1, score2)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
		}
		return err
	}

	return a.generateLeaderboard()
}

// GenerateLeaderboard contains the logic required to generate a leaderboard.
// Preconditions: Receives receiver pointer to api
// Postconditions: Calculates standings from the stored matches, updates them in the DB and returns nil, or returns an error if it occurs
func (a *API) GenerateLeaderboard() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generateLeaderboard()
}

// generateLeaderboard does the work of GenerateLeaderboard. Callers hold a.mu.
func (a *API) generateLeaderboard() error {
	records, err := a.Store.GetMatches()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no matches have been generated")
	}

	ranking := logic.CalculateIndividualRanking(store.ToMatches(records))
	leaderboard := store.Leaderboard{
		Tournament: a.Store.GetTournament(),
		UpdatedAt:  time.Now(),
		Entries:    store.FromRankingEntries(logic.SortStandings(ranking)),
	}

	return a.Store.StoreLeaderboard(leaderboard)
}

// GetStandings returns the stored leaderboard rows in display order
func (a *API) GetStandings() ([]store.LeaderboardEntry, error) {
	entries, err := a.Store.FetchLeaderboardFromDB()
	if err != nil {
		return nil, err
	}

	ranking := make([]logic.RankingEntry, 0, len(entries))
	for _, e := range entries {
		ranking = append(ranking, logic.RankingEntry(e))
	}
	return store.FromRankingEntries(logic.SortStandings(ranking)), nil
}

// GetLeaderboard fetches the leaderboard from the db and generates a response string
// Preconditions: Receives receiver pointer to api
// Postconditions: Returns a string with the standings of the tournament
func (a *API) GetLeaderboard() (string, error) {
	entries, err := a.GetStandings()
	if err != nil {
		return "", err
	}

	var response strings.Builder
	response.WriteString("Current standings:\n")
	for i, e := range entries {
		response.WriteString(fmt.Sprintf("%d. %s, %d wins, %d losses, %+d\n", i+1, e.Player, e.Wins, e.Losses, e.Differential))
	}
	return response.String(), nil
}

// GetTournamentInfo gets the following information about the tournament: Tournament Name, Players, Matches played.
// It returns a string slice with the contents attribute : value containing the information listed above.
func (a *API) GetTournamentInfo() ([]string, error) {
	players, err := a.GetPlayers()
	if err != nil {
		return nil, err
	}
	records, err := a.Store.GetMatches()
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, r := range records {
		if r.Completed {
			completed++
		}
	}

	var values []string
	values = append(values, fmt.Sprintf("Tournament: %s", a.Store.GetTournament()))
	values = append(values, "Format: Super 8")
	values = append(values, fmt.Sprintf("Players registered: %d/%d", len(players), logic.PlayersPerSuper8))
	if len(records) == 0 {
		values = append(values, "Matches: not generated")
	} else {
		values = append(values, fmt.Sprintf("Matches played: %d/%d", completed, len(records)))
	}
	return values, nil
}

// formatMatches is a helper function that renders one line per match, e.g. "1. A + B vs C + D: 6-4"
func formatMatches(records []store.MatchRecord) []string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		result := "pending"
		if r.Completed && r.Score1 != nil && r.Score2 != nil {
			result = fmt.Sprintf("%d-%d", *r.Score1, *r.Score2)
		}
		lines = append(lines, fmt.Sprintf("%d. %s vs %s: %s\n", r.Number, strings.Join(r.Team1, " + "), strings.Join(r.Team2, " + "), result))
	}
	return lines
}

// cleanName strips the quotes chat clients add around names
func cleanName(name string) string {
	name = strings.ReplaceAll(name, "\"", "")
	name = strings.ReplaceAll(name, "“", "")
	name = strings.ReplaceAll(name, "”", "")
	return strings.TrimSpace(name)
}
