/* input_processing_test.go
 * Contains unit tests for input_processing.go functions
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var registeredPlayers = []string{"Ana", "Bia", "Carla", "Duda"}

// TestCheckPlayerNames_ExactMatches tests exact player name matching
func TestCheckPlayerNames_ExactMatches(t *testing.T) {
	matched, invalid := CheckPlayerNames([]string{"Ana", "Carla"}, registeredPlayers)

	assert.Equal(t, []string{"Ana", "Carla"}, matched)
	assert.Empty(t, invalid)
}

// TestCheckPlayerNames_CaseInsensitive tests case-insensitive matching
func TestCheckPlayerNames_CaseInsensitive(t *testing.T) {
	matched, invalid := CheckPlayerNames([]string{"ana", "BIA", "dUdA"}, registeredPlayers)

	assert.Equal(t, []string{"Ana", "Bia", "Duda"}, matched)
	assert.Empty(t, invalid)
}

// TestCheckPlayerNames_FuzzyMatching tests partial names
func TestCheckPlayerNames_FuzzyMatching(t *testing.T) {
	matched, invalid := CheckPlayerNames([]string{"carl", "dud"}, registeredPlayers)

	assert.Equal(t, []string{"Carla", "Duda"}, matched)
	assert.Empty(t, invalid)
}

// TestCheckPlayerNames_ExactBeatsFuzzy tests that an exact hit is preferred over a longer fuzzy hit
func TestCheckPlayerNames_ExactBeatsFuzzy(t *testing.T) {
	matched, invalid := CheckPlayerNames([]string{"ana"}, []string{"Ana Paula", "Ana"})

	assert.Equal(t, []string{"Ana"}, matched)
	assert.Empty(t, invalid)
}

// TestCheckPlayerNames_InvalidNames tests handling of names that match nobody
func TestCheckPlayerNames_InvalidNames(t *testing.T) {
	matched, invalid := CheckPlayerNames([]string{"Ana", "Zed", "Bia", "Xavier"}, registeredPlayers)

	assert.Equal(t, []string{"Ana", "Bia"}, matched)
	assert.Equal(t, []string{"Zed", "Xavier"}, invalid)
}

// TestCheckPlayerNames_EmptyInput tests that blank names are rejected
func TestCheckPlayerNames_EmptyInput(t *testing.T) {
	matched, invalid := CheckPlayerNames([]string{"  "}, registeredPlayers)

	assert.Empty(t, matched)
	assert.Equal(t, []string{"  "}, invalid)
}

// TestCheckPlayerNames_NoRegisteredPlayers tests matching against an empty list
func TestCheckPlayerNames_NoRegisteredPlayers(t *testing.T) {
	matched, invalid := CheckPlayerNames([]string{"Ana"}, nil)

	assert.Empty(t, matched)
	assert.Equal(t, []string{"Ana"}, invalid)
}

// region ResolvePlayerName tests

func TestResolvePlayerName(t *testing.T) {
	players := []string{"Alice", "Bob", "Carla", "Dan"}

	tests := []struct {
		name       string
		input      string
		allowFuzzy bool
		expected   string
		found      bool
	}{
		{"exact match", "Bob", false, "Bob", true},
		{"exact match ignores case", "cArLa", false, "Carla", true},
		{"exact match ignores surrounding space", "  dan ", false, "Dan", true},
		{"partial name without fuzzy", "al", false, "", false},
		{"partial name with one fuzzy hit", "lice", true, "Alice", true},
		{"partial name with several fuzzy hits", "a", true, "", false},
		{"unknown name", "Zed", true, "", false},
		{"empty name", "", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePlayerName(tt.input, players, tt.allowFuzzy)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// endregion
