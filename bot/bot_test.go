/* bot_test.go
 * Contains unit tests for bot.go functions
 * Authors: Zachary Bower
 */

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// TestStartsWith_ExactMatch tests when input exactly matches the substring
func TestStartsWith_ExactMatch(t *testing.T) {
	result := startsWith("hello", "hello")
	assert.True(t, result)
}

// TestStartsWith_StartsWithSubstring tests when input starts with substring
func TestStartsWith_StartsWithSubstring(t *testing.T) {
	result := startsWith("hello world", "hello")
	assert.True(t, result)
}

// TestStartsWith_DoesNotStartWith tests when substring is present but not at start
func TestStartsWith_DoesNotStartWith(t *testing.T) {
	result := startsWith("world hello", "hello")
	assert.False(t, result)
}

// TestStartsWith_SubstringNotPresent tests when substring is not present at all
func TestStartsWith_SubstringNotPresent(t *testing.T) {
	result := startsWith("hello world", "goodbye")
	assert.False(t, result)
}

// TestStartsWith_EmptySubstring tests with empty substring
func TestStartsWith_EmptySubstring(t *testing.T) {
	result := startsWith("hello", "")
	assert.True(t, result) // Empty string starts every string
}

// TestStartsWith_EmptyInput tests with empty input string
func TestStartsWith_EmptyInput(t *testing.T) {
	result := startsWith("", "hello")
	assert.False(t, result)
}

// TestStartsWith_BothEmpty tests when both strings are empty
func TestStartsWith_BothEmpty(t *testing.T) {
	result := startsWith("", "")
	assert.True(t, result)
}

// TestStartsWith_DiscordCommand tests with Discord command prefix
func TestStartsWith_DiscordCommand(t *testing.T) {
	result := startsWith("$help", "$")
	assert.True(t, result)
}

// TestStartsWith_LongerSubstring tests when substring is longer than input
func TestStartsWith_LongerSubstring(t *testing.T) {
	result := startsWith("hi", "hello")
	assert.False(t, result)
}

// TestStartsWith_CaseSensitive tests that function is case-sensitive
func TestStartsWith_CaseSensitive(t *testing.T) {
	result := startsWith("Hello", "hello")
	assert.False(t, result)
}

// TestStartsWith_PartialMatch tests partial matching at the beginning
func TestStartsWith_PartialMatch(t *testing.T) {
	result := startsWith("$register \"Mary Jane\"", "$register")
	assert.True(t, result)
}

// TestStartsWith_SpecialCharacters tests with special characters
func TestStartsWith_SpecialCharacters(t *testing.T) {
	result := startsWith("$score-1", "$score")
	assert.True(t, result)
}

// region isCommand tests

func TestIsCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		command  string
		expected bool
	}{
		{"bare command", "$matches", "$matches", true},
		{"command with arguments", "$score 1 6 4", "$score", true},
		{"longer command sharing a prefix", "$scoreboard", "$score", false},
		{"different command", "$players", "$matches", false},
		{"command not at start", "hey $help", "$help", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isCommand(tt.content, tt.command))
		})
	}
}

// endregion

// region commandArgs tests

func TestCommandArgs_Plain(t *testing.T) {
	args, err := commandArgs("$score 1 6 4")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "6", "4"}, args)
}

func TestCommandArgs_NoArguments(t *testing.T) {
	args, err := commandArgs("$register")
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestCommandArgs_ExtraSpaces(t *testing.T) {
	args, err := commandArgs("$score  2   3 5 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "5"}, args)
}

func TestCommandArgs_QuotedName(t *testing.T) {
	args, err := commandArgs("$register \"Mary Jane\"")
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Contains(t, args[0], "Mary Jane")
}

// endregion

// region allow tests

func TestAllow_BurstThenThrottle(t *testing.T) {
	b := &Bot{CommandRate: rate.Limit(0.001), CommandBurst: 2}

	assert.True(t, b.allow("user1"))
	assert.True(t, b.allow("user1"))
	assert.False(t, b.allow("user1"))
}

func TestAllow_UsersAreIndependent(t *testing.T) {
	b := &Bot{CommandRate: rate.Limit(0.001), CommandBurst: 1}

	assert.True(t, b.allow("user1"))
	assert.False(t, b.allow("user1"))
	assert.True(t, b.allow("user2"))
}

func TestAllow_ZeroValueUsesDefaults(t *testing.T) {
	b := &Bot{}

	for i := 0; i < defaultCommandBurst; i++ {
		assert.True(t, b.allow("user1"), "command %d should be allowed", i+1)
	}
	assert.False(t, b.allow("user1"))
}

// endregion
