/* main_test.go
 * Contains unit tests for main.go functions
 * Authors: Zachary Bower
 */

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestConvertStrToBool_True tests converting "true" string
func TestConvertStrToBool_True(t *testing.T) {
	result, err := convertStrToBool("true")

	assert.NoError(t, err)
	assert.True(t, result)
}

// TestConvertStrToBool_False tests converting "false" string
func TestConvertStrToBool_False(t *testing.T) {
	result, err := convertStrToBool("false")

	assert.NoError(t, err)
	assert.False(t, result)
}

// TestConvertStrToBool_CaseInsensitiveTrue tests case-insensitive "TRUE"
func TestConvertStrToBool_CaseInsensitiveTrue(t *testing.T) {
	result, err := convertStrToBool("TRUE")

	assert.NoError(t, err)
	assert.True(t, result)
}

// TestConvertStrToBool_MixedCase tests mixed case "TrUe"
func TestConvertStrToBool_MixedCase(t *testing.T) {
	result, err := convertStrToBool("TrUe")

	assert.NoError(t, err)
	assert.True(t, result)
}

// TestConvertStrToBool_WithWhitespace tests string with leading/trailing whitespace
func TestConvertStrToBool_WithWhitespace(t *testing.T) {
	result, err := convertStrToBool("  true  ")

	assert.NoError(t, err)
	assert.True(t, result)
}

// TestConvertStrToBool_InvalidString tests invalid boolean string
func TestConvertStrToBool_InvalidString(t *testing.T) {
	_, err := convertStrToBool("yes")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid boolean string")
}

// TestConvertStrToBool_EmptyString tests empty string
func TestConvertStrToBool_EmptyString(t *testing.T) {
	_, err := convertStrToBool("")

	assert.Error(t, err)
}

// region discordTokenEnv tests

func TestDiscordTokenEnv(t *testing.T) {
	assert.Equal(t, "DISCORD_PROD_TOKEN", discordTokenEnv(false))
	assert.Equal(t, "DISCORD_BETA_TOKEN", discordTokenEnv(true))
}

// endregion

// region webhookTournament tests

func TestWebhookTournament_Override(t *testing.T) {
	assert.Equal(t, "winter_cup", webhookTournament(" winter_cup ", "summer_cup"))
}

func TestWebhookTournament_Default(t *testing.T) {
	assert.Equal(t, "summer_cup", webhookTournament("", "summer_cup"))
	assert.Equal(t, "summer_cup", webhookTournament("   ", "summer_cup"))
}

// endregion

// region newLogger tests

func TestNewLogger_InfoLevel(t *testing.T) {
	logger, err := newLogger(false)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestNewLogger_DebugLevel(t *testing.T) {
	logger, err := newLogger(true)
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

// endregion

// region run tests

func TestRun_InvalidTestFlagReturnsBeforeConnecting(t *testing.T) {
	// A run that got as far as NewAPI would fail on this URI with exit code 1
	t.Setenv("MONGO_PROD_URI", "mongodb://127.0.0.1:1")

	assert.Equal(t, 2, run([]string{"-test=maybe"}))
}

func TestRun_UnknownFlag(t *testing.T) {
	assert.Equal(t, 2, run([]string{"-nope"}))
}

func TestRun_RestoresGlobalLogger(t *testing.T) {
	before := zap.L()

	run([]string{"-test=maybe"})

	assert.Same(t, before, zap.L())
}

// endregion
