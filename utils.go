/* utils.go
 * Utility functions used across the application
 * Authors: Zachary Bower
 */

package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// convertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// discordTokenEnv returns the name of the environment variable holding the token for the main or test bot
func discordTokenEnv(isTest bool) string {
	if isTest {
		return "DISCORD_BETA_TOKEN"
	}
	return "DISCORD_PROD_TOKEN"
}

// webhookTournament picks the tournament name webhooks must carry: the configured override when set,
// otherwise the tournament the bot manages
func webhookTournament(override string, tournament string) string {
	if strings.TrimSpace(override) != "" {
		return strings.TrimSpace(override)
	}
	return tournament
}

// newLogger builds the production JSON logger, at debug level when requested
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
