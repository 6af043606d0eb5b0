/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"super8-bot/api/api"
	"super8-bot/api/logic"
	"super8-bot/api/shared"

	"github.com/bwmarrin/discordgo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Super 8 Bot v1.0\n")
	res.WriteString("Four players play three doubles matches, partnering each other player once. Standings are individual.\n")
	res.WriteString("`$details`: Get information about the tournament including name, registered players and matches played\n")
	res.WriteString("`$register [name]`: Registers you for the tournament. Uses your Discord name when no name is given. Names that contain two or more words need to be encased in \" (e.g. \"Mary Jane\")\n")
	res.WriteString("`$unregister [name]`: Removes a player from the tournament. Only possible before the matches are generated\n")
	res.WriteString("`$players`: shows the registered players\n")
	res.WriteString("`$generate`: generates the three matches once four players have registered. Can be rerun until the first score is reported\n")
	res.WriteString("`$matches`: shows the matches and their scores\n")
	res.WriteString("`$score match score1 score2`: reports the score of a match, e.g. `$score 1 6 4`. Reporting a match again replaces its score\n")
	res.WriteString("`$leaderboard`: shows the standings, sorted by wins, then point differential, then points scored\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// detailsHandler handles the $details command with a DiscordSession interface
func (b *Bot) detailsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	info, err := b.APIPtr.GetTournamentInfo()
	if err != nil {
		zap.L().Error("failed to get tournament info", zap.Error(err))
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occurred")
		return
	}
	var res strings.Builder
	for i := range info {
		res.WriteString(fmt.Sprintf("%s\n", info[i]))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// registerHandler handles the $register command with a DiscordSession interface
func (b *Bot) registerHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	args, err := commandArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read the player name: %s", err))
		return
	}
	player := strings.Join(args, " ")

	err = b.APIPtr.RegisterPlayer(user, player)
	if err != nil {
		var res string
		if errors.Is(err, api.ErrTournamentFull) {
			res = fmt.Sprintf("The tournament is full, %d players are already registered", logic.PlayersPerSuper8)
		} else {
			zap.L().Warn("registration failed", zap.String("user", user.Username), zap.Error(err))
			res = fmt.Sprintf("An error occurred registering %s: %s", user.Username, err)
		}
		session.ChannelMessageSend(message.ChannelID, res)
		return
	}

	if player == "" {
		player = user.Username
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s has been registered\n", strings.Trim(player, "\"“”")))
}

// unregisterHandler handles the $unregister command with a DiscordSession interface
func (b *Bot) unregisterHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}

	args, err := commandArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read the player name: %s", err))
		return
	}
	player := strings.Join(args, " ")

	err = b.APIPtr.UnregisterPlayer(user, player)
	if err != nil {
		zap.L().Warn("unregistration failed", zap.String("user", user.Username), zap.Error(err))
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("An error occurred unregistering: %s", err))
		return
	}

	if player == "" {
		player = user.Username
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s has been removed from the tournament\n", strings.Trim(player, "\"“”")))
}

// playersHandler handles the $players command with a DiscordSession interface
func (b *Bot) playersHandler(session DiscordSession, message *discordgo.MessageCreate) {
	players, err := b.APIPtr.GetPlayers()
	if err != nil {
		zap.L().Error("failed to get players", zap.Error(err))
		session.ChannelMessageSend(message.ChannelID, "An error occurred getting the players list")
		return
	}

	if len(players) == 0 {
		session.ChannelMessageSend(message.ChannelID, "No players have registered yet. Use $register to join")
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("Registered players (%d/%d):\n", len(players), logic.PlayersPerSuper8))
	for _, player := range players {
		res.WriteString(fmt.Sprintf("- %s\n", player))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// generateHandler handles the $generate command with a DiscordSession interface
func (b *Bot) generateHandler(session DiscordSession, message *discordgo.MessageCreate) {
	matches, err := b.APIPtr.GenerateMatches()
	if err != nil {
		var res string
		switch {
		case errors.Is(err, logic.ErrInvalidParticipantCount):
			res = fmt.Sprintf("Exactly %d players are needed to generate the matches. Use $players to see who has registered", logic.PlayersPerSuper8)
		case errors.Is(err, api.ErrMatchesStarted):
			res = "Scores have already been reported, the matches can no longer be regenerated"
		default:
			zap.L().Error("failed to generate matches", zap.Error(err))
			res = fmt.Sprintf("An error occurred generating the matches: %s", err)
		}
		session.ChannelMessageSend(message.ChannelID, res)
		return
	}

	var res strings.Builder
	res.WriteString("Matches:\n")
	for _, match := range matches {
		res.WriteString(match)
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// matchesHandler handles the $matches command with a DiscordSession interface
func (b *Bot) matchesHandler(session DiscordSession, message *discordgo.MessageCreate) {
	matches, err := b.APIPtr.GetMatches()
	if err != nil {
		zap.L().Error("failed to get matches", zap.Error(err))
		session.ChannelMessageSend(message.ChannelID, "An error occurred getting the matches")
		return
	}

	if len(matches) == 0 {
		session.ChannelMessageSend(message.ChannelID, "No matches have been generated. Use $generate once four players have registered")
		return
	}

	var res strings.Builder
	res.WriteString("Matches:\n")
	for _, match := range matches {
		res.WriteString(match)
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// scoreHandler handles the $score command with a DiscordSession interface
func (b *Bot) scoreHandler(session DiscordSession, message *discordgo.MessageCreate) {
	const usage = "Usage: `$score match score1 score2`, e.g. `$score 1 6 4`"

	args, err := commandArgs(message.Content)
	if err != nil || len(args) != 3 {
		session.ChannelMessageSend(message.ChannelID, usage)
		return
	}

	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("'%s' is not a number. %s", arg, usage))
			return
		}
		values = append(values, v)
	}

	err = b.APIPtr.ReportScore(values[0], values[1], values[2])
	if err != nil {
		var res string
		switch {
		case errors.Is(err, api.ErrInvalidScore):
			res = "Scores must be zero or more"
		case errors.Is(err, api.ErrMatchNotFound):
			res = fmt.Sprintf("There is no match %d. Use $matches to see the match numbers", values[0])
		default:
			zap.L().Error("failed to report score", zap.Int("match", values[0]), zap.Error(err))
			res = fmt.Sprintf("An error occurred reporting the score: %s", err)
		}
		session.ChannelMessageSend(message.ChannelID, res)
		return
	}

	zap.L().Info("score reported",
		zap.String("user", message.Author.Username),
		zap.Int("match", values[0]),
		zap.Int("score1", values[1]),
		zap.Int("score2", values[2]))
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Score recorded for match %d: %d-%d\n", values[0], values[1], values[2]))
}

// leaderboardHandler handles the $leaderboard command with a DiscordSession interface
func (b *Bot) leaderboardHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetLeaderboard()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = "No scores have been reported yet"
		} else {
			zap.L().Error("failed to get leaderboard", zap.Error(err))
			res = "An error occurred getting the leaderboard"
		}
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}
	if !startsWith(message.Content, "$") {
		return
	}

	handlers := []struct {
		command string
		handle  func(DiscordSession, *discordgo.MessageCreate)
	}{
		{"$help", b.helpMessageHandler},
		{"$details", b.detailsHandler},
		{"$register", b.registerHandler},
		{"$unregister", b.unregisterHandler},
		{"$players", b.playersHandler},
		{"$generate", b.generateHandler},
		{"$matches", b.matchesHandler},
		{"$score", b.scoreHandler},
		{"$leaderboard", b.leaderboardHandler},
	}

	for _, h := range handlers {
		if !isCommand(message.Content, h.command) {
			continue
		}
		if !b.allow(message.Author.ID) {
			zap.L().Debug("command throttled", zap.String("user", message.Author.ID), zap.String("command", h.command))
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s, you are sending commands too quickly. Try again in a few seconds", message.Author.Username))
			return
		}
		h.handle(session, message)
		return
	}
}
