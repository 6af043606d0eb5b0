/* main.go
 * The "main" method for running the bot. For details about the bot see `readme.md`
 * Usage: go run . -tournament="<name>" -db="<database>" -test=false
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	api "super8-bot/api/api"
	"super8-bot/bot"
	"super8-bot/web"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the bot and the webhook server and returns the process exit code
func run(args []string) int {
	envErr := godotenv.Load()

	//Flags
	flags := flag.NewFlagSet("super8-bot", flag.ContinueOnError)
	tournamentPtr := flags.String("tournament", "super8", "Name of the tournament the bot manages, e.g. summer_cup_2025")
	dbPtr := flags.String("db", "super8", "MongoDB database name")
	addrPtr := flags.String("addr", ":8080", "Address the webhook server listens on")
	testPtr := flags.String("test", "false", "Use main or test bot: takes true or false as argument")
	debugPtr := flags.Bool("debug", false, "Enable debug logging")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger, err := newLogger(*debugPtr)
	if err != nil {
		log.Printf("failed to initialize logger: %v", err)
		return 1
	}
	defer logger.Sync()
	restore := zap.ReplaceGlobals(logger)
	defer restore()

	if envErr != nil {
		zap.L().Warn("no .env file loaded, reading configuration from the environment", zap.Error(envErr))
	}

	isTest, err := convertStrToBool(*testPtr)
	if err != nil {
		zap.L().Error("invalid \"test\" flag. Should be true or false", zap.String("test", *testPtr))
		return 2
	}
	discordToken := os.Getenv(discordTokenEnv(isTest))

	webhookSecret := os.Getenv("WEBHOOK_SECRET")
	if webhookSecret == "" {
		zap.L().Warn("WEBHOOK_SECRET is not set, score webhooks are accepted without authentication")
	}

	apiPtr, err := api.NewAPI(*dbPtr, os.Getenv("MONGO_PROD_URI"), *tournamentPtr)
	if err != nil {
		zap.L().Error("failed to initialize API", zap.Error(err))
		return 1
	}
	defer func() {
		if err := apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			zap.L().Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	// Webhook server for the scoring app
	go func() {
		cfg := web.Config{
			Addr:       *addrPtr,
			API:        apiPtr,
			Tournament: webhookTournament(os.Getenv("WEBHOOK_TOURNAMENT"), *tournamentPtr),
			Secret:     webhookSecret,
		}
		if err := web.Start(cfg); err != nil {
			zap.L().Error("web server stopped", zap.Error(err))
		}
	}()

	b, err := bot.NewBot(discordToken, apiPtr)
	if err != nil {
		zap.L().Error("failed to initialize bot", zap.Error(err))
		return 1
	}
	if err := b.Run(); err != nil {
		zap.L().Error("bot stopped", zap.Error(err))
		return 1
	}
	return 0
}
