/* bot.go
 * Contains logic used for creating the bot. Requires a discord bot token, and APIPtr both of which are
 * passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"
	"super8-bot/api/api"
	"sync"
	"time"

	"github.com/go-andiamo/splitter"
	"golang.org/x/time/rate"
)

const (
	// defaultCommandRate is how often a user regains a command once their burst is spent
	defaultCommandRate = rate.Limit(1.0 / 3.0)
	// defaultCommandBurst is how many commands a user can send back to back
	defaultCommandBurst = 5
)

type Bot struct {
	BotToken string
	APIPtr   *api.API

	// CommandRate and CommandBurst configure the per user limiter. Zero values fall back to the defaults.
	CommandRate  rate.Limit
	CommandBurst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken:     botToken,
		APIPtr:       apiPtr,
		CommandRate:  defaultCommandRate,
		CommandBurst: defaultCommandBurst,
		limiters:     make(map[string]*rate.Limiter),
	}, nil
}

// allow reports whether the user may run another command now. Each user gets their own token bucket.
func (b *Bot) allow(userID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.limiters == nil {
		b.limiters = make(map[string]*rate.Limiter)
	}
	limiter, ok := b.limiters[userID]
	if !ok {
		limit, burst := b.CommandRate, b.CommandBurst
		if limit == 0 {
			limit = defaultCommandRate
		}
		if burst == 0 {
			burst = defaultCommandBurst
		}
		limiter = rate.NewLimiter(limit, burst)
		b.limiters[userID] = limiter
	}
	return limiter.AllowN(time.Now(), 1)
}

// commandArgs splits a message into its arguments, dropping the command itself.
// Arguments wrapped in quotes stay together so names containing spaces can be used, e.g. $register "Mary Jane"
func commandArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}
	if len(parts) < 2 {
		return nil, nil
	}

	var args []string
	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "" {
			continue
		}
		args = append(args, p)
	}
	return args, nil
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}

// isCommand reports whether the message is exactly the command or the command followed by arguments,
// so that $match does not trigger $matches and the reverse
func isCommand(content string, command string) bool {
	if !startsWith(content, command) {
		return false
	}
	rest := content[len(command):]
	return rest == "" || rest[0] == ' '
}
