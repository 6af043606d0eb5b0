/* input_processing.go
 * Contains the logic for processing user input and validating player names
 * Authors: Zachary Bower
 */

package logic

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// CheckPlayerNames processes player names from user input and checks them against the registered players.
// Preconditions: receives two string slices; one containing names typed by a user and another that is the list of
// registered players
// Postconditions: returns two string slices, the matched names spelled as registered and the names that matched nobody
func CheckPlayerNames(inputNames []string, validPlayers []string) ([]string, []string) {
	var matched []string
	var invalid []string

	// Compare in lowercase, but hand back the registered spelling
	lookup := make(map[string]string)
	var validLower []string
	for _, name := range validPlayers {
		lower := strings.ToLower(name)
		lookup[lower] = name
		validLower = append(validLower, lower)
	}

	for _, name := range inputNames {
		lowerName := strings.ToLower(strings.TrimSpace(name))
		if lowerName == "" {
			invalid = append(invalid, name)
			continue
		}

		// An exact match always wins
		if original, ok := lookup[lowerName]; ok {
			matched = append(matched, original)
			continue
		}

		ranks := fuzzy.RankFind(lowerName, validLower)
		if len(ranks) == 0 {
			invalid = append(invalid, name)
			continue
		}
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance {
				best = r
			}
		}
		matched = append(matched, lookup[best.Target])
	}
	return matched, invalid
}

// ResolvePlayerName finds the registered player a single name refers to.
// An exact case-insensitive match always wins. When allowFuzzy is set and there is no exact match, the name is
// accepted only if it fuzzy matches exactly one registered player, so a short name can never pick between players.
// It returns the registered spelling and true, or "" and false when the name does not identify one player.
func ResolvePlayerName(name string, validPlayers []string, allowFuzzy bool) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	for _, player := range validPlayers {
		if strings.EqualFold(player, name) {
			return player, true
		}
	}
	if !allowFuzzy {
		return "", false
	}

	ranks := fuzzy.RankFindFold(name, validPlayers)
	if len(ranks) != 1 {
		return "", false
	}
	return ranks[0].Target, true
}
