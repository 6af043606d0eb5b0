/* models.go
 * This file contain the errors and helper values that are used by api consumers
 * Authors: Zachary Bower
 */

package api

import "errors"

var (
	// ErrTournamentFull is returned when a fifth player tries to register
	ErrTournamentFull = errors.New("tournament is full")
	// ErrMatchesStarted is returned when an action would throw away reported results
	ErrMatchesStarted = errors.New("matches already have results")
	// ErrInvalidScore is returned for negative scores
	ErrInvalidScore = errors.New("invalid score")
	// ErrMatchNotFound is returned when a score is reported for a match that does not exist
	ErrMatchNotFound = errors.New("match not found")
)
