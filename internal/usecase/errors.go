package usecase

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("resource not found")
	ErrDataProcessing = errors.New("data processing failed")
)

const (
	HintDidYouMean       = "did you mean"
	HintValidStats       = "valid stats"
	HintAvailableTeams   = "available teams"
	HintAvailableSeasons = "available seasons"

	maxSuggestions    = 5
	maxSeasonHints    = 10
	resourcePlayer    = "Player"
	resourcePlayers   = "Players"
	resourceTeam      = "Team"
	resourceSeason    = "Season"
	resourceStatistic = "Statistic"
)

// NotFoundError reports a player, team, season, statistic or filtered player
// set that does not exist in the dataset.
type NotFoundError struct {
	ResourceType string
	ResourceID   string
	HintLabel    string
	Hint         []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with identifier: %s", e.ResourceType, e.ResourceID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func notFound(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{ResourceType: resourceType, ResourceID: resourceID}
}

func notFoundWithHint(resourceType, resourceID, label string, hint []string, limit int) *NotFoundError {
	if limit > 0 && len(hint) > limit {
		hint = hint[:limit]
	}
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceID:   resourceID,
		HintLabel:    label,
		Hint:         append([]string(nil), hint...),
	}
}

// DataProcessingError is an unexpected failure while computing a result.
type DataProcessingError struct {
	Op  string
	Err error
}

func (e *DataProcessingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrDataProcessing, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrDataProcessing, e.Op, e.Err)
}

func (e *DataProcessingError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDataProcessing}
	}
	return []error{ErrDataProcessing, e.Err}
}

func processingError(op string, err error) error {
	return &DataProcessingError{Op: op, Err: crerr.WithStack(err)}
}

// recoverProcessing turns a panic inside op into a DataProcessingError on *err.
func recoverProcessing(op string, err *error) {
	if rec := recover(); rec != nil {
		*err = &DataProcessingError{Op: op, Err: crerr.Newf("panic: %v", rec)}
	}
}
