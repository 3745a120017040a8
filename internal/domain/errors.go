package domain

import "errors"

var (
	// ErrPickNotFound is returned when a pick key has no asset rows
	ErrPickNotFound = errors.New("pick not found")

	// ErrInvalidPickKey is returned when a pick key cannot be parsed
	ErrInvalidPickKey = errors.New("invalid pick key")

	// ErrTeamRegistryEmpty is returned when no team codes can be resolved
	ErrTeamRegistryEmpty = errors.New("team registry is empty")
)
