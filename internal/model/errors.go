package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")

	// Profile errors
	ErrInvalidPosition  = errors.New("invalid position")
	ErrHeightOutOfRange = errors.New("height out of range")
	ErrWeightOutOfRange = errors.New("weight out of range")

	// Stat ledger errors
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNegativeStat = errors.New("stat values must be non-negative")
	ErrUnknownOwner = errors.New("stat owner has no roster entry")

	// Avatar errors
	ErrAvatarNotFound    = errors.New("avatar not found")
	ErrUnsupportedAvatar = errors.New("unsupported avatar file type")
)
