package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// History errors
	ErrEmptyResult   = errors.New("no results")
	ErrInvalidPage   = errors.New("page number out of range")
	ErrContentCrypto = errors.New("content encryption failure")
	ErrDataIntegrity = errors.New("stored data is inconsistent")
	ErrRetrieval     = errors.New("retrieval failed")

	// Diary / archive errors
	ErrDiaryNotFound   = errors.New("diary not found")
	ErrInvalidEmotion  = errors.New("emotion index out of range")
	ErrPremiumRequired = errors.New("premium subscription required")

	// Letter / reply errors
	ErrLetterNotFound = errors.New("letter not found")
	ErrReplyNotFound  = errors.New("reply not found")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
