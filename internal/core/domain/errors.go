package domain

import "errors"

// Identity and session errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrMissingField       = errors.New("please fill in all required fields")
	ErrForbidden          = errors.New("access forbidden")
)

// Feature errors.
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrInvalidVote      = errors.New("invalid vote direction")
	ErrUnknownCommunity = errors.New("unknown community")
	ErrUnknownCategory  = errors.New("unknown report category")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrEmptyMessage     = errors.New("message cannot be empty")
	ErrGeneration       = errors.New("generative reply failed")
)
