package apperrors

import "errors"

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrDraftNotFound   = errors.New("saved draft not found")
)

var (
	ErrUnknownField = errors.New("unknown draft field")
	ErrInvalidValue = errors.New("invalid value for draft field")
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("draft validation failed")
)

var (
	ErrPublishNotAvailable = errors.New("publish is only available on the final step")
	ErrPublishPending      = errors.New("publish already in progress")
	ErrAlreadyPublished    = errors.New("event already published")
)

var (
	ErrInternalServerError = errors.New("internal server error")
)
