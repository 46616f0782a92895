package domain

import "errors"

var (
	ErrSauceNotFound        = errors.New("sauce not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotOwner             = errors.New("caller does not own the sauce")
	ErrVoteNotAllowed       = errors.New("vote not allowed in current state")
	ErrInvalidVoteValue     = errors.New("vote value must be -1, 0 or 1")
	ErrMissingImage         = errors.New("image file is required")
	ErrUnsupportedMediaType = errors.New("unsupported image media type")
)
