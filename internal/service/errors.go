package service

import "errors"

// Sentinel errors for the recipe domain. Handlers translate these into
// HTTP status codes with errors.Is.
var (
	ErrInvalidRating      = errors.New("rating must be between 0 and 5")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrReplyNotFound      = errors.New("reply not found")
	ErrUnauthorized       = errors.New("caller is not permitted to perform this action")
	ErrValidation         = errors.New("title, ingredients and instructions are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)
