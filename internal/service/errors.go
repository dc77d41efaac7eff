package service

import (
	"errors"
	"strings"
)

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNotOwner           = errors.New("not the recipe owner")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
)

// ValidationError carries the ordered, user-facing messages of a rejected
// payload.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid recipe: " + strings.Join(e.Errors, "; ")
}
