package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrForbidden          = errors.New("caller does not own the resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or revoked token")

	// Unique-index violations surfaced by the storage layer. The indexes on
	// (user_id, name) and (user_id, title) are the authority; pre-checks in
	// the services only exist to produce friendlier field errors.
	ErrEmailTaken        = errors.New("email already registered")
	ErrCategoryNameTaken = errors.New("category name already used by this user")
	ErrTaskTitleTaken    = errors.New("task title already used by this user")
)
