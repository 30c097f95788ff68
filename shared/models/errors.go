package models

import "errors"

// Application-wide standard errors
var (
	// Common Resource/DB Errors
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")

	// Ownership & Authentication Errors
	ErrUnauthorized    = errors.New("unauthorized")            // actor is not the owner of the resource
	ErrUnauthenticated = errors.New("authentication required") // no verified actor on the request

	// Token Errors
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// Validation Errors
	ErrValidation       = errors.New("validation error")
	ErrInvalidMediaType = errors.New("invalid media type")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
)
