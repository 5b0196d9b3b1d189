package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Generation errors
var (
	ErrGeneratorUnavailable = errors.New("generator client not configured")
	ErrModelCallFailed      = errors.New("model call failed")
	ErrEmptyModelOutput     = errors.New("empty response from model")
	ErrUnparseableOutput    = errors.New("could not parse structured model output")
)
