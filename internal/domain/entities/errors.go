package entities

import "errors"

// Domain errors
var (
	// Aggregate traversal errors
	ErrProgramNotFound  = errors.New("program not found")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrArtifactNotFound = errors.New("artifact not found")

	// Lifecycle errors
	ErrAssetNotGenerable = errors.New("asset has no generated content collection")
	ErrStaleProgram      = errors.New("program was modified by another writer")

	// Validation errors
	ErrInvalidContentType = errors.New("invalid content type")
	ErrInvalidAssetType   = errors.New("invalid asset type")
	ErrNoLanguages        = errors.New("at least one language is required")
	ErrEmptySource        = errors.New("source content is empty")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPassword   = errors.New("invalid password")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
)
