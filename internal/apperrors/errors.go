package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, malformed, or expired credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStoreUnavailable indicates a transient persistence failure (connectivity,
// timeout). Callers must be able to tell this apart from ErrNotFound.
var ErrStoreUnavailable = errors.New("store unavailable")
