package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrUnauthorized will throw if the given credentials do not match
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrForbidden will throw if the actor does not own the resource
	ErrForbidden = errors.New("you are not allowed to modify this resource")
	// ErrCacheMiss signals the requested key is not in the cache
	ErrCacheMiss = errors.New("cache miss")
)
