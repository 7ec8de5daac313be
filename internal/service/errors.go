package service

import "errors"

var (
	ErrNotFound      = errors.New("task not found")
	ErrNameRequired  = errors.New("task name is required")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrStoreNil      = errors.New("task store is nil")
	ErrInvalidID     = errors.New("invalid task id")
)
