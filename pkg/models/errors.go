package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

var ErrBadRequest = errors.New("bad request")

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}

// ErrNotConfigured is returned when a handler needs a client whose
// credentials were absent at startup. The server boots regardless and fails
// the affected requests at call time.
var ErrNotConfigured = errors.New("not configured")

type NotConfiguredError struct {
	Component string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("server not configured for %s", e.Component)
}

func (e *NotConfiguredError) Unwrap() error {
	return ErrNotConfigured
}

func NewNotConfiguredError(component string) error {
	return &NotConfiguredError{Component: component}
}

// ErrExternalService wraps failures reported by the embedding provider or
// other third-party APIs. The provider's message is preserved.
var ErrExternalService = errors.New("external service error")

type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return ErrExternalService
}

func NewExternalServiceError(service string, err error) error {
	return &ExternalServiceError{Service: service, Err: err}
}

// ErrStorage wraps failures reported by the managed backend on row writes or
// object uploads.
var ErrStorage = errors.New("storage error")

type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("storage error: %s", e.Message)
}

func (e *StorageError) Unwrap() error {
	return ErrStorage
}

func NewStorageError(message string, err error) error {
	return &StorageError{Message: message, Err: err}
}
