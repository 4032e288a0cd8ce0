package models

import "net/http"

// APIError is a typed rejection carrying the HTTP status it should map to.
// The handlers' error translator forwards it as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func badRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func notFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

func forbidden(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}
