package models

import (
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error joins the messages so the slice can travel as an error value
func (ve ValidationErrors) Error() string {
	return strings.Join(ve.GetMessages(), ", ")
}

// ErrorResponse is the JSON body of every failed API call
type ErrorResponse struct {
	Error string `json:"error"`
}
