package domain

import "github.com/google/uuid"

// NewRunID creates a unique identifier for one run.
func NewRunID() string {
	return uuid.New().String()
}
