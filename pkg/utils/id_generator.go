package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a random UUID v4 string. It names request ids and
// token ids, which need no coordination and no ordering.
func GenerateID() string {
	return uuid.New().String()
}
