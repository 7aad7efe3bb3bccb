package tools

import (
	"github.com/google/uuid"
)

// Generates a random identifier using UUID v4
func GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
