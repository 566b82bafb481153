package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateOpaqueID returns a random (version 4) uuid in its canonical string form.
// No uniqueness check is made against stored identifiers.
func GenerateOpaqueID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate random uuid: %w", err)
	}
	return id.String(), nil
}
