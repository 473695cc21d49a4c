package model

import (
	"github.com/google/uuid"
)

func newID(current string) string {
	if current != "" {
		return current
	}
	return uuid.NewString()
}
