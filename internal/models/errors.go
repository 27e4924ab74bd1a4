package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// NotFoundf wraps ErrNotFound with the entity kind and id, e.g.
// "web app webapp-17...: not found".
func NotFoundf(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
