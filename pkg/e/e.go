package e

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
