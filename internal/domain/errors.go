package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPoolExhausted    = errors.New("card pool exhausted")
	ErrInvalidPackCount = errors.New("count must be between 1 and 10")
	ErrImportFailure    = errors.New("catalog import failed")
)

type InsufficientBalanceError struct {
	Required int64
	Current  int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, current %d", e.Required, e.Current)
}
