package fuzzgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fuzzgo/engine"
	"github.com/hupe1980/fuzzgo/resource"
)

var (
	// ErrInvalidWorkerCount is returned when the worker count is not positive.
	ErrInvalidWorkerCount = errors.New("worker count must be positive")

	// ErrNoMatch is returned by First when no candidate scores above zero.
	ErrNoMatch = errors.New("no match")

	// ErrScratchBudget is returned when a query exceeds the configured
	// scratch memory budget for oversized candidates.
	ErrScratchBudget = errors.New("scratch memory budget exhausted")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, engine.ErrInvalidWorkerCount) {
		return fmt.Errorf("%w: %w", ErrInvalidWorkerCount, err)
	}
	if errors.Is(err, resource.ErrScratchBudget) {
		return fmt.Errorf("%w: %w", ErrScratchBudget, err)
	}

	return err
}
