// Package resource enforces global limits on scratch memory and ingest IO.
package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrScratchBudget is returned when the scratch memory budget is exhausted.
// Scoring treats this as fatal for the run: aborting is preferable to
// silently dropping candidates and producing misleadingly incomplete results.
var ErrScratchBudget = errors.New("resource: scratch memory budget exhausted")

// Config holds resource limits for matching runs.
type Config struct {
	// ScratchLimitBytes bounds the transient scratch memory allocated for
	// candidates that exceed the per-worker arena bound.
	// If 0, no hard limit is enforced (only tracking).
	ScratchLimitBytes int64

	// IOLimitBytesPerSec is the maximum throughput for candidate ingestion.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared resources across workers and ingest readers.
type Controller struct {
	cfg Config

	scratchSem  *semaphore.Weighted // nil if unlimited
	scratchUsed atomic.Int64

	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.ScratchLimitBytes > 0 {
		c.scratchSem = semaphore.NewWeighted(cfg.ScratchLimitBytes)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// TryAcquireScratch attempts to reserve scratch memory without blocking.
// Returns false if the limit would be exceeded.
func (c *Controller) TryAcquireScratch(bytes int64) bool {
	if c == nil {
		return true
	}
	if bytes <= 0 {
		return true
	}

	if c.scratchSem != nil {
		if !c.scratchSem.TryAcquire(bytes) {
			return false
		}
	}

	c.scratchUsed.Add(bytes)
	return true
}

// ReleaseScratch releases reserved scratch memory.
func (c *Controller) ReleaseScratch(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.scratchSem != nil {
		c.scratchSem.Release(bytes)
	}
	c.scratchUsed.Add(-bytes)
}

// ScratchUsage returns the currently reserved scratch memory in bytes.
func (c *Controller) ScratchUsage() int64 {
	if c == nil {
		return 0
	}
	return c.scratchUsed.Load()
}

// AcquireIO waits until the IO limit allows the specified number of bytes.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	return c.ioLimiter.WaitN(ctx, bytes)
}
