// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"sync"
	"time"

	"github.com/go-chi/httprate"
)

var _ httprate.LimitCounter = (*fixedWindowCounter)(nil)

// fixedWindowCounter is an httprate.LimitCounter that never reports a
// previous-window count, turning httprate's sliding estimate into a plain
// fixed window: every client starts from zero when the window rolls over.
type fixedWindowCounter struct {
	mu       sync.Mutex
	window   time.Time
	counters map[string]int
}

func newFixedWindowCounter() *fixedWindowCounter {
	return &fixedWindowCounter{counters: make(map[string]int)}
}

// Config implements httprate.LimitCounter. Windows are keyed by the start
// time httprate passes in, so nothing needs configuring.
func (c *fixedWindowCounter) Config(int, time.Duration) {}

func (c *fixedWindowCounter) Increment(key string, currentWindow time.Time) error {
	return c.IncrementBy(key, currentWindow, 1)
}

func (c *fixedWindowCounter) IncrementBy(key string, currentWindow time.Time, amount int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.roll(currentWindow)
	c.counters[key] += amount
	return nil
}

// Get returns the count for currentWindow and always zero for the previous
// window.
func (c *fixedWindowCounter) Get(key string, currentWindow, _ time.Time) (int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.window.Equal(currentWindow) {
		return 0, 0, nil
	}
	return c.counters[key], 0, nil
}

func (c *fixedWindowCounter) roll(currentWindow time.Time) {
	if c.window.Equal(currentWindow) {
		return
	}
	c.window = currentWindow
	clear(c.counters)
}
