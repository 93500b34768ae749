// Package sched provides the timer handles the platform owns on behalf of
// a game: a move cooldown window and a fixed-interval ticker.
//
// Handles do not start goroutines. The platform turns each Token into a
// delayed message (tea.Tick) and hands the token back when the message
// arrives; a token from an older generation is stale and must be dropped.
package sched

import (
	"sync/atomic"
	"time"
)

// Token identifies one scheduled timer message.
// Generations are unique across all handles in the process, so a message
// left over from a discarded handle never matches a new one.
type Token struct {
	Gen uint64
}

var generation atomic.Uint64

func nextGen() uint64 {
	return generation.Add(1)
}

// Cooldown is a window opened after an accepted move during which further
// moves are dropped.
type Cooldown struct {
	Every time.Duration
	gen   uint64
	open  bool
}

// NewCooldown creates a cooldown handle. A zero duration disables it.
func NewCooldown(d time.Duration) *Cooldown {
	return &Cooldown{Every: d}
}

// Enabled reports whether the handle has a non-zero window.
func (c *Cooldown) Enabled() bool {
	return c.Every > 0
}

// Open starts a new window and returns the token its closing message must carry.
func (c *Cooldown) Open() Token {
	c.gen = nextGen()
	c.open = c.Enabled()
	return Token{Gen: c.gen}
}

// Active reports whether moves should currently be dropped.
func (c *Cooldown) Active() bool {
	return c.open
}

// Close ends the window if tok belongs to the current one.
// It reports whether the token was current.
func (c *Cooldown) Close(tok Token) bool {
	if tok.Gen != c.gen {
		return false
	}
	c.open = false
	return true
}

// Cancel closes the window and invalidates every outstanding token.
func (c *Cooldown) Cancel() {
	c.gen = nextGen()
	c.open = false
}

// Interval drives a repeating tick. Each Fire that accepts a token expects
// the platform to schedule the next message with the same token.
type Interval struct {
	Every   time.Duration
	gen     uint64
	running bool
}

// NewInterval creates a stopped interval handle.
func NewInterval(d time.Duration) *Interval {
	return &Interval{Every: d}
}

// Start begins a new generation and returns its token. A zero interval
// never runs.
func (iv *Interval) Start() Token {
	iv.gen = nextGen()
	iv.running = iv.Every > 0
	return Token{Gen: iv.gen}
}

// Running reports whether ticks are being delivered.
func (iv *Interval) Running() bool {
	return iv.running
}

// Fire reports whether a tick carrying tok should be applied.
func (iv *Interval) Fire(tok Token) bool {
	return iv.running && tok.Gen == iv.gen
}

// Stop halts the interval and invalidates outstanding tokens.
func (iv *Interval) Stop() {
	iv.gen = nextGen()
	iv.running = false
}

// Cancel is an alias for Stop so both handle kinds share a cancel method.
func (iv *Interval) Cancel() {
	iv.Stop()
}

// Canceler is implemented by every handle.
type Canceler interface {
	Cancel()
}

// CancelAll cancels every handle in order.
func CancelAll(handles ...Canceler) {
	for _, h := range handles {
		h.Cancel()
	}
}
