// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

// Package clipboard bounds the time a decrypted secret spends on the
// shared system clipboard. Copying a secret opens a fixed exposure
// window; when the window closes the clipboard is wiped, unless the user
// has meanwhile copied something else, which must not be clobbered.
package clipboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/nstepura/go-secure-vault/internal/logger"
)

const (
	// DefaultWindow is the exposure window length: the secret lives on
	// the clipboard for 15 seconds after a copy.
	DefaultWindow = 15 * time.Second

	// DefaultResolution is the countdown granularity shown to the user.
	DefaultResolution = time.Second
)

// Exposure is a read-only snapshot of the guard state, suitable for
// rendering a countdown.
type Exposure struct {
	// Active reports whether a secret is currently on the clipboard
	// under guard control.
	Active bool

	// RemainingSeconds is the whole number of countdown ticks left
	// before the wipe.
	RemainingSeconds int

	// Generation identifies the copy request that owns the current
	// window. It increases monotonically with every accepted copy.
	Generation uint64
}

// Guard owns the single clipboard-exposure slot of the process.
//
// Every accepted Copy bumps a generation counter and starts its own
// countdown goroutine bound to that generation. A stale countdown
// discovers the mismatch under the mutex and exits without touching the
// clipboard, so overlapping copies can never wipe a newer secret early
// and two countdowns never both own the slot. The generation check
// replaces explicit timer cancellation, which keeps the design correct
// even where timer cancellation is unreliable.
//
// All state transitions happen under mu, and the expiry wipe re-checks
// the generation after acquiring mu before touching the clipboard.
type Guard struct {
	clip Clipboard
	log  *logger.Logger

	window     time.Duration
	resolution time.Duration

	mu         sync.Mutex
	generation uint64
	secret     string
	remaining  int
	active     bool
}

// GuardOption customizes a Guard.
type GuardOption func(*Guard)

// WithWindow overrides the exposure window length.
func WithWindow(window time.Duration) GuardOption {
	return func(g *Guard) { g.window = window }
}

// WithResolution overrides the countdown tick interval.
func WithResolution(resolution time.Duration) GuardOption {
	return func(g *Guard) { g.resolution = resolution }
}

// NewGuard constructs a Guard over the given clipboard capability.
func NewGuard(clip Clipboard, log *logger.Logger, opts ...GuardOption) *Guard {
	g := &Guard{
		clip:       clip,
		log:        log,
		window:     DefaultWindow,
		resolution: DefaultResolution,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.window <= 0 {
		g.window = DefaultWindow
	}
	if g.resolution <= 0 || g.resolution > g.window {
		g.resolution = DefaultResolution
	}
	return g
}

// Copy places secret on the clipboard and opens a fresh exposure window.
//
// Re-copying the identical secret while its window is still open is an
// idempotent no-op: the countdown is not reset, matching the reference
// client which disables the copy control during the window. Copying a
// different secret supersedes the running window: the old generation is
// invalidated so its pending wipe becomes a no-op, and the new secret
// gets its own full window.
//
// Returns ErrWriteFailed if the platform write fails; the guard state is
// left unchanged in that case.
func (g *Guard) Copy(secret string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active && g.secret == secret {
		return nil
	}

	if err := g.clip.WriteText(secret); err != nil {
		g.log.Err(err).Msg("clipboard write failed")
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	g.generation++
	g.secret = secret
	g.remaining = int(g.window / g.resolution)
	g.active = true

	go g.countdown(g.generation, secret)
	return nil
}

// Snapshot returns the current exposure state for display purposes.
func (g *Guard) Snapshot() Exposure {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Exposure{
		Active:           g.active,
		RemainingSeconds: g.remaining,
		Generation:       g.generation,
	}
}

// Clear immediately ends any open exposure window and wipes the secret
// from the clipboard (best-effort). Called on logout and shutdown.
func (g *Guard) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Bumping the generation orphans any running countdown.
	g.generation++
	if g.active {
		g.wipeLocked(g.secret)
	}
	g.active = false
	g.secret = ""
	g.remaining = 0
}

// countdown decrements the window owned by generation once per tick and
// performs the wipe when it reaches zero. It holds mu only across state
// inspection and the final wipe, re-checking ownership each time.
func (g *Guard) countdown(generation uint64, secret string) {
	ticker := time.NewTicker(g.resolution)
	defer ticker.Stop()

	for range ticker.C {
		g.mu.Lock()

		// A newer copy or an explicit Clear owns the slot now. This
		// countdown is stale: exit without touching the clipboard.
		if generation != g.generation {
			g.mu.Unlock()
			return
		}

		g.remaining--
		if g.remaining > 0 {
			g.mu.Unlock()
			continue
		}

		g.wipeLocked(secret)
		g.active = false
		g.secret = ""
		g.remaining = 0
		g.mu.Unlock()
		return
	}
}

// wipeLocked overwrites the clipboard with an empty value if it still
// holds secret. A consumer may have copied something else during the
// window; that content is left alone. Read/write failures are logged and
// swallowed: the wipe is defense in depth, not the confidentiality
// boundary. Caller must hold mu.
func (g *Guard) wipeLocked(secret string) {
	current, err := g.clip.ReadText()
	if err != nil {
		g.log.Warn().Err(err).Msg("clipboard read failed, skipping wipe")
		return
	}
	if current != secret {
		return
	}
	if err := g.clip.WriteText(""); err != nil {
		g.log.Warn().Err(err).Msg("clipboard wipe failed")
	}
}
