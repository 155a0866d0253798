package clipboard

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstepura/go-secure-vault/internal/logger"
)

// fakeClipboard is an in-memory Clipboard with injectable failures.
type fakeClipboard struct {
	mu       sync.Mutex
	content  string
	readErr  error
	writeErr error
}

func (f *fakeClipboard) WriteText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.content = text
	return nil
}

func (f *fakeClipboard) ReadText() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.content, nil
}

func (f *fakeClipboard) set(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = text
}

func (f *fakeClipboard) get() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content
}

func newTestGuard(clip Clipboard, window, resolution time.Duration) *Guard {
	return NewGuard(clip, logger.Nop(), WithWindow(window), WithResolution(resolution))
}

func TestGuard_WipesAfterWindow(t *testing.T) {
	clip := &fakeClipboard{}
	g := newTestGuard(clip, 100*time.Millisecond, 10*time.Millisecond)

	require.NoError(t, g.Copy("secretA"))
	assert.Equal(t, "secretA", clip.get())

	snap := g.Snapshot()
	assert.True(t, snap.Active)
	assert.Equal(t, 10, snap.RemainingSeconds)

	time.Sleep(250 * time.Millisecond)

	assert.Equal(t, "", clip.get(), "clipboard should be wiped after the window")
	snap = g.Snapshot()
	assert.False(t, snap.Active)
	assert.Zero(t, snap.RemainingSeconds)
}

func TestGuard_SupersessionKeepsNewerSecret(t *testing.T) {
	clip := &fakeClipboard{}
	g := newTestGuard(clip, 300*time.Millisecond, 20*time.Millisecond)

	require.NoError(t, g.Copy("secretA"))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, g.Copy("secretB"))

	// Past A's original expiry, inside B's window: B must survive.
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, "secretB", clip.get(), "newer secret must not be wiped by the stale countdown")
	assert.True(t, g.Snapshot().Active)

	// Past B's expiry: the slot goes idle and the clipboard is empty.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, "", clip.get())
	assert.False(t, g.Snapshot().Active)
}

func TestGuard_IdenticalCopyIsIdempotent(t *testing.T) {
	clip := &fakeClipboard{}
	g := newTestGuard(clip, 300*time.Millisecond, 20*time.Millisecond)

	require.NoError(t, g.Copy("secretA"))
	gen := g.Snapshot().Generation

	time.Sleep(60 * time.Millisecond)
	require.NoError(t, g.Copy("secretA"))

	snap := g.Snapshot()
	assert.Equal(t, gen, snap.Generation, "identical re-copy must not open a new window")
	assert.Less(t, snap.RemainingSeconds, 15, "countdown must not be reset")
}

func TestGuard_DoesNotClobberConsumerContent(t *testing.T) {
	clip := &fakeClipboard{}
	g := newTestGuard(clip, 100*time.Millisecond, 10*time.Millisecond)

	require.NoError(t, g.Copy("secretA"))

	// The user copies something else mid-window.
	clip.set("user content")

	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, "user content", clip.get(), "foreign clipboard content must survive the wipe")
	assert.False(t, g.Snapshot().Active)
}

func TestGuard_ReadFailureDegradesToIdle(t *testing.T) {
	clip := &fakeClipboard{readErr: errors.New("no display")}
	g := newTestGuard(clip, 60*time.Millisecond, 10*time.Millisecond)

	require.NoError(t, g.Copy("secretA"))
	time.Sleep(150 * time.Millisecond)

	// Wipe was skipped, but the guard still went idle without crashing.
	assert.False(t, g.Snapshot().Active)
	assert.Equal(t, "secretA", clip.get())
}

func TestGuard_CopyWriteFailure(t *testing.T) {
	clip := &fakeClipboard{writeErr: errors.New("permission denied")}
	g := newTestGuard(clip, 100*time.Millisecond, 10*time.Millisecond)

	err := g.Copy("secretA")
	require.ErrorIs(t, err, ErrWriteFailed)
	assert.False(t, g.Snapshot().Active, "failed copy must not open a window")
}

func TestGuard_ClearWipesImmediately(t *testing.T) {
	clip := &fakeClipboard{}
	g := newTestGuard(clip, 300*time.Millisecond, 20*time.Millisecond)

	require.NoError(t, g.Copy("secretA"))
	g.Clear()

	assert.Equal(t, "", clip.get())
	assert.False(t, g.Snapshot().Active)

	// The orphaned countdown must stay a no-op.
	clip.set("after clear")
	time.Sleep(350 * time.Millisecond)
	assert.Equal(t, "after clear", clip.get())
}

func TestGuard_ConcurrentCopies(t *testing.T) {
	clip := &fakeClipboard{}
	g := newTestGuard(clip, 100*time.Millisecond, 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = g.Copy(fmt.Sprintf("secret-%d", n))
		}(i)
	}
	wg.Wait()

	// Exactly one generation owns the slot; after its window the
	// clipboard is empty and the guard idle.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, "", clip.get())
	assert.False(t, g.Snapshot().Active)
}
