package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer so the render goroutine and the test
// can touch it safely.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerRendersStageMessage(t *testing.T) {
	var out syncBuffer
	s := newSpinner("Positioning tools.toml...")
	s.out = &out

	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "Positioning tools.toml...") {
		t.Errorf("spinner output missing stage message, got %q", out.String())
	}
}

func TestSpinnerStopAfterFinishedStage(t *testing.T) {
	var out syncBuffer
	s := newSpinnerWithContext(context.Background(), "Rendering radar...")
	s.out = &out

	s.Start()
	s.Stop()

	if s.Cancelled() {
		t.Error("Cancelled() should be false after a normal Stop")
	}
}

func TestSpinnerCancelledByInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	s := newSpinnerWithContext(ctx, "Fetching dataset...")
	s.out = &out

	s.Start()
	cancel()
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled() should be true after the parent context is cancelled")
	}
}

func TestSpinnerCancelledByTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var out syncBuffer
	s := newSpinnerWithContext(ctx, "Publishing platform-tools...")
	s.out = &out

	s.Start()
	<-ctx.Done()
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled() should be true after the parent context times out")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var out syncBuffer
	s := newSpinner("Rendering layout.json...")
	s.out = &out

	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerClearsLineOnStop(t *testing.T) {
	var out syncBuffer
	s := newSpinner("Placing tools...")
	s.out = &out

	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	// The final write returns the cursor to column zero with the line blanked.
	if !strings.HasSuffix(out.String(), "\r") {
		t.Errorf("spinner output should end with a carriage return, got %q", out.String())
	}
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	var out syncBuffer
	s := newSpinner("Rendering tools.toml...")
	s.out = &out

	s.Start()
	s.StopWithSuccess("Rendered tools.toml")
}

func TestSpinnerStopWithError(t *testing.T) {
	var out syncBuffer
	s := newSpinner("Fetching https://radar.example.com/tools.toml...")
	s.out = &out

	s.Start()
	s.StopWithError("fetch failed after 3 attempts")
}
