package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// lockedBuffer is a bytes.Buffer safe for the spinner goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsAndStops(t *testing.T) {
	var out lockedBuffer
	s := newSpinner(context.Background(), &out, "Growing")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()
	s.Stop()

	if !strings.Contains(out.String(), "Growing") {
		t.Errorf("spinner never drew its message: %q", out.String())
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	var out lockedBuffer
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, &out, "Growing")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after cancellation")
	}
	s.Stop()
}

func TestSpinnerStopWithError(t *testing.T) {
	var out lockedBuffer
	s := newSpinner(context.Background(), &out, "Rendering")
	s.Start()
	s.StopWithError("render failed")

	if !strings.Contains(out.String(), "render failed") {
		t.Errorf("output %q missing error message", out.String())
	}
}
