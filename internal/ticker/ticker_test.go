package ticker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/dogwalk-server/internal/strand"
)

func TestTicker_FiresAtLeastOnce(t *testing.T) {
	s := strand.New()
	defer s.Close()

	var (
		mu    sync.Mutex
		fired int
	)

	tk := New(5*time.Millisecond, s, func(dt float64) {
		mu.Lock()
		fired++
		mu.Unlock()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		tk.Run(ctx)
		close(done)
	}()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if fired == 0 {
		t.Fatal("expected at least one tick to fire within the deadline")
	}
}

func TestTicker_StopEndsRun(t *testing.T) {
	s := strand.New()
	defer s.Close()

	tk := New(5*time.Millisecond, s, func(dt float64) {})

	done := make(chan struct{})
	go func() {
		tk.Run(context.Background())
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	tk.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return after Stop")
	}
}
