package ticker

import (
	"context"
	"log"
	"time"

	"github.com/avito-tech/dogwalk-server/internal/strand"
)

// Ticker calls Tick(dt) at a fixed wall-clock period, posted through a
// Strand so it never races a concurrent HTTP handler (spec §5, §6
// "--tick-period"). dt is always the real elapsed time since the previous
// firing, not the nominal period, so a delayed tick (GC pause, busy host)
// still advances the simulation by the time that actually passed.
type Ticker struct {
	period time.Duration
	strand *strand.Strand
	tick   func(dt float64)

	stop chan struct{}
	done chan struct{}
}

// New creates a ticker that is not yet running; call Run to start it.
func New(period time.Duration, s *strand.Strand, tick func(dt float64)) *Ticker {
	return &Ticker{
		period: period,
		strand: s,
		tick:   tick,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Run blocks, firing tick on every period until ctx is cancelled or Stop
// is called, whichever comes first.
func (t *Ticker) Run(ctx context.Context) {
	defer close(t.done)

	clock := time.NewTicker(t.period)
	defer clock.Stop()

	last := time.Now()
	for {
		select {
		case now := <-clock.C:
			dt := now.Sub(last).Seconds()
			last = now

			callCtx, cancel := context.WithTimeout(ctx, t.period)
			if err := t.strand.Go(callCtx, func() { t.tick(dt) }); err != nil {
				log.Printf("ticker: tick dropped: %v", err)
			}
			cancel()

		case <-t.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop asks Run to return and waits for it to do so. Safe to call once.
func (t *Ticker) Stop() {
	close(t.stop)
	<-t.done
}
