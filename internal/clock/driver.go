package clock

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/daystogether/internal/logger"
)

// Driver publishes the clock's current instant to a single subscriber on a
// fixed interval. Missed ticks are dropped, not replayed.
type Driver struct {
	clock    Clock
	interval time.Duration
	onTick   func(time.Time)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver creates a stopped driver. onTick runs on the driver goroutine and
// must not call Stop.
func NewDriver(clk Clock, interval time.Duration, onTick func(time.Time)) *Driver {
	return &Driver{
		clock:    clk,
		interval: interval,
		onTick:   onTick,
	}
}

// Start acquires the ticker. It is a no-op while the driver is running; the
// ticker is released when ctx is canceled or Stop is called.
func (d *Driver) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.runningLocked() {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done

	ticker := time.NewTicker(d.interval)
	logger.Info("Clock driver started", "interval", d.interval)

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.onTick(d.clock.Now())
			}
		}
	}()
}

// Stop cancels the ticker and waits for the driver goroutine to exit. It is
// safe to call on a stopped driver, and Start may be called again afterwards.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel = nil
	d.done = nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logger.Info("Clock driver stopped")
}

// Running reports whether the driver goroutine is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.runningLocked()
}

func (d *Driver) runningLocked() bool {
	if d.done == nil {
		return false
	}
	select {
	case <-d.done:
		// The parent context ended the loop without Stop.
		return false
	default:
		return true
	}
}
