package solver

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval is how often the watcher checks in while jobs are
// queued or processing.
const DefaultPollInterval = 30 * time.Second

// Watcher polls the cluster check-in endpoint and forwards formatted live
// status lines until no job is active or Stop is called.
type Watcher struct {
	client   *Client
	interval time.Duration
	onStatus func(string)
	onError  func(error)

	mu         sync.Mutex
	cancel     context.CancelFunc
	generation int // owner token of the current registration
}

// NewWatcher creates a watcher. onStatus receives one formatted line per
// poll; onError may be nil.
func NewWatcher(client *Client, interval time.Duration, onStatus func(string), onError func(error)) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		client:   client,
		interval: interval,
		onStatus: onStatus,
		onError:  onError,
	}
}

// Start begins a fresh polling session. A session that is still running or
// winding down is superseded, never the other way around, so a Start racing
// a finishing run cannot be lost.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
	}
	w.generation++

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	go w.run(ctx, w.generation)
}

// Stop ends the polling loop. Safe to call when not running.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

// Running reports whether the polling loop is active
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}

// release clears the registration, but only when it still belongs to the
// run identified by gen. A successor's registration is left untouched.
func (w *Watcher) release(gen int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generation != gen {
		return
	}
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

func (w *Watcher) run(ctx context.Context, gen int) {
	defer w.release(gen)

	for {
		counts, err := w.client.CheckIn(ctx)
		if err != nil {
			if ctx.Err() == nil && w.onError != nil {
				w.onError(err)
			}
			return
		}

		msg, keepPolling := counts.LiveStatus(time.Now())
		if msg != "" {
			w.onStatus(msg)
		}
		if !keepPolling {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.interval):
		}
	}
}
