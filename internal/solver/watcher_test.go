package solver

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestWatcherPollsUntilIdle(t *testing.T) {
	var mu sync.Mutex
	polls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		polls++
		busy := polls == 1
		mu.Unlock()
		if busy {
			io.WriteString(w, `{"completed": 0, "processing": 1, "queued": 0,
				"is_processed": "11110000-0000-0000-0000-000000000000"}`)
			return
		}
		io.WriteString(w, `{"completed": 1, "processing": 0, "queued": 0}`)
	})

	client, server := newTestClient(handler, &memoryTokens{access: "a-token"})
	defer server.Close()

	lines := make(chan string, 16)
	watcher := NewWatcher(client, 10*time.Millisecond, func(line string) { lines <- line }, nil)
	watcher.Start()

	var collected []string
	deadline := time.After(2 * time.Second)
	for len(collected) < 2 {
		select {
		case line := <-lines:
			collected = append(collected, line)
		case <-deadline:
			t.Fatalf("Watcher produced %d status lines before timing out", len(collected))
		}
	}

	if !strings.Contains(collected[0], "Job 11110000 is being processed") {
		t.Errorf("First poll should report the processing job, got %q", collected[0])
	}
	if !strings.Contains(collected[1], "No job is being processed or queued") {
		t.Errorf("Second poll should report idle, got %q", collected[1])
	}

	// The loop stops on its own once the cluster goes idle.
	for i := 0; i < 100 && watcher.Running(); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if watcher.Running() {
		t.Error("Watcher should stop after the idle poll")
	}
}

func TestStartDuringWindDownIsNotLost(t *testing.T) {
	var mu sync.Mutex
	polls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		polls++
		idle := polls == 1
		mu.Unlock()
		if idle {
			io.WriteString(w, `{"completed": 1, "processing": 0, "queued": 0}`)
			return
		}
		io.WriteString(w, `{"completed": 1, "processing": 1, "queued": 0,
			"is_processed": "11110000-0000-0000-0000-000000000000"}`)
	})

	client, server := newTestClient(handler, &memoryTokens{access: "a-token"})
	defer server.Close()

	gate := make(chan struct{})
	var once sync.Once
	lines := make(chan string, 16)
	watcher := NewWatcher(client, 5*time.Millisecond, func(line string) {
		lines <- line
		once.Do(func() { <-gate }) // hold the first run in its final callback
	}, nil)

	watcher.Start()
	select {
	case line := <-lines:
		if !strings.Contains(line, "No job is being processed or queued") {
			t.Fatalf("First poll should report idle, got %q", line)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("First run never reported")
	}

	// A new session begins while the first run is still winding down.
	watcher.Start()
	close(gate)

	// The superseding session keeps polling the now-busy cluster.
	select {
	case line := <-lines:
		if !strings.Contains(line, "Job 11110000 is being processed") {
			t.Fatalf("New session should report the processing job, got %q", line)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Session started during wind-down was lost")
	}

	time.Sleep(50 * time.Millisecond)
	if !watcher.Running() {
		t.Error("The first run's exit must not clear the new session's registration")
	}
	watcher.Stop()
}

func TestWatcherStopEndsPolling(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"completed": 0, "processing": 0, "queued": 3,
			"next_queue": ["22220000-0000-0000-0000-000000000000", 1]}`)
	})

	client, server := newTestClient(handler, &memoryTokens{access: "a-token"})
	defer server.Close()

	lines := make(chan string, 16)
	watcher := NewWatcher(client, 5*time.Millisecond, func(line string) { lines <- line }, nil)
	watcher.Start()

	select {
	case <-lines:
	case <-time.After(2 * time.Second):
		t.Fatal("Watcher never reported the queued job")
	}

	watcher.Stop()
	if watcher.Running() {
		t.Error("Watcher should report stopped after Stop")
	}

	// Second Start after Stop works.
	watcher.Start()
	select {
	case <-lines:
	case <-time.After(2 * time.Second):
		t.Fatal("Restarted watcher never reported")
	}
	watcher.Stop()
}
