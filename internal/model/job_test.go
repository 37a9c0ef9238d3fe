package model

import (
	"strings"
	"testing"
	"time"
)

func TestShortID(t *testing.T) {
	job := &Job{ID: "4f9c2d1e-77aa-4b0c-9f01-aaaaaaaaaaaa"}
	if got := job.ShortID(); got != "4f9c2d1e" {
		t.Errorf("Expected short ID 4f9c2d1e, got %s", got)
	}

	short := &Job{ID: "abc"}
	if got := short.ShortID(); got != "abc" {
		t.Errorf("Short IDs should be returned unchanged, got %s", got)
	}
}

func TestJobLabel(t *testing.T) {
	job := &Job{ID: "4f9c2d1e77aa", Name: "bracket", Status: JobStatusQueued}
	label := job.Label()

	if !strings.Contains(label, "bracket") {
		t.Errorf("Label should contain the job name, got %q", label)
	}
	if !strings.Contains(label, "4f9c2d1e") {
		t.Errorf("Label should contain the short ID, got %q", label)
	}
	if !strings.Contains(label, "Queued") {
		t.Errorf("Label should contain the status, got %q", label)
	}

	unnamed := &Job{ID: "4f9c2d1e77aa", Status: JobStatusError}
	if !strings.Contains(unnamed.Label(), "untitled") {
		t.Errorf("Unnamed jobs should be labelled untitled, got %q", unnamed.Label())
	}
}

func TestClusterCountsSummary(t *testing.T) {
	counts := &ClusterCounts{Completed: 3, Processing: 1, Queued: 2}
	summary := counts.Summary()

	if !strings.Contains(summary, "3 job(s) have been completed") {
		t.Errorf("Summary missing completed count: %q", summary)
	}
	if !strings.Contains(summary, "1 job is being processed") {
		t.Errorf("Summary missing processing count: %q", summary)
	}
	if !strings.Contains(summary, "2 job(s) are queued") {
		t.Errorf("Summary missing queued count: %q", summary)
	}
	if strings.Contains(summary, "first pending job") {
		t.Error("Summary should not mention the queue head when NextID is empty")
	}

	counts.NextID = "deadbeefcafe"
	counts.NextPosition = 2
	summary = counts.Summary()
	if !strings.Contains(summary, "position: 2 (ID: deadbeef)") {
		t.Errorf("Summary should name the queue head, got %q", summary)
	}
}

func TestClusterCountsLiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	idle := &ClusterCounts{}
	msg, more := idle.LiveStatus(now)
	if more {
		t.Error("Idle cluster should stop polling")
	}
	if !strings.Contains(msg, "No job is being processed or queued") {
		t.Errorf("Idle message unexpected: %q", msg)
	}
	if !strings.Contains(msg, "[2026-03-14 09:26:53]") {
		t.Errorf("Live status should carry a timestamp, got %q", msg)
	}

	busy := &ClusterCounts{Processing: 1, Queued: 1, ProcessingID: "aaaabbbbcccc", NextID: "ddddeeeeffff", NextPosition: 1}
	msg, more = busy.LiveStatus(now)
	if !more {
		t.Error("Busy cluster should keep polling")
	}
	if !strings.Contains(msg, "Job aaaabbbb is being processed") {
		t.Errorf("Live status missing processing line: %q", msg)
	}
	if !strings.Contains(msg, "Job ddddeeee is at position 1 in the queue") {
		t.Errorf("Live status missing queue line: %q", msg)
	}

	// Counts say busy but no job identity came back: nothing to report.
	anonymous := &ClusterCounts{Processing: 1}
	msg, more = anonymous.LiveStatus(now)
	if more || msg != "" {
		t.Errorf("Expected empty report to stop polling, got %q %v", msg, more)
	}
}
