package model

import (
	"fmt"
	"time"
)

// ShortIDLength is how many characters of a job ID are shown to the user
const ShortIDLength = 8

// Job represents a single solver job as the cluster reports it
type Job struct {
	ID     string
	Name   string
	Status JobStatus
}

// ShortID returns the first characters of the job ID for display
func (j *Job) ShortID() string {
	if len(j.ID) <= ShortIDLength {
		return j.ID
	}
	return j.ID[:ShortIDLength]
}

// Label returns the one-line description shown in the job list
func (j *Job) Label() string {
	name := j.Name
	if name == "" {
		name = "untitled"
	}
	return fmt.Sprintf("%s (%s, ID: %s)", name, j.Status, j.ShortID())
}

// ClusterCounts is the cluster check-in payload: per-user job totals plus
// the identity of the job being processed and the first queued one.
type ClusterCounts struct {
	Completed  int
	Processing int
	Queued     int

	ProcessingID string // job currently on the solver, empty if none
	NextID       string // first pending job in the queue, empty if none
	NextPosition int    // its position in the queue
}

// Summary formats the counts the way the check-in report prints them.
func (c *ClusterCounts) Summary() string {
	msg := fmt.Sprintf(
		"    %d job(s) have been completed\n"+
			"    %d job is being processed\n"+
			"    %d job(s) are queued\n\n",
		c.Completed, c.Processing, c.Queued)

	if c.NextID != "" {
		msg += fmt.Sprintf(
			"The first pending job in the queue is at position: %d (ID: %.8s)\n",
			c.NextPosition, c.NextID)
	}
	return msg
}

// LiveStatus formats a timestamped live-status line and reports whether the
// cluster still has active work worth polling for.
func (c *ClusterCounts) LiveStatus(now time.Time) (string, bool) {
	ts := now.Format("[2006-01-02 15:04:05]")

	if c.Processing == 0 && c.Queued == 0 {
		return fmt.Sprintf("%s No job is being processed or queued\n", ts), false
	}

	msg := ""
	if c.ProcessingID != "" {
		msg += fmt.Sprintf("%s Job %.8s is being processed\n", ts, c.ProcessingID)
	}
	if c.NextID != "" {
		msg += fmt.Sprintf("%s Job %.8s is at position %d in the queue\n", ts, c.NextID, c.NextPosition)
	}
	if msg == "" {
		return "", false
	}
	return msg, true
}
