package model

import "strings"

// JobStatus represents the lifecycle state of a solver job on the cluster
type JobStatus string

const (
	// JobStatusQueued means the job is waiting for a compute slot
	JobStatusQueued JobStatus = "Queued"

	// JobStatusProcessing means the job is being solved
	JobStatusProcessing JobStatus = "Processing"

	// JobStatusCompleted means the job finished and results are available
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusCancelled means the job was cancelled by the user
	JobStatusCancelled JobStatus = "Cancelled"

	// JobStatusError means the job failed on the cluster
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job still occupies a place on the cluster
func (js JobStatus) IsActive() bool {
	return js == JobStatusQueued || js == JobStatusProcessing
}

// IsFinished returns true if the job is in a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusCancelled || js == JobStatusError
}

// ParseJobStatus maps a status string reported by the cluster to a JobStatus.
// Unknown values are passed through unchanged so they stay visible in the UI.
func ParseJobStatus(s string) JobStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "queued", "pending":
		return JobStatusQueued
	case "processing", "running":
		return JobStatusProcessing
	case "completed", "done":
		return JobStatusCompleted
	case "cancelled", "canceled":
		return JobStatusCancelled
	case "error", "failed":
		return JobStatusError
	default:
		return JobStatus(s)
	}
}
