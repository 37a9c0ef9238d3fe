package solver

// Package solver implements the HTTP client for the Suqaba cloud solver:
// authentication, job archive upload, job listing, cancellation, removal,
// result download, and the live-status watcher polling the cluster while
// work is queued or processing. Tokens live in the OS keychain.
