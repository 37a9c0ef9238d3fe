package model

// Package model defines domain data structures used across the app: solver
// jobs, their status enum, and the cluster check-in payload. Structures are
// designed for direct binding in the UI and explicit state transitions.
