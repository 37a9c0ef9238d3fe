package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// lookup of the preprocessor binary on PATH, and file-manager reveal of
// downloaded results.
