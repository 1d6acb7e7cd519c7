// Package codec holds the codec-flag reconciler: normalized codec names,
// an insertion-ordered set keyed by those names, and the pure functions
// that turn "what the build knows" and "what the caller wants" into
// ffmpeg configure flags.
//
// Nothing in this package performs I/O or returns errors. Inputs are
// acquired and validated by package discover before reconciliation.
package codec
