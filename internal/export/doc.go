// Package export runs the per-recording pipeline: resolve paths, decide
// whether to export (automatically or from a single keystroke), copy the audio
// with its original modification time, and record the outcome in the failure
// ledger.
//
// Recordings are processed strictly one at a time. A failure on one recording
// is logged and counted, and never stops the ones after it.
package export
