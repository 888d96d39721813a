// Package naming maps a stored recording to its absolute source path and its
// destination inside the export directory.
//
// Destinations are deterministic: the sanitized label plus the source file's
// extension, optionally prefixed with a strftime-formatted date. No collision
// handling is performed, so two recordings that resolve to the same name
// overwrite each other in the export directory.
package naming
