// Package logtail reads the last lines of reel's own log file for the
// activity log overlay.
//
// Submit and rating results only reach the log, so the overlay is where an
// operator sees them without leaving the UI. A missing file is not an error:
// nothing has been logged yet.
package logtail
