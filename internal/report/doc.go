// Package report carries run summaries and the error taxonomy shared by the
// organize, rename, fix, and junk-cleanup flows.
package report
