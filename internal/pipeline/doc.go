// Package pipeline drives a rename run: it enumerates input files, builds
// and validates the plan, and then either previews it or executes it.
//
// Execution orders renames so that chains (a→b, b→c) and cycles (a↔b) in a
// validated plan succeed, and a failed rename leaves every other entry to
// its own fate. Validation failures stop the run before anything on disk
// changes.
package pipeline
