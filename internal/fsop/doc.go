// Package fsop performs the filesystem mutations of a rename run on an
// afero filesystem and classifies their failures.
//
// Types:
//   - Mover (Move, Exists, SameFile) over an afero.Fs
//   - Error (the per-entry filesystem error) and Kind (its classification)
//
// Every mutation goes through Mover so tests can run against
// afero.NewMemMapFs or wrap a filesystem to inject failures.
package fsop
