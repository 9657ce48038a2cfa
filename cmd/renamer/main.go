// Command renamer renames batches of files by literal text, regular
// expression, case transform or numbering template.
//
// It previews the plan by default and only touches the filesystem with
// --apply, after the whole plan has been validated.
package main

import "os"

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
