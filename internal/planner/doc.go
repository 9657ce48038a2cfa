// Package planner computes and validates a rename plan.
//
// Types:
//   - Plan, Entry, Status, Options (types.go)
//   - Issue, IssueKind, ConflictError (errors.go)
//
// Functions:
//   - Build: sorted, de-duplicated sources → entries via a naming.Rule (planner.go)
//   - Dedupe: opt-in "_N" resolution of colliding targets (dedupe.go)
//   - Validate: all-or-nothing conflict check against the filesystem (validate.go)
package planner
