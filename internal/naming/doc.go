// Package naming turns one file name into another.
//
// A [Rule] is a tagged variant over four transformations (literal replace,
// regex substitute, case change, numbering template) with a single
// [Rule.Apply] entry point. The package also builds target paths next to
// their source, rejects names that cannot be a directory entry, and offers
// a [CollisionResolver] for opt-in "_N" de-duplication.
//
// Files: rules.go (Rule, Kind), casing.go (CaseMode), template.go
// (numbering), outputpath.go (TargetPath, ValidateName), collision.go.
package naming
