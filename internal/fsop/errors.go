package fsop

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind classifies a filesystem failure.
type Kind int

const (
	KindOther       Kind = iota
	KindPermission       // Permission denied or read-only filesystem.
	KindCrossDevice      // Source and target on different devices.
	KindNotExist         // Source vanished after planning.
	KindExists           // Target appeared after planning.
)

func (k Kind) String() string {
	switch k {
	case KindPermission:
		return "permission denied"
	case KindCrossDevice:
		return "cross-device rename"
	case KindNotExist:
		return "source missing"
	case KindExists:
		return "target exists"
	default:
		return "filesystem error"
	}
}

// ErrTargetExists is wrapped by [Mover.Move] when the target is occupied
// and overwriting is not allowed.
var ErrTargetExists = errors.New("target already exists")

// Classify maps err onto a Kind. Checked in order; the first match wins.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, syscall.EXDEV):
		return KindCrossDevice
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EROFS):
		return KindPermission
	case errors.Is(err, fs.ErrNotExist):
		return KindNotExist
	case errors.Is(err, fs.ErrExist), errors.Is(err, ErrTargetExists):
		return KindExists
	default:
		return KindOther
	}
}

// Error is a failed rename of one plan entry.
type Error struct {
	Source string
	Target string
	Kind   Kind
	Err    error
}

// NewError wraps err for the rename of source to target.
func NewError(source, target string, err error) *Error {
	return &Error{Source: source, Target: target, Kind: Classify(err), Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("rename %s -> %s: %s: %v", e.Source, e.Target, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
