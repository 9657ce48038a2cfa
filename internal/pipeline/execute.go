package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/backmassage/renamer/internal/fsop"
	"github.com/backmassage/renamer/internal/planner"
)

// ErrBlocked is recorded on an entry whose target is still held by a file
// that failed to move out of the way.
var ErrBlocked = errors.New("target still occupied by a failed rename")

// executor performs the renames of a validated plan.
//
// Entries are attempted in plan order, except that an entry whose target is
// the current location of another pending entry waits until that entry has
// moved. When every pending entry waits on another one the targets form a
// cycle (a swap, a rotation); one cycle member is parked at a temporary name
// in its own directory to break it.
type executor struct {
	mover   *fsop.Mover
	log     Logger
	outcome func(*planner.Entry)

	pending  []*planner.Entry
	loc      map[*planner.Entry]string // Current path of each pending file.
	occupied map[string]*planner.Entry // Inverse of loc.
	stuck    map[string]error          // Paths left occupied by failed moves.
	parked   int
}

// Execute renames every valid changing entry of plan and records each
// outcome on the entry. outcome, if non-nil, is called once per entry as it
// settles. The context is only honoured while no file is parked at a
// temporary name; after cancellation the remaining entries are marked
// skipped and Execute reports true.
func Execute(ctx context.Context, mover *fsop.Mover, plan *planner.Plan, log Logger, outcome func(*planner.Entry)) (interrupted bool) {
	x := &executor{
		mover:    mover,
		log:      log,
		outcome:  outcome,
		loc:      make(map[*planner.Entry]string),
		occupied: make(map[string]*planner.Entry),
		stuck:    make(map[string]error),
	}
	for _, e := range plan.Changes() {
		if !e.Valid || e.Status != planner.StatusPending {
			continue
		}
		x.pending = append(x.pending, e)
		x.loc[e] = e.Source
		x.occupied[e.Source] = e
	}

	for len(x.pending) > 0 {
		if x.parked == 0 && ctx.Err() != nil {
			x.skipRemaining()
			return true
		}
		i := x.nextReady()
		if i < 0 {
			x.park(x.cycleMember())
			continue
		}
		e := x.pending[i]
		x.pending = append(x.pending[:i], x.pending[i+1:]...)
		x.move(e)
	}
	return false
}

// nextReady returns the index of the first pending entry whose target is
// not the current location of another pending entry, or -1.
func (x *executor) nextReady() int {
	for i, e := range x.pending {
		if occ, ok := x.occupied[e.Target]; !ok || occ == e {
			return i
		}
	}
	return -1
}

// cycleMember follows the wait chain from the first pending entry until an
// entry repeats. The repeated entry lies on a cycle.
func (x *executor) cycleMember() *planner.Entry {
	seen := make(map[*planner.Entry]bool)
	e := x.pending[0]
	for !seen[e] {
		seen[e] = true
		e = x.occupied[e.Target]
	}
	return e
}

func (x *executor) park(e *planner.Entry) {
	from := x.loc[e]
	tmp, err := x.tempPath(e)
	if err == nil {
		err = x.mover.Move(from, tmp)
	}
	if err != nil {
		x.remove(e)
		delete(x.occupied, from)
		x.fail(e, from, err)
		return
	}
	x.log.Debug("Parked %s at %s", from, tmp)
	delete(x.occupied, from)
	x.loc[e] = tmp
	x.occupied[tmp] = e
	x.parked++
}

func (x *executor) move(e *planner.Entry) {
	from := x.loc[e]
	delete(x.occupied, from)
	delete(x.loc, e)
	wasParked := from != e.Source
	if wasParked {
		x.parked--
	}

	if cause, ok := x.stuck[e.Target]; ok {
		x.fail(e, from, fmt.Errorf("%w: %v", ErrBlocked, cause))
		return
	}
	if err := x.mover.Move(from, e.Target); err != nil {
		if wasParked {
			err = fmt.Errorf("%w (file left at %s)", err, from)
		}
		x.fail(e, from, err)
		return
	}
	e.Status = planner.StatusRenamed
	x.log.Debug("Renamed %s -> %s", e.Source, e.Target)
	x.settle(e)
}

// fail records err on e. The file still sits at path, so any entry that
// targets path can no longer proceed.
func (x *executor) fail(e *planner.Entry, path string, err error) {
	e.Status = planner.StatusFailed
	e.Err = err
	x.stuck[path] = err
	x.log.Debug("Rename failed for %s: %v", e.Source, err)
	x.settle(e)
}

func (x *executor) skipRemaining() {
	for _, e := range x.pending {
		e.Status = planner.StatusSkipped
		e.Err = context.Canceled
		x.settle(e)
	}
	x.pending = nil
}

func (x *executor) settle(e *planner.Entry) {
	if x.outcome != nil {
		x.outcome(e)
	}
}

func (x *executor) remove(e *planner.Entry) {
	for i, p := range x.pending {
		if p == e {
			x.pending = append(x.pending[:i], x.pending[i+1:]...)
			return
		}
	}
}

// tempPath picks an unused hidden name next to the entry's source.
func (x *executor) tempPath(e *planner.Entry) (string, error) {
	dir := filepath.Dir(e.Source)
	base := filepath.Base(e.Source)
	for n := 0; ; n++ {
		p := filepath.Join(dir, fmt.Sprintf(".%s.renamer-%d.tmp", base, n))
		if _, ok := x.occupied[p]; ok {
			continue
		}
		exists, err := x.mover.Exists(p)
		if err != nil {
			return "", err
		}
		if !exists {
			return p, nil
		}
	}
}
