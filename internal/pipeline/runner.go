package pipeline

import (
	"context"
	"errors"

	"github.com/spf13/afero"

	"github.com/backmassage/renamer/internal/check"
	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/fsop"
	"github.com/backmassage/renamer/internal/planner"
)

// Exit codes of a run.
const (
	ExitOK      = 0 // Every planned rename succeeded, or the dry run was clean.
	ExitInvalid = 1 // Bad input, rejected plan or nothing was touched.
	ExitPartial = 2 // Some renames failed or were interrupted.
)

// Logger is the logging surface the pipeline needs. *logging.Logger
// satisfies it.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Reporter renders the plan and its outcome for the user.
type Reporter interface {
	// Preview shows a validated plan that will not be applied.
	Preview(plan *planner.Plan)
	// Conflicts shows why a plan was rejected.
	Conflicts(plan *planner.Plan, err *planner.ConflictError)
	// Outcome is called once per entry as execution settles it.
	Outcome(e *planner.Entry)
	// Summary closes the report. A write failure is returned.
	Summary(res *Result) error
}

// Result is the final state of one run.
type Result struct {
	Stage       Stage
	DryRun      bool
	Plan        *planner.Plan // Nil when the run stopped before planning.
	Stats       RunStats
	Interrupted bool
	Err         error // Why the run was rejected, if it was.
}

// ExitCode maps the result to the process exit status.
func (r *Result) ExitCode() int {
	switch {
	case r.Stage == StageApplied && (r.Stats.Failed > 0 || r.Interrupted):
		return ExitPartial
	case r.Stage == StageApplied:
		return ExitOK
	case r.Err != nil || r.Interrupted:
		return ExitInvalid
	default:
		return ExitOK
	}
}

// Run drives one invocation through the stages and returns its result.
// Nothing on disk changes unless cfg.Mutates() and validation passes.
//
// Flow:
//  1. Check inputs exist
//  2. Enumerate files
//  3. Build the plan (and de-duplicate targets if asked)
//  4. Validate the whole plan; reject it on any conflict
//  5. Preview, or execute renames in dependency order
func Run(ctx context.Context, cfg *config.Config, fsys afero.Fs, log Logger, rep Reporter) *Result {
	res := &Result{Stage: StageIdle, DryRun: !cfg.Mutates()}
	finish := func() *Result {
		res.Stats = collectStats(res.Stats.Total, res.Plan)
		if err := rep.Summary(res); err != nil {
			log.Error("Writing report failed: %v", err)
		}
		return res
	}
	reject := func(err error) *Result {
		res.Stage = StageRejected
		res.Err = err
		if res.Plan != nil {
			for _, e := range res.Plan.Changes() {
				e.Status = planner.StatusSkipped
			}
		}
		return finish()
	}

	if err := check.Inputs(fsys, cfg.Paths, log); err != nil {
		log.Error("%v", err)
		return reject(err)
	}

	files, err := Discover(fsys, cfg.Paths, DiscoverOptions{Recursive: cfg.Recursive, Match: cfg.Match})
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return reject(err)
	}
	res.Stage = StageEnumerated
	res.Stats.Total = len(files)
	log.Debug("Found %d files", len(files))

	rule, err := cfg.Rule()
	if err != nil {
		log.Error("%v", err)
		return reject(err)
	}
	res.Plan = planner.Build(files, rule)
	res.Stage = StagePlanned
	log.Debug("Rule %s matched %d of %d files", rule, len(res.Plan.Entries), len(files))

	if cfg.Dedupe {
		if err := planner.Dedupe(fsys, res.Plan, cfg.Overwrite); err != nil {
			log.Error("De-duplicating targets failed: %v", err)
			return reject(err)
		}
	}

	opts := planner.Options{Overwrite: cfg.Overwrite}
	if err := planner.Validate(fsys, res.Plan, opts); err != nil {
		var conflicts *planner.ConflictError
		if errors.As(err, &conflicts) {
			if res.DryRun {
				rep.Preview(res.Plan)
			}
			rep.Conflicts(res.Plan, conflicts)
			log.Error("Plan rejected with %d conflicts; nothing was renamed", len(conflicts.Issues))
		} else {
			log.Error("Validation failed: %v", err)
		}
		return reject(err)
	}
	res.Stage = StageValidated

	if res.DryRun {
		rep.Preview(res.Plan)
		return finish()
	}

	if ctx.Err() != nil {
		log.Warn("Interrupted before any rename")
		res.Interrupted = true
		for _, e := range res.Plan.Changes() {
			e.Status = planner.StatusSkipped
		}
		return finish()
	}

	changes := len(res.Plan.Changes())
	if changes > 0 {
		log.Info("Renaming %d files", changes)
	}
	mover := fsop.NewMover(fsys, cfg.Overwrite)
	res.Interrupted = Execute(ctx, mover, res.Plan, log, rep.Outcome)
	res.Stage = StageApplied
	finish()
	switch {
	case res.Interrupted:
		log.Warn("Interrupted; %d renames skipped", res.Stats.Skipped)
	case res.Stats.Failed > 0:
		log.Warn("%d of %d renames failed", res.Stats.Failed, changes)
	case changes > 0:
		log.Success("All %d renames applied", res.Stats.Renamed)
	}
	return res
}
