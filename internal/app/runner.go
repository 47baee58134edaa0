package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bft-labs/secpad/internal/domain"
	"github.com/bft-labs/secpad/internal/ports"
)

// Console lines printed for the user. They carry no control meaning.
const (
	renameLine   = "Renombrando: %s → %s\n"
	completeLine = "✅ Renombrado completo con ceros a la izquierda.\n"
)

// Policy decides what a pass does after a rename fails.
type Policy string

const (
	// PolicyAbort stops the pass at the first failed rename.
	PolicyAbort Policy = "abort"

	// PolicyContinue records the failure and moves on to the next rename.
	PolicyContinue Policy = "continue"
)

// ParsePolicy converts a policy name to a Policy. Empty means PolicyAbort.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicyContinue:
		return PolicyContinue, nil
	default:
		return "", fmt.Errorf("%w: unknown on-error policy %q (want abort or continue)", domain.ErrInvalidConfig, s)
	}
}

// RunnerConfig contains configuration for a normalization pass.
type RunnerConfig struct {
	Dir    string
	DryRun bool
	Policy Policy
}

// Runner performs normalization passes over one directory.
// A pass lists the directory once, plans the renames and executes them in
// plan order. Renames already performed are never rolled back.
type Runner struct {
	config RunnerConfig
	fs     ports.FileSystem
	store  ports.ReportStore
	logger ports.Logger
	out    io.Writer
	now    func() time.Time
}

// NewRunner creates a runner. store may be nil when no report is wanted.
// Console lines are written to out.
func NewRunner(
	config RunnerConfig,
	fsys ports.FileSystem,
	store ports.ReportStore,
	logger ports.Logger,
	out io.Writer,
) *Runner {
	if config.Policy == "" {
		config.Policy = PolicyAbort
	}
	return &Runner{
		config: config,
		fs:     fsys,
		store:  store,
		logger: logger,
		out:    out,
		now:    time.Now,
	}
}

// Dir returns the directory the runner normalizes.
func (r *Runner) Dir() string {
	return r.config.Dir
}

// Run executes one pass and returns its report.
//
// A listing failure is returned as is. Under PolicyAbort the first rename
// failure stops the pass and the error wraps domain.ErrAborted; under
// PolicyContinue every plan is attempted and the error wraps
// domain.ErrPartial when any failed. Context cancellation stops the pass
// before the next rename.
func (r *Runner) Run(ctx context.Context) (domain.Report, error) {
	report := domain.Report{
		Dir:       r.config.Dir,
		DryRun:    r.config.DryRun,
		StartedAt: r.now(),
	}

	entries, err := r.fs.ListEntries(ctx, r.config.Dir)
	if err != nil {
		r.logger.Error("failed to list directory", ports.String("dir", r.config.Dir), ports.Err(err))
		return report, err
	}

	plans, stats := domain.Analyze(entries)
	report.Scanned = stats.Scanned
	report.Matched = stats.Matched
	report.NoOp = stats.NoOp
	report.Planned = len(plans)

	r.logger.Debug("planned pass",
		ports.String("dir", r.config.Dir),
		ports.Int("scanned", stats.Scanned),
		ports.Int("matched", stats.Matched),
		ports.Int("planned", len(plans)),
	)

	runErr := r.execute(ctx, entries, plans, &report)
	report.FinishedAt = r.now()

	if runErr == nil && !r.config.DryRun {
		fmt.Fprint(r.out, completeLine)
	}

	r.logger.Info("pass finished",
		ports.String("dir", r.config.Dir),
		ports.Bool("dry_run", r.config.DryRun),
		ports.Int("scanned", report.Scanned),
		ports.Int("matched", report.Matched),
		ports.Int("planned", report.Planned),
		ports.Int("renamed", report.Renamed),
		ports.Int("skipped", report.Skipped),
		ports.Int("failed", report.Failed),
	)

	if r.store != nil {
		if err := r.store.Save(ctx, report); err != nil {
			if runErr == nil {
				return report, fmt.Errorf("save report: %w", err)
			}
			r.logger.Error("failed to save report", ports.Err(err))
		}
	}

	return report, runErr
}

func (r *Runner) execute(ctx context.Context, entries []string, plans []domain.RenamePlan, report *domain.Report) error {
	var sim *dryRun
	if r.config.DryRun {
		sim = newDryRun(entries)
	}

	for i, p := range plans {
		if err := ctx.Err(); err != nil {
			report.Skipped += len(plans) - i
			r.logger.Warn("pass canceled", ports.Int("remaining", len(plans)-i))
			return err
		}

		fmt.Fprintf(r.out, renameLine, p.Old, p.New)

		var err error
		if sim != nil {
			err = sim.rename(p)
		} else {
			err = r.fs.Rename(ctx, r.config.Dir, p.Old, p.New)
		}

		if err != nil {
			code := domain.CodeOf(err)
			report.AddFailure(domain.Failure{Old: p.Old, New: p.New, Code: code, Reason: err.Error()})
			r.logger.Error("rename failed",
				ports.String("from", p.Old),
				ports.String("to", p.New),
				ports.String("code", code),
				ports.Err(err),
			)

			if r.config.Policy == PolicyAbort {
				report.Skipped += len(plans) - i - 1
				return fmt.Errorf("%w: %w", domain.ErrAborted, err)
			}
			continue
		}

		report.Renamed++
		if sim != nil {
			r.logger.Debug("dry run: rename not performed", ports.String("from", p.Old), ports.String("to", p.New))
		} else {
			r.logger.Info("renamed", ports.String("from", p.Old), ports.String("to", p.New))
		}
	}

	if report.Failed > 0 {
		return fmt.Errorf("%w: %d of %d renames failed", domain.ErrPartial, report.Failed, report.Planned)
	}
	return nil
}

// dryRun replays renames against the listed names instead of the disk, so a
// dry run reports the same collisions a real pass would hit.
type dryRun struct {
	present map[string]bool
}

func newDryRun(entries []string) *dryRun {
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e] = true
	}
	return &dryRun{present: present}
}

func (d *dryRun) rename(p domain.RenamePlan) error {
	if d.present[p.New] {
		return &domain.RenameError{Old: p.Old, New: p.New, Code: domain.ErrCodeDestinationExists, Err: domain.ErrDestinationExists}
	}
	delete(d.present, p.Old)
	d.present[p.New] = true
	return nil
}
