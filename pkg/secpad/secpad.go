package secpad

import (
	"context"
	"io"

	"github.com/bft-labs/secpad/internal/adapters/fs"
	"github.com/bft-labs/secpad/internal/app"
	"github.com/bft-labs/secpad/internal/domain"
	"github.com/bft-labs/secpad/internal/ports"
	"github.com/bft-labs/secpad/pkg/log"
)

// Re-exported types.
type (
	// Section is a parsed section file name.
	Section = domain.Section

	// RenamePlan is a single rename instruction.
	RenamePlan = domain.RenamePlan

	// Report summarizes a pass.
	Report = domain.Report

	// Failure describes a rename that could not be performed.
	Failure = domain.Failure

	// Policy decides what happens after a rename fails.
	Policy = app.Policy

	// ReportStore persists reports.
	ReportStore = ports.ReportStore
)

// Policies.
const (
	PolicyAbort    = app.PolicyAbort
	PolicyContinue = app.PolicyContinue
)

// Errors returned by Run, for use with errors.Is.
var (
	ErrDestinationExists = domain.ErrDestinationExists
	ErrAborted           = domain.ErrAborted
	ErrPartial           = domain.ErrPartial
)

// Classify parses name as a section file. Names that are not section files
// report false.
func Classify(name string) (Section, bool) {
	return domain.Classify(name)
}

// Normalize renders s in canonical form.
func Normalize(s Section) string {
	return domain.Normalize(s)
}

// Plan returns the renames needed to normalize entries, in input order.
func Plan(entries []string) []RenamePlan {
	return domain.Plan(entries)
}

// Option configures optional behavior of Run.
type Option func(*options)

type options struct {
	logger log.Logger
	out    io.Writer
	store  ports.ReportStore
	dryRun bool
	policy Policy
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		out:    io.Discard,
		policy: PolicyAbort,
	}
}

// WithLogger sets a structured logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where the per-rename console lines are written.
// The default discards them.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithReportStore saves the report of the pass to store.
func WithReportStore(store ReportStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithDryRun plans and announces renames without performing them.
func WithDryRun(dryRun bool) Option {
	return func(o *options) {
		o.dryRun = dryRun
	}
}

// WithPolicy selects the failure policy. The default is PolicyAbort.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Run normalizes the section files in dir and returns the report of the pass.
func Run(ctx context.Context, dir string, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	runner := app.NewRunner(
		app.RunnerConfig{Dir: dir, DryRun: o.dryRun, Policy: o.policy},
		fs.NewOS(),
		o.store,
		o.logger,
		o.out,
	)
	return runner.Run(ctx)
}
