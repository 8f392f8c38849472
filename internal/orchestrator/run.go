package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"k8s.io/utils/clock"

	"tasnim.dev/netlab/internal/cloud"
	"tasnim.dev/netlab/internal/retry"
)

type step struct {
	phase Phase
	run   func(ctx context.Context) error
}

// run is the per-invocation state shared by both orchestrators.
type run struct {
	cloud   cloud.ControlPlane
	waiter  cloud.InstanceWaiter
	clk     clock.Clock
	metrics Recorder
	s       Settings
	log     zerolog.Logger

	phase  Phase
	plog   zerolog.Logger
	report *Report
}

func newRun(deps Deps, operation string, ref cloud.ScopeRef) *run {
	id := deps.RunID
	if id == "" {
		id = uuid.NewString()
	}
	clk := deps.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	var metrics Recorder = nopRecorder{}
	if deps.Metrics != nil {
		metrics = deps.Metrics
	}
	s := deps.Settings
	if s.RetryAttempts < 1 {
		s.RetryAttempts = retry.DefaultAttempts
	}

	log := deps.Logger.With().Str("run_id", id).Str("operation", operation).Logger()
	return &run{
		cloud:   deps.Cloud,
		waiter:  deps.Waiter,
		clk:     clk,
		metrics: metrics,
		s:       s,
		log:     log,
		plog:    log,
		report: &Report{
			RunID:     id,
			Operation: operation,
			Scope:     ref,
			Started:   clk.Now(),
		},
	}
}

// runPhases executes steps in order and stops at the first error.
// Cancellation of ctx is honored only between phases; a phase body runs
// against a context that is never canceled so its API calls finish.
func (r *run) runPhases(ctx context.Context, steps []step) error {
	body := context.WithoutCancel(ctx)
	var last *Phase
	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			r.log.Warn().Err(err).Msg("Stopping at phase boundary")
			return &CanceledError{After: last, Err: err}
		}

		r.phase = st.phase
		r.plog = r.log.With().Str("phase", st.phase.String()).Logger()
		r.plog.Info().Msgf("Starting phase %d/%d", i+1, len(steps))

		start := r.clk.Now()
		err := st.run(body)
		d := r.clk.Since(start)

		r.report.Phases = append(r.report.Phases, PhaseRecord{Phase: st.phase, Started: start, Duration: d, Err: err})
		r.metrics.ObservePhase(r.report.Operation, st.phase.String(), d, err == nil)
		if err != nil {
			r.plog.Error().Err(err).Dur("duration", d).Msg("Phase failed")
			return &PhaseError{Phase: st.phase, Err: err}
		}
		r.plog.Info().Dur("duration", d).Msg("Phase completed")
		last = &steps[i].phase
	}
	return nil
}

func (r *run) finish(err error) *Report {
	r.report.Duration = r.clk.Since(r.report.Started)
	r.report.Err = err
	ev := r.log.Info()
	if err != nil {
		ev = r.log.Error().Err(err)
	}
	ev.Int("created", len(r.report.Created)).
		Int("deleted", len(r.report.Deleted)).
		Int("warnings", len(r.report.Warnings)).
		Dur("duration", r.report.Duration).
		Msg("Run finished")
	return r.report
}

func (r *run) created(kind, id, name string) {
	r.report.Created = append(r.report.Created, ResourceRecord{Kind: kind, ID: id, Name: name})
	r.metrics.CountResource(r.phase.String(), "created")
	r.plog.Info().Str("kind", kind).Str("id", id).Str("name", name).Msg("Created")
}

func (r *run) deleted(kind, id string) {
	r.report.Deleted = append(r.report.Deleted, ResourceRecord{Kind: kind, ID: id})
	r.metrics.CountResource(r.phase.String(), "deleted")
	r.plog.Info().Str("kind", kind).Str("id", id).Msg("Deleted")
}

func (r *run) warn(resource string, err error) {
	w := Warning{Phase: r.phase, Resource: resource, Err: err}
	r.report.Warnings = append(r.report.Warnings, w)
	outcome := "dropped"
	if w.Partial() {
		outcome = "partial"
	}
	r.metrics.CountResource(r.phase.String(), outcome)
	r.plog.Warn().Err(err).Str("resource", resource).Msg("Continuing without removing resource")
}

// retryOpts builds the retry options for the current phase.
func (r *run) retryOpts(interval time.Duration) []retry.Option {
	return []retry.Option{
		retry.WithAttempts(r.s.RetryAttempts),
		retry.WithInterval(interval),
		retry.WithClock(r.clk),
		retry.WithFailureHook(func(attempt int, key string, err error, d retry.Disposition) {
			if d == retry.Retry {
				r.metrics.CountResource(r.phase.String(), "retried")
			}
			r.plog.Debug().Err(err).Int("attempt", attempt).Str("resource", key).Msg("Attempt failed")
		}),
	}
}

// sleep blocks on the injected clock unless ctx is done first.
func (r *run) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	r.plog.Debug().Dur("delay", d).Msg("Waiting for control plane to settle")
	r.clk.Sleep(d)
	return ctx.Err()
}

func dependencyOrTransport(err error) retry.Disposition {
	if cloud.IsStillReferenced(err) || cloud.IsTransport(err) {
		return retry.Retry
	}
	return retry.Drop
}

func transportOnly(err error) retry.Disposition {
	if cloud.IsTransport(err) {
		return retry.Retry
	}
	return retry.Drop
}
