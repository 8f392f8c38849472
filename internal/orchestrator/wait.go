package orchestrator

import (
	"context"
	"fmt"

	"tasnim.dev/netlab/internal/cloud"
)

// checkpoint blocks until every instance reaches target. It is the only place
// a run waits on instance state.
func (r *run) checkpoint(ctx context.Context, ids []string, target cloud.InstanceState) error {
	if len(ids) == 0 {
		return nil
	}
	if r.waiter == nil {
		return fmt.Errorf("no instance waiter configured")
	}

	r.plog.Info().Strs("instances", ids).Str("target", string(target)).Dur("timeout", r.s.WaitTimeout).Msg("Waiting for instances")
	start := r.clk.Now()
	if err := r.waiter.WaitForInstances(ctx, ids, target, r.s.WaitTimeout); err != nil {
		return fmt.Errorf("waiting for %v to be %s: %w", ids, target, err)
	}
	r.plog.Info().Strs("instances", ids).Dur("waited", r.clk.Since(start)).Msgf("Instances %s", target)
	return nil
}
