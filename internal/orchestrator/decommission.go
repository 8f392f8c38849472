package orchestrator

import (
	"context"
	"fmt"
	"time"

	"tasnim.dev/netlab/internal/cloud"
	"tasnim.dev/netlab/internal/retry"
)

// Decommissioner removes everything inside a scope in reverse dependency
// order. Only an unresolvable scope aborts it; every other failure becomes a
// warning in the report.
type Decommissioner struct {
	deps Deps
}

func NewDecommissioner(deps Deps) *Decommissioner {
	return &Decommissioner{deps: deps}
}

func (d *Decommissioner) Decommission(ctx context.Context, ref cloud.ScopeRef) (*Report, error) {
	r := newRun(d.deps, "decommission", ref)
	ds := &decommissionRun{run: r}

	err := r.runPhases(ctx, []step{
		{PhaseResolveScope, ds.resolveScope},
		{PhaseTerminateInstances, ds.terminateInstances},
		{PhaseDeleteNetworkInterfaces, ds.deleteNetworkInterfaces},
		{PhaseDeleteSecurityGroups, ds.deleteSecurityGroups},
		{PhaseDeleteInternetGateway, ds.deleteInternetGateways},
		{PhaseDeleteRouteTables, ds.deleteRouteTables},
		{PhaseDeleteSubnets, ds.deleteSubnets},
	})
	return r.finish(err), err
}

// DeleteScope removes the VPC itself. It is never part of Decommission and
// returns an error when the scope is still there afterwards.
func (d *Decommissioner) DeleteScope(ctx context.Context, scopeID string) (*Report, error) {
	r := newRun(d.deps, "delete-scope", cloud.ScopeRef{ID: scopeID})
	r.report.ScopeID = scopeID
	ds := &decommissionRun{run: r, scopeID: scopeID}

	err := r.runPhases(ctx, []step{{PhaseDeleteScope, ds.deleteScope}})
	return r.finish(err), err
}

type decommissionRun struct {
	*run
	scopeID string
}

func (d *decommissionRun) resolveScope(ctx context.Context) error {
	scope, err := d.cloud.DescribeScope(ctx, d.report.Scope)
	if err != nil {
		if cloud.IsNotFound(err) {
			return &cloud.FatalConfigurationError{Phase: d.phase.String(), Err: fmt.Errorf("scope %s: %w", d.report.Scope, err)}
		}
		return fmt.Errorf("resolve scope %s: %w", d.report.Scope, err)
	}
	d.scopeID = scope.ID
	d.report.ScopeID = scope.ID
	d.plog.Info().Str("vpc_id", scope.ID).Str("name", scope.Name).Msg("Resolved scope")
	return nil
}

func (d *decommissionRun) terminateInstances(ctx context.Context) error {
	instances, ok := list(ctx, d, "instances", func(ctx context.Context) ([]cloud.Instance, error) {
		return d.cloud.DescribeInstances(ctx, d.scopeID, cloud.LiveInstanceStates)
	})
	if !ok {
		return nil
	}
	if len(instances) == 0 {
		d.plog.Info().Msg("No instances to terminate")
		return nil
	}

	ids := make([]string, 0, len(instances))
	for _, inst := range instances {
		ids = append(ids, inst.ID)
	}
	d.plog.Info().Strs("instances", ids).Msg("Terminating instances")

	err := retry.Do(ctx, "instances", func(ctx context.Context) error {
		err := d.cloud.TerminateInstances(ctx, ids)
		if cloud.IsNotFound(err) {
			return nil
		}
		return err
	}, dependencyOrTransport, d.retryOpts(d.s.InterfaceRetryInterval)...)
	if err != nil {
		d.warn(fmt.Sprintf("instances %v", ids), err)
		return nil
	}

	if err := d.checkpoint(ctx, ids, cloud.InstanceStateTerminated); err != nil {
		d.warn(fmt.Sprintf("instances %v", ids), err)
	} else {
		for _, id := range ids {
			d.deleted(KindInstance, id)
		}
	}

	// Interfaces and group references are released some time after termination.
	return d.sleep(ctx, d.s.SettleInterval)
}

func (d *decommissionRun) deleteNetworkInterfaces(ctx context.Context) error {
	enis, ok := list(ctx, d, "network interfaces", func(ctx context.Context) ([]cloud.NetworkInterface, error) {
		return d.cloud.DescribeNetworkInterfaces(ctx, d.scopeID)
	})
	if !ok {
		return nil
	}

	var owned []cloud.NetworkInterface
	for _, n := range enis {
		if n.RequesterManaged {
			d.plog.Debug().Str("id", n.ID).Msg("Skipping requester-managed interface")
			continue
		}
		owned = append(owned, n)
	}

	detached := make(map[string]bool)
	deleteAll(ctx, d, KindNetworkInterface, owned,
		func(n cloud.NetworkInterface) string { return n.ID },
		func(ctx context.Context, n cloud.NetworkInterface) error {
			if n.Attached() && !detached[n.ID] {
				if err := d.cloud.DetachNetworkInterface(ctx, n.Attachment.ID, true); err != nil && !cloud.IsNotFound(err) {
					return fmt.Errorf("detach: %w", err)
				}
				detached[n.ID] = true
				if err := d.sleep(ctx, d.s.DetachDelay); err != nil {
					return err
				}
			}
			return d.cloud.DeleteNetworkInterface(ctx, n.ID)
		},
		retry.Always, d.s.InterfaceRetryInterval)
	return nil
}

func (d *decommissionRun) deleteSecurityGroups(ctx context.Context) error {
	groups, ok := list(ctx, d, "security groups", func(ctx context.Context) ([]cloud.SecurityGroup, error) {
		return d.cloud.DescribeSecurityGroups(ctx, d.scopeID)
	})
	if !ok {
		return nil
	}

	var custom []cloud.SecurityGroup
	for _, sg := range groups {
		if sg.IsDefault() {
			continue
		}
		custom = append(custom, sg)
	}

	deleteAll(ctx, d, KindSecurityGroup, custom,
		func(sg cloud.SecurityGroup) string { return sg.ID },
		func(ctx context.Context, sg cloud.SecurityGroup) error {
			return d.cloud.DeleteSecurityGroup(ctx, sg.ID)
		},
		dependencyOrTransport, d.s.SecurityGroupRetryInterval)
	return nil
}

func (d *decommissionRun) deleteInternetGateways(ctx context.Context) error {
	gateways, ok := list(ctx, d, "internet gateways", func(ctx context.Context) ([]cloud.InternetGateway, error) {
		return d.cloud.DescribeInternetGateways(ctx, d.scopeID)
	})
	if !ok {
		return nil
	}
	if len(gateways) == 0 {
		d.plog.Info().Msg("No internet gateway attached")
		return nil
	}

	deleteAll(ctx, d, KindInternetGateway, gateways,
		func(gw cloud.InternetGateway) string { return gw.ID },
		func(ctx context.Context, gw cloud.InternetGateway) error {
			if err := d.cloud.DetachInternetGateway(ctx, gw.ID, d.scopeID); err != nil && !cloud.IsNotFound(err) {
				return fmt.Errorf("detach: %w", err)
			}
			return d.cloud.DeleteInternetGateway(ctx, gw.ID)
		},
		dependencyOrTransport, d.s.SubnetRetryInterval)
	return nil
}

func (d *decommissionRun) deleteRouteTables(ctx context.Context) error {
	tables, ok := list(ctx, d, "route tables", func(ctx context.Context) ([]cloud.RouteTable, error) {
		return d.cloud.DescribeRouteTables(ctx, d.scopeID)
	})
	if !ok {
		return nil
	}

	var custom []cloud.RouteTable
	for _, rt := range tables {
		if rt.IsMain() {
			d.plog.Debug().Str("id", rt.ID).Msg("Skipping main route table")
			continue
		}
		custom = append(custom, rt)
	}

	disassociated := make(map[string]bool)
	deleteAll(ctx, d, KindRouteTable, custom,
		func(rt cloud.RouteTable) string { return rt.ID },
		func(ctx context.Context, rt cloud.RouteTable) error {
			for _, a := range rt.Associations {
				if a.Main || disassociated[a.ID] {
					continue
				}
				if err := d.cloud.DisassociateRouteTable(ctx, a.ID); err != nil && !cloud.IsNotFound(err) {
					return fmt.Errorf("disassociate %s: %w", a.ID, err)
				}
				disassociated[a.ID] = true
			}
			return d.cloud.DeleteRouteTable(ctx, rt.ID)
		},
		dependencyOrTransport, d.s.SubnetRetryInterval)
	return nil
}

func (d *decommissionRun) deleteSubnets(ctx context.Context) error {
	subnets, ok := list(ctx, d, "subnets", func(ctx context.Context) ([]cloud.Subnet, error) {
		return d.cloud.DescribeSubnets(ctx, d.scopeID)
	})
	if !ok {
		return nil
	}

	deleteAll(ctx, d, KindSubnet, subnets,
		func(s cloud.Subnet) string { return s.ID },
		func(ctx context.Context, s cloud.Subnet) error {
			return d.cloud.DeleteSubnet(ctx, s.ID)
		},
		dependencyOrTransport, d.s.SubnetRetryInterval)
	return nil
}

func (d *decommissionRun) deleteScope(ctx context.Context) error {
	absent := false
	err := retry.Do(ctx, d.scopeID, func(ctx context.Context) error {
		err := d.cloud.DeleteScope(ctx, d.scopeID)
		if cloud.IsNotFound(err) {
			absent = true
			return nil
		}
		return err
	}, dependencyOrTransport, d.retryOpts(d.s.SubnetRetryInterval)...)
	if err != nil {
		return fmt.Errorf("delete vpc %s: %w", d.scopeID, err)
	}
	if absent {
		d.plog.Info().Str("id", d.scopeID).Msg("VPC already removed")
		return nil
	}
	d.deleted(KindScope, d.scopeID)
	return nil
}

// list runs a describe call with transport retries. On failure it records a
// warning and reports false so the phase can be skipped.
func list[T any](ctx context.Context, d *decommissionRun, what string, describe func(context.Context) ([]T, error)) ([]T, bool) {
	var out []T
	err := retry.Do(ctx, what, func(ctx context.Context) error {
		var err error
		out, err = describe(ctx)
		return err
	}, transportOnly, d.retryOpts(d.s.SubnetRetryInterval)...)
	if err != nil {
		d.warn(what, fmt.Errorf("describe: %w", err))
		return nil, false
	}
	return out, true
}

// deleteAll removes items with a retry batch. Not-found counts as already
// removed; dropped and exhausted items become warnings.
func deleteAll[T any](ctx context.Context, d *decommissionRun, kind string, items []T, key func(T) string, del func(context.Context, T) error, classify retry.Classifier, interval time.Duration) {
	if len(items) == 0 {
		d.plog.Info().Str("kind", kind).Msg("Nothing to delete")
		return
	}

	absent := make(map[string]bool)
	res := retry.Batch(ctx, items, key, func(ctx context.Context, item T) error {
		err := del(ctx, item)
		if cloud.IsNotFound(err) {
			absent[key(item)] = true
			return nil
		}
		return err
	}, classify, d.retryOpts(interval)...)

	for _, item := range res.Succeeded {
		k := key(item)
		if absent[k] {
			d.plog.Debug().Str("kind", kind).Str("id", k).Msg("Already removed")
			continue
		}
		d.deleted(kind, k)
	}
	for _, f := range res.Dropped {
		d.warn(f.Key, f.Err)
	}
	for _, w := range res.Warnings {
		d.warn(w.Resource, w)
	}
}
