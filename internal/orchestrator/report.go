package orchestrator

import (
	"errors"
	"time"

	"tasnim.dev/netlab/internal/cloud"
	"tasnim.dev/netlab/internal/retry"
)

// Resource kinds used in reports and metrics.
const (
	KindSubnet           = "subnet"
	KindInternetGateway  = "internet-gateway"
	KindRouteTable       = "route-table"
	KindSecurityGroup    = "security-group"
	KindInstance         = "instance"
	KindNetworkInterface = "network-interface"
	KindScope            = "vpc"
)

type PhaseRecord struct {
	Phase    Phase
	Started  time.Time
	Duration time.Duration
	Err      error
}

type ResourceRecord struct {
	Kind string
	ID   string
	Name string
}

// Warning is a non-fatal problem. Err is a *retry.PartialTeardownWarning when
// the attempt budget ran out, otherwise the error the classifier dropped.
type Warning struct {
	Phase    Phase
	Resource string
	Err      error
}

// Partial reports whether the warning came from an exhausted retry budget.
func (w Warning) Partial() bool {
	var p *retry.PartialTeardownWarning
	return errors.As(w.Err, &p)
}

// Report summarizes one run.
type Report struct {
	RunID     string
	Operation string
	Scope     cloud.ScopeRef
	ScopeID   string
	Started   time.Time
	Duration  time.Duration
	Phases    []PhaseRecord
	Created   []ResourceRecord
	Deleted   []ResourceRecord
	Warnings  []Warning
	Err       error
}

// DeletedIDs returns the ids removed for one kind, in deletion order.
func (r *Report) DeletedIDs(kind string) []string {
	var ids []string
	for _, d := range r.Deleted {
		if d.Kind == kind {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

func (r *Report) CreatedIDs(kind string) []string {
	var ids []string
	for _, c := range r.Created {
		if c.Kind == kind {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// PhaseOrder lists the phases that ran, in order.
func (r *Report) PhaseOrder() []Phase {
	out := make([]Phase, 0, len(r.Phases))
	for _, p := range r.Phases {
		out = append(out, p.Phase)
	}
	return out
}

// Handles are the identifiers returned by the control plane during provisioning,
// keyed by topology role.
type Handles struct {
	ScopeID           string
	Subnets           map[cloud.SubnetRole]string
	InternetGatewayID string
	RouteTables       map[cloud.RouteTableRole]string
	Associations      map[cloud.SubnetRole]string
	SecurityGroups    map[cloud.SecurityGroupRole]string
	Instances         map[cloud.InstanceRole]string
}

func newHandles() *Handles {
	return &Handles{
		Subnets:        make(map[cloud.SubnetRole]string),
		RouteTables:    make(map[cloud.RouteTableRole]string),
		Associations:   make(map[cloud.SubnetRole]string),
		SecurityGroups: make(map[cloud.SecurityGroupRole]string),
		Instances:      make(map[cloud.InstanceRole]string),
	}
}
