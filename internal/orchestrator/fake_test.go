package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"k8s.io/utils/clock"
	testingclock "k8s.io/utils/clock/testing"

	"tasnim.dev/netlab/internal/cloud"
)

// fakeCloud is an in-memory control plane that enforces the same dependency
// rules as the real one and logs every call in order.
type fakeCloud struct {
	mu       sync.Mutex
	seq      int
	calls    []string
	failures map[string][]error
	always   map[string]error

	scope       cloud.Scope
	scopeGone   bool
	attrs       map[cloud.ScopeAttribute]bool
	subnets     []cloud.Subnet
	gateways    []cloud.InternetGateway
	routeTables []cloud.RouteTable
	groups      []cloud.SecurityGroup
	enis        []cloud.NetworkInterface
	instances   []cloud.Instance
	ingress     map[string][]cloud.IngressRule
	routes      map[string][]cloud.Route
	runInputs   []cloud.RunInstanceInput

	// Terminated instances sit in shutting-down for shutdownDelay, or the
	// per-instance override, before the control plane reports them gone.
	clk           clock.PassiveClock
	shutdownDelay time.Duration
	shutdownAfter map[string]time.Duration
	terminatingAt map[string]time.Time
}

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		failures:      make(map[string][]error),
		always:        make(map[string]error),
		attrs:         make(map[cloud.ScopeAttribute]bool),
		ingress:       make(map[string][]cloud.IngressRule),
		routes:        make(map[string][]cloud.Route),
		shutdownAfter: make(map[string]time.Duration),
		terminatingAt: make(map[string]time.Time),
		scope:         cloud.Scope{ID: "vpc-1", Name: "polystudentlab-vpc", CIDR: "10.0.0.0/16"},
		routeTables: []cloud.RouteTable{{
			ID:           "rtb-main",
			ScopeID:      "vpc-1",
			Associations: []cloud.RouteTableAssociation{{ID: "rtbassoc-main", RouteTableID: "rtb-main", Main: true}},
		}},
		groups: []cloud.SecurityGroup{{ID: "sg-default", Name: cloud.DefaultSecurityGroupName, ScopeID: "vpc-1"}},
	}
}

// failOnce queues errors returned by successive calls matching key ("Op" or "Op arg").
func (f *fakeCloud) failOnce(key string, errs ...error) {
	f.failures[key] = append(f.failures[key], errs...)
}

func (f *fakeCloud) failAlways(key string, err error) {
	f.always[key] = err
}

func (f *fakeCloud) record(op, arg string) error {
	f.settle()
	f.calls = append(f.calls, op+" "+arg)
	for _, k := range []string{op + " " + arg, op} {
		if err, ok := f.always[k]; ok {
			return err
		}
		if errs := f.failures[k]; len(errs) > 0 {
			f.failures[k] = errs[1:]
			return errs[0]
		}
	}
	return nil
}

// settle moves shutting-down instances whose delay has passed to terminated.
// Attached interfaces are left alone; the control plane does not detach them.
func (f *fakeCloud) settle() {
	if f.clk == nil {
		return
	}
	now := f.clk.Now()
	for i := range f.instances {
		at, ok := f.terminatingAt[f.instances[i].ID]
		if !ok || f.instances[i].State != cloud.InstanceStateShuttingDown {
			continue
		}
		delay := f.shutdownDelay
		if d, ok := f.shutdownAfter[f.instances[i].ID]; ok {
			delay = d
		}
		if !now.Before(at.Add(delay)) {
			f.instances[i].State = cloud.InstanceStateTerminated
		}
	}
}

// addInstance places a running instance with a primary interface in subnetID.
func (f *fakeCloud) addInstance(id, subnetID string, groups ...string) {
	f.instances = append(f.instances, cloud.Instance{
		ID:             id,
		SubnetID:       subnetID,
		State:          cloud.InstanceStateRunning,
		SecurityGroups: groups,
	})
	f.attachInterface("eni-"+strings.TrimPrefix(id, "i-"), id, subnetID)
}

func (f *fakeCloud) attachInterface(eniID, instanceID, subnetID string) {
	f.enis = append(f.enis, cloud.NetworkInterface{
		ID:         eniID,
		SubnetID:   subnetID,
		Status:     "in-use",
		Attachment: &cloud.NetworkInterfaceAttachment{ID: "attach-" + eniID, InstanceID: instanceID, Status: "attached"},
	})
}

func (f *fakeCloud) state(id string) (cloud.InstanceState, bool) {
	for _, inst := range f.instances {
		if inst.ID == id {
			return inst.State, true
		}
	}
	return "", false
}

func (f *fakeCloud) id(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeCloud) log() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeCloud) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// args returns the argument of every call to op, in order.
func (f *fakeCloud) args(op string) []string {
	var out []string
	for _, c := range f.log() {
		if name, arg, _ := strings.Cut(c, " "); name == op {
			out = append(out, arg)
		}
	}
	return out
}

func (f *fakeCloud) firstIndex(op string) int {
	for i, c := range f.log() {
		if strings.HasPrefix(c, op+" ") {
			return i
		}
	}
	return -1
}

func (f *fakeCloud) lastIndex(op string) int {
	idx := -1
	for i, c := range f.log() {
		if strings.HasPrefix(c, op+" ") {
			idx = i
		}
	}
	return idx
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, cloud.ErrNotFound)
}

func inUse(id, code string) error {
	return &cloud.RetryableDependencyError{ResourceID: id, Err: errors.New(code)}
}

func (f *fakeCloud) DescribeScope(_ context.Context, ref cloud.ScopeRef) (cloud.Scope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DescribeScope", ref.String()); err != nil {
		return cloud.Scope{}, err
	}
	if f.scopeGone || (ref.ID != "" && ref.ID != f.scope.ID) || (ref.ID == "" && ref.Name != f.scope.Name) {
		return cloud.Scope{}, notFound("vpc " + ref.String())
	}
	return f.scope, nil
}

func (f *fakeCloud) DescribeSubnets(_ context.Context, scopeID string) ([]cloud.Subnet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DescribeSubnets", scopeID); err != nil {
		return nil, err
	}
	return append([]cloud.Subnet(nil), f.subnets...), nil
}

func (f *fakeCloud) DescribeInternetGateways(_ context.Context, scopeID string) ([]cloud.InternetGateway, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DescribeInternetGateways", scopeID); err != nil {
		return nil, err
	}
	var out []cloud.InternetGateway
	for _, gw := range f.gateways {
		for _, s := range gw.AttachedScopes {
			if s == scopeID {
				out = append(out, gw)
			}
		}
	}
	return out, nil
}

func (f *fakeCloud) DescribeRouteTables(_ context.Context, scopeID string) ([]cloud.RouteTable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DescribeRouteTables", scopeID); err != nil {
		return nil, err
	}
	return append([]cloud.RouteTable(nil), f.routeTables...), nil
}

func (f *fakeCloud) DescribeSecurityGroups(_ context.Context, scopeID string) ([]cloud.SecurityGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DescribeSecurityGroups", scopeID); err != nil {
		return nil, err
	}
	return append([]cloud.SecurityGroup(nil), f.groups...), nil
}

func (f *fakeCloud) DescribeNetworkInterfaces(_ context.Context, scopeID string) ([]cloud.NetworkInterface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DescribeNetworkInterfaces", scopeID); err != nil {
		return nil, err
	}
	return append([]cloud.NetworkInterface(nil), f.enis...), nil
}

func (f *fakeCloud) DescribeInstances(_ context.Context, scopeID string, states []cloud.InstanceState) ([]cloud.Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DescribeInstances", scopeID); err != nil {
		return nil, err
	}
	var out []cloud.Instance
	for _, inst := range f.instances {
		for _, s := range states {
			if inst.State == s {
				out = append(out, inst)
			}
		}
	}
	return out, nil
}

func (f *fakeCloud) ModifyScopeAttribute(_ context.Context, scopeID string, attr cloud.ScopeAttribute, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ModifyScopeAttribute", string(attr)); err != nil {
		return err
	}
	f.attrs[attr] = value
	return nil
}

func (f *fakeCloud) ModifySubnetMapPublicIP(_ context.Context, subnetID string, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ModifySubnetMapPublicIP", subnetID); err != nil {
		return err
	}
	for i := range f.subnets {
		if f.subnets[i].ID == subnetID {
			f.subnets[i].MapPublicIP = value
			return nil
		}
	}
	return notFound("subnet " + subnetID)
}

func (f *fakeCloud) CreateSubnet(_ context.Context, s cloud.Subnet) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateSubnet", s.Name); err != nil {
		return "", err
	}
	cidrs := []string{s.CIDR}
	for _, existing := range f.subnets {
		cidrs = append(cidrs, existing.CIDR)
	}
	if err := cloud.CheckDisjoint(cidrs); err != nil {
		return "", &cloud.RejectedError{Op: "CreateSubnet", Code: "InvalidSubnet.Conflict", Err: err}
	}
	s.ID = f.id("subnet")
	f.subnets = append(f.subnets, s)
	return s.ID, nil
}

func (f *fakeCloud) CreateInternetGateway(_ context.Context, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateInternetGateway", name); err != nil {
		return "", err
	}
	id := f.id("igw")
	f.gateways = append(f.gateways, cloud.InternetGateway{ID: id, Name: name})
	return id, nil
}

func (f *fakeCloud) AttachInternetGateway(_ context.Context, gatewayID, scopeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AttachInternetGateway", gatewayID); err != nil {
		return err
	}
	for i := range f.gateways {
		if f.gateways[i].ID == gatewayID {
			f.gateways[i].AttachedScopes = []string{scopeID}
			return nil
		}
	}
	return notFound("internet gateway " + gatewayID)
}

func (f *fakeCloud) CreateRouteTable(_ context.Context, scopeID, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateRouteTable", name); err != nil {
		return "", err
	}
	id := f.id("rtb")
	f.routeTables = append(f.routeTables, cloud.RouteTable{ID: id, Name: name, ScopeID: scopeID})
	return id, nil
}

func (f *fakeCloud) CreateRoute(_ context.Context, routeTableID string, route cloud.Route) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateRoute", routeTableID); err != nil {
		return err
	}
	f.routes[routeTableID] = append(f.routes[routeTableID], route)
	return nil
}

func (f *fakeCloud) AssociateRouteTable(_ context.Context, routeTableID, subnetID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AssociateRouteTable", routeTableID+" "+subnetID); err != nil {
		return "", err
	}
	for i := range f.routeTables {
		if f.routeTables[i].ID == routeTableID {
			id := f.id("rtbassoc")
			assocs := append([]cloud.RouteTableAssociation(nil), f.routeTables[i].Associations...)
			f.routeTables[i].Associations = append(assocs, cloud.RouteTableAssociation{ID: id, RouteTableID: routeTableID, SubnetID: subnetID})
			return id, nil
		}
	}
	return "", notFound("route table " + routeTableID)
}

func (f *fakeCloud) CreateSecurityGroup(_ context.Context, in cloud.CreateSecurityGroupInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateSecurityGroup", in.Name); err != nil {
		return "", err
	}
	id := f.id("sg")
	f.groups = append(f.groups, cloud.SecurityGroup{ID: id, Name: in.Name, ScopeID: in.ScopeID})
	return id, nil
}

func (f *fakeCloud) AuthorizeIngress(_ context.Context, groupID string, rules []cloud.IngressRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AuthorizeIngress", groupID); err != nil {
		return err
	}
	f.ingress[groupID] = append(f.ingress[groupID], rules...)
	return nil
}

func (f *fakeCloud) RunInstance(_ context.Context, in cloud.RunInstanceInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("RunInstance", in.Name); err != nil {
		return "", err
	}
	id := f.id("i")
	f.runInputs = append(f.runInputs, in)
	f.instances = append(f.instances, cloud.Instance{
		ID:             id,
		Name:           in.Name,
		SubnetID:       in.SubnetID,
		State:          cloud.InstanceStateRunning,
		SecurityGroups: in.SecurityGroupIDs,
	})
	f.enis = append(f.enis, cloud.NetworkInterface{
		ID:         f.id("eni"),
		SubnetID:   in.SubnetID,
		Status:     "in-use",
		Attachment: &cloud.NetworkInterfaceAttachment{ID: f.id("eni-attach"), InstanceID: id, Status: "attached"},
	})
	return id, nil
}

func (f *fakeCloud) TerminateInstances(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("TerminateInstances", strings.Join(ids, ",")); err != nil {
		return err
	}
	stopping := make(map[string]bool)
	for _, id := range ids {
		stopping[id] = true
	}
	for i := range f.instances {
		inst := &f.instances[i]
		if !stopping[inst.ID] || inst.State == cloud.InstanceStateTerminated || inst.State == cloud.InstanceStateShuttingDown {
			continue
		}
		inst.State = cloud.InstanceStateShuttingDown
		f.terminatingAt[inst.ID] = f.now()
	}
	f.settle()
	return nil
}

func (f *fakeCloud) now() time.Time {
	if f.clk == nil {
		return time.Time{}
	}
	return f.clk.Now()
}

func (f *fakeCloud) DetachNetworkInterface(_ context.Context, attachmentID string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DetachNetworkInterface", attachmentID); err != nil {
		return err
	}
	for i := range f.enis {
		if a := f.enis[i].Attachment; a != nil && a.ID == attachmentID {
			f.enis[i].Attachment = nil
			f.enis[i].Status = "available"
			return nil
		}
	}
	return notFound("attachment " + attachmentID)
}

func (f *fakeCloud) DeleteNetworkInterface(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteNetworkInterface", id); err != nil {
		return err
	}
	for i, n := range f.enis {
		if n.ID != id {
			continue
		}
		if n.Attached() {
			return inUse(id, "InvalidNetworkInterface.InUse")
		}
		f.enis = append(f.enis[:i:i], f.enis[i+1:]...)
		return nil
	}
	return notFound("network interface " + id)
}

func (f *fakeCloud) DeleteSecurityGroup(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteSecurityGroup", id); err != nil {
		return err
	}
	idx := -1
	for i, sg := range f.groups {
		if sg.ID == id {
			idx = i
		}
	}
	if idx < 0 {
		return notFound("security group " + id)
	}
	if f.groups[idx].IsDefault() {
		return &cloud.RejectedError{Op: "DeleteSecurityGroup", Code: "CannotDelete", Err: errors.New("default group")}
	}
	for _, inst := range f.instances {
		if inst.State == cloud.InstanceStateTerminated {
			continue
		}
		for _, g := range inst.SecurityGroups {
			if g == id {
				return inUse(id, "DependencyViolation")
			}
		}
	}
	for owner, rules := range f.ingress {
		for _, r := range rules {
			if r.SourceGroup == id && owner != id {
				return inUse(id, "DependencyViolation")
			}
		}
	}
	f.groups = append(f.groups[:idx:idx], f.groups[idx+1:]...)
	delete(f.ingress, id)
	return nil
}

func (f *fakeCloud) DetachInternetGateway(_ context.Context, gatewayID, scopeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DetachInternetGateway", gatewayID); err != nil {
		return err
	}
	for i := range f.gateways {
		if f.gateways[i].ID != gatewayID {
			continue
		}
		if len(f.gateways[i].AttachedScopes) == 0 {
			return notFound("Gateway.NotAttached " + gatewayID)
		}
		f.gateways[i].AttachedScopes = nil
		return nil
	}
	return notFound("internet gateway " + gatewayID)
}

func (f *fakeCloud) DeleteInternetGateway(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteInternetGateway", id); err != nil {
		return err
	}
	for i, gw := range f.gateways {
		if gw.ID != id {
			continue
		}
		if len(gw.AttachedScopes) > 0 {
			return inUse(id, "DependencyViolation")
		}
		f.gateways = append(f.gateways[:i:i], f.gateways[i+1:]...)
		return nil
	}
	return notFound("internet gateway " + id)
}

func (f *fakeCloud) DisassociateRouteTable(_ context.Context, associationID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DisassociateRouteTable", associationID); err != nil {
		return err
	}
	for i := range f.routeTables {
		var kept []cloud.RouteTableAssociation
		found := false
		for _, a := range f.routeTables[i].Associations {
			if a.ID == associationID {
				if a.Main {
					return &cloud.RejectedError{Op: "DisassociateRouteTable", Code: "InvalidParameterValue", Err: errors.New("main association")}
				}
				found = true
				continue
			}
			kept = append(kept, a)
		}
		if found {
			f.routeTables[i].Associations = kept
			return nil
		}
	}
	return notFound("association " + associationID)
}

func (f *fakeCloud) DeleteRouteTable(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteRouteTable", id); err != nil {
		return err
	}
	for i, rt := range f.routeTables {
		if rt.ID != id {
			continue
		}
		if len(rt.Associations) > 0 {
			return inUse(id, "DependencyViolation")
		}
		f.routeTables = append(f.routeTables[:i:i], f.routeTables[i+1:]...)
		delete(f.routes, id)
		return nil
	}
	return notFound("route table " + id)
}

func (f *fakeCloud) DeleteSubnet(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteSubnet", id); err != nil {
		return err
	}
	for _, n := range f.enis {
		if n.SubnetID == id {
			return inUse(id, "DependencyViolation")
		}
	}
	for i, s := range f.subnets {
		if s.ID == id {
			f.subnets = append(f.subnets[:i:i], f.subnets[i+1:]...)
			return nil
		}
	}
	return notFound("subnet " + id)
}

func (f *fakeCloud) DeleteScope(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteScope", id); err != nil {
		return err
	}
	if f.scopeGone || id != f.scope.ID {
		return notFound("vpc " + id)
	}
	if len(f.subnets) > 0 || len(f.gateways) > 0 || len(f.routeTables) > 1 || len(f.groups) > 1 {
		return inUse(id, "DependencyViolation")
	}
	f.scopeGone = true
	return nil
}

// fakeWaiter polls the fake control plane on the test clock the way the SDK
// waiter polls DescribeInstances. Calls are logged into the cloud's call log
// so ordering can be asserted; errs overrides the outcome per target.
type fakeWaiter struct {
	cloud *fakeCloud
	clk   clock.Clock
	poll  time.Duration
	errs  map[cloud.InstanceState]error
}

func (w *fakeWaiter) WaitForInstances(_ context.Context, ids []string, target cloud.InstanceState, timeout time.Duration) error {
	w.cloud.mu.Lock()
	w.cloud.calls = append(w.cloud.calls, "Wait "+string(target)+" "+strings.Join(ids, ","))
	w.cloud.mu.Unlock()
	if err, ok := w.errs[target]; ok {
		return err
	}

	start := w.clk.Now()
	for {
		if w.reached(ids, target) {
			return nil
		}
		if w.clk.Since(start) >= timeout {
			return errors.New("exceeded max wait time for InstanceTerminated waiter")
		}
		w.clk.Sleep(w.poll)
	}
}

func (w *fakeWaiter) reached(ids []string, target cloud.InstanceState) bool {
	w.cloud.mu.Lock()
	defer w.cloud.mu.Unlock()
	w.cloud.settle()
	for _, id := range ids {
		state, ok := w.cloud.state(id)
		if !ok && target == cloud.InstanceStateTerminated {
			continue
		}
		if state != target {
			return false
		}
	}
	return true
}

type fakeUserData struct {
	cloud    *fakeCloud
	payloads map[string]string
}

func (u *fakeUserData) Load(_ context.Context, name string) (string, error) {
	u.cloud.mu.Lock()
	defer u.cloud.mu.Unlock()
	u.cloud.calls = append(u.cloud.calls, "LoadUserData "+name)
	data, ok := u.payloads[name]
	if !ok {
		return "", fmt.Errorf("user data %s: %w", name, cloud.ErrNotFound)
	}
	return data, nil
}

type fakeRecorder struct {
	mu       sync.Mutex
	phases   []string
	outcomes map[string]int
}

func (r *fakeRecorder) ObservePhase(operation, phase string, _ time.Duration, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, fmt.Sprintf("%s/%s/%t", operation, phase, ok))
}

func (r *fakeRecorder) CountResource(_, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcomes == nil {
		r.outcomes = make(map[string]int)
	}
	r.outcomes[outcome]++
}

var testStart = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	cloud  *fakeCloud
	waiter *fakeWaiter
	clock  *testingclock.FakeClock
	deps   Deps
}

func newHarness() *harness {
	fc := newFakeCloud()
	clk := testingclock.NewFakeClock(testStart)
	fc.clk = clk
	w := &fakeWaiter{cloud: fc, clk: clk, poll: 5 * time.Second, errs: make(map[cloud.InstanceState]error)}
	return &harness{
		cloud:  fc,
		waiter: w,
		clock:  clk,
		deps: Deps{
			Cloud:  fc,
			Waiter: w,
			UserData: &fakeUserData{cloud: fc, payloads: map[string]string{
				cloud.AppServerUserData: "#!/bin/bash\necho app",
				cloud.DBServerUserData:  "<powershell>echo db</powershell>",
			}},
			Logger:   zerolog.Nop(),
			Clock:    clk,
			Settings: DefaultSettings(),
			RunID:    "test-run",
		},
	}
}

func (h *harness) elapsed() time.Duration {
	return h.clock.Since(testStart)
}

func testTopology() cloud.Topology {
	return cloud.DefaultTopology(cloud.DefaultTopologyOptions())
}

func scopeByName() cloud.ScopeRef {
	return cloud.ScopeRef{Name: "polystudentlab-vpc"}
}
