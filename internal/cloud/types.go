package cloud

// InstanceState is the lifecycle state reported by the control plane.
type InstanceState string

const (
	InstanceStatePending      InstanceState = "pending"
	InstanceStateRunning      InstanceState = "running"
	InstanceStateStopping     InstanceState = "stopping"
	InstanceStateStopped      InstanceState = "stopped"
	InstanceStateShuttingDown InstanceState = "shutting-down"
	InstanceStateTerminated   InstanceState = "terminated"
)

// LiveInstanceStates are the states teardown terminates from.
var LiveInstanceStates = []InstanceState{
	InstanceStateRunning,
	InstanceStateStopped,
	InstanceStatePending,
	InstanceStateStopping,
}

// ScopeRef identifies a VPC either by id or by its Name tag. ID wins when both are set.
type ScopeRef struct {
	ID   string
	Name string
}

func (r ScopeRef) String() string {
	if r.ID != "" {
		return r.ID
	}
	return "tag:Name=" + r.Name
}

// Scope is the VPC that owns the whole topology.
type Scope struct {
	ID   string
	Name string
	CIDR string
}

type Subnet struct {
	ID               string
	Name             string
	ScopeID          string
	CIDR             string
	AvailabilityZone string
	Public           bool
	MapPublicIP      bool
}

type RouteTableAssociation struct {
	ID           string
	RouteTableID string
	SubnetID     string
	Main         bool
}

type Route struct {
	Destination string
	GatewayID   string
}

type RouteTable struct {
	ID           string
	Name         string
	ScopeID      string
	Routes       []Route
	Associations []RouteTableAssociation
}

// IsMain reports whether the table carries the scope's main association.
func (rt RouteTable) IsMain() bool {
	for _, a := range rt.Associations {
		if a.Main {
			return true
		}
	}
	return false
}

type InternetGateway struct {
	ID   string
	Name string
	// AttachedScopes lists the VPC ids the gateway is attached to.
	AttachedScopes []string
}

// IngressRule allows TCP traffic on [FromPort, ToPort] from either a CIDR or a peer group.
type IngressRule struct {
	Protocol    string
	FromPort    int32
	ToPort      int32
	CIDR        string
	SourceGroup string
	Description string
}

// DefaultSecurityGroupName is the group every VPC carries and this system never touches.
const DefaultSecurityGroupName = "default"

type SecurityGroup struct {
	ID      string
	Name    string
	ScopeID string
	Ingress []IngressRule
}

func (sg SecurityGroup) IsDefault() bool {
	return sg.Name == DefaultSecurityGroupName
}

type NetworkInterfaceAttachment struct {
	ID         string
	InstanceID string
	Status     string
}

type NetworkInterface struct {
	ID               string
	SubnetID         string
	Status           string
	RequesterManaged bool
	Attachment       *NetworkInterfaceAttachment
}

// Attached reports whether the interface still has a live attachment.
func (n NetworkInterface) Attached() bool {
	return n.Attachment != nil && n.Attachment.ID != "" && n.Attachment.Status != "detached"
}

type Instance struct {
	ID             string
	Name           string
	SubnetID       string
	State          InstanceState
	SecurityGroups []string
}
