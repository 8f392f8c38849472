package cloud

import (
	"context"
	"time"
)

// ScopeAttribute is a boolean VPC attribute toggled during scope resolution.
type ScopeAttribute string

const (
	ScopeAttrDNSHostnames ScopeAttribute = "enableDnsHostnames"
	ScopeAttrDNSSupport   ScopeAttribute = "enableDnsSupport"
)

type CreateSecurityGroupInput struct {
	ScopeID     string
	Name        string
	Description string
	Tags        map[string]string
}

type RunInstanceInput struct {
	Name             string
	Tags             map[string]string
	Image            string
	InstanceType     string
	KeyName          string
	InstanceProfile  string
	SubnetID         string
	SecurityGroupIDs []string
	RootDevice       string
	RootVolumeGiB    int32
	UserData         string
}

// ControlPlane is the remote API the orchestrators drive. Implementations wrap
// failures so that IsNotFound, IsStillReferenced and IsTransport classify them.
type ControlPlane interface {
	DescribeScope(ctx context.Context, ref ScopeRef) (Scope, error)
	DescribeSubnets(ctx context.Context, scopeID string) ([]Subnet, error)
	DescribeInternetGateways(ctx context.Context, scopeID string) ([]InternetGateway, error)
	DescribeRouteTables(ctx context.Context, scopeID string) ([]RouteTable, error)
	DescribeSecurityGroups(ctx context.Context, scopeID string) ([]SecurityGroup, error)
	DescribeNetworkInterfaces(ctx context.Context, scopeID string) ([]NetworkInterface, error)
	DescribeInstances(ctx context.Context, scopeID string, states []InstanceState) ([]Instance, error)

	ModifyScopeAttribute(ctx context.Context, scopeID string, attr ScopeAttribute, value bool) error
	ModifySubnetMapPublicIP(ctx context.Context, subnetID string, value bool) error

	CreateSubnet(ctx context.Context, s Subnet) (string, error)
	CreateInternetGateway(ctx context.Context, name string) (string, error)
	AttachInternetGateway(ctx context.Context, gatewayID, scopeID string) error
	CreateRouteTable(ctx context.Context, scopeID, name string) (string, error)
	CreateRoute(ctx context.Context, routeTableID string, route Route) error
	AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) (string, error)
	CreateSecurityGroup(ctx context.Context, in CreateSecurityGroupInput) (string, error)
	AuthorizeIngress(ctx context.Context, groupID string, rules []IngressRule) error
	RunInstance(ctx context.Context, in RunInstanceInput) (string, error)

	TerminateInstances(ctx context.Context, ids []string) error
	DetachNetworkInterface(ctx context.Context, attachmentID string, force bool) error
	DeleteNetworkInterface(ctx context.Context, id string) error
	DeleteSecurityGroup(ctx context.Context, id string) error
	DetachInternetGateway(ctx context.Context, gatewayID, scopeID string) error
	DeleteInternetGateway(ctx context.Context, id string) error
	DisassociateRouteTable(ctx context.Context, associationID string) error
	DeleteRouteTable(ctx context.Context, id string) error
	DeleteSubnet(ctx context.Context, id string) error
	DeleteScope(ctx context.Context, id string) error
}

// InstanceWaiter blocks until every instance reports the target state or the
// timeout elapses.
type InstanceWaiter interface {
	WaitForInstances(ctx context.Context, ids []string, target InstanceState, timeout time.Duration) error
}
