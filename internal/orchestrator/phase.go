package orchestrator

// Phase is one strictly ordered step of a run.
type Phase int

const (
	PhaseResolveScope Phase = iota
	PhaseCreateSubnets
	PhaseCreateInternetGateway
	PhaseCreateRouteTables
	PhaseCreateSecurityGroups
	PhaseCreateInstances
	PhaseTerminateInstances
	PhaseDeleteNetworkInterfaces
	PhaseDeleteSecurityGroups
	PhaseDeleteInternetGateway
	PhaseDeleteRouteTables
	PhaseDeleteSubnets
	PhaseDeleteScope
)

var phaseNames = [...]string{
	PhaseResolveScope:            "resolve-scope",
	PhaseCreateSubnets:           "create-subnets",
	PhaseCreateInternetGateway:   "create-internet-gateway",
	PhaseCreateRouteTables:       "create-route-tables",
	PhaseCreateSecurityGroups:    "create-security-groups",
	PhaseCreateInstances:         "create-instances",
	PhaseTerminateInstances:      "terminate-instances",
	PhaseDeleteNetworkInterfaces: "delete-network-interfaces",
	PhaseDeleteSecurityGroups:    "delete-security-groups",
	PhaseDeleteInternetGateway:   "delete-internet-gateway",
	PhaseDeleteRouteTables:       "delete-route-tables",
	PhaseDeleteSubnets:           "delete-subnets",
	PhaseDeleteScope:             "delete-scope",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// ProvisionPhases is the create order. No phase starts before the previous one returned.
var ProvisionPhases = []Phase{
	PhaseResolveScope,
	PhaseCreateSubnets,
	PhaseCreateInternetGateway,
	PhaseCreateRouteTables,
	PhaseCreateSecurityGroups,
	PhaseCreateInstances,
}

// DecommissionPhases is the teardown order. PhaseDeleteScope is not part of it;
// removing the VPC is a separate, opt-in call.
var DecommissionPhases = []Phase{
	PhaseResolveScope,
	PhaseTerminateInstances,
	PhaseDeleteNetworkInterfaces,
	PhaseDeleteSecurityGroups,
	PhaseDeleteInternetGateway,
	PhaseDeleteRouteTables,
	PhaseDeleteSubnets,
}
