package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"tasnim.dev/netlab/internal/cloud"
)

// Provisioner builds the fixed topology inside an existing scope.
type Provisioner struct {
	deps Deps
	topo cloud.Topology
}

func NewProvisioner(deps Deps, topo cloud.Topology) *Provisioner {
	return &Provisioner{deps: deps, topo: topo}
}

// Provision runs the create phases in order. Any failure stops the run; the
// handles created so far are returned together with the error.
func (p *Provisioner) Provision(ctx context.Context, ref cloud.ScopeRef) (*Handles, *Report, error) {
	r := newRun(p.deps, "provision", ref)
	h := newHandles()
	ps := &provisionRun{run: r, topo: p.topo, userData: p.deps.UserData, h: h}

	err := r.runPhases(ctx, []step{
		{PhaseResolveScope, ps.resolveScope},
		{PhaseCreateSubnets, ps.createSubnets},
		{PhaseCreateInternetGateway, ps.createInternetGateway},
		{PhaseCreateRouteTables, ps.createRouteTables},
		{PhaseCreateSecurityGroups, ps.createSecurityGroups},
		{PhaseCreateInstances, ps.createInstances},
	})
	return h, r.finish(err), err
}

type provisionRun struct {
	*run
	topo     cloud.Topology
	userData UserDataSource
	h        *Handles
}

func (p *provisionRun) fatal(err error) error {
	return &cloud.FatalConfigurationError{Phase: p.phase.String(), Err: err}
}

func (p *provisionRun) resolveScope(ctx context.Context) error {
	if err := p.topo.Validate(); err != nil {
		return p.fatal(fmt.Errorf("invalid topology: %w", err))
	}

	scope, err := p.cloud.DescribeScope(ctx, p.report.Scope)
	if err != nil {
		if cloud.IsNotFound(err) {
			return p.fatal(fmt.Errorf("scope %s: %w", p.report.Scope, err))
		}
		return err
	}
	p.h.ScopeID = scope.ID
	p.report.ScopeID = scope.ID
	p.plog.Info().Str("vpc_id", scope.ID).Str("cidr", scope.CIDR).Msg("Resolved scope")

	if scope.CIDR != "" {
		if err := cloud.CheckWithin(scope.CIDR, p.topo.SubnetCIDRs()); err != nil {
			return p.fatal(err)
		}
	}

	for _, attr := range []cloud.ScopeAttribute{cloud.ScopeAttrDNSHostnames, cloud.ScopeAttrDNSSupport} {
		if err := p.cloud.ModifyScopeAttribute(ctx, scope.ID, attr, true); err != nil {
			return p.fatal(fmt.Errorf("enable %s: %w", attr, err))
		}
		p.plog.Debug().Str("attribute", string(attr)).Msg("Enabled scope attribute")
	}
	return nil
}

func (p *provisionRun) createSubnets(ctx context.Context) error {
	for _, spec := range p.topo.Subnets {
		id, err := p.cloud.CreateSubnet(ctx, cloud.Subnet{
			Name:             spec.Name,
			ScopeID:          p.h.ScopeID,
			CIDR:             spec.CIDR,
			AvailabilityZone: p.s.Region + spec.AZSuffix,
			Public:           spec.Public,
		})
		if err != nil {
			return fmt.Errorf("create subnet %s (%s): %w", spec.Name, spec.CIDR, err)
		}
		p.h.Subnets[spec.Role] = id
		p.created(KindSubnet, id, spec.Name)

		if spec.Public {
			if err := p.cloud.ModifySubnetMapPublicIP(ctx, id, true); err != nil {
				return p.fatal(fmt.Errorf("enable public addressing on %s: %w", spec.Name, err))
			}
		}
	}
	return nil
}

func (p *provisionRun) createInternetGateway(ctx context.Context) error {
	id, err := p.cloud.CreateInternetGateway(ctx, p.topo.InternetGatewayName)
	if err != nil {
		return fmt.Errorf("create internet gateway: %w", err)
	}
	p.h.InternetGatewayID = id
	p.created(KindInternetGateway, id, p.topo.InternetGatewayName)

	if err := p.cloud.AttachInternetGateway(ctx, id, p.h.ScopeID); err != nil {
		return fmt.Errorf("attach internet gateway %s: %w", id, err)
	}
	p.plog.Info().Str("id", id).Str("vpc_id", p.h.ScopeID).Msg("Attached internet gateway")
	return nil
}

func (p *provisionRun) createRouteTables(ctx context.Context) error {
	for _, spec := range p.topo.RouteTables {
		id, err := p.cloud.CreateRouteTable(ctx, p.h.ScopeID, spec.Name)
		if err != nil {
			return fmt.Errorf("create route table %s: %w", spec.Name, err)
		}
		p.h.RouteTables[spec.Role] = id
		p.created(KindRouteTable, id, spec.Name)

		if spec.DefaultRoute {
			route := cloud.Route{Destination: cloud.DefaultRouteDestination, GatewayID: p.h.InternetGatewayID}
			if err := p.cloud.CreateRoute(ctx, id, route); err != nil {
				return fmt.Errorf("create default route in %s: %w", spec.Name, err)
			}
		}

		for _, role := range spec.Subnets {
			subnetID, ok := p.h.Subnets[role]
			if !ok {
				return fmt.Errorf("route table %s: subnet %s was not created", spec.Name, role)
			}
			assoc, err := p.cloud.AssociateRouteTable(ctx, id, subnetID)
			if err != nil {
				return fmt.Errorf("associate %s with %s: %w", spec.Name, subnetID, err)
			}
			p.h.Associations[role] = assoc
		}
	}
	return nil
}

func (p *provisionRun) createSecurityGroups(ctx context.Context) error {
	for _, spec := range p.topo.SecurityGroups {
		id, err := p.cloud.CreateSecurityGroup(ctx, cloud.CreateSecurityGroupInput{
			ScopeID:     p.h.ScopeID,
			Name:        spec.Name,
			Description: spec.Description,
			Tags:        map[string]string{"Name": spec.Name, "Type": spec.TypeTag},
		})
		if err != nil {
			return fmt.Errorf("create security group %s: %w", spec.Name, err)
		}
		p.h.SecurityGroups[spec.Role] = id
		p.created(KindSecurityGroup, id, spec.Name)

		for _, rule := range spec.Rules {
			in := cloud.IngressRule{
				Protocol:    "tcp",
				FromPort:    rule.FromPort,
				ToPort:      rule.ToPort,
				CIDR:        rule.CIDR,
				Description: rule.Description,
			}
			if rule.FromGroup != "" {
				src, ok := p.h.SecurityGroups[rule.FromGroup]
				if !ok {
					return fmt.Errorf("security group %s: source group %s was not created", spec.Name, rule.FromGroup)
				}
				in.SourceGroup = src
			}
			if err := p.cloud.AuthorizeIngress(ctx, id, []cloud.IngressRule{in}); err != nil {
				return fmt.Errorf("authorize %s on %s: %w", rule.Description, spec.Name, err)
			}
		}
		p.plog.Debug().Str("id", id).Int("rules", len(spec.Rules)).Msg("Authorized ingress")
	}
	return nil
}

func (p *provisionRun) createInstances(ctx context.Context) error {
	payloads, err := p.loadUserData(ctx)
	if err != nil {
		return err
	}

	for _, spec := range p.topo.Instances {
		subnetID, ok := p.h.Subnets[spec.Subnet]
		if !ok {
			return fmt.Errorf("instance %s: subnet %s was not created", spec.Name, spec.Subnet)
		}
		groupID, ok := p.h.SecurityGroups[spec.SecurityGroup]
		if !ok {
			return fmt.Errorf("instance %s: security group %s was not created", spec.Name, spec.SecurityGroup)
		}

		id, err := p.cloud.RunInstance(ctx, cloud.RunInstanceInput{
			Name:             spec.Name,
			Tags:             map[string]string{"Name": spec.Name, "Type": spec.TypeTag},
			Image:            spec.Image,
			InstanceType:     spec.InstanceType,
			KeyName:          spec.KeyName,
			InstanceProfile:  spec.InstanceProfile,
			SubnetID:         subnetID,
			SecurityGroupIDs: []string{groupID},
			RootDevice:       spec.RootDevice,
			RootVolumeGiB:    spec.RootVolumeGiB,
			UserData:         payloads[spec.UserData],
		})
		if err != nil {
			return fmt.Errorf("run instance %s: %w", spec.Name, err)
		}
		p.h.Instances[spec.Role] = id
		p.created(KindInstance, id, spec.Name)

		if err := p.checkpoint(ctx, []string{id}, cloud.InstanceStateRunning); err != nil {
			return err
		}
	}
	return nil
}

// loadUserData resolves every payload before the first instance is launched.
func (p *provisionRun) loadUserData(ctx context.Context) (map[string]string, error) {
	payloads := make(map[string]string)
	for _, spec := range p.topo.Instances {
		if spec.UserData == "" {
			continue
		}
		if _, ok := payloads[spec.UserData]; ok {
			continue
		}
		if p.userData == nil {
			return nil, p.fatal(errors.New("no user-data source configured"))
		}
		data, err := p.userData.Load(ctx, spec.UserData)
		if err != nil {
			return nil, p.fatal(fmt.Errorf("load user data %s: %w", spec.UserData, err))
		}
		payloads[spec.UserData] = data
	}
	return payloads, nil
}
