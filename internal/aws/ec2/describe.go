package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"tasnim.dev/netlab/internal/cloud"
)

// DescribeScope looks the VPC up by id, or by Name tag when no id is given.
func (c *Client) DescribeScope(ctx context.Context, ref cloud.ScopeRef) (cloud.Scope, error) {
	in := &awsec2.DescribeVpcsInput{}
	if ref.ID != "" {
		in.VpcIds = []string{ref.ID}
	} else {
		in.Filters = []types.Filter{{Name: aws.String("tag:Name"), Values: []string{ref.Name}}}
	}

	out, err := c.api.DescribeVpcs(ctx, in)
	if err != nil {
		return cloud.Scope{}, classify("DescribeVpcs", ref.String(), err)
	}
	switch len(out.Vpcs) {
	case 0:
		return cloud.Scope{}, fmt.Errorf("DescribeVpcs %s: %w", ref, cloud.ErrNotFound)
	case 1:
	default:
		return cloud.Scope{}, fmt.Errorf("DescribeVpcs %s: %d VPCs match, pass --vpc-id", ref, len(out.Vpcs))
	}

	v := out.Vpcs[0]
	return cloud.Scope{
		ID:   aws.ToString(v.VpcId),
		Name: nameFromTags(v.Tags),
		CIDR: aws.ToString(v.CidrBlock),
	}, nil
}

func (c *Client) DescribeSubnets(ctx context.Context, scopeID string) ([]cloud.Subnet, error) {
	var subnets []cloud.Subnet
	var nextToken *string

	for {
		out, err := c.api.DescribeSubnets(ctx, &awsec2.DescribeSubnetsInput{
			Filters:   scopeFilter(scopeID),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, classify("DescribeSubnets", scopeID, err)
		}

		for _, s := range out.Subnets {
			subnets = append(subnets, cloud.Subnet{
				ID:               aws.ToString(s.SubnetId),
				Name:             nameFromTags(s.Tags),
				ScopeID:          aws.ToString(s.VpcId),
				CIDR:             aws.ToString(s.CidrBlock),
				AvailabilityZone: aws.ToString(s.AvailabilityZone),
				MapPublicIP:      aws.ToBool(s.MapPublicIpOnLaunch),
				Public:           aws.ToBool(s.MapPublicIpOnLaunch),
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return subnets, nil
}

// DescribeInternetGateways returns the gateways attached to the scope.
func (c *Client) DescribeInternetGateways(ctx context.Context, scopeID string) ([]cloud.InternetGateway, error) {
	var igws []cloud.InternetGateway
	var nextToken *string

	for {
		out, err := c.api.DescribeInternetGateways(ctx, &awsec2.DescribeInternetGatewaysInput{
			Filters: []types.Filter{
				{Name: aws.String("attachment.vpc-id"), Values: []string{scopeID}},
			},
			NextToken: nextToken,
		})
		if err != nil {
			return nil, classify("DescribeInternetGateways", scopeID, err)
		}

		for _, igw := range out.InternetGateways {
			var attached []string
			for _, att := range igw.Attachments {
				if att.State == types.AttachmentStatusDetached {
					continue
				}
				attached = append(attached, aws.ToString(att.VpcId))
			}
			igws = append(igws, cloud.InternetGateway{
				ID:             aws.ToString(igw.InternetGatewayId),
				Name:           nameFromTags(igw.Tags),
				AttachedScopes: attached,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return igws, nil
}

func (c *Client) DescribeRouteTables(ctx context.Context, scopeID string) ([]cloud.RouteTable, error) {
	var tables []cloud.RouteTable
	var nextToken *string

	for {
		out, err := c.api.DescribeRouteTables(ctx, &awsec2.DescribeRouteTablesInput{
			Filters:   scopeFilter(scopeID),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, classify("DescribeRouteTables", scopeID, err)
		}

		for _, rt := range out.RouteTables {
			table := cloud.RouteTable{
				ID:      aws.ToString(rt.RouteTableId),
				Name:    nameFromTags(rt.Tags),
				ScopeID: aws.ToString(rt.VpcId),
			}
			for _, r := range rt.Routes {
				table.Routes = append(table.Routes, cloud.Route{
					Destination: aws.ToString(r.DestinationCidrBlock),
					GatewayID:   aws.ToString(r.GatewayId),
				})
			}
			for _, a := range rt.Associations {
				table.Associations = append(table.Associations, cloud.RouteTableAssociation{
					ID:           aws.ToString(a.RouteTableAssociationId),
					RouteTableID: aws.ToString(a.RouteTableId),
					SubnetID:     aws.ToString(a.SubnetId),
					Main:         aws.ToBool(a.Main),
				})
			}
			tables = append(tables, table)
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return tables, nil
}

func (c *Client) DescribeSecurityGroups(ctx context.Context, scopeID string) ([]cloud.SecurityGroup, error) {
	var sgs []cloud.SecurityGroup
	var nextToken *string

	for {
		out, err := c.api.DescribeSecurityGroups(ctx, &awsec2.DescribeSecurityGroupsInput{
			Filters:   scopeFilter(scopeID),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, classify("DescribeSecurityGroups", scopeID, err)
		}

		for _, sg := range out.SecurityGroups {
			sgs = append(sgs, cloud.SecurityGroup{
				ID:      aws.ToString(sg.GroupId),
				Name:    aws.ToString(sg.GroupName),
				ScopeID: aws.ToString(sg.VpcId),
				Ingress: ingressRules(sg.IpPermissions),
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return sgs, nil
}

func ingressRules(perms []types.IpPermission) []cloud.IngressRule {
	var rules []cloud.IngressRule
	for _, p := range perms {
		base := cloud.IngressRule{
			Protocol: aws.ToString(p.IpProtocol),
			FromPort: aws.ToInt32(p.FromPort),
			ToPort:   aws.ToInt32(p.ToPort),
		}
		for _, r := range p.IpRanges {
			rule := base
			rule.CIDR = aws.ToString(r.CidrIp)
			rule.Description = aws.ToString(r.Description)
			rules = append(rules, rule)
		}
		for _, g := range p.UserIdGroupPairs {
			rule := base
			rule.SourceGroup = aws.ToString(g.GroupId)
			rule.Description = aws.ToString(g.Description)
			rules = append(rules, rule)
		}
	}
	return rules
}

func (c *Client) DescribeNetworkInterfaces(ctx context.Context, scopeID string) ([]cloud.NetworkInterface, error) {
	var enis []cloud.NetworkInterface
	var nextToken *string

	for {
		out, err := c.api.DescribeNetworkInterfaces(ctx, &awsec2.DescribeNetworkInterfacesInput{
			Filters:   scopeFilter(scopeID),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, classify("DescribeNetworkInterfaces", scopeID, err)
		}

		for _, n := range out.NetworkInterfaces {
			eni := cloud.NetworkInterface{
				ID:               aws.ToString(n.NetworkInterfaceId),
				SubnetID:         aws.ToString(n.SubnetId),
				Status:           string(n.Status),
				RequesterManaged: aws.ToBool(n.RequesterManaged),
			}
			if a := n.Attachment; a != nil {
				eni.Attachment = &cloud.NetworkInterfaceAttachment{
					ID:         aws.ToString(a.AttachmentId),
					InstanceID: aws.ToString(a.InstanceId),
					Status:     string(a.Status),
				}
			}
			enis = append(enis, eni)
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return enis, nil
}

// DescribeInstances returns the scope's instances currently in one of states.
func (c *Client) DescribeInstances(ctx context.Context, scopeID string, states []cloud.InstanceState) ([]cloud.Instance, error) {
	filters := scopeFilter(scopeID)
	if len(states) > 0 {
		names := make([]string, 0, len(states))
		for _, s := range states {
			names = append(names, string(s))
		}
		filters = append(filters, types.Filter{Name: aws.String("instance-state-name"), Values: names})
	}

	var instances []cloud.Instance
	var nextToken *string

	for {
		out, err := c.api.DescribeInstances(ctx, &awsec2.DescribeInstancesInput{
			Filters:   filters,
			NextToken: nextToken,
		})
		if err != nil {
			return nil, classify("DescribeInstances", scopeID, err)
		}

		for _, reservation := range out.Reservations {
			for _, inst := range reservation.Instances {
				var state cloud.InstanceState
				if inst.State != nil {
					state = cloud.InstanceState(inst.State.Name)
				}
				var groups []string
				for _, g := range inst.SecurityGroups {
					groups = append(groups, aws.ToString(g.GroupId))
				}
				instances = append(instances, cloud.Instance{
					ID:             aws.ToString(inst.InstanceId),
					Name:           nameFromTags(inst.Tags),
					SubnetID:       aws.ToString(inst.SubnetId),
					State:          state,
					SecurityGroups: groups,
				})
			}
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return instances, nil
}
