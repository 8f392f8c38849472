package ec2

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"tasnim.dev/netlab/internal/cloud"
)

func (c *Client) ModifyScopeAttribute(ctx context.Context, scopeID string, attr cloud.ScopeAttribute, value bool) error {
	in := &awsec2.ModifyVpcAttributeInput{VpcId: aws.String(scopeID)}
	v := &types.AttributeBooleanValue{Value: aws.Bool(value)}
	switch attr {
	case cloud.ScopeAttrDNSHostnames:
		in.EnableDnsHostnames = v
	case cloud.ScopeAttrDNSSupport:
		in.EnableDnsSupport = v
	default:
		return fmt.Errorf("ModifyVpcAttribute: unsupported attribute %q", attr)
	}

	if _, err := c.api.ModifyVpcAttribute(ctx, in); err != nil {
		return classify("ModifyVpcAttribute", scopeID, err)
	}
	return nil
}

func (c *Client) ModifySubnetMapPublicIP(ctx context.Context, subnetID string, value bool) error {
	_, err := c.api.ModifySubnetAttribute(ctx, &awsec2.ModifySubnetAttributeInput{
		SubnetId:            aws.String(subnetID),
		MapPublicIpOnLaunch: &types.AttributeBooleanValue{Value: aws.Bool(value)},
	})
	return classify("ModifySubnetAttribute", subnetID, err)
}

func (c *Client) CreateSubnet(ctx context.Context, s cloud.Subnet) (string, error) {
	tags := nameTag(s.Name)
	if tags != nil {
		tags["Type"] = "Private"
		if s.Public {
			tags["Type"] = "Public"
		}
	}
	in := &awsec2.CreateSubnetInput{
		VpcId:             aws.String(s.ScopeID),
		CidrBlock:         aws.String(s.CIDR),
		TagSpecifications: tagSpecs(tags, types.ResourceTypeSubnet),
	}
	if s.AvailabilityZone != "" {
		in.AvailabilityZone = aws.String(s.AvailabilityZone)
	}

	out, err := c.api.CreateSubnet(ctx, in)
	if err != nil {
		return "", classify("CreateSubnet", s.CIDR, err)
	}
	return aws.ToString(out.Subnet.SubnetId), nil
}

func (c *Client) CreateInternetGateway(ctx context.Context, name string) (string, error) {
	out, err := c.api.CreateInternetGateway(ctx, &awsec2.CreateInternetGatewayInput{
		TagSpecifications: tagSpecs(nameTag(name), types.ResourceTypeInternetGateway),
	})
	if err != nil {
		return "", classify("CreateInternetGateway", name, err)
	}
	return aws.ToString(out.InternetGateway.InternetGatewayId), nil
}

func (c *Client) AttachInternetGateway(ctx context.Context, gatewayID, scopeID string) error {
	_, err := c.api.AttachInternetGateway(ctx, &awsec2.AttachInternetGatewayInput{
		InternetGatewayId: aws.String(gatewayID),
		VpcId:             aws.String(scopeID),
	})
	return classify("AttachInternetGateway", gatewayID, err)
}

func (c *Client) CreateRouteTable(ctx context.Context, scopeID, name string) (string, error) {
	out, err := c.api.CreateRouteTable(ctx, &awsec2.CreateRouteTableInput{
		VpcId:             aws.String(scopeID),
		TagSpecifications: tagSpecs(nameTag(name), types.ResourceTypeRouteTable),
	})
	if err != nil {
		return "", classify("CreateRouteTable", name, err)
	}
	return aws.ToString(out.RouteTable.RouteTableId), nil
}

func (c *Client) CreateRoute(ctx context.Context, routeTableID string, route cloud.Route) error {
	_, err := c.api.CreateRoute(ctx, &awsec2.CreateRouteInput{
		RouteTableId:         aws.String(routeTableID),
		DestinationCidrBlock: aws.String(route.Destination),
		GatewayId:            aws.String(route.GatewayID),
	})
	return classify("CreateRoute", routeTableID, err)
}

func (c *Client) AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) (string, error) {
	out, err := c.api.AssociateRouteTable(ctx, &awsec2.AssociateRouteTableInput{
		RouteTableId: aws.String(routeTableID),
		SubnetId:     aws.String(subnetID),
	})
	if err != nil {
		return "", classify("AssociateRouteTable", routeTableID, err)
	}
	return aws.ToString(out.AssociationId), nil
}

func (c *Client) CreateSecurityGroup(ctx context.Context, in cloud.CreateSecurityGroupInput) (string, error) {
	out, err := c.api.CreateSecurityGroup(ctx, &awsec2.CreateSecurityGroupInput{
		GroupName:         aws.String(in.Name),
		Description:       aws.String(in.Description),
		VpcId:             aws.String(in.ScopeID),
		TagSpecifications: tagSpecs(in.Tags, types.ResourceTypeSecurityGroup),
	})
	if err != nil {
		return "", classify("CreateSecurityGroup", in.Name, err)
	}
	return aws.ToString(out.GroupId), nil
}

func (c *Client) AuthorizeIngress(ctx context.Context, groupID string, rules []cloud.IngressRule) error {
	perms := make([]types.IpPermission, 0, len(rules))
	for _, r := range rules {
		p := types.IpPermission{
			IpProtocol: aws.String(r.Protocol),
			FromPort:   aws.Int32(r.FromPort),
			ToPort:     aws.Int32(r.ToPort),
		}
		if r.SourceGroup != "" {
			p.UserIdGroupPairs = []types.UserIdGroupPair{{GroupId: aws.String(r.SourceGroup), Description: aws.String(r.Description)}}
		} else {
			p.IpRanges = []types.IpRange{{CidrIp: aws.String(r.CIDR), Description: aws.String(r.Description)}}
		}
		perms = append(perms, p)
	}

	_, err := c.api.AuthorizeSecurityGroupIngress(ctx, &awsec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(groupID),
		IpPermissions: perms,
	})
	return classify("AuthorizeSecurityGroupIngress", groupID, err)
}

// RunInstance launches exactly one instance with a gp3 root volume that is
// deleted on termination and detailed monitoring enabled.
func (c *Client) RunInstance(ctx context.Context, in cloud.RunInstanceInput) (string, error) {
	tags := in.Tags
	if tags == nil {
		tags = nameTag(in.Name)
	}

	params := &awsec2.RunInstancesInput{
		ImageId:           aws.String(in.Image),
		InstanceType:      types.InstanceType(in.InstanceType),
		MinCount:          aws.Int32(1),
		MaxCount:          aws.Int32(1),
		SubnetId:          aws.String(in.SubnetID),
		SecurityGroupIds:  in.SecurityGroupIDs,
		Monitoring:        &types.RunInstancesMonitoringEnabled{Enabled: aws.Bool(true)},
		TagSpecifications: tagSpecs(tags, types.ResourceTypeInstance, types.ResourceTypeVolume),
	}
	if in.KeyName != "" {
		params.KeyName = aws.String(in.KeyName)
	}
	if in.InstanceProfile != "" {
		params.IamInstanceProfile = &types.IamInstanceProfileSpecification{Name: aws.String(in.InstanceProfile)}
	}
	if in.RootDevice != "" && in.RootVolumeGiB > 0 {
		params.BlockDeviceMappings = []types.BlockDeviceMapping{{
			DeviceName: aws.String(in.RootDevice),
			Ebs: &types.EbsBlockDevice{
				VolumeSize:          aws.Int32(in.RootVolumeGiB),
				VolumeType:          types.VolumeTypeGp3,
				DeleteOnTermination: aws.Bool(true),
			},
		}}
	}
	if in.UserData != "" {
		params.UserData = aws.String(base64.StdEncoding.EncodeToString([]byte(in.UserData)))
	}

	out, err := c.api.RunInstances(ctx, params)
	if err != nil {
		return "", classify("RunInstances", in.Name, err)
	}
	if len(out.Instances) == 0 {
		return "", fmt.Errorf("RunInstances %s: no instance returned", in.Name)
	}
	return aws.ToString(out.Instances[0].InstanceId), nil
}
