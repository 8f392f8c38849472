package ec2

import (
	"context"
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"tasnim.dev/netlab/internal/cloud"
)

// EC2API is the subset of the EC2 SDK client the control plane drives.
type EC2API interface {
	DescribeVpcs(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error)
	DescribeSubnets(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error)
	DescribeInternetGateways(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error)
	DescribeRouteTables(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkInterfaces(ctx context.Context, params *awsec2.DescribeNetworkInterfacesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNetworkInterfacesOutput, error)
	DescribeInstances(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error)

	ModifyVpcAttribute(ctx context.Context, params *awsec2.ModifyVpcAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifyVpcAttributeOutput, error)
	ModifySubnetAttribute(ctx context.Context, params *awsec2.ModifySubnetAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifySubnetAttributeOutput, error)

	CreateSubnet(ctx context.Context, params *awsec2.CreateSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSubnetOutput, error)
	CreateInternetGateway(ctx context.Context, params *awsec2.CreateInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInternetGatewayOutput, error)
	AttachInternetGateway(ctx context.Context, params *awsec2.AttachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachInternetGatewayOutput, error)
	CreateRouteTable(ctx context.Context, params *awsec2.CreateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteTableOutput, error)
	CreateRoute(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error)
	AssociateRouteTable(ctx context.Context, params *awsec2.AssociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateRouteTableOutput, error)
	CreateSecurityGroup(ctx context.Context, params *awsec2.CreateSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSecurityGroupOutput, error)
	AuthorizeSecurityGroupIngress(ctx context.Context, params *awsec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupIngressOutput, error)
	RunInstances(ctx context.Context, params *awsec2.RunInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error)

	TerminateInstances(ctx context.Context, params *awsec2.TerminateInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.TerminateInstancesOutput, error)
	DetachNetworkInterface(ctx context.Context, params *awsec2.DetachNetworkInterfaceInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachNetworkInterfaceOutput, error)
	DeleteNetworkInterface(ctx context.Context, params *awsec2.DeleteNetworkInterfaceInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteNetworkInterfaceOutput, error)
	DeleteSecurityGroup(ctx context.Context, params *awsec2.DeleteSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSecurityGroupOutput, error)
	DetachInternetGateway(ctx context.Context, params *awsec2.DetachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachInternetGatewayOutput, error)
	DeleteInternetGateway(ctx context.Context, params *awsec2.DeleteInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteInternetGatewayOutput, error)
	DisassociateRouteTable(ctx context.Context, params *awsec2.DisassociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DisassociateRouteTableOutput, error)
	DeleteRouteTable(ctx context.Context, params *awsec2.DeleteRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteTableOutput, error)
	DeleteSubnet(ctx context.Context, params *awsec2.DeleteSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSubnetOutput, error)
	DeleteVpc(ctx context.Context, params *awsec2.DeleteVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVpcOutput, error)
}

// Client implements cloud.ControlPlane on top of EC2.
type Client struct {
	api EC2API
}

var _ cloud.ControlPlane = (*Client)(nil)

func NewClient(api EC2API) *Client {
	return &Client{api: api}
}

func nameFromTags(tags []types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == "Name" {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}

func scopeFilter(scopeID string) []types.Filter {
	return []types.Filter{{Name: aws.String("vpc-id"), Values: []string{scopeID}}}
}

// tagSpecs tags each resource type with the same key set, sorted by key.
func tagSpecs(tags map[string]string, resourceTypes ...types.ResourceType) []types.TagSpecification {
	if len(tags) == 0 {
		return nil
	}
	var sdkTags []types.Tag
	for _, k := range slices.Sorted(maps.Keys(tags)) {
		sdkTags = append(sdkTags, types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	specs := make([]types.TagSpecification, 0, len(resourceTypes))
	for _, rt := range resourceTypes {
		specs = append(specs, types.TagSpecification{ResourceType: rt, Tags: sdkTags})
	}
	return specs
}

func nameTag(name string) map[string]string {
	if name == "" {
		return nil
	}
	return map[string]string{"Name": name}
}
