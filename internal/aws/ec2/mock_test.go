package ec2

import (
	"context"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

type mockEC2API struct {
	describeVpcsFunc                  func(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error)
	describeSubnetsFunc               func(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error)
	describeInternetGatewaysFunc      func(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error)
	describeRouteTablesFunc           func(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error)
	describeSecurityGroupsFunc        func(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error)
	describeNetworkInterfacesFunc     func(ctx context.Context, params *awsec2.DescribeNetworkInterfacesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNetworkInterfacesOutput, error)
	describeInstancesFunc             func(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error)
	modifyVpcAttributeFunc            func(ctx context.Context, params *awsec2.ModifyVpcAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifyVpcAttributeOutput, error)
	modifySubnetAttributeFunc         func(ctx context.Context, params *awsec2.ModifySubnetAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifySubnetAttributeOutput, error)
	createSubnetFunc                  func(ctx context.Context, params *awsec2.CreateSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSubnetOutput, error)
	createInternetGatewayFunc         func(ctx context.Context, params *awsec2.CreateInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInternetGatewayOutput, error)
	attachInternetGatewayFunc         func(ctx context.Context, params *awsec2.AttachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachInternetGatewayOutput, error)
	createRouteTableFunc              func(ctx context.Context, params *awsec2.CreateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteTableOutput, error)
	createRouteFunc                   func(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error)
	associateRouteTableFunc           func(ctx context.Context, params *awsec2.AssociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateRouteTableOutput, error)
	createSecurityGroupFunc           func(ctx context.Context, params *awsec2.CreateSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSecurityGroupOutput, error)
	authorizeSecurityGroupIngressFunc func(ctx context.Context, params *awsec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupIngressOutput, error)
	runInstancesFunc                  func(ctx context.Context, params *awsec2.RunInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error)
	terminateInstancesFunc            func(ctx context.Context, params *awsec2.TerminateInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.TerminateInstancesOutput, error)
	detachNetworkInterfaceFunc        func(ctx context.Context, params *awsec2.DetachNetworkInterfaceInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachNetworkInterfaceOutput, error)
	deleteNetworkInterfaceFunc        func(ctx context.Context, params *awsec2.DeleteNetworkInterfaceInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteNetworkInterfaceOutput, error)
	deleteSecurityGroupFunc           func(ctx context.Context, params *awsec2.DeleteSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSecurityGroupOutput, error)
	detachInternetGatewayFunc         func(ctx context.Context, params *awsec2.DetachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachInternetGatewayOutput, error)
	deleteInternetGatewayFunc         func(ctx context.Context, params *awsec2.DeleteInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteInternetGatewayOutput, error)
	disassociateRouteTableFunc        func(ctx context.Context, params *awsec2.DisassociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DisassociateRouteTableOutput, error)
	deleteRouteTableFunc              func(ctx context.Context, params *awsec2.DeleteRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteTableOutput, error)
	deleteSubnetFunc                  func(ctx context.Context, params *awsec2.DeleteSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSubnetOutput, error)
	deleteVpcFunc                     func(ctx context.Context, params *awsec2.DeleteVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVpcOutput, error)
}

func (m *mockEC2API) DescribeVpcs(ctx context.Context, params *awsec2.DescribeVpcsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVpcsOutput, error) {
	return m.describeVpcsFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DescribeSubnets(ctx context.Context, params *awsec2.DescribeSubnetsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSubnetsOutput, error) {
	return m.describeSubnetsFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DescribeInternetGateways(ctx context.Context, params *awsec2.DescribeInternetGatewaysInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInternetGatewaysOutput, error) {
	return m.describeInternetGatewaysFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DescribeRouteTables(ctx context.Context, params *awsec2.DescribeRouteTablesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRouteTablesOutput, error) {
	return m.describeRouteTablesFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DescribeSecurityGroups(ctx context.Context, params *awsec2.DescribeSecurityGroupsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeSecurityGroupsOutput, error) {
	return m.describeSecurityGroupsFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DescribeNetworkInterfaces(ctx context.Context, params *awsec2.DescribeNetworkInterfacesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeNetworkInterfacesOutput, error) {
	return m.describeNetworkInterfacesFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DescribeInstances(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error) {
	return m.describeInstancesFunc(ctx, params, optFns...)
}
func (m *mockEC2API) ModifyVpcAttribute(ctx context.Context, params *awsec2.ModifyVpcAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifyVpcAttributeOutput, error) {
	return m.modifyVpcAttributeFunc(ctx, params, optFns...)
}
func (m *mockEC2API) ModifySubnetAttribute(ctx context.Context, params *awsec2.ModifySubnetAttributeInput, optFns ...func(*awsec2.Options)) (*awsec2.ModifySubnetAttributeOutput, error) {
	return m.modifySubnetAttributeFunc(ctx, params, optFns...)
}
func (m *mockEC2API) CreateSubnet(ctx context.Context, params *awsec2.CreateSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSubnetOutput, error) {
	return m.createSubnetFunc(ctx, params, optFns...)
}
func (m *mockEC2API) CreateInternetGateway(ctx context.Context, params *awsec2.CreateInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInternetGatewayOutput, error) {
	return m.createInternetGatewayFunc(ctx, params, optFns...)
}
func (m *mockEC2API) AttachInternetGateway(ctx context.Context, params *awsec2.AttachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachInternetGatewayOutput, error) {
	return m.attachInternetGatewayFunc(ctx, params, optFns...)
}
func (m *mockEC2API) CreateRouteTable(ctx context.Context, params *awsec2.CreateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteTableOutput, error) {
	return m.createRouteTableFunc(ctx, params, optFns...)
}
func (m *mockEC2API) CreateRoute(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error) {
	return m.createRouteFunc(ctx, params, optFns...)
}
func (m *mockEC2API) AssociateRouteTable(ctx context.Context, params *awsec2.AssociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateRouteTableOutput, error) {
	return m.associateRouteTableFunc(ctx, params, optFns...)
}
func (m *mockEC2API) CreateSecurityGroup(ctx context.Context, params *awsec2.CreateSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateSecurityGroupOutput, error) {
	return m.createSecurityGroupFunc(ctx, params, optFns...)
}
func (m *mockEC2API) AuthorizeSecurityGroupIngress(ctx context.Context, params *awsec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*awsec2.Options)) (*awsec2.AuthorizeSecurityGroupIngressOutput, error) {
	return m.authorizeSecurityGroupIngressFunc(ctx, params, optFns...)
}
func (m *mockEC2API) RunInstances(ctx context.Context, params *awsec2.RunInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error) {
	return m.runInstancesFunc(ctx, params, optFns...)
}
func (m *mockEC2API) TerminateInstances(ctx context.Context, params *awsec2.TerminateInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.TerminateInstancesOutput, error) {
	return m.terminateInstancesFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DetachNetworkInterface(ctx context.Context, params *awsec2.DetachNetworkInterfaceInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachNetworkInterfaceOutput, error) {
	return m.detachNetworkInterfaceFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DeleteNetworkInterface(ctx context.Context, params *awsec2.DeleteNetworkInterfaceInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteNetworkInterfaceOutput, error) {
	return m.deleteNetworkInterfaceFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DeleteSecurityGroup(ctx context.Context, params *awsec2.DeleteSecurityGroupInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSecurityGroupOutput, error) {
	return m.deleteSecurityGroupFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DetachInternetGateway(ctx context.Context, params *awsec2.DetachInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DetachInternetGatewayOutput, error) {
	return m.detachInternetGatewayFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DeleteInternetGateway(ctx context.Context, params *awsec2.DeleteInternetGatewayInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteInternetGatewayOutput, error) {
	return m.deleteInternetGatewayFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DisassociateRouteTable(ctx context.Context, params *awsec2.DisassociateRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DisassociateRouteTableOutput, error) {
	return m.disassociateRouteTableFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DeleteRouteTable(ctx context.Context, params *awsec2.DeleteRouteTableInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteTableOutput, error) {
	return m.deleteRouteTableFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DeleteSubnet(ctx context.Context, params *awsec2.DeleteSubnetInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteSubnetOutput, error) {
	return m.deleteSubnetFunc(ctx, params, optFns...)
}
func (m *mockEC2API) DeleteVpc(ctx context.Context, params *awsec2.DeleteVpcInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVpcOutput, error) {
	return m.deleteVpcFunc(ctx, params, optFns...)
}
