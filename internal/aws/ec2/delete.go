package ec2

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

func (c *Client) TerminateInstances(ctx context.Context, ids []string) error {
	_, err := c.api.TerminateInstances(ctx, &awsec2.TerminateInstancesInput{InstanceIds: ids})
	return classify("TerminateInstances", strings.Join(ids, ","), err)
}

func (c *Client) DetachNetworkInterface(ctx context.Context, attachmentID string, force bool) error {
	_, err := c.api.DetachNetworkInterface(ctx, &awsec2.DetachNetworkInterfaceInput{
		AttachmentId: aws.String(attachmentID),
		Force:        aws.Bool(force),
	})
	return classify("DetachNetworkInterface", attachmentID, err)
}

func (c *Client) DeleteNetworkInterface(ctx context.Context, id string) error {
	_, err := c.api.DeleteNetworkInterface(ctx, &awsec2.DeleteNetworkInterfaceInput{NetworkInterfaceId: aws.String(id)})
	return classify("DeleteNetworkInterface", id, err)
}

func (c *Client) DeleteSecurityGroup(ctx context.Context, id string) error {
	_, err := c.api.DeleteSecurityGroup(ctx, &awsec2.DeleteSecurityGroupInput{GroupId: aws.String(id)})
	return classify("DeleteSecurityGroup", id, err)
}

func (c *Client) DetachInternetGateway(ctx context.Context, gatewayID, scopeID string) error {
	_, err := c.api.DetachInternetGateway(ctx, &awsec2.DetachInternetGatewayInput{
		InternetGatewayId: aws.String(gatewayID),
		VpcId:             aws.String(scopeID),
	})
	return classify("DetachInternetGateway", gatewayID, err)
}

func (c *Client) DeleteInternetGateway(ctx context.Context, id string) error {
	_, err := c.api.DeleteInternetGateway(ctx, &awsec2.DeleteInternetGatewayInput{InternetGatewayId: aws.String(id)})
	return classify("DeleteInternetGateway", id, err)
}

func (c *Client) DisassociateRouteTable(ctx context.Context, associationID string) error {
	_, err := c.api.DisassociateRouteTable(ctx, &awsec2.DisassociateRouteTableInput{AssociationId: aws.String(associationID)})
	return classify("DisassociateRouteTable", associationID, err)
}

func (c *Client) DeleteRouteTable(ctx context.Context, id string) error {
	_, err := c.api.DeleteRouteTable(ctx, &awsec2.DeleteRouteTableInput{RouteTableId: aws.String(id)})
	return classify("DeleteRouteTable", id, err)
}

func (c *Client) DeleteSubnet(ctx context.Context, id string) error {
	_, err := c.api.DeleteSubnet(ctx, &awsec2.DeleteSubnetInput{SubnetId: aws.String(id)})
	return classify("DeleteSubnet", id, err)
}

func (c *Client) DeleteScope(ctx context.Context, id string) error {
	_, err := c.api.DeleteVpc(ctx, &awsec2.DeleteVpcInput{VpcId: aws.String(id)})
	return classify("DeleteVpc", id, err)
}
