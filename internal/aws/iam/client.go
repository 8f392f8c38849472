package iam

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

type IAMAPI interface {
	GetInstanceProfile(ctx context.Context, params *awsiam.GetInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.GetInstanceProfileOutput, error)
}

type Client struct {
	api IAMAPI
}

func NewClient(api IAMAPI) *Client {
	return &Client{api: api}
}

// InstanceProfile is the subset of an instance profile the launch preflight reports.
type InstanceProfile struct {
	Name  string
	ARN   string
	Roles []string
}

// GetInstanceProfile returns the named profile, or ok=false when it does not exist.
func (c *Client) GetInstanceProfile(ctx context.Context, name string) (InstanceProfile, bool, error) {
	out, err := c.api.GetInstanceProfile(ctx, &awsiam.GetInstanceProfileInput{
		InstanceProfileName: aws.String(name),
	})
	if err != nil {
		var nse *iamtypes.NoSuchEntityException
		if errors.As(err, &nse) {
			return InstanceProfile{}, false, nil
		}
		return InstanceProfile{}, false, fmt.Errorf("GetInstanceProfile(%s): %w", name, err)
	}

	p := out.InstanceProfile
	profile := InstanceProfile{
		Name: aws.ToString(p.InstanceProfileName),
		ARN:  aws.ToString(p.Arn),
	}
	for _, r := range p.Roles {
		profile.Roles = append(profile.Roles, aws.ToString(r.RoleName))
	}
	return profile, true, nil
}
