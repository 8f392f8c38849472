package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	awss3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	awsec2 "tasnim.dev/netlab/internal/aws/ec2"
	awsiam "tasnim.dev/netlab/internal/aws/iam"
	awss3 "tasnim.dev/netlab/internal/aws/s3"
)

type ServiceClient struct {
	EC2    *awsec2.Client
	Waiter *awsec2.Waiter
	IAM    *awsiam.Client
	S3     *awss3.Client
	STS    STSAPI
	Region string
}

// NewServiceClient builds every client from one verified config.
func NewServiceClient(cfg aws.Config) *ServiceClient {
	ec2Client := ec2.NewFromConfig(cfg)

	return &ServiceClient{
		EC2:    awsec2.NewClient(ec2Client),
		Waiter: awsec2.NewWaiter(ec2Client),
		IAM:    awsiam.NewClient(iam.NewFromConfig(cfg)),
		S3:     awss3.NewClient(awss3sdk.NewFromConfig(cfg)),
		STS:    sts.NewFromConfig(cfg),
		Region: cfg.Region,
	}
}
