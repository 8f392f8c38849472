package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ErrNoCredentials means the default chain found nothing usable.
var ErrNoCredentials = errors.New("no AWS credentials available")

// StaticCredentials are keys typed in by the operator.
type StaticCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// LoadConfig loads an AWS config with optional profile and region overrides.
// Static credentials, when given, replace the default provider chain.
func LoadConfig(ctx context.Context, profile, region string, static *StaticCredentials) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if profile != "" && static == nil {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if static != nil {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(static.AccessKeyID, static.SecretAccessKey, static.SessionToken),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return cfg, nil
}

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Identity is the principal the credentials resolve to.
type Identity struct {
	Account string
	ARN     string
	UserID  string
}

// VerifyCredentials makes one authenticated call so bad keys fail before any
// resource is touched.
func VerifyCredentials(ctx context.Context, api STSAPI) (Identity, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, fmt.Errorf("GetCallerIdentity: %w", err)
	}
	return Identity{
		Account: aws.ToString(out.Account),
		ARN:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}

// HasCredentials reports whether cfg can produce credentials at all.
func HasCredentials(ctx context.Context, cfg aws.Config) error {
	if cfg.Credentials == nil {
		return ErrNoCredentials
	}
	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoCredentials, err)
	}
	if creds.AccessKeyID == "" {
		return ErrNoCredentials
	}
	return nil
}
