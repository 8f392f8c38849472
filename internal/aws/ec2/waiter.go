package ec2

import (
	"context"
	"fmt"
	"time"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"

	"tasnim.dev/netlab/internal/cloud"
)

const (
	defaultMinDelay = 5 * time.Second
	defaultMaxDelay = 30 * time.Second
)

// Waiter polls DescribeInstances through the SDK waiters until every instance
// reaches the target state.
type Waiter struct {
	api      awsec2.DescribeInstancesAPIClient
	minDelay time.Duration
	maxDelay time.Duration
}

var _ cloud.InstanceWaiter = (*Waiter)(nil)

func NewWaiter(api awsec2.DescribeInstancesAPIClient) *Waiter {
	return &Waiter{api: api, minDelay: defaultMinDelay, maxDelay: defaultMaxDelay}
}

func (w *Waiter) WaitForInstances(ctx context.Context, ids []string, target cloud.InstanceState, timeout time.Duration) error {
	if len(ids) == 0 {
		return nil
	}
	in := &awsec2.DescribeInstancesInput{InstanceIds: ids}

	var err error
	switch target {
	case cloud.InstanceStateRunning:
		err = awsec2.NewInstanceRunningWaiter(w.api, func(o *awsec2.InstanceRunningWaiterOptions) {
			o.MinDelay = w.minDelay
			o.MaxDelay = w.maxDelay
		}).Wait(ctx, in, timeout)
	case cloud.InstanceStateTerminated:
		err = awsec2.NewInstanceTerminatedWaiter(w.api, func(o *awsec2.InstanceTerminatedWaiterOptions) {
			o.MinDelay = w.minDelay
			o.MaxDelay = w.maxDelay
		}).Wait(ctx, in, timeout)
	default:
		return fmt.Errorf("cannot wait for instance state %q", target)
	}
	if err != nil {
		return fmt.Errorf("wait for %s: %w", target, err)
	}
	return nil
}
