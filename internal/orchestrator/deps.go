package orchestrator

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"k8s.io/utils/clock"

	"tasnim.dev/netlab/internal/cloud"
)

// Settings holds the timing knobs. The settle and detach delays are empirical
// and depend on how fast the control plane propagates detachments.
type Settings struct {
	Region                     string
	RetryAttempts              int
	SubnetRetryInterval        time.Duration
	InterfaceRetryInterval     time.Duration
	SecurityGroupRetryInterval time.Duration
	SettleInterval             time.Duration
	DetachDelay                time.Duration
	WaitTimeout                time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Region:                     "us-east-1",
		RetryAttempts:              5,
		SubnetRetryInterval:        5 * time.Second,
		InterfaceRetryInterval:     5 * time.Second,
		SecurityGroupRetryInterval: 3 * time.Second,
		SettleInterval:             10 * time.Second,
		DetachDelay:                2 * time.Second,
		WaitTimeout:                15 * time.Minute,
	}
}

// UserDataSource resolves a boot-script payload by logical name.
type UserDataSource interface {
	Load(ctx context.Context, name string) (string, error)
}

// Recorder receives run metrics. A nil Recorder in Deps disables metrics.
type Recorder interface {
	ObservePhase(operation, phase string, d time.Duration, ok bool)
	CountResource(phase, outcome string)
}

// Deps is built once after authentication and handed to every orchestrator.
type Deps struct {
	Cloud    cloud.ControlPlane
	Waiter   cloud.InstanceWaiter
	UserData UserDataSource
	Logger   zerolog.Logger
	Clock    clock.Clock
	Metrics  Recorder
	Settings Settings
	// RunID tags logs and the report. Generated when empty.
	RunID string
}

type nopRecorder struct{}

func (nopRecorder) ObservePhase(string, string, time.Duration, bool) {}
func (nopRecorder) CountResource(string, string)                     {}
