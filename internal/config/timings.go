package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"
)

// Timings holds the retry and settle knobs. Zero fields take defaults.
type Timings struct {
	RetryAttempts              int           `yaml:"retry_attempts" validate:"min=1,max=100"`
	SubnetRetryInterval        time.Duration `yaml:"subnet_retry_interval" validate:"gte=0"`
	InterfaceRetryInterval     time.Duration `yaml:"interface_retry_interval" validate:"gte=0"`
	SecurityGroupRetryInterval time.Duration `yaml:"security_group_retry_interval" validate:"gte=0"`
	SettleInterval             time.Duration `yaml:"settle_interval" validate:"gte=0"`
	DetachDelay                time.Duration `yaml:"detach_delay" validate:"gte=0"`
	WaitTimeout                time.Duration `yaml:"wait_timeout" validate:"gt=0"`
}

func (t Timings) withDefaults() Timings {
	d := DefaultTimings()
	if t.RetryAttempts == 0 {
		t.RetryAttempts = d.RetryAttempts
	}
	for _, f := range []struct {
		dst *time.Duration
		def time.Duration
	}{
		{&t.SubnetRetryInterval, d.SubnetRetryInterval},
		{&t.InterfaceRetryInterval, d.InterfaceRetryInterval},
		{&t.SecurityGroupRetryInterval, d.SecurityGroupRetryInterval},
		{&t.SettleInterval, d.SettleInterval},
		{&t.DetachDelay, d.DetachDelay},
		{&t.WaitTimeout, d.WaitTimeout},
	} {
		if *f.dst == 0 {
			*f.dst = f.def
		}
	}
	return t
}

func DefaultTimings() Timings {
	return Timings{
		RetryAttempts:              5,
		SubnetRetryInterval:        5 * time.Second,
		InterfaceRetryInterval:     5 * time.Second,
		SecurityGroupRetryInterval: 3 * time.Second,
		SettleInterval:             10 * time.Second,
		DetachDelay:                2 * time.Second,
		WaitTimeout:                15 * time.Minute,
	}
}

// envTimings maps each environment override to the field it replaces.
//
// Environment Variables:
//   - NETLAB_RETRY_ATTEMPTS (default: 5)
//   - NETLAB_SUBNET_RETRY_INTERVAL (default: 5s)
//   - NETLAB_INTERFACE_RETRY_INTERVAL (default: 5s)
//   - NETLAB_SECURITY_GROUP_RETRY_INTERVAL (default: 3s)
//   - NETLAB_SETTLE_INTERVAL (default: 10s)
//   - NETLAB_DETACH_DELAY (default: 2s)
//   - NETLAB_WAIT_TIMEOUT (default: 15m)
func (t *Timings) envTimings() map[string]*time.Duration {
	return map[string]*time.Duration{
		"NETLAB_SUBNET_RETRY_INTERVAL":         &t.SubnetRetryInterval,
		"NETLAB_INTERFACE_RETRY_INTERVAL":      &t.InterfaceRetryInterval,
		"NETLAB_SECURITY_GROUP_RETRY_INTERVAL": &t.SecurityGroupRetryInterval,
		"NETLAB_SETTLE_INTERVAL":               &t.SettleInterval,
		"NETLAB_DETACH_DELAY":                  &t.DetachDelay,
		"NETLAB_WAIT_TIMEOUT":                  &t.WaitTimeout,
	}
}

// withEnv overrides fields from the environment. A set but malformed value
// is an error rather than a silent fallback.
func (t Timings) withEnv() (Timings, error) {
	var errs []error
	if v, ok := os.LookupEnv("NETLAB_RETRY_ATTEMPTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("NETLAB_RETRY_ATTEMPTS=%q: not an integer", v))
		} else {
			t.RetryAttempts = n
		}
	}
	for name, dst := range t.envTimings() {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: not a duration", name, v))
			continue
		}
		*dst = d
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return t, fmt.Errorf("invalid environment override: %w", errors.Join(errs...))
	}
	return t, nil
}
