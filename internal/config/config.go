package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"tasnim.dev/netlab/internal/cloud"
	"tasnim.dev/netlab/internal/orchestrator"
)

const (
	DefaultRegion    = "us-east-1"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Config holds optional defaults loaded from ~/.config/netlab/config.yaml.
type Config struct {
	DefaultProfile  string  `yaml:"default_profile"`
	DefaultRegion   string  `yaml:"default_region" validate:"required"`
	VPCID           string  `yaml:"vpc_id" validate:"omitempty,startswith=vpc-"`
	VPCName         string  `yaml:"vpc_name"`
	NamePrefix      string  `yaml:"name_prefix" validate:"required,max=48"`
	AppImage        string  `yaml:"app_image" validate:"required,startswith=ami-"`
	DBImage         string  `yaml:"db_image" validate:"required,startswith=ami-"`
	InstanceType    string  `yaml:"instance_type" validate:"required"`
	KeyName         string  `yaml:"key_name"`
	InstanceProfile string  `yaml:"instance_profile"`
	UserDataSource  string  `yaml:"user_data_source"`
	LogLevel        string  `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat       string  `yaml:"log_format" validate:"oneof=console json"`
	MetricsFile     string  `yaml:"metrics_file"`
	Timings         Timings `yaml:"timings"`
}

// Path returns the config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "netlab", "config.yaml"), nil
}

// Load reads the config file, fills defaults and applies NETLAB_* environment
// overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return LoadFile("")
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	cfg.applyDefaults()
	timings, err := cfg.Timings.withEnv()
	if err != nil {
		return nil, err
	}
	cfg.Timings = timings
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	topo := cloud.DefaultTopologyOptions()
	setDefault(&c.DefaultRegion, DefaultRegion)
	setDefault(&c.NamePrefix, topo.NamePrefix)
	setDefault(&c.VPCName, c.NamePrefix+"-vpc")
	setDefault(&c.AppImage, topo.AppImage)
	setDefault(&c.DBImage, topo.DBImage)
	setDefault(&c.InstanceType, topo.InstanceType)
	setDefault(&c.KeyName, topo.KeyName)
	setDefault(&c.InstanceProfile, topo.InstanceProfile)
	setDefault(&c.LogLevel, DefaultLogLevel)
	setDefault(&c.LogFormat, DefaultLogFormat)
	c.Timings = c.Timings.withDefaults()
}

func setDefault(field *string, val string) {
	if *field == "" {
		*field = val
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

// Scope picks the target VPC. An id from either source wins over a name.
func (c *Config) Scope(id, name string) cloud.ScopeRef {
	switch {
	case id != "":
		return cloud.ScopeRef{ID: id}
	case name != "":
		return cloud.ScopeRef{Name: name}
	case c.VPCID != "":
		return cloud.ScopeRef{ID: c.VPCID}
	}
	return cloud.ScopeRef{Name: c.VPCName}
}

func (c *Config) TopologyOptions() cloud.TopologyOptions {
	o := cloud.DefaultTopologyOptions()
	o.NamePrefix = c.NamePrefix
	o.AppImage = c.AppImage
	o.DBImage = c.DBImage
	o.InstanceType = c.InstanceType
	o.KeyName = c.KeyName
	o.InstanceProfile = c.InstanceProfile
	return o
}

func (c *Config) Settings(region string) orchestrator.Settings {
	return orchestrator.Settings{
		Region:                     region,
		RetryAttempts:              c.Timings.RetryAttempts,
		SubnetRetryInterval:        c.Timings.SubnetRetryInterval,
		InterfaceRetryInterval:     c.Timings.InterfaceRetryInterval,
		SecurityGroupRetryInterval: c.Timings.SecurityGroupRetryInterval,
		SettleInterval:             c.Timings.SettleInterval,
		DetachDelay:                c.Timings.DetachDelay,
		WaitTimeout:                c.Timings.WaitTimeout,
	}
}
