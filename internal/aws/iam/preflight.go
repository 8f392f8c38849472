package iam

import (
	"context"
	"fmt"
	"slices"

	"tasnim.dev/netlab/internal/cloud"
)

// RequireInstanceProfiles fails before any create call when a profile named by
// the topology does not exist.
func (c *Client) RequireInstanceProfiles(ctx context.Context, topo cloud.Topology) ([]InstanceProfile, error) {
	var names []string
	for _, in := range topo.Instances {
		if in.InstanceProfile != "" && !slices.Contains(names, in.InstanceProfile) {
			names = append(names, in.InstanceProfile)
		}
	}

	profiles := make([]InstanceProfile, 0, len(names))
	for _, name := range names {
		p, ok, err := c.GetInstanceProfile(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("preflight: %w", err)
		}
		if !ok {
			return nil, &cloud.FatalConfigurationError{
				Phase: "preflight",
				Err:   fmt.Errorf("instance profile %q does not exist", name),
			}
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
