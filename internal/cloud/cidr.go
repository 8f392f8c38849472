package cloud

import (
	"fmt"
	"net/netip"
)

func parsePrefix(cidr string) (netip.Prefix, error) {
	p, err := netip.ParsePrefix(cidr)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid CIDR %q: %w", cidr, err)
	}
	return p.Masked(), nil
}

// CheckDisjoint returns an error naming the first pair of overlapping blocks.
func CheckDisjoint(cidrs []string) error {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, c := range cidrs {
		p, err := parsePrefix(c)
		if err != nil {
			return err
		}
		prefixes = append(prefixes, p)
	}
	for i := range prefixes {
		for j := i + 1; j < len(prefixes); j++ {
			if prefixes[i].Overlaps(prefixes[j]) {
				return fmt.Errorf("CIDR %s overlaps %s", cidrs[i], cidrs[j])
			}
		}
	}
	return nil
}

// CheckWithin verifies every block is contained in the scope block.
func CheckWithin(scope string, cidrs []string) error {
	outer, err := parsePrefix(scope)
	if err != nil {
		return err
	}
	for _, c := range cidrs {
		p, err := parsePrefix(c)
		if err != nil {
			return err
		}
		if p.Bits() < outer.Bits() || !outer.Contains(p.Addr()) {
			return fmt.Errorf("CIDR %s is outside scope block %s", c, scope)
		}
	}
	return nil
}
