package ports

import (
	"context"
	"net"
	"strconv"
	"time"
)

// Family selects the address family used for a probe.
type Family string

const (
	// FamilyAny lets system resolution pick the address.
	FamilyAny  Family = "any"
	FamilyIPv4 Family = "ipv4"
	FamilyIPv6 Family = "ipv6"
)

// Network returns the dial network for the family.
func (f Family) Network() string {
	switch f {
	case FamilyIPv4:
		return "tcp4"
	case FamilyIPv6:
		return "tcp6"
	default:
		return "tcp"
	}
}

// ResolverNetwork returns the lookup network for the family.
func (f Family) ResolverNetwork() string {
	switch f {
	case FamilyIPv4:
		return "ip4"
	case FamilyIPv6:
		return "ip6"
	default:
		return "ip"
	}
}

// Target is a host/port pair to probe. Immutable once parsed.
type Target struct {
	Host string
	Port uint16
}

func (t Target) String() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(int(t.Port)))
}

// ProbeResult is the outcome of a single reachability probe.
type ProbeResult struct {
	Target Target
	Family Family
	Online bool
}

// Prober tests TCP reachability of a target. It returns one result per
// requested family, in request order. Resolution failures, connection
// failures and timeouts are reported as offline results; the error return
// is reserved for context cancellation.
type Prober interface {
	Probe(ctx context.Context, target Target, families []Family, timeout time.Duration) ([]ProbeResult, error)
}
