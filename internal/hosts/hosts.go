// Package hosts turns CLI arguments or stdin lines into probe targets,
// expanding CIDR prefixes into individual addresses.
package hosts

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"strings"

	"github.com/seantis/is-online/internal/ports"
)

// maxPrefixHosts caps CIDR expansion so a stray ::/0 argument becomes a
// usage error instead of an endless loop.
const maxPrefixHosts = 1 << 16

// Load builds the target list for a run: hosts come from args, or from r
// (one per line) when no args are given. CIDR prefixes expand into their
// individual addresses. An empty final list is an error.
func Load(args []string, r io.Reader, port uint16) ([]ports.Target, error) {
	names, err := read(args, r)
	if err != nil {
		return nil, err
	}

	names, err = Expand(names)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no hosts given, pass them as arguments or on stdin")
	}

	targets := make([]ports.Target, 0, len(names))
	for _, name := range names {
		targets = append(targets, ports.Target{Host: name, Port: port})
	}

	return targets, nil
}

func read(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}

		names = append(names, name)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hosts from stdin: %w", err)
	}

	return names, nil
}

// Expand replaces every argument that parses as a CIDR prefix with the
// addresses it contains. IPv4 prefixes shorter than /31 lose their network
// and broadcast addresses; the unspecified address is always skipped.
// Anything that is not a prefix passes through unchanged.
func Expand(names []string) ([]string, error) {
	expanded := make([]string, 0, len(names))

	for _, name := range names {
		prefix, err := netip.ParsePrefix(name)
		if err != nil {
			expanded = append(expanded, name)
			continue
		}

		addrs, err := expandPrefix(prefix)
		if err != nil {
			return nil, err
		}

		expanded = append(expanded, addrs...)
	}

	return expanded, nil
}

func expandPrefix(prefix netip.Prefix) ([]string, error) {
	prefix = prefix.Masked()

	// Compare bit counts, a shift by 128 for ::/0 would overflow.
	hostBits := prefix.Addr().BitLen() - prefix.Bits()
	if hostBits > 16 {
		return nil, fmt.Errorf("prefix %s expands to more than %d addresses", prefix, maxPrefixHosts)
	}

	total := 1 << hostBits
	skipEdges := prefix.Addr().Is4() && hostBits > 1

	addrs := make([]string, 0, total)

	addr := prefix.Addr()
	for i := range total {
		switch {
		case addr.IsUnspecified():
		case skipEdges && (i == 0 || i == total-1):
		default:
			addrs = append(addrs, addr.String())
		}

		addr = addr.Next()
	}

	return addrs, nil
}
