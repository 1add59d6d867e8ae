package hosts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seantis/is-online/internal/ports"
)

func TestLoad_FromArgs(t *testing.T) {
	targets, err := Load([]string{"alpha.example.com", "beta.example.com"}, strings.NewReader(""), 443)

	require.NoError(t, err)
	require.Equal(t, []ports.Target{
		{Host: "alpha.example.com", Port: 443},
		{Host: "beta.example.com", Port: 443},
	}, targets)
}

func TestLoad_FromStdinWhenNoArgs(t *testing.T) {
	stdin := strings.NewReader("alpha.example.com\n\n  beta.example.com  \n")

	targets, err := Load(nil, stdin, 22)

	require.NoError(t, err)
	require.Equal(t, []ports.Target{
		{Host: "alpha.example.com", Port: 22},
		{Host: "beta.example.com", Port: 22},
	}, targets)
}

func TestLoad_EmptyHostListFails(t *testing.T) {
	_, err := Load(nil, strings.NewReader("\n\n"), 22)

	require.ErrorContains(t, err, "no hosts given")
}

func TestExpand_IPv4PrefixSkipsNetworkAndBroadcast(t *testing.T) {
	expanded, err := Expand([]string{"192.168.1.0/30"})

	require.NoError(t, err)
	require.Equal(t, []string{"192.168.1.1", "192.168.1.2"}, expanded)
}

func TestExpand_IPv4PointToPointKeepsBothAddresses(t *testing.T) {
	expanded, err := Expand([]string{"10.0.0.0/31"})

	require.NoError(t, err)
	require.Equal(t, []string{"10.0.0.0", "10.0.0.1"}, expanded)
}

func TestExpand_IPv6PrefixKeepsAllButUnspecified(t *testing.T) {
	expanded, err := Expand([]string{"::/127"})

	require.NoError(t, err)
	require.Equal(t, []string{"::1"}, expanded)
}

func TestExpand_PassesPlainHostsThrough(t *testing.T) {
	expanded, err := Expand([]string{"alpha.example.com", "192.168.1.5"})

	require.NoError(t, err)
	require.Equal(t, []string{"alpha.example.com", "192.168.1.5"}, expanded)
}

func TestExpand_RejectsOversizedPrefix(t *testing.T) {
	_, err := Expand([]string{"10.0.0.0/8"})

	require.ErrorContains(t, err, "expands to more than")

	_, err = Expand([]string{"::/0"})

	require.ErrorContains(t, err, "expands to more than")
}

func TestExpand_MixesPrefixesAndHosts(t *testing.T) {
	expanded, err := Expand([]string{"alpha.example.com", "192.168.1.0/30"})

	require.NoError(t, err)
	require.Equal(t, []string{"alpha.example.com", "192.168.1.1", "192.168.1.2"}, expanded)
}
