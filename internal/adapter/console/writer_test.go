package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seantis/is-online/internal/ports"
)

func TestWriter_PrintsOneLinePerResult(t *testing.T) {
	ctx := t.Context()

	var buf strings.Builder
	w := NewWriter(&buf, WriterOptions{})

	err := w.Publish(ctx, []ports.ProbeResult{
		{Target: ports.Target{Host: "alpha.example.com", Port: 443}, Family: ports.FamilyIPv4, Online: true},
		{Target: ports.Target{Host: "alpha.example.com", Port: 443}, Family: ports.FamilyIPv6, Online: false},
	})

	require.NoError(t, err)
	require.Equal(t, "alpha.example.com:443 is online\nalpha.example.com:443 is offline\n", buf.String())
}

func TestWriter_BracketsIPv6Literals(t *testing.T) {
	ctx := t.Context()

	var buf strings.Builder
	w := NewWriter(&buf, WriterOptions{})

	err := w.Publish(ctx, []ports.ProbeResult{
		{Target: ports.Target{Host: "::1", Port: 22}, Family: ports.FamilyIPv6, Online: true},
	})

	require.NoError(t, err)
	require.Equal(t, "[::1]:22 is online\n", buf.String())
}

func TestWriter_ColorsStatusWordOnly(t *testing.T) {
	ctx := t.Context()

	var buf strings.Builder
	w := NewWriter(&buf, WriterOptions{Color: true})

	err := w.Publish(ctx, []ports.ProbeResult{
		{Target: ports.Target{Host: "alpha.example.com", Port: 443}, Online: true},
		{Target: ports.Target{Host: "beta.example.com", Port: 443}, Online: false},
	})

	require.NoError(t, err)
	require.Equal(t,
		"alpha.example.com:443 is \x1b[1;32monline\x1b[0m\n"+
			"beta.example.com:443 is \x1b[1;31moffline\x1b[0m\n",
		buf.String())
}

func TestWriter_QuietSuppressesOutput(t *testing.T) {
	ctx := t.Context()

	var buf strings.Builder
	w := NewWriter(&buf, WriterOptions{Quiet: true})

	err := w.Publish(ctx, []ports.ProbeResult{
		{Target: ports.Target{Host: "alpha.example.com", Port: 443}, Online: true},
	})

	require.NoError(t, err)
	require.Empty(t, buf.String())
}
