package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

type CLI struct {
	Hosts []string `arg:"" optional:"" help:"Hosts to check. May be hostnames, IP addresses or CIDR prefixes; read from stdin, one per line, when omitted."`

	Port        uint16        `name:"port" short:"p" default:"22" help:"TCP port to check on every host."`
	Timeout     time.Duration `name:"timeout" short:"t" default:"1s" help:"TCP connection timeout (e.g. 500ms, 2s)."`
	All         bool          `name:"all" help:"Probe both IPv4 and IPv6."`
	IPv4        bool          `name:"ipv4" short:"4" help:"Probe IPv4 only."`
	IPv6        bool          `name:"ipv6" short:"6" help:"Probe IPv6 only."`
	Wait        bool          `name:"wait" short:"w" help:"Poll until every host is online, then exit."`
	Interval    time.Duration `name:"interval" default:"1s" help:"Polling interval in wait mode."`
	Fail        bool          `name:"fail" short:"f" help:"Exit with 1 if any host is offline."`
	Quiet       bool          `name:"quiet" short:"q" help:"Do not print anything."`
	NoColor     bool          `name:"no-color" help:"Do not print colors."`
	Concurrency int           `name:"concurrency" default:"10" help:"Maximum number of concurrent connection attempts."`
	MetricsAddr string        `name:"metrics.addr" help:"Serve Prometheus metrics on this address in wait mode (disabled when empty)."`
	LogLevel    string        `name:"log.level" env:"LOG_LEVEL" default:"warn" help:"Log level (debug, info, warn, error)."`
}

func main() {
	var cli CLI

	parser := kong.Must(&cli,
		kong.Name("is-online"),
		kong.Description("Check if a TCP port on one or many hosts is online."),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		parser.Errorf("%s", err)
		os.Exit(exitUsage)
	}

	os.Exit(check(&cli))
}
