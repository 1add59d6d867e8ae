package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/seantis/is-online/internal/adapter/console"
	"github.com/seantis/is-online/internal/adapter/httpsrv"
	"github.com/seantis/is-online/internal/adapter/prometheus"
	"github.com/seantis/is-online/internal/adapter/tcp"
	"github.com/seantis/is-online/internal/adapter/worker"
	"github.com/seantis/is-online/internal/common/logging"
	"github.com/seantis/is-online/internal/common/tracing"
	"github.com/seantis/is-online/internal/hosts"
	"github.com/seantis/is-online/internal/ports"
	"github.com/seantis/is-online/internal/usecase"
)

func check(cli *CLI) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logLevel, err := parseLogLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "is-online: %s\n", err)
		return exitUsage
	}

	logger := logging.New(os.Stderr, logLevel)

	targets, err := hosts.Load(cli.Hosts, os.Stdin, cli.Port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "is-online: %s\n", err)
		return exitUsage
	}

	client, err := tcp.New(logger, cli.Concurrency)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create tcp client", logging.Error(err))
		return exitUsage
	}

	prober := tcp.NewProbe(client)

	writer := console.NewWriter(os.Stdout, console.WriterOptions{
		Color: cli.colorEnabled(),
		Quiet: cli.Quiet,
	})

	if cli.Wait {
		return checkUntilOnline(ctx, logger, cli, prober, writer, targets)
	}

	return checkOnce(ctx, logger, cli, prober, writer, targets)
}

func checkOnce(ctx context.Context, logger *slog.Logger, cli *CLI, prober ports.Prober, writer ports.ResultPublisher, targets []ports.Target) int {
	uc := usecase.NewCheckHostsUseCase(logger, prober, writer, cli.Timeout)

	report, err := uc.Execute(tracing.WithTraceID(ctx), usecase.CheckHostsCommand{
		Targets:  targets,
		Families: cli.families(),
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.ErrorContext(ctx, "Failed to check hosts", logging.Error(err))
		}

		return exitFail
	}

	if cli.Fail && report.AnyOffline() {
		return exitFail
	}

	return exitOK
}

func checkUntilOnline(ctx context.Context, logger *slog.Logger, cli *CLI, prober ports.Prober, writer ports.ResultPublisher, targets []ports.Target) int {
	publisher := fanoutPublisher{writer}

	var srv *httpsrv.Server

	if cli.MetricsAddr != "" {
		exporter, err := prometheus.NewExporter()
		if err != nil {
			logger.ErrorContext(ctx, "Failed to create prometheus exporter", logging.Error(err))
			return exitFail
		}

		publisher = append(publisher, prometheus.NewResultPublisher(logger, exporter))

		srv = httpsrv.NewServer(cli.MetricsAddr, httpsrv.ServerOptions{
			MetricsHandler: exporter.Handler(),
		})
	}

	uc := usecase.NewCheckHostsUseCase(logger, prober, publisher, cli.Timeout)

	w := worker.NewWorker(logger, cli.Interval, &waitTask{
		uc:        uc,
		families:  cli.families(),
		remaining: targets,
	})

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := w.Shutdown(shutdownCtx); err != nil {
			logger.ErrorContext(ctx, "Failed to stop worker", logging.Error(err))
		}

		if srv != nil {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.ErrorContext(ctx, "Failed to stop metrics server", logging.Error(err))
			}
		}
	}

	errCh := make(chan error, 1)
	doneCh := make(chan struct{})

	if srv != nil {
		go func() {
			logger.InfoContext(ctx, "Start metrics server", slog.String("address", srv.ListenAddr()))

			if err := srv.Start(); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		logger.InfoContext(ctx, "Start polling", slog.Duration("interval", cli.Interval))

		_ = w.Start()
		close(doneCh)
	}()

	select {
	case <-doneCh:
		shutdown()
		return exitOK
	case err := <-errCh:
		logger.ErrorContext(ctx, "Metrics server failed", logging.Error(err))
		shutdown()
		return exitFail
	case <-ctx.Done():
		logger.InfoContext(ctx, "Interrupted, stopping")
		shutdown()
		return exitFail
	}
}

// waitTask reprobes the targets that are still offline. Targets leave the
// set once every requested family reports online; the poll is complete when
// the set is empty.
type waitTask struct {
	uc        *usecase.CheckHostsUseCase
	families  []ports.Family
	remaining []ports.Target
}

func (t *waitTask) Execute(ctx context.Context) (bool, error) {
	report, err := t.uc.Execute(ctx, usecase.CheckHostsCommand{
		Targets:  t.remaining,
		Families: t.families,
	})
	if err != nil {
		return false, err
	}

	t.remaining = report.Offline()

	return len(t.remaining) == 0, nil
}

type fanoutPublisher []ports.ResultPublisher

func (f fanoutPublisher) Publish(ctx context.Context, results []ports.ProbeResult) error {
	for _, p := range f {
		if err := p.Publish(ctx, results); err != nil {
			return err
		}
	}

	return nil
}

func (c *CLI) families() []ports.Family {
	switch {
	case c.All:
		return []ports.Family{ports.FamilyIPv4, ports.FamilyIPv6}
	case c.IPv4:
		return []ports.Family{ports.FamilyIPv4}
	case c.IPv6:
		return []ports.Family{ports.FamilyIPv6}
	default:
		return []ports.Family{ports.FamilyAny}
	}
}

func (c *CLI) colorEnabled() bool {
	if c.NoColor {
		return false
	}

	// Presence alone disables color, per the NO_COLOR convention.
	_, noColor := os.LookupEnv("NO_COLOR")

	return !noColor
}

func (c *CLI) Validate() error {
	var errs []error

	if c.Port == 0 {
		errs = append(errs, fmt.Errorf("--port: must be between 1 and 65535"))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("--timeout: must be greater than zero"))
	}

	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("--interval: must be greater than zero"))
	}

	if c.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("--concurrency: must be greater than zero"))
	}

	if c.IPv4 && c.IPv6 {
		errs = append(errs, errors.New("--ipv4 and --ipv6 are mutually exclusive"))
	}

	if c.All && (c.IPv4 || c.IPv6) {
		errs = append(errs, errors.New("--all cannot be combined with --ipv4 or --ipv6"))
	}

	if c.Fail && c.Wait {
		errs = append(errs, errors.New("--fail cannot be combined with --wait"))
	}

	if c.MetricsAddr != "" && !c.Wait {
		errs = append(errs, errors.New("--metrics.addr requires --wait"))
	}

	if c.MetricsAddr != "" && !isTCPAddr(c.MetricsAddr) {
		errs = append(errs, fmt.Errorf("--metrics.addr: must be a valid tcp listening address (e.g. 0.0.0.0:8080)"))
	}

	if !isLogLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("--log.level: must be one of debug, info, warn, error"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func parseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.Level(-1), fmt.Errorf("invalid log level: %s", levelStr)
	}
}
