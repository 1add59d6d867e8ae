package tcp

import (
	"fmt"
	"log/slog"
	"net"

	"golang.org/x/sync/semaphore"
)

type Client struct {
	logger      *slog.Logger
	dialer      *net.Dialer
	concurrency int
	sem         *semaphore.Weighted
}

func New(logger *slog.Logger, concurrency int) (*Client, error) {
	if concurrency <= 0 {
		return nil, fmt.Errorf("tcp: probe concurrency must be greater than zero")
	}

	return &Client{
		logger:      logger,
		dialer:      &net.Dialer{},
		concurrency: concurrency,
		sem:         semaphore.NewWeighted(int64(concurrency)),
	}, nil
}
