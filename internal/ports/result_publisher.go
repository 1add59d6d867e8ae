package ports

import "context"

type ResultPublisher interface {
	Publish(ctx context.Context, results []ProbeResult) error
}
