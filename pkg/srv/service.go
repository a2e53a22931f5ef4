package srv

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/daybook/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices runs every service in its own goroutine. Start errors are
// logged and delivered on the returned channel, which is buffered for all of
// them.
func StartServices(ctx context.Context, services []Service) <-chan error {
	logger := log.FromCtx(ctx)
	errs := make(chan error, len(services))

	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Error().Err(err).Msgf("%T failed to start", service)
				errs <- fmt.Errorf("%T: %w", service, err)
			}
		}(service)
	}
	return errs
}

// ShutdownServices stops services in reverse start order, giving all of them
// together at most timeout.
func ShutdownServices(ctx context.Context, services []Service, timeout time.Duration) {
	logger := log.FromCtx(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
