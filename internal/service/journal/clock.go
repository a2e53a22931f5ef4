package journal

import (
	"context"
	"time"

	"github.com/sandevgo/daybook/pkg/log"
)

// Start ticks the date display until ctx is done. With Shutdown it makes the
// controller a srv.Service.
func (c *Controller) Start(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.ClockInterval)
	defer ticker.Stop()

	log.FromCtx(ctx).Debug().Dur("interval", c.cfg.ClockInterval).Msg("clock started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.tick()
		}
	}
}

func (c *Controller) tick() {
	now := c.now().In(c.cfg.Location)
	c.view.RenderDate(now.Format(dateLayout))
}

func (c *Controller) Shutdown(ctx context.Context) error {
	c.toast.Stop()
	return nil
}
