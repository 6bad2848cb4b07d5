// cmd/airboat/headless.go
package main

import (
	"context"
	"time"

	"github.com/opd-ai/go-airboat/pkg/engine"
	"github.com/opd-ai/go-airboat/pkg/input"
	"github.com/opd-ai/go-airboat/pkg/render"
)

// runHeadless ticks session at a fixed step with the throttle held open, which
// exercises the full control and physics path without a window. It returns
// ctx.Err() when cancelled, or nil once maxTicks ticks have run.
func runHeadless(ctx context.Context, session *engine.Session, renderer render.Renderer, step float64, maxTicks uint64) error {
	renderer.RenderScenery(session.Walls(), session.Placements())

	session.Start()
	defer session.Stop()
	session.HandleKey(input.KeyW, true)

	ticker := time.NewTicker(time.Duration(step * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			session.Tick(step)
			renderer.Clear()
			renderer.RenderFrame(session.Frame())
			renderer.Present()
			if maxTicks > 0 && session.Frame().Tick >= maxTicks {
				return nil
			}
		}
	}
}
