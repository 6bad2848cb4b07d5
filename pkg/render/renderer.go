// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-airboat/pkg/engine"
	"github.com/opd-ai/go-airboat/pkg/logging"
	"github.com/opd-ai/go-airboat/pkg/scenery"
)

// Renderer draws the scene a session produces.
type Renderer interface {
	// RenderScenery is called once after the session is built.
	RenderScenery(walls []scenery.Boundary, placements *scenery.Placements)
	// RenderFrame is called after every tick.
	RenderFrame(frame engine.Frame)
	Clear()
	Present()
}

// NullRenderer is a Renderer that only logs what it is asked to draw.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger writes JSON to stdout.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger.With("component", "renderer")}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderScenery implements Renderer.
func (d *NullRenderer) RenderScenery(walls []scenery.Boundary, placements *scenery.Placements) {
	ctx := context.Background()
	points := 0
	for _, w := range walls {
		points += len(w.Points)
	}
	d.logger.Info(ctx, "RenderScenery called", "walls", len(walls), "wall_points", points)
	if placements == nil {
		return
	}
	for _, typ := range placements.Types() {
		d.logger.Debug(ctx, "decorations", "type", typ, "count", placements.Count(typ))
	}
}

// RenderFrame implements Renderer.
func (d *NullRenderer) RenderFrame(frame engine.Frame) {
	d.logger.Debug(context.Background(), "RenderFrame called",
		"tick", frame.Tick,
		"x", frame.Pose.Position.X(),
		"z", frame.Pose.Position.Z(),
		"heading", frame.Pose.RotationY,
		"speed", frame.Speed,
		"throttle", frame.Axes.Throttle,
		"yaw", frame.Axes.Yaw,
	)
}

var _ Renderer = (*NullRenderer)(nil)
