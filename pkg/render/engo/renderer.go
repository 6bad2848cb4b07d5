// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-airboat/pkg/engine"
	"github.com/opd-ai/go-airboat/pkg/physics"
	"github.com/opd-ai/go-airboat/pkg/render"
	"github.com/opd-ai/go-airboat/pkg/scenery"
)

// sprite is a drawable entity owned by the renderer.
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

var (
	wallColor  = color.RGBA{40, 40, 40, 255}
	boatColor  = color.RGBA{230, 200, 40, 255}
	waterColor = color.RGBA{40, 90, 140, 255}

	decorationColors = map[string]color.RGBA{
		"tree":  {30, 110, 40, 255},
		"rock":  {120, 120, 120, 255},
		"bush":  {60, 140, 60, 255},
		"grass": {110, 170, 70, 255},
	}
	defaultDecorationColor = color.RGBA{90, 130, 60, 255}
)

// Scene sizes in world units.
const (
	wallDotSize  = 0.5
	decorationSz = 1.5
	boatLength   = 4.0
	boatWidth    = 2.2
)

// SceneRenderer draws a session top-down with engo shapes
type SceneRenderer struct {
	renderSystem *common.RenderSystem
	camera       *CameraSystem

	walls       []*sprite
	decorations []*sprite
	boat        *sprite
}

// NewSceneRenderer creates a renderer that adds its sprites to renderSystem.
func NewSceneRenderer(renderSystem *common.RenderSystem, camera *CameraSystem) *SceneRenderer {
	return &SceneRenderer{renderSystem: renderSystem, camera: camera}
}

// RenderScenery implements render.Renderer
func (r *SceneRenderer) RenderScenery(walls []scenery.Boundary, placements *scenery.Placements) {
	for _, wall := range walls {
		for _, p := range wall.Points {
			r.walls = append(r.walls, r.add(common.Circle{}, wallColor, r.camera.WorldToPixels(p), wallDotSize, wallDotSize, 0))
		}
	}
	if placements == nil {
		return
	}
	for _, typ := range placements.Types() {
		c := DecorationColor(typ)
		for _, pl := range placements.Of(typ) {
			// Scene Z is world -Y.
			pos := physics.Vector2D{X: pl.Position.X(), Y: -pl.Position.Z()}
			size := decorationSz * pl.Scale
			r.decorations = append(r.decorations, r.add(common.Circle{}, c, r.camera.WorldToPixels(pos), size, size, 0))
		}
	}
}

// RenderFrame implements render.Renderer
func (r *SceneRenderer) RenderFrame(frame engine.Frame) {
	pos := physics.Vector2D{X: frame.Pose.Position.X(), Y: -frame.Pose.Position.Z()}
	if r.boat == nil {
		r.boat = r.add(common.Rectangle{}, boatColor, physics.Vector2D{}, boatLength, boatWidth, 0)
	}
	r.boat.SpaceComponent = r.space(r.camera.WorldToPixels(pos), boatLength, boatWidth, frame.Pose.RotationY)
	r.camera.SetTarget(pos)
}

// Clear implements render.Renderer. engo clears the frame itself.
func (r *SceneRenderer) Clear() {}

// Present implements render.Renderer. The render system draws every sprite.
func (r *SceneRenderer) Present() {}

// Sprites returns the number of entities the renderer has created.
func (r *SceneRenderer) Sprites() int {
	n := len(r.walls) + len(r.decorations)
	if r.boat != nil {
		n++
	}
	return n
}

func (r *SceneRenderer) add(shape common.Drawable, c color.Color, center physics.Vector2D, w, h, angle float64) *sprite {
	s := &sprite{
		BasicEntity:     ecs.NewBasic(),
		RenderComponent: common.RenderComponent{Drawable: shape, Color: c},
		SpaceComponent:  r.space(center, w, h, angle),
	}
	if r.renderSystem != nil {
		r.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	}
	return s
}

// space builds a space component of w by h world units centered on a pixel position.
func (r *SceneRenderer) space(center physics.Vector2D, w, h, angle float64) common.SpaceComponent {
	sc := common.SpaceComponent{
		Width:    float32(w * r.camera.pixelsPerUnit),
		Height:   float32(h * r.camera.pixelsPerUnit),
		Rotation: ScreenRotation(angle),
	}
	sc.SetCenter(engo.Point{X: float32(center.X), Y: float32(center.Y)})
	return sc
}

// ScreenRotation converts a counter-clockwise body angle in radians into engo's
// clockwise degrees on a Y-down screen.
func ScreenRotation(angle float64) float32 {
	return float32(-angle * 180 / math.Pi)
}

// DecorationColor picks the draw color for a decoration type, matching on the
// type's prefix so numbered variants share a color.
func DecorationColor(typ string) color.RGBA {
	for i := len(typ); i > 0; i-- {
		if c, ok := decorationColors[typ[:i]]; ok {
			return c
		}
	}
	return defaultDecorationColor
}

var _ render.Renderer = (*SceneRenderer)(nil)
