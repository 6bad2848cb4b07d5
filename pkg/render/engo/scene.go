// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-airboat/pkg/engine"
	"github.com/opd-ai/go-airboat/pkg/event"
	"github.com/opd-ai/go-airboat/pkg/logging"
	"github.com/opd-ai/go-airboat/pkg/render"
)

// SceneType is the engo scene name.
const SceneType = "AirboatScene"

// GameScene runs a session inside an engo window
type GameScene struct {
	session *engine.Session
	logger  *logging.Logger

	renderer *SceneRenderer
	camera   *CameraSystem
	input    *InputSystem

	subscriptions []event.Subscription
}

// NewGameScene creates a new game scene
func NewGameScene(session *engine.Session, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Nop()
	}
	return &GameScene{
		session: session,
		logger:  logger.With("component", "scene"),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo). Shapes need no assets.
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world := u.(*ecs.World)
	common.SetBackground(waterColor)
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	scene.camera = NewCameraSystem()
	scene.camera.SetViewport(float64(engo.WindowWidth()), float64(engo.WindowHeight()))
	scene.renderer = NewSceneRenderer(renderSystem, scene.camera)
	scene.input = NewInputSystem(scene.session)

	world.AddSystem(renderSystem)
	world.AddSystem(scene.input)
	world.AddSystem(NewSimulationSystem(scene.session, scene.renderer))
	world.AddSystem(scene.camera)

	scene.renderer.RenderScenery(scene.session.Walls(), scene.session.Placements())
	scene.renderer.RenderFrame(scene.session.Frame())
	scene.subscribeToEvents()
	if !watchFocus(scene.focusChanged) {
		scene.logger.Warn(context.Background(), "window focus is not observable, held keys survive focus loss")
	}
	scene.session.Start()
}

// focusChanged releases every held key when the window loses focus, since the
// matching key-up events go to another window.
func (scene *GameScene) focusChanged(focused bool) {
	if focused {
		return
	}
	scene.session.Blur()
	scene.logger.Debug(context.Background(), "window lost focus, keys released")
}

// subscribeToEvents logs session transitions
func (scene *GameScene) subscribeToEvents() {
	bus := scene.session.EventBus()
	ctx := logging.WithCorrelationID(context.Background(), scene.session.ID())
	for _, typ := range []event.Type{event.SessionStarted, event.SessionStopped, event.VehicleReset} {
		scene.subscriptions = append(scene.subscriptions, bus.Subscribe(typ, func(e event.Event) {
			scene.logger.Debug(ctx, "session event", "type", string(e.GetType()))
		}))
	}
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.session.Stop()
	bus := scene.session.EventBus()
	types := []event.Type{event.SessionStarted, event.SessionStopped, event.VehicleReset}
	for i, id := range scene.subscriptions {
		bus.Unsubscribe(types[i], id)
	}
	scene.subscriptions = nil
}

// SimulationSystem ticks the session and hands each frame to a renderer
type SimulationSystem struct {
	session  *engine.Session
	renderer render.Renderer
}

// NewSimulationSystem creates a system that drives session and draws with renderer.
func NewSimulationSystem(session *engine.Session, renderer render.Renderer) *SimulationSystem {
	return &SimulationSystem{session: session, renderer: renderer}
}

// Remove satisfies the ecs.System interface
func (ss *SimulationSystem) Remove(basic ecs.BasicEntity) {}

// Priority runs the simulation between input and camera.
func (ss *SimulationSystem) Priority() int {
	return 0
}

// Update advances the session by dt seconds
func (ss *SimulationSystem) Update(dt float32) {
	ss.session.Tick(float64(dt))
	ss.renderer.Clear()
	ss.renderer.RenderFrame(ss.session.Frame())
	ss.renderer.Present()
}
