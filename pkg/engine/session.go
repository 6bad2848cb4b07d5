// pkg/engine/session.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-airboat/pkg/assets"
	"github.com/opd-ai/go-airboat/pkg/config"
	"github.com/opd-ai/go-airboat/pkg/event"
	"github.com/opd-ai/go-airboat/pkg/input"
	"github.com/opd-ai/go-airboat/pkg/logging"
	"github.com/opd-ai/go-airboat/pkg/physics"
	"github.com/opd-ai/go-airboat/pkg/scenery"
	"github.com/opd-ai/go-airboat/pkg/telemetry"
	"github.com/opd-ai/go-airboat/pkg/vehicle"
)

// ErrNoScenery is returned when a session is built without map assets.
var ErrNoScenery = errors.New("engine: scenery assets are required")

// Frame is the state a renderer needs after one tick.
type Frame struct {
	Tick         uint64
	Axes         input.AxisValues
	View         float64
	Camera       vehicle.CameraPose
	Pose         vehicle.Pose
	Speed        float64
	Presentation vehicle.Presentation
}

// Options carries the optional collaborators of a session.
type Options struct {
	Logger   *logging.Logger
	EventBus *event.Bus
	Recorder *telemetry.Recorder
}

// Session owns one airboat, its scenery and the ordered per-tick systems
type Session struct {
	cfg *config.Config

	world   *ecs.World
	physics *physics.World
	body    *physics.RigidBody
	boat    *vehicle.Airboat
	shaper  *input.Shaper

	walls      []scenery.Boundary
	placements *scenery.Placements

	logger   *logging.Logger
	eventBus *event.Bus
	recorder *telemetry.Recorder

	id  string
	ctx context.Context

	mu         sync.Mutex
	playing    bool
	frameDelta float64
	frame      Frame
}

// NewSession builds the physics world, the collision walls and the decoration
// placements from the bundle, then wires the per-tick systems.
func NewSession(cfg *config.Config, bundle *assets.Bundle, opts Options) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if bundle == nil || bundle.Map == nil || bundle.Heights == nil {
		return nil, ErrNoScenery
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.EventBus == nil {
		opts.EventBus = event.NewEventBus()
	}

	id := logging.GenerateCorrelationID()
	s := &Session{
		cfg:      cfg,
		physics:  physics.NewWorld(),
		shaper:   input.NewShaper(cfg.Input.AxisRate),
		logger:   opts.Logger.With("component", "session"),
		eventBus: opts.EventBus,
		recorder: opts.Recorder,
		id:       id,
		ctx:      logging.WithCorrelationID(context.Background(), id),
	}
	s.body = s.physics.NewRigidBody(physics.DefaultHullShape())
	s.boat = vehicle.New(s.body, cfg.Vehicle)

	if err := s.buildScenery(bundle); err != nil {
		return nil, err
	}

	s.world = &ecs.World{}
	s.world.AddSystem(&inputSystem{session: s})
	s.world.AddSystem(&forceSystem{session: s})
	s.world.AddSystem(&physicsSystem{session: s})
	s.world.AddSystem(&cameraSystem{session: s})

	s.frame = s.snapshot()
	return s, nil
}

func (s *Session) buildScenery(bundle *assets.Bundle) error {
	walls, err := scenery.BuildWalls(bundle.Map, s.cfg.Scenery.WorldSize, s.cfg.Scenery.Segments)
	if err != nil {
		return logging.WrapError(err, "failed to build walls")
	}
	if err := scenery.AddWalls(s.physics, walls); err != nil {
		return logging.WrapError(err, "failed to add walls")
	}

	seed := s.cfg.Scenery.Seed
	if seed == 0 {
		seed = bundle.Seed()
	}
	catalog := scenery.NewCatalog(s.cfg.Scenery.DecorationScale, s.cfg.Assets.Decorations...)
	placements, err := scenery.PlaceInstances(bundle.Map, bundle.Heights, catalog, scenery.PlacementOptions{
		WorldSize:       s.cfg.Scenery.WorldSize,
		HeightMapOffset: s.cfg.Scenery.HeightMapOffset,
		SurfaceMargin:   s.cfg.Scenery.SurfaceMargin,
		Rand:            rand.New(rand.NewPCG(seed, seed>>1|1)),
	})
	if err != nil {
		return logging.WrapError(err, "failed to place decorations")
	}

	s.walls = walls
	s.placements = placements
	for _, typ := range placements.Types() {
		s.recorder.RecordPlacements(s.ctx, typ, placements.Count(typ))
	}

	bounds := scenery.BoundsOfWalls(walls)
	s.logger.Info(s.ctx, "scenery built",
		"walls", len(walls),
		"segments", s.physics.StaticSegments(),
		"placements", placements.Len(),
		"seed", seed,
	)
	s.eventBus.Publish(event.NewSceneryEvent(s, len(walls), placements.Len(), bounds))
	return nil
}

// ID returns the session identifier carried as the log correlation ID.
func (s *Session) ID() string {
	return s.id
}

// EventBus returns the bus the session publishes on.
func (s *Session) EventBus() *event.Bus {
	return s.eventBus
}

// Shaper exposes the control axes for touch and pointer input.
func (s *Session) Shaper() *input.Shaper {
	return s.shaper
}

// Airboat returns the simulated vehicle.
func (s *Session) Airboat() *vehicle.Airboat {
	return s.boat
}

// Walls returns the collision boundaries built from the map.
func (s *Session) Walls() []scenery.Boundary {
	return s.walls
}

// Placements returns the decoration instances built from the map.
func (s *Session) Placements() *scenery.Placements {
	return s.placements
}

// Start begins advancing the simulation on Tick
func (s *Session) Start() {
	s.mu.Lock()
	if s.playing {
		s.mu.Unlock()
		return
	}
	s.playing = true
	s.mu.Unlock()

	s.logger.Info(s.ctx, "session started")
	s.eventBus.Publish(event.NewSessionEvent(event.SessionStarted, s, s.id))
}

// Stop pauses the simulation. Held keys are released so nothing sticks on resume.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.playing {
		s.mu.Unlock()
		return
	}
	s.playing = false
	s.shaper.OnBlur()
	s.mu.Unlock()

	s.logger.Info(s.ctx, "session stopped")
	s.eventBus.Publish(event.NewSessionEvent(event.SessionStopped, s, s.id))
}

// Playing reports whether Tick advances the simulation.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Reset puts the airboat back at the origin, at rest.
func (s *Session) Reset() {
	s.mu.Lock()
	pos := s.body.Position()
	speed := s.boat.Speed()
	s.boat.Reset()
	s.frame = s.snapshot()
	s.mu.Unlock()

	s.recorder.RecordReset(s.ctx)
	s.logger.Info(s.ctx, "vehicle reset", "x", pos.X, "y", pos.Y, "speed", speed)
	s.eventBus.Publish(event.NewResetEvent(s, s.id, pos, speed))
}

// HandleKey routes a key transition. R resets while playing and Escape toggles
// play; every other code goes to the axis shaper.
func (s *Session) HandleKey(code input.Code, pressed bool) {
	switch {
	case code == input.KeyR && pressed:
		if s.Playing() {
			s.Reset()
		}
	case code == input.Escape && pressed:
		if s.Playing() {
			s.Stop()
		} else {
			s.Start()
		}
	default:
		s.mu.Lock()
		s.shaper.OnKeyEvent(code, pressed)
		s.mu.Unlock()
	}
}

// Blur releases every held key.
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shaper.OnBlur()
}

// Tick advances one frame of dt seconds. It does nothing while stopped.
func (s *Session) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if limit := s.cfg.Loop.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}

	s.mu.Lock()
	if !s.playing {
		s.mu.Unlock()
		return
	}
	s.frameDelta = dt
	s.world.Update(float32(dt))
	s.frame.Tick++
	frame := s.frame
	s.mu.Unlock()

	s.recorder.RecordTick(s.ctx, frame.Speed, frame.Axes.Throttle)
}

// Frame returns the state produced by the latest tick.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// snapshot reads back the body after integration. Callers hold mu.
func (s *Session) snapshot() Frame {
	axes := s.shaper.Axes()
	view := s.shaper.ViewDirection()
	return Frame{
		Tick:         s.frame.Tick,
		Axes:         axes,
		View:         view,
		Camera:       s.boat.UpdateCamera(view),
		Pose:         s.boat.Pose(),
		Speed:        s.boat.Speed(),
		Presentation: s.boat.Presentation(axes),
	}
}

// String implements fmt.Stringer for log output.
func (s *Session) String() string {
	return fmt.Sprintf("Session(%s)", s.id)
}

// CameraView returns the view matrix of the latest frame.
func (f Frame) CameraView() mgl64.Mat4 {
	return f.Camera.View()
}
