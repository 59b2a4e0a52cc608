package game

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"raycore/internal/config"
	"raycore/internal/logging"
	"raycore/internal/mathutil"
	"raycore/internal/monitoring"
	"raycore/internal/nav"
	"raycore/internal/raycast"
	"raycore/internal/render"
	"raycore/internal/sprite"
	"raycore/internal/threading/core"
	"raycore/internal/world"
)

// State is the outcome of the current level.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// Input is the player's intent for one frame.
type Input struct {
	Forward, Back           bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
	Fire                    bool
	// MouseDX is the horizontal cursor motion in pixels since the last frame.
	MouseDX float64
}

// Art is every drawable a level needs, already converted for the display.
type Art struct {
	Walls map[int]raycast.Texture
	HUD   render.Textures
	// Sprites has one frame list per configured level sprite; a single frame
	// makes a static sprite.
	Sprites     [][]render.Drawable
	AgentFrames []render.Drawable
}

// Session is one play-through of a level: it owns the navigation graph, the
// compositor and every entity, and runs the per-frame pipeline.
type Session struct {
	cfg        *config.Config
	view       render.View
	level      *world.Level
	solver     *nav.Solver
	occupancy  *nav.Occupancy
	caster     *raycast.Caster
	compositor *render.Compositor
	monitor    *monitoring.FrameMonitor
	log        *logrus.Entry

	player *Player
	decor  []*sprite.Sprite
	agents []*Agent

	state        State
	stateSince   time.Time
	lastDecision time.Time
	// damageFrames counts down once per Tick.
	damageFrames int
	// skyTurn is the rotation, in mouse pixels, not yet applied to the sky.
	skyTurn float64
}

// NewSession starts level. The navigation graph is built here, once per level.
func NewSession(cfg *config.Config, level *world.Level, art *Art, pool *core.WorkerPool, monitor *monitoring.FrameMonitor, now time.Time) (*Session, error) {
	if len(art.Sprites) != len(cfg.Level.Sprites) {
		return nil, fmt.Errorf("have art for %d sprites, level places %d", len(art.Sprites), len(cfg.Level.Sprites))
	}
	if len(level.AgentSpawns) > 0 && len(art.AgentFrames) == 0 {
		return nil, fmt.Errorf("level spawns agents but no agent frames were loaded")
	}
	for _, id := range level.WallIDs() {
		if _, ok := art.Walls[id]; !ok {
			return nil, fmt.Errorf("level uses wall texture %d which was not loaded", id)
		}
	}

	view := cfg.View()
	graph := nav.BuildGraphWithOptions(level, nav.BuildOptions{ClampToBounds: cfg.Nav.ClampToBounds})

	s := &Session{
		cfg:          cfg,
		view:         view,
		level:        level,
		solver:       nav.NewSolver(graph),
		occupancy:    nav.NewOccupancy(),
		caster:       raycast.NewCaster(view, level, art.Walls, pool),
		compositor:   render.NewCompositor(view, cfg.CompositorConfig(), art.HUD),
		monitor:      monitor,
		log:          logging.For("session"),
		player:       NewPlayer(level.StartX, level.StartY, cfg.Camera.StartAngle, cfg.Logic.PlayerMaxHealth),
		lastDecision: now,
	}

	interval := cfg.AnimationInterval()
	for i, sc := range cfg.Level.Sprites {
		frames := art.Sprites[i]
		if len(frames) == 0 {
			return nil, fmt.Errorf("level sprite %d has no frames", i)
		}
		s.decor = append(s.decor, newSprite(frames, sc, interval, now))
	}
	for _, cell := range level.AgentSpawns {
		sp := newSprite(art.AgentFrames, cfg.Level.Agent, interval, now)
		s.agents = append(s.agents, NewAgent(sp, cell, cfg.Logic.AgentHealth))
	}

	s.log.WithFields(logrus.Fields{
		"nav_cells": graph.Len(),
		"sprites":   len(s.decor),
		"agents":    len(s.agents),
		"clamped":   cfg.Nav.ClampToBounds,
	}).Info("level started")
	return s, nil
}

func newSprite(frames []render.Drawable, sc config.SpriteConfig, interval time.Duration, now time.Time) *sprite.Sprite {
	if len(frames) == 1 {
		return sprite.NewStatic(frames[0], sc.X, sc.Y, sc.Scale, sc.Shift)
	}
	return sprite.NewAnimated(sprite.NewAnimation(frames, interval, now), sc.X, sc.Y, sc.Scale, sc.Shift)
}

// Player returns the viewer.
func (s *Session) Player() *Player { return s.player }

// Agents returns the live agents.
func (s *Session) Agents() []*Agent { return s.agents }

// State returns the level outcome so far.
func (s *Session) State() State { return s.state }

// Tick runs input and logic for one frame: movement, occupancy, path queries
// and combat. It reports true once the level should restart.
func (s *Session) Tick(now time.Time, in Input, dtMs float64) bool {
	if s.state != StatePlaying {
		return now.Sub(s.stateSince) >= s.cfg.RestartDelay()
	}

	s.player.Hurt = false
	if s.damageFrames > 0 {
		s.damageFrames--
	}
	s.applyInput(in, dtMs)

	// Occupancy is rebuilt before any path query of this frame.
	cells := make([]nav.Cell, 0, len(s.agents))
	for _, a := range s.agents {
		if a.Alive {
			cells = append(cells, a.Cell())
		}
	}
	s.occupancy.Reset(cells...)

	if in.Fire {
		s.fire()
	}

	decide := now.Sub(s.lastDecision) >= s.cfg.DecisionInterval()
	if decide {
		s.lastDecision = now
	}
	s.updateAgents(now, decide)

	if s.player.Hurt {
		s.damageFrames = s.cfg.Render.DamageFlashFrames
	}
	s.checkOutcome(now)
	return false
}

func (s *Session) applyInput(in Input, dtMs float64) {
	turn := 0.0
	if in.TurnLeft {
		turn -= s.cfg.Camera.RotationSpeed * dtMs
	}
	if in.TurnRight {
		turn += s.cfg.Camera.RotationSpeed * dtMs
	}
	maxRel := float64(s.cfg.Camera.MouseMaxRel)
	mouse := mathutil.Clamp(in.MouseDX, -maxRel, maxRel)
	turn += mouse * s.cfg.Camera.MouseSensitivity * dtMs

	s.player.Rotate(turn)
	s.player.Rel = turn / (s.cfg.Camera.MouseSensitivity * dtMs)
	s.skyTurn += s.player.Rel
	s.player.Move(in, s.cfg.Camera.MoveSpeed, dtMs, s.level.Solid)
}

// fire hits the nearest agent whose last projection covers the screen centre
// and is not hidden behind the wall at that column.
func (s *Session) fire() {
	wallDepth := s.caster.DepthAt(s.view.NumRays / 2)
	var target *Agent
	for _, a := range s.agents {
		if !a.Alive || !a.Covers(s.view.HalfWidth) || a.NormDist >= wallDepth {
			continue
		}
		if target == nil || a.NormDist < target.NormDist {
			target = a
		}
	}
	if target == nil {
		return
	}
	if target.TakeHit(s.cfg.Logic.WeaponDamage) {
		s.log.WithField("cell", target.Cell()).Info("agent killed")
	}
}

func (s *Session) updateAgents(now time.Time, decide bool) {
	goal := s.player.Cell()
	alive := s.agents[:0]
	for _, a := range s.agents {
		if !a.Alive {
			continue
		}
		alive = append(alive, a)

		dist := math.Hypot(s.player.X-a.X, s.player.Y-a.Y)
		if dist < s.cfg.Logic.AttackDistance {
			if decide && a.CanAttack(now, s.cfg.AttackCooldown()) {
				a.MarkAttack(now)
				s.player.Damage(s.cfg.Logic.AttackDamage)
			}
			continue
		}

		start := a.Cell()
		next := s.solver.NextStep(start, goal, s.occupancy)
		if s.monitor != nil {
			s.monitor.RecordPathQuery()
		}
		if next == start || s.occupancy.Has(next) {
			continue
		}
		a.StepToward(next, s.cfg.Logic.AgentSpeed)
		if moved := a.Cell(); moved != start {
			s.occupancy.Add(moved)
		}
	}
	clear(s.agents[len(alive):])
	s.agents = alive
}

func (s *Session) checkOutcome(now time.Time) {
	switch {
	case !s.player.Alive():
		s.state = StateLost
		s.stateSince = now
		s.log.Info("player died")
	case len(s.agents) == 0 && len(s.level.AgentSpawns) > 0:
		s.state = StateWon
		s.stateSince = now
		s.log.Info("all agents cleared")
	}
}

// Render runs the draw half of the frame: wall casting and sprite projection
// into a fresh queue, animation, then compositing onto canvas.
func (s *Session) Render(canvas render.Canvas, now time.Time) {
	viewer := s.player.Viewer()
	q := s.compositor.BeginFrame()

	s.caster.Cast(q, viewer)
	for _, sp := range s.decor {
		s.recordProjection(sp.Project(q, s.view, viewer))
	}
	for _, a := range s.agents {
		s.recordProjection(a.Project(q, s.view, viewer))
	}

	for _, sp := range s.decor {
		s.recordAdvance(sp.Advance(now))
	}
	for _, a := range s.agents {
		s.recordAdvance(a.Advance(now))
	}

	if s.monitor != nil {
		s.monitor.RecordQueueLen(q.Len())
	}
	// The sky follows rotation since the last Render, however often ebiten draws.
	s.compositor.Draw(canvas, s.skyTurn, render.Overlays{
		Health:   s.player.Health,
		Damage:   s.damageFrames > 0,
		Win:      s.state == StateWon,
		GameOver: s.state == StateLost,
	})
	s.skyTurn = 0
}

func (s *Session) recordProjection(visible bool) {
	if s.monitor != nil {
		s.monitor.RecordProjection(visible)
	}
}

func (s *Session) recordAdvance(advanced bool) {
	if advanced && s.monitor != nil {
		s.monitor.RecordAnimationAdvance()
	}
}
