package player

import (
	"sync"

	"github.com/oomph-ac/slide/assert"
	"github.com/oomph-ac/slide/slide"
	"github.com/sirupsen/logrus"
)

// Character is the controller of a character: its body, the telemetry read each tick and
// its network role.
type Character interface {
	slide.BodyProvider
	Telemetry() slide.Telemetry
	Ownership() slide.Ownership
}

// Stepper is implemented by characters that run their own physics after the slide
// simulation of a tick.
type Stepper interface {
	Step(dt float64)
}

// Controller is implemented by characters that accept decided crouch and jump input.
type Controller interface {
	SetCrouching(crouch bool)
	Jump(stamina float64)
}

// Config holds everything needed to attach slide locomotion to a character.
type Config struct {
	Name string
	Log  *logrus.Logger

	World     slide.Raycaster
	Character Character
	Animation slide.AnimationProvider
	Audio     slide.AudioProvider
	Input     slide.InputProvider

	Tuning      slide.Tuning
	HistorySize int
}

// Player attaches the slide simulator to a single character and keeps its slide state and
// recent history.
type Player struct {
	name string
	log  *logrus.Logger

	char  Character
	sim   *slide.Simulator
	rules slide.InputRules

	mu      sync.Mutex
	state   slide.State
	history *History
	tick    uint64
	closed  bool
}

// New creates a player from the config passed. A nil logger logs nothing.
func New(conf Config) *Player {
	assert.IsTrue(conf.Character != nil, "player %s requires a character", conf.Name)
	if conf.Log == nil {
		conf.Log = logrus.New()
		conf.Log.SetLevel(logrus.PanicLevel)
	}

	p := &Player{
		name:    conf.Name,
		log:     conf.Log,
		char:    conf.Character,
		history: NewHistory(conf.HistorySize),
	}

	opts := slide.SimulationOptions{}
	if conf.Log.IsLevelEnabled(logrus.TraceLevel) {
		opts.Debugf = conf.Log.Tracef
	}
	p.sim = slide.NewSimulator(slide.Simulator{
		World:     conf.World,
		Body:      conf.Character,
		Animation: conf.Animation,
		Audio:     conf.Audio,
		Input:     conf.Input,
		Options:   opts,
	}, conf.Tuning)
	p.rules = slide.InputRules{
		World:     conf.World,
		Mask:      conf.Tuning.CollisionMask,
		Animation: conf.Animation,
		Input:     conf.Input,
	}
	return p
}

// Name returns the name of the player.
func (p *Player) Name() string {
	return p.name
}

// Log returns the logger of the player.
func (p *Player) Log() *logrus.Logger {
	return p.log
}

// Character returns the character the player simulates.
func (p *Player) Character() Character {
	return p.char
}

// Tick runs a single simulation tick of dt seconds and records its result.
func (p *Player) Tick(dt float64) slide.TickResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return slide.TickResult{Outcome: slide.TickOutcomeSkipped}
	}
	p.tick++

	res := p.sim.Tick(&p.state, p.char.Telemetry(), p.char.Ownership(), dt)
	if s, ok := p.char.(Stepper); ok {
		s.Step(dt)
	}

	p.logResult(res)
	p.history.Add(Record{
		Tick:     p.tick,
		Position: p.char.Telemetry().Position,
		Result:   res,
	})
	return res
}

// CurrentTick returns the amount of ticks run.
func (p *Player) CurrentTick() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tick
}

// State returns a copy of the slide state of the player.
func (p *Player) State() slide.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// History returns the records of the most recent ticks, oldest first.
func (p *Player) History() []Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.history.Records()
}

// Crouch decides a crouch input event and, if the character is a Controller, applies it.
// Ownership and telemetry of ctx are filled in from the character.
func (p *Player) Crouch(ctx slide.InputContext) slide.CrouchDecision {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx.Ownership, ctx.Telemetry = p.char.Ownership(), p.char.Telemetry()
	d := p.rules.Crouch(ctx)
	if c, ok := p.char.(Controller); ok && d.Handled {
		c.SetCrouching(d.Crouch)
	}
	return d
}

// Jump decides a jump input event and, if the character is a Controller, applies it.
// Ownership and telemetry of ctx are filled in from the character.
func (p *Player) Jump(ctx slide.InputContext) slide.JumpDecision {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx.Ownership, ctx.Telemetry = p.char.Ownership(), p.char.Telemetry()
	d := p.rules.Jump(ctx)
	if c, ok := p.char.(Controller); ok && d.Jump {
		c.Jump(d.Stamina)
	}
	return d
}

// Close detaches the simulator, ending any active slide. Ticks after closing are skipped.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.sim.Detach(&p.state, p.char.Telemetry())
	p.history.Clear()
	p.log.Debugf("%s detached", p.name)
}
