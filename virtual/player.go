package virtual

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/slide"
	"go.uber.org/atomic"
)

const (
	walkSpeed   = 4.3
	sprintSpeed = 5.6
	sneakSpeed  = 1.3
	jumpSpeed   = 8.0

	// stepHeight is how far above its feet the player probes for ground, so that small steps
	// and the surface of a ramp it is walking down are snapped to.
	stepHeight = 0.5
	groundSnap = 0.1
)

// Player is a headless character with simple kinematic physics. It walks, jumps and falls
// over a slide.Raycaster world, and implements every character-side adapter of the slide
// simulator.
type Player struct {
	world slide.Raycaster
	mask  uint32

	pos atomic.Value

	mu        sync.Mutex
	last      mgl64.Vec3
	velocity  mgl64.Vec3
	verticalV float64
	grounded  bool
	jumping   bool

	walkDir     mgl64.Vec3
	sprintKey   bool
	sprintAllow bool
	crouch      bool

	yaw, pitch float32

	dead      bool
	exhausted bool
	stamina   float64
	weight    float64

	base, surface slide.SurfaceMaterial
	anim          slide.AnimationFlags
	ownership     slide.Ownership
}

// NewPlayer creates a player standing at pos. Its surface material starts as material and is
// restored to it once a slide ends.
func NewPlayer(w slide.Raycaster, mask uint32, pos mgl64.Vec3, material slide.SurfaceMaterial) *Player {
	p := &Player{
		world: w,
		mask:  mask,

		last:        pos,
		sprintAllow: true,
		stamina:     1,
		weight:      1,

		base:      material,
		surface:   material,
		ownership: slide.LocalOwnership(),
	}
	p.pos.Store(pos)
	p.grounded = p.probeGround(pos)
	return p
}

// Position returns the position of the player's feet.
func (p *Player) Position() mgl64.Vec3 {
	return p.pos.Load().(mgl64.Vec3)
}

// Move moves the player by the given displacement.
func (p *Player) Move(displacement mgl64.Vec3) {
	p.pos.Store(p.Position().Add(displacement))
}

func (p *Player) Surface() slide.SurfaceMaterial {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.surface
}

func (p *Player) SetSurface(material slide.SurfaceMaterial) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.surface = material
}

// Stamina returns the stamina of the player in [0, 1].
func (p *Player) Stamina() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stamina
}

func (p *Player) SetStamina(stamina float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stamina = slide.ClampFloat(stamina, 0, 1)
}

func (p *Player) EnableSprint() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sprintAllow = true
}

func (p *Player) DisableSprint() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sprintAllow = false
}

// SprintEnabled returns whether the sprint action is currently enabled.
func (p *Player) SprintEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sprintAllow
}

func (p *Player) SetAnimation(param slide.AnimationParam, value bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch param {
	case slide.AnimationWalking:
		p.anim.Walking = value
	case slide.AnimationSprinting:
		p.anim.Sprinting = value
	case slide.AnimationJumping:
		p.anim.Jumping = value
	case slide.AnimationCrouching:
		p.anim.Crouching = value
	}
}

// Animation returns the animation flags last written to the player.
func (p *Player) Animation() slide.AnimationFlags {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.anim
}

// Walk sets the horizontal direction the player walks in. A zero vector stops walking.
func (p *Player) Walk(dir mgl64.Vec3, sprint bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	dir[1] = 0
	p.walkDir = slide.NormalizeOr(dir, mgl64.Vec3{})
	p.sprintKey = sprint
}

// SetCrouching sets whether the player wants to crouch.
func (p *Player) SetCrouching(crouch bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.crouch = crouch
}

// Jump launches the player upwards and sets its stamina. It does not check whether the
// player may jump.
func (p *Player) Jump(stamina float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stamina = slide.ClampFloat(stamina, 0, 1)
	p.crouch = false
	p.verticalV = jumpSpeed
	p.grounded = false
	p.jumping = true
}

// SetRotation sets the camera yaw and pitch in degrees.
func (p *Player) SetRotation(yaw, pitch float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.yaw, p.pitch = yaw, pitch
}

// SetWeight sets the weight carried by the player.
func (p *Player) SetWeight(weight float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.weight = weight
}

// SetDead marks the player as dead or alive. A dead player does not move by itself.
func (p *Player) SetDead(dead bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dead = dead
}

// SetExhausted marks the player as exhausted.
func (p *Player) SetExhausted(exhausted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.exhausted = exhausted
}

// SetOwnership sets the network role of the player.
func (p *Player) SetOwnership(o slide.Ownership) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ownership = o
}

func (p *Player) Ownership() slide.Ownership {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ownership
}

// Sliding returns true if the slide material is assigned to the player.
func (p *Player) Sliding() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.surface != p.base
}

// Telemetry returns the locomotion state of the player.
func (p *Player) Telemetry() slide.Telemetry {
	p.mu.Lock()
	defer p.mu.Unlock()

	pos := p.Position()
	walking := p.walkDir != (mgl64.Vec3{})
	return slide.Telemetry{
		Grounded:  p.grounded,
		Velocity:  p.velocity,
		Dead:      p.dead,
		Exhausted: p.exhausted,

		CrouchIntent: p.crouch,
		Jumping:      p.jumping,
		Walking:      walking,
		Sprinting:    walking && p.sprintKey && p.sprintAllow && !p.crouch,

		Stamina:       p.stamina,
		CarriedWeight: p.weight,

		CameraPosition: pos.Add(mgl64.Vec3{0, game.CameraHeight, 0}),
		CameraForward:  game.Vec32To64(game.DirectionVector(p.yaw, p.pitch)),
		Position:       pos,
	}
}

// Step advances the player's own physics by dt seconds: walking, gravity and ground
// snapping. Displacement applied through Move since the previous step counts towards the
// velocity the player reports.
func (p *Player) Step(dt float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pos := p.Position()
	// A grounded player on the slide surface is moved by the slide only.
	if !p.dead && (p.surface == p.base || !p.grounded) {
		speed := walkSpeed
		if p.crouch {
			speed = sneakSpeed
		} else if p.sprintKey && p.sprintAllow {
			speed = sprintSpeed
		}
		pos = pos.Add(p.walkDir.Mul(speed * dt))
	}

	if !p.grounded {
		p.verticalV -= game.WorldGravity * dt
	}
	pos[1] += p.verticalV * dt

	if p.verticalV <= 0 {
		if hit, ok := p.world.Raycast(pos.Add(mgl64.Vec3{0, stepHeight, 0}), mgl64.Vec3{0, -1, 0}, stepHeight+groundSnap, p.mask); ok {
			pos[1] = hit.Point[1]
			p.verticalV = 0
			p.grounded = true
			p.jumping = false
		} else {
			p.grounded = false
		}
	}

	if dt > 0 {
		p.velocity = pos.Sub(p.last).Mul(1 / dt)
	}
	p.last = pos
	p.pos.Store(pos)
}

func (p *Player) probeGround(pos mgl64.Vec3) bool {
	_, ok := p.world.Raycast(pos.Add(mgl64.Vec3{0, stepHeight, 0}), mgl64.Vec3{0, -1, 0}, stepHeight+groundSnap, p.mask)
	return ok
}
