package main

import (
	"fmt"
	"math"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/slide/audio"
	"github.com/oomph-ac/slide/bedrock"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/player"
	"github.com/oomph-ac/slide/settings"
	"github.com/oomph-ac/slide/slide"
	"github.com/oomph-ac/slide/terrain"
	"github.com/oomph-ac/slide/virtual"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

var (
	groundMaterial = slide.SurfaceMaterial{Name: "ground", StaticFriction: 0.6, DynamicFriction: 0.6}
	pressed        = slide.InputContext{Performed: true}
)

// script drives a single character with actions scheduled by tick.
type script struct {
	log  *logrus.Logger
	p    *player.Player
	body *virtual.Player

	actions map[int]func()
	before  func(tick int)

	slides     int
	wasSliding bool
}

func (s *script) step(tick int) {
	if s.before != nil {
		s.before(tick)
	}
	if f, ok := s.actions[tick]; ok {
		f()
	}

	sliding := s.p.State().Sliding
	if sliding && !s.wasSliding {
		s.slides++
	}
	s.wasSliding = sliding
}

func (s *script) summarize() {
	tm := s.body.Telemetry()
	recent := player.Summarize(s.p.History())

	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("slides", s.slides)
	data.Set("position", game.RoundVec64(tm.Position, 2))
	data.Set("stamina", game.Round64(tm.Stamina, 2))
	data.Set("state", s.p.State().SlideState())
	data.Set("slide_surface", s.body.Sliding())
	data.Set("sprint_enabled", s.body.SprintEnabled())
	if recent.SlidingTicks > 0 {
		data.Set("recent_mean_speed", game.Round64(recent.MeanSpeed, 2))
		data.Set("recent_peak_speed", game.Round64(recent.PeakSpeed, 2))
	}
	s.log.Infof("%s %s", s.p.Name(), player.DataToString(data))
}

// spawn registers the scripted characters: a ramp rider per archetype, a jump slider and a
// character driven by Bedrock input packets.
func spawn(conf settings.Settings, log *logrus.Logger, m *player.Manager, course *terrain.Terrain, sounds *audio.SoundManager) ([]*script, error) {
	var scripts []*script
	add := func(name, archetype string, pos mgl64.Vec3, anim slide.AnimationProvider, audioProvider slide.AudioProvider) (*script, error) {
		tuning, err := conf.Tuning(archetype)
		if err != nil {
			return nil, err
		}
		body := virtual.NewPlayer(course, tuning.CollisionMask, pos, groundMaterial)
		if anim == nil {
			anim = body
		}
		if audioProvider == nil {
			audioProvider = sounds.Voice()
		}
		p := player.New(player.Config{
			Name:        name,
			Log:         log,
			World:       course,
			Character:   body,
			Animation:   anim,
			Audio:       audioProvider,
			Input:       body,
			Tuning:      tuning,
			HistorySize: conf.HistorySize,
		})
		if err := m.Add(p); err != nil {
			return nil, err
		}
		s := &script{log: log, p: p, body: body, actions: make(map[int]func())}
		scripts = append(scripts, s)
		return s, nil
	}

	for i, archetype := range conf.ArchetypeNames() {
		z := rampEnd - 1
		s, err := add("rider-"+archetype, archetype, mgl64.Vec3{float64(i*4 - 10), rampY(z), z}, nil, nil)
		if err != nil {
			return nil, err
		}
		if archetype != settings.DefaultArchetype {
			s.body.SetWeight(3)
		}
		s.body.SetRotation(180, 10)
		s.actions[0] = func() { s.body.Walk(mgl64.Vec3{0, 0, -1}, true) }
		s.actions[25] = func() { s.p.Crouch(pressed) }
		s.actions[400] = func() { s.p.Crouch(pressed) }
	}

	jumper, err := add("jumper", settings.DefaultArchetype, mgl64.Vec3{30, 0, 10}, nil, nil)
	if err != nil {
		return nil, err
	}
	jumper.body.SetRotation(180, 0)
	jumper.actions[0] = func() { jumper.body.Walk(mgl64.Vec3{0, 0, -1}, true) }
	jumper.actions[40] = func() { jumper.p.Jump(pressed) }
	jumper.actions[50] = func() { jumper.p.Crouch(pressed) }
	jumper.actions[300] = func() { jumper.p.Crouch(pressed) }

	conn := &packetLog{log: log, name: "client"}
	presenter := bedrock.NewPresenter(conn, log, 1)
	client, err := add("client", settings.DefaultArchetype, mgl64.Vec3{-30, 0, 0}, presenter, presenter)
	if err != nil {
		return nil, err
	}
	client.body.SetOwnership(bedrock.OwnershipFor(bedrock.ModeServerAuthoritative))
	c := &bedrockClient{script: client, presenter: presenter}
	client.before = c.input
	return scripts, nil
}

// bedrockClient feeds a character with PlayerAuthInput packets, the way a proxy would for a
// player with server authoritative movement.
type bedrockClient struct {
	*script
	presenter *bedrock.Presenter
}

func (c *bedrockClient) input(tick int) {
	c.presenter.SetPosition(c.body.Position(), uint64(tick))
	c.presenter.Flush()

	pk := &packet.PlayerAuthInput{
		Yaw:        float32(45 * math.Sin(float64(tick)/100)),
		MoveVector: mgl32.Vec2{0, 1},
		Position:   game.Vec64To32(c.body.Telemetry().CameraPosition),
		Tick:       uint64(tick),
		InputData:  protocol.NewBitset(packet.PlayerAuthInputBitsetSize),
	}
	pk.InputData.Set(packet.InputFlagSprinting)
	if tick >= 60 && tick < 250 {
		pk.InputData.Set(packet.InputFlagSneaking)
	}
	if tick == 300 {
		pk.InputData.Set(packet.InputFlagStartJumping)
	}
	c.handle(pk)
}

func (c *bedrockClient) handle(pk *packet.PlayerAuthInput) {
	intent := bedrock.IntentFromInput(pk)
	c.body.SetRotation(pk.Yaw, pk.Pitch)
	walk := mgl64.Vec3{}
	if intent.Walk {
		walk = intent.Forward
	}
	c.body.Walk(walk, intent.Sprint)

	if intent.Crouch != c.body.Telemetry().CrouchIntent {
		c.p.Crouch(pressed)
	}
	if intent.StartJump {
		c.p.Jump(pressed)
	}
}

// packetLog is a packet writer that logs the packets written to it.
type packetLog struct {
	log  *logrus.Logger
	name string
}

func (l *packetLog) WritePacket(pk packet.Packet) error {
	if l.log.IsLevelEnabled(logrus.DebugLevel) {
		l.log.Debugf("%s <- %s", l.name, describe(pk))
	}
	return nil
}

func describe(pk packet.Packet) string {
	switch pk := pk.(type) {
	case *packet.SetActorData:
		meta := protocol.EntityMetadata(pk.EntityMetadata)
		return fmt.Sprintf("SetActorData(sneaking=%v sprinting=%v)",
			meta.Flag(protocol.EntityDataKeyFlags, protocol.EntityDataFlagSneaking),
			meta.Flag(protocol.EntityDataKeyFlags, protocol.EntityDataFlagSprinting))
	case *packet.PlaySound:
		return fmt.Sprintf("PlaySound(%s)", pk.SoundName)
	case *packet.StopSound:
		return fmt.Sprintf("StopSound(%s)", pk.SoundName)
	}
	return fmt.Sprintf("%T", pk)
}
