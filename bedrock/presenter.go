package bedrock

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/slide"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

// SlideSoundName is the resource pack sound played while sliding.
const SlideSoundName = "slide.loop"

// PacketWriter writes packets to a connection. *minecraft.Conn implements it.
type PacketWriter interface {
	WritePacket(pk packet.Packet) error
}

// Presenter renders slide presentation as packets for viewers of a player. Bedrock entities
// have no walking or jumping metadata flags, so only crouching and sprinting are sent.
// It implements slide.AnimationProvider and slide.AudioProvider.
type Presenter struct {
	conn PacketWriter
	log  *logrus.Logger
	rid  uint64

	flags, sent slide.AnimationFlags
	hasSent     bool

	playing bool
	pos     mgl64.Vec3
	tick    uint64
}

// NewPresenter creates a presenter for the entity with the given runtime ID.
func NewPresenter(conn PacketWriter, log *logrus.Logger, runtimeID uint64) *Presenter {
	return &Presenter{conn: conn, log: log, rid: runtimeID}
}

// SetAnimation records an animation flag. Flags are sent on Flush.
func (p *Presenter) SetAnimation(param slide.AnimationParam, value bool) {
	switch param {
	case slide.AnimationWalking:
		p.flags.Walking = value
	case slide.AnimationSprinting:
		p.flags.Sprinting = value
	case slide.AnimationJumping:
		p.flags.Jumping = value
	case slide.AnimationCrouching:
		p.flags.Crouching = value
	}
}

// SetPosition sets the position sounds are played at.
func (p *Presenter) SetPosition(pos mgl64.Vec3, tick uint64) {
	p.pos, p.tick = pos, tick
}

// Flush sends the entity metadata if the crouching or sprinting flags changed since the last
// flush.
func (p *Presenter) Flush() {
	if p.hasSent && p.flags.Crouching == p.sent.Crouching && p.flags.Sprinting == p.sent.Sprinting {
		return
	}

	metadata := protocol.NewEntityMetadata()
	if p.flags.Crouching {
		metadata.SetFlag(protocol.EntityDataKeyFlags, protocol.EntityDataFlagSneaking)
	}
	if p.flags.Sprinting {
		metadata.SetFlag(protocol.EntityDataKeyFlags, protocol.EntityDataFlagSprinting)
	}
	metadata.SetFlag(protocol.EntityDataKeyFlags, protocol.EntityDataFlagHasGravity)
	p.write(&packet.SetActorData{
		EntityRuntimeID: p.rid,
		EntityMetadata:  metadata,
		Tick:            p.tick,
	})
	p.sent, p.hasSent = p.flags, true
}

func (p *Presenter) PlaySlide() {
	p.playing = true
	p.write(&packet.PlaySound{
		SoundName: SlideSoundName,
		Position:  game.Vec64To32(p.pos),
		Volume:    1,
		Pitch:     1,
	})
}

func (p *Presenter) StopSlide() {
	p.playing = false
	p.write(&packet.StopSound{SoundName: SlideSoundName})
}

func (p *Presenter) SlidePlaying() bool {
	return p.playing
}

func (p *Presenter) write(pk packet.Packet) {
	if err := p.conn.WritePacket(pk); err != nil && p.log != nil {
		p.log.Errorf("unable to write %T to entity %d: %v", pk, p.rid, err)
	}
}
