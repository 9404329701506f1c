package player

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/slide"
)

// DataToString formats ordered log data as [key=value key=value].
func DataToString(data *orderedmap.OrderedMap[string, any]) string {
	dataString := "["
	count := data.Len()
	for _, key := range data.Keys() {
		v, _ := data.Get(key)
		dataString += fmt.Sprintf("%s=%v", key, v)

		count--
		if count > 0 {
			dataString += " "
		}
	}
	dataString += "]"

	return dataString
}

func (p *Player) logResult(res slide.TickResult) {
	if !res.Started && !res.Ended && res.Outcome != slide.TickOutcomeDead {
		return
	}

	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("tick", p.tick)
	data.Set("speed", game.Round64(res.Speed, 3))
	data.Set("stamina", game.Round64(res.Stamina, 3))
	if res.StaminaSpent > 0 {
		data.Set("spent", game.Round64(res.StaminaSpent, 3))
	}
	data.Set("surface", res.Surface)

	switch {
	case res.Started:
		data.Set("direction", game.RoundVec64(res.Direction, 3))
		p.log.Debugf("%s started sliding %s", p.name, DataToString(data))
	case res.Ended:
		data.Set("outcome", res.Outcome)
		p.log.Debugf("%s stopped sliding %s", p.name, DataToString(data))
	case !p.diedBefore():
		p.log.Debugf("%s died %s", p.name, DataToString(data))
	}
}

// diedBefore returns true if the character was already dead on the previous tick.
func (p *Player) diedBefore() bool {
	last, ok := p.history.Latest()
	return ok && last.Result.Outcome == slide.TickOutcomeDead
}
