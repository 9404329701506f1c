package player

import (
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/slide"
)

// Summary describes the slides within a run of tick records.
type Summary struct {
	Ticks        int
	SlidingTicks int
	Slides       int

	MeanSpeed      float64
	MedianSpeed    float64
	PeakSpeed      float64
	SpeedDeviation float64

	StaminaSpent float64
}

// Summarize summarizes records, which must be in tick order.
func Summarize(records []Record) Summary {
	s := Summary{Ticks: len(records)}
	speeds := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Result.Started {
			s.Slides++
		}
		s.StaminaSpent += r.Result.StaminaSpent
		if r.Result.State == slide.StateSliding {
			s.SlidingTicks++
			speeds = append(speeds, r.Result.Speed)
		}
	}

	s.MeanSpeed = game.Mean(speeds)
	s.MedianSpeed = game.Median(speeds)
	s.PeakSpeed = game.Max(speeds)
	s.SpeedDeviation = game.StandardDeviation(speeds)
	return s
}
