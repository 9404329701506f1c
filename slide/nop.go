package slide

// nopPresentation is used for every presentation adapter left unset, so headless characters
// can be simulated without an animator, audio or input bindings.
type nopPresentation struct{}

func (nopPresentation) SetAnimation(AnimationParam, bool) {}
func (nopPresentation) PlaySlide()                        {}
func (nopPresentation) StopSlide()                        {}
func (nopPresentation) SlidePlaying() bool                { return false }
func (nopPresentation) EnableSprint()                     {}
func (nopPresentation) DisableSprint()                    {}
