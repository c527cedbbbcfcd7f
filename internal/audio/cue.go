// Package audio names the short feedback cues used by the game (hover,
// click, success and type) and the sink that plays them. Package synth
// renders them on the speaker.
package audio

// Cue identifies a feedback sound.
type Cue string

const (
	CueHover   Cue = "hover"
	CueClick   Cue = "click"
	CueSuccess Cue = "success"
	CueType    Cue = "type"
)

// Sink plays cues. Implementations must tolerate being called when audio
// is unavailable or muted.
type Sink interface {
	Play(c Cue)
}

// Nop is a cue sink that never makes a sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

var _ Sink = Nop{}
