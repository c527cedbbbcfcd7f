// Package konami recognises the Konami code in a stream of key names.
package konami

// Sequence is up up down down left right left right b a.
var Sequence = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// Detector tracks progress through Sequence.
type Detector struct {
	pos int
}

// Feed advances the detector with one key and reports whether the full
// sequence was just completed. Any mismatch resets progress to zero; the
// mismatching key is not reconsidered as a new start.
func (d *Detector) Feed(key string) bool {
	if key != Sequence[d.pos] {
		d.pos = 0
		return false
	}

	d.pos++
	if d.pos == len(Sequence) {
		d.pos = 0
		return true
	}
	return false
}
