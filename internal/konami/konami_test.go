package konami

import "testing"

func feedAll(d *Detector, keys ...string) bool {
	done := false
	for _, k := range keys {
		done = d.Feed(k)
	}
	return done
}

func TestDetector(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"exact", Sequence, true},
		{"prefix only", Sequence[:9], false},
		{"noise first", append([]string{"x"}, Sequence...), true},
		{"broken middle", []string{"up", "up", "down", "x", "left", "right", "left", "right", "b", "a"}, false},
		// A third "up" resets instead of being treated as a fresh start.
		{"no restart on prefix", append([]string{"up"}, Sequence...), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Detector
			if got := feedAll(&d, tt.keys...); got != tt.want {
				t.Errorf("completed = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestDetectorResetsAfterCompletion(t *testing.T) {
	var d Detector
	if !feedAll(&d, Sequence...) {
		t.Fatal("first run should complete")
	}
	if d.pos != 0 {
		t.Errorf("progress = %d after completion, expected 0", d.pos)
	}
	if !feedAll(&d, Sequence...) {
		t.Error("second run should complete again")
	}
}
