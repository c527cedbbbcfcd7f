package audio

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestNopPlaysNothing(t *testing.T) {
	var s Sink = Nop{}
	for _, c := range []Cue{CueHover, CueClick, CueSuccess, CueType} {
		s.Play(c)
	}
}

// The game loop imports this package, so it must build without cgo or
// an audio device.
func TestPackageHasNoAudioBackend(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.HasPrefix(path, "github.com/gopxl/") || strings.Contains(path, "/audio/synth") {
				t.Errorf("%s imports %s", name, path)
			}
		}
	}
}
