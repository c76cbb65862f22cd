package blog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var quiet bytes.Buffer
	l := New(&quiet, false)
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	if strings.Contains(quiet.String(), "hidden") {
		t.Errorf("debug event written without verbose: %q", quiet.String())
	}

	if !strings.Contains(quiet.String(), "shown") {
		t.Errorf("info event missing: %q", quiet.String())
	}

	var verbose bytes.Buffer
	l = New(&verbose, true)
	l.Debug().Msg("visible")

	if !strings.Contains(verbose.String(), "visible") {
		t.Errorf("debug event missing with verbose: %q", verbose.String())
	}
}
