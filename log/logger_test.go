package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	SetLevel(Warning)
	defer SetLevel(Notice)

	logger := New("test")
	logger.Info("hidden")
	logger.Warningf("visible %d", 42)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "visible 42") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected warning message tagged with the module name; got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	specs := map[string]Level{
		"debug":   Debug,
		"INFO":    Info,
		"notice":  Notice,
		"warn":    Warning,
		"warning": Warning,
		"error":   Error,
	}

	for name, exp := range specs {
		level, err := ParseLevel(name)
		if err != nil {
			t.Errorf("unexpected error parsing %q: %v", name, err)
			continue
		}
		if level != exp {
			t.Errorf("expected %q to parse as %d; got %d", name, exp, level)
		}
	}

	expError := `log: unknown level "loud"`
	if _, err := ParseLevel("loud"); err == nil || err.Error() != expError {
		t.Fatalf("expected error %q; got %v", expError, err)
	}
}
