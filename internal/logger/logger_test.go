package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		warnSeen  bool
	}{
		{level: "debug", debugSeen: true, warnSeen: true},
		{level: "info", debugSeen: false, warnSeen: true},
		{level: "", debugSeen: false, warnSeen: true},
		{level: "error", debugSeen: false, warnSeen: false},
	}

	for _, tc := range tests {
		t.Run("level="+tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(&buf, tc.level)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			l.Debug("round started", "round", 1)
			l.Warn("font missing")

			out := buf.String()
			if got := strings.Contains(out, "round started"); got != tc.debugSeen {
				t.Errorf("debug line present = %v, expected %v\n%s", got, tc.debugSeen, out)
			}
			if got := strings.Contains(out, "font missing"); got != tc.warnSeen {
				t.Errorf("warn line present = %v, expected %v\n%s", got, tc.warnSeen, out)
			}
			if out != "" && !strings.Contains(out, Prefix) {
				t.Errorf("output missing prefix %q: %s", Prefix, out)
			}
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(nil, "loud"); err == nil {
		t.Error("New(loud) expected error")
	}
}
